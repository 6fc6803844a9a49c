package template

import (
	"fridgemate/entities"

	"github.com/google/uuid"
)

func days(n int) *int { return &n }

func seedItem(name string, quantity int, period int, storageType entities.StorageType, category entities.FoodCategory) entities.TemplateItem {
	return entities.TemplateItem{
		ID:               uuid.New(),
		Name:             name,
		Quantity:         quantity,
		ExpirationPeriod: days(period),
		StorageType:      storageType,
		Category:         category,
	}
}

// defaultTemplates is the built-in recipe set registered on the very
// first start.
func defaultTemplates() []entities.Template {
	return []entities.Template{
		{
			ID:   uuid.New(),
			Name: "Spaghetti Bolognese",
			Items: []entities.TemplateItem{
				seedItem("Ground Beef", 1, 2, entities.StorageFridge, entities.CategoryMeat),
				seedItem("Onion", 1, 7, entities.StoragePantry, entities.CategoryVegetable),
				seedItem("Canned Tomatoes", 1, 365, entities.StoragePantry, entities.CategoryOther),
				seedItem("Garlic", 1, 14, entities.StoragePantry, entities.CategoryVegetable),
				seedItem("Spaghetti", 1, 365, entities.StoragePantry, entities.CategoryOther),
				seedItem("Shredded Cheese", 1, 7, entities.StorageFridge, entities.CategoryDairy),
			},
		},
		{
			ID:   uuid.New(),
			Name: "Chicken Gratin",
			Items: []entities.TemplateItem{
				seedItem("Macaroni", 1, 365, entities.StoragePantry, entities.CategoryOther),
				seedItem("Onion", 1, 7, entities.StoragePantry, entities.CategoryVegetable),
				seedItem("Chicken Breast", 1, 2, entities.StorageFridge, entities.CategoryMeat),
				seedItem("Milk", 1, 7, entities.StorageFridge, entities.CategoryDairy),
				seedItem("Shredded Cheese", 1, 7, entities.StorageFridge, entities.CategoryDairy),
				seedItem("Butter", 1, 30, entities.StorageFridge, entities.CategoryDairy),
			},
		},
		{
			ID:   uuid.New(),
			Name: "Beef and Potato Stew",
			Items: []entities.TemplateItem{
				seedItem("Potatoes", 2, 7, entities.StoragePantry, entities.CategoryVegetable),
				seedItem("Onion", 1, 7, entities.StoragePantry, entities.CategoryVegetable),
				seedItem("Carrot", 1, 7, entities.StorageFridge, entities.CategoryVegetable),
				seedItem("Beef", 1, 2, entities.StorageFridge, entities.CategoryMeat),
				seedItem("Green Beans", 1, 7, entities.StorageFridge, entities.CategoryVegetable),
			},
		},
		{
			ID:   uuid.New(),
			Name: "Hamburger Steak",
			Items: []entities.TemplateItem{
				seedItem("Ground Beef", 1, 2, entities.StorageFridge, entities.CategoryMeat),
				seedItem("Onion", 1, 7, entities.StoragePantry, entities.CategoryVegetable),
				seedItem("Eggs", 1, 14, entities.StorageFridge, entities.CategoryOther),
				seedItem("Breadcrumbs", 1, 180, entities.StoragePantry, entities.CategoryOther),
			},
		},
		{
			ID:   uuid.New(),
			Name: "Ginger Pork Stir-fry",
			Items: []entities.TemplateItem{
				seedItem("Pork Loin", 1, 2, entities.StorageFridge, entities.CategoryMeat),
				seedItem("Onion", 1, 7, entities.StoragePantry, entities.CategoryVegetable),
				seedItem("Ginger", 1, 14, entities.StorageFridge, entities.CategoryVegetable),
			},
		},
	}
}
