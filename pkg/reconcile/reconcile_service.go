package reconcile

import (
	"context"
	"time"

	"fridgemate/domain"
	"fridgemate/entities"
	"fridgemate/internal/utils"
	"fridgemate/pkg/food"
	"fridgemate/pkg/shopping"
	"fridgemate/pkg/template"
)

type (
	// ReconcileService converts between the three entity sets: checked
	// shopping items fold into inventory, templates merge into the
	// shopping list, and the shopping list can be captured as a new
	// template.
	ReconcileService interface {
		CheckoutCheckedItems(ctx context.Context) (domain.CheckoutResponse, error)
		ApplyTemplate(ctx context.Context, templateID string) error
		SaveListAsTemplate(ctx context.Context, name string) (domain.TemplateResponse, error)
	}

	reconcileService struct {
		foodService     food.FoodService
		shoppingService shopping.ShoppingService
		templateService template.TemplateService
		now             func() time.Time
	}
)

func NewReconcileService(
	foodService food.FoodService,
	shoppingService shopping.ShoppingService,
	templateService template.TemplateService,
) ReconcileService {
	return &reconcileService{
		foodService:     foodService,
		shoppingService: shoppingService,
		templateService: templateService,
		now:             time.Now,
	}
}

// CheckoutCheckedItems removes every checked shopping item and folds
// the batch into inventory, one new food item per distinct name. Name
// matching is exact; groups iterate in first-appearance order. The
// operation never updates existing inventory entries.
func (s *reconcileService) CheckoutCheckedItems(ctx context.Context) (domain.CheckoutResponse, error) {
	checked := s.shoppingService.ExtractCheckedAndRemove(ctx)

	var order []string
	groups := make(map[string][]entities.ShoppingItem)
	for _, item := range checked {
		if _, seen := groups[item.Name]; !seen {
			order = append(order, item.Name)
		}
		groups[item.Name] = append(groups[item.Name], item)
	}

	now := s.now()
	response := domain.CheckoutResponse{ConvertedItems: []domain.FoodItemResponse{}}
	for _, name := range order {
		group := groups[name]

		// non-positive quantities count as one; corrupt data must not
		// swallow an item
		quantity := 0
		for _, item := range group {
			if item.Quantity > 0 {
				quantity += item.Quantity
			} else {
				quantity++
			}
		}

		first := group[0]
		var expirationDate time.Time
		switch {
		case first.ExpirationDate != nil:
			expirationDate = *first.ExpirationDate
		case first.ExpirationPeriod != nil:
			expirationDate = now.AddDate(0, 0, *first.ExpirationPeriod)
		default:
			expirationDate = now.AddDate(0, 0, 7)
		}

		storageType := first.StorageType
		if !storageType.Valid() {
			storageType = entities.StorageFridge
		}
		category := first.Category
		if !category.Valid() {
			category = entities.CategoryOther
		}

		added := s.foodService.AddItem(ctx, entities.FoodItem{
			Name:           name,
			Quantity:       quantity,
			ExpirationDate: expirationDate,
			StorageType:    storageType,
			Category:       category,
		})

		response.ConvertedItems = append(response.ConvertedItems, domain.FoodItemResponse{
			ID:             added.ID.String(),
			Name:           added.Name,
			Quantity:       added.Quantity,
			ExpirationDate: added.ExpirationDate,
			StorageType:    string(added.StorageType),
			Category:       string(added.Category),
			ExpiryLabel:    utils.ExpiryLabel(added.ExpirationDate, now),
			ExpiringSoon:   utils.IsExpiringSoon(added.ExpirationDate, now),
		})
	}
	return response, nil
}

// ApplyTemplate merges a template into the shopping list. A template
// item whose name already exists on the list adds its quantity to the
// existing entry and overwrites its expiration, storage, and category
// fields; anything else is appended as a new, unchecked entry.
// Applying the same template twice doubles the matched quantities.
func (s *reconcileService) ApplyTemplate(ctx context.Context, templateID string) error {
	tmpl, err := s.templateService.GetTemplateByID(ctx, templateID)
	if err != nil {
		return err
	}

	for _, templateItem := range tmpl.Items {
		// look up live each round so duplicate names within one
		// template accumulate onto the entry the previous round added
		existing := s.shoppingService.Items(ctx)

		matched := false
		for _, shoppingItem := range existing {
			if shoppingItem.Name != templateItem.Name {
				continue
			}
			shoppingItem.Quantity += templateItem.Quantity
			shoppingItem.ExpirationDate = cloneDate(templateItem.ExpirationDate)
			shoppingItem.ExpirationPeriod = cloneInt(templateItem.ExpirationPeriod)
			shoppingItem.StorageType = templateItem.StorageType
			shoppingItem.Category = templateItem.Category
			s.shoppingService.UpdateItem(ctx, shoppingItem)
			matched = true
			break
		}

		if !matched {
			s.shoppingService.AddItem(ctx, entities.ShoppingItem{
				Name:             templateItem.Name,
				Quantity:         templateItem.Quantity,
				Category:         templateItem.Category,
				ExpirationDate:   cloneDate(templateItem.ExpirationDate),
				ExpirationPeriod: cloneInt(templateItem.ExpirationPeriod),
				StorageType:      templateItem.StorageType,
				ManuallyAdded:    false,
				AddedAt:          s.now(),
				IsChecked:        false,
			})
		}
	}
	return nil
}

// SaveListAsTemplate captures the current shopping list as a new
// template, duplicates and all. An empty list is rejected.
func (s *reconcileService) SaveListAsTemplate(ctx context.Context, name string) (domain.TemplateResponse, error) {
	items := s.shoppingService.Items(ctx)
	if len(items) == 0 {
		return domain.TemplateResponse{}, domain.ErrEmptyShoppingList
	}

	templateItems := make([]entities.TemplateItem, 0, len(items))
	for _, item := range items {
		templateItems = append(templateItems, entities.TemplateItem{
			ID:               item.ID,
			Name:             item.Name,
			Quantity:         item.Quantity,
			ExpirationDate:   cloneDate(item.ExpirationDate),
			ExpirationPeriod: cloneInt(item.ExpirationPeriod),
			StorageType:      item.StorageType,
			Category:         item.Category,
		})
	}

	saved := s.templateService.AddFromItems(ctx, name, templateItems)

	response := domain.TemplateResponse{
		ID:    saved.ID.String(),
		Name:  saved.Name,
		Items: make([]domain.TemplateItemResponse, 0, len(saved.Items)),
	}
	for _, item := range saved.Items {
		response.Items = append(response.Items, domain.TemplateItemResponse{
			ID:               item.ID.String(),
			Name:             item.Name,
			Quantity:         item.Quantity,
			ExpirationDate:   item.ExpirationDate,
			ExpirationPeriod: item.ExpirationPeriod,
			StorageType:      string(item.StorageType),
			Category:         string(item.Category),
		})
	}
	return response, nil
}

func cloneDate(d *time.Time) *time.Time {
	if d == nil {
		return nil
	}
	copied := *d
	return &copied
}

func cloneInt(n *int) *int {
	if n == nil {
		return nil
	}
	copied := *n
	return &copied
}
