package shopping

import (
	"context"
	"errors"
	"time"

	"fridgemate/domain"
	"fridgemate/entities"
	"fridgemate/internal/utils/storage"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const collectionShoppingItems = "shopping_items"

type (
	// ShoppingRepository is the persistence port for the shopping
	// list: whole-collection load and save only.
	ShoppingRepository interface {
		LoadShoppingItems(ctx context.Context) ([]entities.ShoppingItem, error)
		SaveShoppingItems(ctx context.Context, items []entities.ShoppingItem) error
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) LoadShoppingItems(ctx context.Context) ([]entities.ShoppingItem, error) {
	var state entities.CollectionState
	if err := r.db.WithContext(ctx).Where("name = ?", collectionShoppingItems).First(&state).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCollectionNotFound
		}
		return nil, err
	}

	var items []entities.ShoppingItem
	if err := r.db.WithContext(ctx).Order("position asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *shoppingRepository) SaveShoppingItems(ctx context.Context, items []entities.ShoppingItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&entities.ShoppingItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].Position = i
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&entities.CollectionState{Name: collectionShoppingItems, InitializedAt: time.Now()}).Error
	})
}

type shoppingFileRepository struct {
	items *storage.FileStore[entities.ShoppingItem]
}

func NewShoppingFileRepository(dir string) ShoppingRepository {
	return &shoppingFileRepository{
		items: storage.NewFileStore[entities.ShoppingItem](dir, "shopping_items.json"),
	}
}

func (r *shoppingFileRepository) LoadShoppingItems(ctx context.Context) ([]entities.ShoppingItem, error) {
	return r.items.Load()
}

func (r *shoppingFileRepository) SaveShoppingItems(ctx context.Context, items []entities.ShoppingItem) error {
	return r.items.Save(items)
}
