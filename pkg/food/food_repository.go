package food

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

const (
	collectionFoodItems    = "food_items"
	collectionReceiptScans = "receipt_scans"
)

type (
	// FoodRepository is the persistence port for the inventory and
	// receipt-scan collections: whole-collection load and save only.
	FoodRepository interface {
		LoadFoodItems(ctx context.Context) ([]entities.FoodItem, error)
		SaveFoodItems(ctx context.Context, items []entities.FoodItem) error
		LoadReceiptScans(ctx context.Context) ([]entities.ReceiptScan, error)
		SaveReceiptScans(ctx context.Context, scans []entities.ReceiptScan) error
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) LoadFoodItems(ctx context.Context) ([]entities.FoodItem, error) {
	if err := checkCollectionState(ctx, r.db, collectionFoodItems); err != nil {
		return nil, err
	}

	var items []entities.FoodItem
	if err := r.db.WithContext(ctx).Order("position asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *foodRepository) SaveFoodItems(ctx context.Context, items []entities.FoodItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&entities.FoodItem{}).Error; err != nil {
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
		return markCollectionState(tx, collectionFoodItems)
	})
}

func (r *foodRepository) LoadReceiptScans(ctx context.Context) ([]entities.ReceiptScan, error) {
	if err := checkCollectionState(ctx, r.db, collectionReceiptScans); err != nil {
		return nil, err
	}

	var scans []entities.ReceiptScan
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&scans).Error; err != nil {
		return nil, err
	}
	return scans, nil
}

func (r *foodRepository) SaveReceiptScans(ctx context.Context, scans []entities.ReceiptScan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&entities.ReceiptScan{}).Error; err != nil {
			return err
		}
		if len(scans) > 0 {
			if err := tx.Create(&scans).Error; err != nil {
				return err
			}
		}
		return markCollectionState(tx, collectionReceiptScans)
	})
}

// checkCollectionState distinguishes a never-written collection from an
// emptied one; only the former reports domain.ErrCollectionNotFound.
func checkCollectionState(ctx context.Context, db *gorm.DB, name string) error {
	var state entities.CollectionState
	if err := db.WithContext(ctx).Where("name = ?", name).First(&state).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCollectionNotFound
		}
		return err
	}
	return nil
}

func markCollectionState(tx *gorm.DB, name string) error {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entities.CollectionState{Name: name, InitializedAt: time.Now()}).Error
}

type foodFileRepository struct {
	items *storage.FileStore[entities.FoodItem]
	scans *storage.FileStore[entities.ReceiptScan]
}

// NewFoodFileRepository persists the collections as JSON documents
// under dir, one file per collection.
func NewFoodFileRepository(dir string) FoodRepository {
	return &foodFileRepository{
		items: storage.NewFileStore[entities.FoodItem](dir, "food_items.json"),
		scans: storage.NewFileStore[entities.ReceiptScan](dir, "receipt_scans.json"),
	}
}

func (r *foodFileRepository) LoadFoodItems(ctx context.Context) ([]entities.FoodItem, error) {
	return r.items.Load()
}

func (r *foodFileRepository) SaveFoodItems(ctx context.Context, items []entities.FoodItem) error {
	return r.items.Save(items)
}

func (r *foodFileRepository) LoadReceiptScans(ctx context.Context) ([]entities.ReceiptScan, error) {
	return r.scans.Load()
}

func (r *foodFileRepository) SaveReceiptScans(ctx context.Context, scans []entities.ReceiptScan) error {
	return r.scans.Save(scans)
}
