package food

import (
	"context"
	"errors"
	"log"
	"slices"
	"sort"
	"sync"
	"time"

	"fridgemate/domain"
	"fridgemate/entities"
	"fridgemate/internal/utils"
	"fridgemate/internal/utils/storage"

	"github.com/google/uuid"
)

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest) error
		DeleteFoodItems(ctx context.Context, ids []string) error
		GetFoodItems(ctx context.Context, storageType string) ([]domain.FoodItemResponse, error)
		GetFoodItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error)
		GetDashboard(ctx context.Context) (domain.DashboardResponse, error)

		UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest) (domain.UploadReceiptResponse, error)
		GetReceiptScan(ctx context.Context, id string) (domain.ReceiptScanResponse, error)
		SaveScannedItems(ctx context.Context, req domain.SaveScannedItemsRequest) error

		// AddItem appends a ready-made inventory entry. Used by the
		// reconciliation engine, which always creates new entries and
		// never merges into existing ones.
		AddItem(ctx context.Context, item entities.FoodItem) entities.FoodItem
		// ItemsExpiringSoon returns entries expiring within the soon
		// window, for the digest mailer.
		ItemsExpiringSoon(ctx context.Context) []entities.FoodItem

		Close()
	}

	foodService struct {
		foodRepository FoodRepository
		s3             storage.AwsS3
		now            func() time.Time

		mu    sync.Mutex
		items []entities.FoodItem
		scans []entities.ReceiptScan

		itemSaver *storage.Saver[entities.FoodItem]
		scanSaver *storage.Saver[entities.ReceiptScan]
	}
)

func NewFoodService(foodRepository FoodRepository, s3 storage.AwsS3) FoodService {
	s := &foodService{
		foodRepository: foodRepository,
		s3:             s3,
		now:            time.Now,
	}

	items, err := foodRepository.LoadFoodItems(context.Background())
	switch {
	case err == nil:
		for i := range items {
			items[i].Normalize()
		}
		s.items = items
	case errors.Is(err, domain.ErrCollectionNotFound):
		// first run, nothing persisted yet
	default:
		log.Printf("[food] load error, starting empty: %v", err)
	}

	scans, err := foodRepository.LoadReceiptScans(context.Background())
	if err == nil {
		s.scans = scans
	} else if !errors.Is(err, domain.ErrCollectionNotFound) {
		log.Printf("[food] receipt scan load error, starting empty: %v", err)
	}

	s.itemSaver = storage.NewSaver("food_items", func(snapshot []entities.FoodItem) error {
		return foodRepository.SaveFoodItems(context.Background(), snapshot)
	})
	s.scanSaver = storage.NewSaver("receipt_scans", func(snapshot []entities.ReceiptScan) error {
		return foodRepository.SaveReceiptScans(context.Background(), snapshot)
	})
	return s
}

func (s *foodService) Close() {
	s.itemSaver.Close()
	s.scanSaver.Close()
}

func (s *foodService) persistItemsLocked() {
	s.itemSaver.Enqueue(slices.Clone(s.items))
}

func (s *foodService) persistScansLocked() {
	s.scanSaver.Enqueue(slices.Clone(s.scans))
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error) {
	expirationDate, err := time.Parse("2006-01-02", req.ExpirationDate)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrInvalidExpiration
	}

	if req.Quantity <= 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidQuantity
	}

	item := entities.FoodItem{
		ID:             uuid.New(),
		Name:           req.Name,
		Quantity:       req.Quantity,
		ExpirationDate: expirationDate,
		StorageType:    entities.StorageType(req.StorageType),
		Category:       entities.FoodCategory(req.Category),
	}
	item.Normalize()

	s.mu.Lock()
	s.items = append(s.items, item)
	s.persistItemsLocked()
	s.mu.Unlock()

	return s.toResponse(item), nil
}

// AddItem trusts the caller's field values apart from normalization;
// the id is assigned here if the caller left it zero.
func (s *foodService) AddItem(ctx context.Context, item entities.FoodItem) entities.FoodItem {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.Normalize()

	s.mu.Lock()
	s.items = append(s.items, item)
	s.persistItemsLocked()
	s.mu.Unlock()

	return item
}

func (s *foodService) UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest) error {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	// validate the whole request before touching the item; a bad date
	// must not leave a half-edited entry behind
	var expirationDate *time.Time
	if req.ExpirationDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpirationDate)
		if err != nil {
			return domain.ErrInvalidExpiration
		}
		expirationDate = &parsed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != itemID {
			continue
		}

		if req.Name != "" {
			s.items[i].Name = req.Name
		}
		if req.Quantity > 0 {
			s.items[i].Quantity = req.Quantity
		}
		if expirationDate != nil {
			s.items[i].ExpirationDate = *expirationDate
		}
		if req.StorageType != "" {
			s.items[i].StorageType = entities.StorageType(req.StorageType)
		}
		if req.Category != "" {
			s.items[i].Category = entities.FoodCategory(req.Category)
		}
		s.items[i].Normalize()
		s.persistItemsLocked()
		return nil
	}

	// unknown id is a silent no-op, matching the best-effort policy
	return nil
}

func (s *foodService) DeleteFoodItems(ctx context.Context, ids []string) error {
	toDelete := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		itemID, err := uuid.Parse(id)
		if err != nil {
			return domain.ErrParseUUID
		}
		toDelete[itemID] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if !toDelete[item.ID] {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.persistItemsLocked()
	return nil
}

func (s *foodService) GetFoodItems(ctx context.Context, storageType string) ([]domain.FoodItemResponse, error) {
	if storageType != "" && !entities.StorageType(storageType).Valid() {
		return nil, domain.ErrInvalidStorageType
	}

	s.mu.Lock()
	filtered := make([]entities.FoodItem, 0, len(s.items))
	for _, item := range s.items {
		if storageType == "" || item.StorageType == entities.StorageType(storageType) {
			filtered = append(filtered, item)
		}
	}
	s.mu.Unlock()

	// stable keeps insertion order for equal expiration dates
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].ExpirationDate.Before(filtered[j].ExpirationDate)
	})

	response := make([]domain.FoodItemResponse, 0, len(filtered))
	for _, item := range filtered {
		response = append(response, s.toResponse(item))
	}
	return response, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error) {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrParseUUID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ID == itemID {
			return s.toResponse(item), nil
		}
	}
	return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
}

func (s *foodService) GetDashboard(ctx context.Context) (domain.DashboardResponse, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	stats := domain.DashboardResponse{TotalItems: len(s.items)}
	for _, item := range s.items {
		switch utils.ClassifyExpiry(item.ExpirationDate, now) {
		case utils.ExpiryOverdue:
			stats.Overdue++
		case utils.ExpiryDueToday:
			stats.DueToday++
		case utils.ExpiryDueTomorrow:
			stats.DueTomorrow++
		case utils.ExpiryUpcoming:
			stats.Upcoming++
		case utils.ExpiryFarFuture:
			stats.FarFuture++
		}
		if utils.IsExpiringSoon(item.ExpirationDate, now) {
			stats.ExpiringSoon++
		}
	}
	return stats, nil
}

func (s *foodService) ItemsExpiringSoon(ctx context.Context) []entities.FoodItem {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	var expiring []entities.FoodItem
	for _, item := range s.items {
		if utils.IsExpiringSoon(item.ExpirationDate, now) {
			expiring = append(expiring, item)
		}
	}
	return expiring
}

func (s *foodService) toResponse(item entities.FoodItem) domain.FoodItemResponse {
	now := s.now()
	return domain.FoodItemResponse{
		ID:             item.ID.String(),
		Name:           item.Name,
		Quantity:       item.Quantity,
		ExpirationDate: item.ExpirationDate,
		StorageType:    string(item.StorageType),
		Category:       string(item.Category),
		ExpiryLabel:    utils.ExpiryLabel(item.ExpirationDate, now),
		ExpiringSoon:   utils.IsExpiringSoon(item.ExpirationDate, now),
	}
}
