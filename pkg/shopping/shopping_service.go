package shopping

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
	"fridgemate/internal/utils/storage"

	"github.com/google/uuid"
)

type (
	ShoppingService interface {
		AddShoppingItem(ctx context.Context, req domain.AddShoppingItemRequest) (domain.ShoppingItemResponse, error)
		UpdateShoppingItem(ctx context.Context, id string, req domain.UpdateShoppingItemRequest) error
		DeleteShoppingItems(ctx context.Context, ids []string) error
		GetShoppingItems(ctx context.Context) ([]domain.ShoppingItemResponse, error)
		ToggleChecked(ctx context.Context, id string) error

		// Items returns a snapshot of the list in insertion order.
		Items(ctx context.Context) []entities.ShoppingItem
		// AddItem appends a ready-made entry (template application).
		AddItem(ctx context.Context, item entities.ShoppingItem) entities.ShoppingItem
		// UpdateItem replaces the entry with a matching id; unknown
		// ids are a silent no-op.
		UpdateItem(ctx context.Context, item entities.ShoppingItem)
		// ExtractCheckedAndRemove atomically returns all checked items
		// and removes them from the list. The checked flag is gone
		// from the store after this call; callers own the returned
		// items.
		ExtractCheckedAndRemove(ctx context.Context) []entities.ShoppingItem

		Close()
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
		now                func() time.Time

		mu    sync.Mutex
		items []entities.ShoppingItem

		saver *storage.Saver[entities.ShoppingItem]
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository) ShoppingService {
	s := &shoppingService{
		shoppingRepository: shoppingRepository,
		now:                time.Now,
	}

	items, err := shoppingRepository.LoadShoppingItems(context.Background())
	switch {
	case err == nil:
		for i := range items {
			items[i].Normalize()
		}
		s.items = items
	case errors.Is(err, domain.ErrCollectionNotFound):
		// first run
	default:
		log.Printf("[shopping] load error, starting empty: %v", err)
	}

	s.saver = storage.NewSaver("shopping_items", func(snapshot []entities.ShoppingItem) error {
		return shoppingRepository.SaveShoppingItems(context.Background(), snapshot)
	})
	return s
}

func (s *shoppingService) Close() {
	s.saver.Close()
}

func (s *shoppingService) persistLocked() {
	s.saver.Enqueue(slices.Clone(s.items))
}

func (s *shoppingService) AddShoppingItem(ctx context.Context, req domain.AddShoppingItemRequest) (domain.ShoppingItemResponse, error) {
	item := entities.ShoppingItem{
		ID:               uuid.New(),
		Name:             req.Name,
		Quantity:         req.Quantity,
		Category:         entities.FoodCategory(req.Category),
		ExpirationPeriod: req.ExpirationPeriod,
		StorageType:      entities.StorageType(req.StorageType),
		ManuallyAdded:    true,
		Note:             req.Note,
		AddedAt:          s.now(),
	}

	if req.ExpirationDate != "" {
		expirationDate, err := time.Parse("2006-01-02", req.ExpirationDate)
		if err != nil {
			return domain.ShoppingItemResponse{}, domain.ErrInvalidExpiration
		}
		item.ExpirationDate = &expirationDate
	}

	if req.LinkedFoodItemID != "" {
		linkedID, err := uuid.Parse(req.LinkedFoodItemID)
		if err != nil {
			return domain.ShoppingItemResponse{}, domain.ErrParseUUID
		}
		item.LinkedFoodItemID = &linkedID
	}

	item.Normalize()

	s.mu.Lock()
	s.items = append(s.items, item)
	s.persistLocked()
	s.mu.Unlock()

	return toResponse(item), nil
}

func (s *shoppingService) AddItem(ctx context.Context, item entities.ShoppingItem) entities.ShoppingItem {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.AddedAt.IsZero() {
		item.AddedAt = s.now()
	}
	item.Normalize()

	s.mu.Lock()
	s.items = append(s.items, item)
	s.persistLocked()
	s.mu.Unlock()

	return item
}

func (s *shoppingService) UpdateShoppingItem(ctx context.Context, id string, req domain.UpdateShoppingItemRequest) error {
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
		if req.Category != "" {
			s.items[i].Category = entities.FoodCategory(req.Category)
		}
		if expirationDate != nil {
			s.items[i].ExpirationDate = expirationDate
		}
		if req.ExpirationPeriod != nil {
			s.items[i].ExpirationPeriod = req.ExpirationPeriod
		}
		if req.StorageType != "" {
			s.items[i].StorageType = entities.StorageType(req.StorageType)
		}
		if req.Note != "" {
			s.items[i].Note = req.Note
		}
		s.items[i].Normalize()
		s.persistLocked()
		return nil
	}

	return nil
}

func (s *shoppingService) UpdateItem(ctx context.Context, item entities.ShoppingItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			item.Normalize()
			s.items[i] = item
			s.persistLocked()
			return
		}
	}
}

func (s *shoppingService) DeleteShoppingItems(ctx context.Context, ids []string) error {
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
	s.persistLocked()
	return nil
}

func (s *shoppingService) ToggleChecked(ctx context.Context, id string) error {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i].IsChecked = !s.items[i].IsChecked
			s.persistLocked()
			return nil
		}
	}
	return nil
}

func (s *shoppingService) GetShoppingItems(ctx context.Context) ([]domain.ShoppingItemResponse, error) {
	s.mu.Lock()
	listed := slices.Clone(s.items)
	s.mu.Unlock()

	sort.SliceStable(listed, func(i, j int) bool {
		return listed[i].AddedAt.Before(listed[j].AddedAt)
	})

	response := make([]domain.ShoppingItemResponse, 0, len(listed))
	for _, item := range listed {
		response = append(response, toResponse(item))
	}
	return response, nil
}

func (s *shoppingService) Items(ctx context.Context) []entities.ShoppingItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

func (s *shoppingService) ExtractCheckedAndRemove(ctx context.Context) []entities.ShoppingItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var checked []entities.ShoppingItem
	kept := s.items[:0]
	for _, item := range s.items {
		if item.IsChecked {
			checked = append(checked, item)
		} else {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.persistLocked()
	return checked
}

func toResponse(item entities.ShoppingItem) domain.ShoppingItemResponse {
	response := domain.ShoppingItemResponse{
		ID:               item.ID.String(),
		Name:             item.Name,
		Quantity:         item.Quantity,
		Category:         string(item.Category),
		ExpirationDate:   item.ExpirationDate,
		ExpirationPeriod: item.ExpirationPeriod,
		StorageType:      string(item.StorageType),
		ManuallyAdded:    item.ManuallyAdded,
		Note:             item.Note,
		AddedAt:          item.AddedAt,
		IsChecked:        item.IsChecked,
	}
	if item.LinkedFoodItemID != nil {
		response.LinkedFoodItemID = item.LinkedFoodItemID.String()
	}
	return response
}
