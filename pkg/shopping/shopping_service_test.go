package shopping

import (
	"context"
	"errors"
	"testing"
	"time"

	"fridgemate/domain"
	"fridgemate/entities"

	"github.com/google/uuid"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) *shoppingService {
	t.Helper()
	return newTestServiceAt(t, t.TempDir())
}

func newTestServiceAt(t *testing.T, dir string) *shoppingService {
	t.Helper()
	service := NewShoppingService(NewShoppingFileRepository(dir)).(*shoppingService)
	service.now = func() time.Time { return fixedNow }
	t.Cleanup(service.Close)
	return service
}

func TestAddShoppingItemDefaults(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	res, err := service.AddShoppingItem(ctx, domain.AddShoppingItemRequest{Name: "Milk"})
	if err != nil {
		t.Fatalf("AddShoppingItem: %v", err)
	}

	if res.Quantity != 1 {
		t.Errorf("quantity = %d, want the 1 floor", res.Quantity)
	}
	if res.StorageType != string(entities.StorageFridge) {
		t.Errorf("storage = %s, want fridge default", res.StorageType)
	}
	if res.Category != string(entities.CategoryOther) {
		t.Errorf("category = %s, want other default", res.Category)
	}
	if !res.ManuallyAdded {
		t.Errorf("manual adds must be flagged as such")
	}
	if res.IsChecked {
		t.Errorf("new entries start unchecked")
	}
	if !res.AddedAt.Equal(fixedNow) {
		t.Errorf("added at = %v, want %v", res.AddedAt, fixedNow)
	}
}

func TestAddShoppingItemParsesOptionalFields(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	linked := uuid.NewString()
	res, err := service.AddShoppingItem(ctx, domain.AddShoppingItemRequest{
		Name:             "Milk",
		Quantity:         2,
		ExpirationDate:   "2026-04-01",
		LinkedFoodItemID: linked,
		Note:             "the lactose free one",
	})
	if err != nil {
		t.Fatalf("AddShoppingItem: %v", err)
	}
	if res.ExpirationDate == nil || res.ExpirationDate.Format("2006-01-02") != "2026-04-01" {
		t.Errorf("expiration = %v, want 2026-04-01", res.ExpirationDate)
	}
	if res.LinkedFoodItemID != linked {
		t.Errorf("linked id = %s, want %s", res.LinkedFoodItemID, linked)
	}

	_, err = service.AddShoppingItem(ctx, domain.AddShoppingItemRequest{Name: "Milk", ExpirationDate: "bad"})
	if !errors.Is(err, domain.ErrInvalidExpiration) {
		t.Errorf("bad date: got %v, want ErrInvalidExpiration", err)
	}

	_, err = service.AddShoppingItem(ctx, domain.AddShoppingItemRequest{Name: "Milk", LinkedFoodItemID: "nope"})
	if !errors.Is(err, domain.ErrParseUUID) {
		t.Errorf("bad linked id: got %v, want ErrParseUUID", err)
	}
}

func TestToggleChecked(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	added := service.AddItem(ctx, entities.ShoppingItem{Name: "Milk", Quantity: 1})

	if err := service.ToggleChecked(ctx, added.ID.String()); err != nil {
		t.Fatalf("ToggleChecked: %v", err)
	}
	if got := service.Items(ctx); !got[0].IsChecked {
		t.Errorf("item not checked after toggle")
	}

	if err := service.ToggleChecked(ctx, added.ID.String()); err != nil {
		t.Fatalf("ToggleChecked: %v", err)
	}
	if got := service.Items(ctx); got[0].IsChecked {
		t.Errorf("item still checked after second toggle")
	}

	if err := service.ToggleChecked(ctx, uuid.NewString()); err != nil {
		t.Errorf("unknown id should be a no-op, got %v", err)
	}
	if err := service.ToggleChecked(ctx, "oops"); !errors.Is(err, domain.ErrParseUUID) {
		t.Errorf("malformed id: got %v, want ErrParseUUID", err)
	}
}

func TestUpdateShoppingItemInvalidDateChangesNothing(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	added := service.AddItem(ctx, entities.ShoppingItem{Name: "Milk", Quantity: 2, Category: entities.CategoryDairy})

	err := service.UpdateShoppingItem(ctx, added.ID.String(), domain.UpdateShoppingItemRequest{
		Name:           "Oat milk",
		Quantity:       5,
		Category:       "drink",
		ExpirationDate: "garbage",
	})
	if !errors.Is(err, domain.ErrInvalidExpiration) {
		t.Fatalf("bad date: got %v, want ErrInvalidExpiration", err)
	}

	// a rejected update must not have applied any of its fields
	got := service.Items(ctx)[0]
	if got.Name != "Milk" || got.Quantity != 2 || got.Category != entities.CategoryDairy {
		t.Errorf("item mutated by rejected update: %+v", got)
	}
}

func TestUpdateShoppingItemUnknownIsNoOp(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	if err := service.UpdateShoppingItem(ctx, uuid.NewString(), domain.UpdateShoppingItemRequest{Name: "x"}); err != nil {
		t.Errorf("unknown id should be a no-op, got %v", err)
	}
}

func TestExtractCheckedAndRemove(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	service.AddItem(ctx, entities.ShoppingItem{Name: "Milk", Quantity: 1, IsChecked: true})
	service.AddItem(ctx, entities.ShoppingItem{Name: "Bread", Quantity: 1})
	service.AddItem(ctx, entities.ShoppingItem{Name: "Eggs", Quantity: 6, IsChecked: true})

	checked := service.ExtractCheckedAndRemove(ctx)
	if len(checked) != 2 || checked[0].Name != "Milk" || checked[1].Name != "Eggs" {
		t.Errorf("checked = %v, want Milk then Eggs", checked)
	}

	remaining := service.Items(ctx)
	if len(remaining) != 1 || remaining[0].Name != "Bread" {
		t.Errorf("remaining = %v, want only Bread", remaining)
	}

	if again := service.ExtractCheckedAndRemove(ctx); len(again) != 0 {
		t.Errorf("second extract returned %v, want nothing", again)
	}
}

func TestGetShoppingItemsSortedByAddedAt(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	service.AddItem(ctx, entities.ShoppingItem{Name: "Late", Quantity: 1, AddedAt: fixedNow.Add(time.Hour)})
	service.AddItem(ctx, entities.ShoppingItem{Name: "Early", Quantity: 1, AddedAt: fixedNow.Add(-time.Hour)})
	service.AddItem(ctx, entities.ShoppingItem{Name: "Middle", Quantity: 1, AddedAt: fixedNow})

	items, err := service.GetShoppingItems(ctx)
	if err != nil {
		t.Fatalf("GetShoppingItems: %v", err)
	}
	want := []string{"Early", "Middle", "Late"}
	for i := range want {
		if items[i].Name != want[i] {
			t.Fatalf("order = %v, want %v", items, want)
		}
	}
}

func TestShoppingListSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	service := newTestServiceAt(t, dir)
	service.AddItem(ctx, entities.ShoppingItem{Name: "Milk", Quantity: 1, IsChecked: true})
	service.AddItem(ctx, entities.ShoppingItem{Name: "Eggs", Quantity: 6})
	service.Close()

	reopened := newTestServiceAt(t, dir)
	items := reopened.Items(ctx)
	if len(items) != 2 || items[0].Name != "Milk" || items[1].Name != "Eggs" {
		t.Fatalf("restored list = %v, want Milk then Eggs", items)
	}
	if !items[0].IsChecked {
		t.Errorf("checked flag lost across restart")
	}
}
