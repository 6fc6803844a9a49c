package food

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

func newTestService(t *testing.T) *foodService {
	t.Helper()
	return newTestServiceAt(t, t.TempDir())
}

func newTestServiceAt(t *testing.T, dir string) *foodService {
	t.Helper()
	service := NewFoodService(NewFoodFileRepository(dir), nil).(*foodService)
	service.now = func() time.Time { return fixedNow }
	t.Cleanup(service.Close)
	return service
}

func TestAddFoodItemValidation(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	_, err := service.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name: "Milk", Quantity: 1, ExpirationDate: "03/20/2026",
	})
	if !errors.Is(err, domain.ErrInvalidExpiration) {
		t.Errorf("bad date: got %v, want ErrInvalidExpiration", err)
	}

	_, err = service.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name: "Milk", Quantity: 0, ExpirationDate: "2026-03-20",
	})
	if !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Errorf("zero quantity: got %v, want ErrInvalidQuantity", err)
	}
}

func TestGetFoodItemsSortedByExpiration(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	add := func(name, date string) {
		t.Helper()
		_, err := service.AddFoodItem(ctx, domain.AddFoodItemRequest{
			Name: name, Quantity: 1, ExpirationDate: date,
		})
		if err != nil {
			t.Fatalf("AddFoodItem(%s): %v", name, err)
		}
	}
	add("Cheese", "2026-03-20")
	add("Milk", "2026-03-12")
	add("Eggs", "2026-03-20")

	items, err := service.GetFoodItems(ctx, "")
	if err != nil {
		t.Fatalf("GetFoodItems: %v", err)
	}

	var names []string
	for _, item := range items {
		names = append(names, item.Name)
	}
	// equal dates keep insertion order
	want := []string{"Milk", "Cheese", "Eggs"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order = %v, want %v", names, want)
		}
	}
}

func TestGetFoodItemsStorageFilter(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	service.AddItem(ctx, entities.FoodItem{Name: "Milk", Quantity: 1, ExpirationDate: fixedNow, StorageType: entities.StorageFridge})
	service.AddItem(ctx, entities.FoodItem{Name: "Peas", Quantity: 1, ExpirationDate: fixedNow, StorageType: entities.StorageFreezer})

	items, err := service.GetFoodItems(ctx, "freezer")
	if err != nil {
		t.Fatalf("GetFoodItems: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Peas" {
		t.Errorf("freezer filter = %v, want only Peas", items)
	}

	if _, err := service.GetFoodItems(ctx, "basement"); !errors.Is(err, domain.ErrInvalidStorageType) {
		t.Errorf("invalid storage: got %v, want ErrInvalidStorageType", err)
	}
}

func TestUpdateFoodItemUnknownIsNoOp(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	if err := service.UpdateFoodItem(ctx, "oops", domain.UpdateFoodItemRequest{Name: "x"}); !errors.Is(err, domain.ErrParseUUID) {
		t.Errorf("malformed id: got %v, want ErrParseUUID", err)
	}
	if err := service.UpdateFoodItem(ctx, uuid.NewString(), domain.UpdateFoodItemRequest{Name: "x"}); err != nil {
		t.Errorf("unknown id should be a no-op, got %v", err)
	}
}

func TestUpdateFoodItemInvalidDateChangesNothing(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	added := service.AddItem(ctx, entities.FoodItem{
		Name: "Milk", Quantity: 2, ExpirationDate: fixedNow.AddDate(0, 0, 5),
		StorageType: entities.StorageFridge, Category: entities.CategoryDairy,
	})

	err := service.UpdateFoodItem(ctx, added.ID.String(), domain.UpdateFoodItemRequest{
		Name:           "Oat milk",
		Quantity:       5,
		ExpirationDate: "garbage",
		Category:       "drink",
	})
	if !errors.Is(err, domain.ErrInvalidExpiration) {
		t.Fatalf("bad date: got %v, want ErrInvalidExpiration", err)
	}

	// a rejected update must not have applied any of its fields
	got, err := service.GetFoodItemByID(ctx, added.ID.String())
	if err != nil {
		t.Fatalf("GetFoodItemByID: %v", err)
	}
	if got.Name != "Milk" || got.Quantity != 2 || got.Category != string(entities.CategoryDairy) {
		t.Errorf("item mutated by rejected update: %+v", got)
	}
	if !got.ExpirationDate.Equal(added.ExpirationDate) {
		t.Errorf("expiration mutated by rejected update: %v", got.ExpirationDate)
	}
}

func TestDeleteFoodItems(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	a := service.AddItem(ctx, entities.FoodItem{Name: "A", Quantity: 1, ExpirationDate: fixedNow})
	service.AddItem(ctx, entities.FoodItem{Name: "B", Quantity: 1, ExpirationDate: fixedNow})
	c := service.AddItem(ctx, entities.FoodItem{Name: "C", Quantity: 1, ExpirationDate: fixedNow})

	if err := service.DeleteFoodItems(ctx, []string{a.ID.String(), c.ID.String()}); err != nil {
		t.Fatalf("DeleteFoodItems: %v", err)
	}

	items, _ := service.GetFoodItems(ctx, "")
	if len(items) != 1 || items[0].Name != "B" {
		t.Errorf("after delete = %v, want only B", items)
	}

	// deleting an already-deleted id stays quiet
	if err := service.DeleteFoodItems(ctx, []string{a.ID.String()}); err != nil {
		t.Errorf("repeat delete: %v", err)
	}
}

func TestGetDashboard(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	addAt := func(name string, days int) {
		service.AddItem(ctx, entities.FoodItem{
			Name: name, Quantity: 1, ExpirationDate: fixedNow.AddDate(0, 0, days),
		})
	}
	addAt("Old", -2)
	addAt("Today", 0)
	addAt("Tomorrow", 1)
	addAt("Soon", 3)
	addAt("Later", 30)

	stats, err := service.GetDashboard(ctx)
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}

	want := domain.DashboardResponse{
		TotalItems:   5,
		Overdue:      1,
		DueToday:     1,
		DueTomorrow:  1,
		Upcoming:     1,
		FarFuture:    1,
		ExpiringSoon: 4,
	}
	if stats != want {
		t.Errorf("dashboard = %+v, want %+v", stats, want)
	}
}

func TestParseReceiptLines(t *testing.T) {
	lines := []string{
		"Whole Milk 2",
		"no quantity here",
		"Free Range Eggs 12",
		"",
	}

	items := parseReceiptLines(lines)
	if len(items) != 2 {
		t.Fatalf("parsed %d items, want 2", len(items))
	}
	if items[0].Name != "Whole Milk" || items[0].Quantity != 2 {
		t.Errorf("first = %+v, want Whole Milk x2", items[0])
	}
	if items[1].Name != "Free Range Eggs" || items[1].Quantity != 12 {
		t.Errorf("second = %+v, want Free Range Eggs x12", items[1])
	}
}

func TestSaveScannedItems(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	scanID := uuid.New()
	service.scans = append(service.scans, entities.ReceiptScan{ID: scanID, Status: scanStatusProcessed})

	err := service.SaveScannedItems(ctx, domain.SaveScannedItemsRequest{
		ScanID: scanID.String(),
		Items: []domain.ScannedItemRequest{
			{Name: "Milk", Quantity: 2},
			{Name: "Eggs", Quantity: 12, ExpirationDate: "2026-04-01"},
		},
	})
	if err != nil {
		t.Fatalf("SaveScannedItems: %v", err)
	}

	items, _ := service.GetFoodItems(ctx, "")
	if len(items) != 2 {
		t.Fatalf("inventory has %d items, want 2", len(items))
	}
	// missing date defaults to a week out
	if want := fixedNow.AddDate(0, 0, 7); !items[0].ExpirationDate.Equal(want) {
		t.Errorf("defaulted expiration = %v, want %v", items[0].ExpirationDate, want)
	}

	scan, err := service.GetReceiptScan(ctx, scanID.String())
	if err != nil {
		t.Fatalf("GetReceiptScan: %v", err)
	}
	if scan.Status != scanStatusCompleted {
		t.Errorf("scan status = %s, want %s", scan.Status, scanStatusCompleted)
	}

	err = service.SaveScannedItems(ctx, domain.SaveScannedItemsRequest{ScanID: uuid.NewString()})
	if !errors.Is(err, domain.ErrReceiptScanNotFound) {
		t.Errorf("unknown scan: got %v, want ErrReceiptScanNotFound", err)
	}
}

func TestSaveScannedItemsInvalidDateAddsNothing(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	scanID := uuid.New()
	service.scans = append(service.scans, entities.ReceiptScan{ID: scanID, Status: scanStatusProcessed})

	err := service.SaveScannedItems(ctx, domain.SaveScannedItemsRequest{
		ScanID: scanID.String(),
		Items: []domain.ScannedItemRequest{
			{Name: "Milk", Quantity: 2},
			{Name: "Eggs", Quantity: 12, ExpirationDate: "garbage"},
		},
	})
	if !errors.Is(err, domain.ErrInvalidExpiration) {
		t.Fatalf("bad date: got %v, want ErrInvalidExpiration", err)
	}

	// the batch is all or nothing: the valid item must not have landed
	items, _ := service.GetFoodItems(ctx, "")
	if len(items) != 0 {
		t.Errorf("rejected batch added %d items, want 0", len(items))
	}

	scan, err := service.GetReceiptScan(ctx, scanID.String())
	if err != nil {
		t.Fatalf("GetReceiptScan: %v", err)
	}
	if scan.Status != scanStatusProcessed {
		t.Errorf("scan status = %s, want still %s", scan.Status, scanStatusProcessed)
	}
}

func TestItemsSurviveRestart(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	service := newTestServiceAt(t, dir)
	service.AddItem(ctx, entities.FoodItem{Name: "Milk", Quantity: 1, ExpirationDate: fixedNow.AddDate(0, 0, 5)})
	service.AddItem(ctx, entities.FoodItem{Name: "Eggs", Quantity: 12, ExpirationDate: fixedNow.AddDate(0, 0, 14)})
	service.Close()

	reopened := newTestServiceAt(t, dir)
	items, err := reopened.GetFoodItems(ctx, "")
	if err != nil {
		t.Fatalf("GetFoodItems after restart: %v", err)
	}
	if len(items) != 2 || items[0].Name != "Milk" || items[1].Name != "Eggs" {
		t.Errorf("restored items = %v, want Milk then Eggs", items)
	}
}
