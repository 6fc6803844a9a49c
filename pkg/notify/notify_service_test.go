package notify

import (
	"context"
	"strings"
	"testing"
	"time"

	"fridgemate/entities"
	"fridgemate/pkg/food"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestSendExpiryDigest(t *testing.T) {
	ctx := context.Background()

	foodService := food.NewFoodService(food.NewFoodFileRepository(t.TempDir()), nil)
	t.Cleanup(foodService.Close)

	// the food service filters against the wall clock, so expiration
	// dates here are relative to it
	foodService.AddItem(ctx, entities.FoodItem{
		Name: "Milk", Quantity: 2, ExpirationDate: time.Now().AddDate(0, 0, 1),
		StorageType: entities.StorageFridge, Category: entities.CategoryDairy,
	})
	foodService.AddItem(ctx, entities.FoodItem{
		Name: "Rice", Quantity: 1, ExpirationDate: time.Now().AddDate(0, 0, 180),
		StorageType: entities.StoragePantry, Category: entities.CategoryOther,
	})

	var gotTo, gotSubject, gotBody string
	service := &notifyService{
		foodService: foodService,
		sendMail: func(toEmail, subject, body string) error {
			gotTo, gotSubject, gotBody = toEmail, subject, body
			return nil
		},
		now: func() time.Time { return fixedNow },
	}

	if err := service.SendExpiryDigest(ctx, "alex@example.com"); err != nil {
		t.Fatalf("SendExpiryDigest: %v", err)
	}

	if gotTo != "alex@example.com" {
		t.Errorf("recipient = %q, want alex@example.com", gotTo)
	}
	if gotSubject == "" {
		t.Errorf("subject is empty")
	}
	if !strings.Contains(gotBody, "Milk") {
		t.Errorf("digest body %q does not mention the expiring item", gotBody)
	}
	if strings.Contains(gotBody, "Rice") {
		t.Errorf("digest body %q mentions an item far from expiring", gotBody)
	}
}

func TestBuildDigestBody(t *testing.T) {
	empty := buildDigestBody(nil, fixedNow)
	if !strings.Contains(empty, "Nothing") {
		t.Errorf("empty digest = %q, want the nothing-expiring message", empty)
	}

	body := buildDigestBody([]entities.FoodItem{
		{Name: "Milk", Quantity: 2, StorageType: entities.StorageFridge, ExpirationDate: fixedNow.AddDate(0, 0, 1)},
	}, fixedNow)
	if !strings.Contains(body, "Milk") || !strings.Contains(body, "due tomorrow") {
		t.Errorf("digest body = %q, want Milk flagged as due tomorrow", body)
	}
}
