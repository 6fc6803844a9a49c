package template

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fridgemate/domain"
	"fridgemate/entities"

	"github.com/google/uuid"
)

func newTestService(t *testing.T, dir string) TemplateService {
	t.Helper()
	service := NewTemplateService(NewTemplateFileRepository(dir))
	t.Cleanup(service.Close)
	return service
}

func TestSeedsDefaultsOnFirstRun(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t, t.TempDir())

	templates, err := service.GetTemplates(ctx)
	if err != nil {
		t.Fatalf("GetTemplates: %v", err)
	}
	if len(templates) != 5 {
		t.Fatalf("first run seeded %d templates, want 5", len(templates))
	}

	names := make(map[string]bool)
	for _, tmpl := range templates {
		names[tmpl.Name] = true
		if len(tmpl.Items) == 0 {
			t.Errorf("seed template %q has no items", tmpl.Name)
		}
	}
	for _, want := range []string{"Spaghetti Bolognese", "Chicken Gratin", "Hamburger Steak"} {
		if !names[want] {
			t.Errorf("seed set is missing %q", want)
		}
	}
}

func TestSeedIsNotReappliedAfterDeleteAll(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	service := newTestService(t, dir)
	templates, _ := service.GetTemplates(ctx)
	for _, tmpl := range templates {
		if err := service.DeleteTemplate(ctx, tmpl.ID); err != nil {
			t.Fatalf("DeleteTemplate: %v", err)
		}
	}
	service.Close()

	reopened := newTestService(t, dir)
	templates, _ = reopened.GetTemplates(ctx)
	if len(templates) != 0 {
		t.Fatalf("emptied collection re-seeded to %d templates, want 0", len(templates))
	}
}

func TestSeedsDefaultsOnUnreadableData(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "templates.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	service := newTestService(t, dir)
	templates, err := service.GetTemplates(ctx)
	if err != nil {
		t.Fatalf("GetTemplates: %v", err)
	}
	if len(templates) != 5 {
		t.Fatalf("corrupt collection seeded %d templates, want the 5 defaults", len(templates))
	}
}

func TestAddAndGetTemplate(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t, t.TempDir())

	added, err := service.AddTemplate(ctx, domain.AddTemplateRequest{
		Name: "Taco night",
		Items: []domain.TemplateItemRequest{
			{Name: "Tortillas", Quantity: 8, StorageType: "pantry", Category: "other"},
			{Name: "Ground Beef", Quantity: 1, ExpirationDate: "2026-04-01", Category: "meat"},
		},
	})
	if err != nil {
		t.Fatalf("AddTemplate: %v", err)
	}

	got, err := service.GetTemplate(ctx, added.ID)
	if err != nil {
		t.Fatalf("GetTemplate: %v", err)
	}
	if got.Name != "Taco night" || len(got.Items) != 2 {
		t.Fatalf("got %+v, want Taco night with 2 items", got)
	}
	if got.Items[1].ExpirationDate == nil || got.Items[1].ExpirationDate.Format("2006-01-02") != "2026-04-01" {
		t.Errorf("item expiration = %v, want 2026-04-01", got.Items[1].ExpirationDate)
	}

	_, err = service.AddTemplate(ctx, domain.AddTemplateRequest{
		Name:  "Broken",
		Items: []domain.TemplateItemRequest{{Name: "Milk", ExpirationDate: "not-a-date"}},
	})
	if !errors.Is(err, domain.ErrInvalidExpiration) {
		t.Errorf("bad date: got %v, want ErrInvalidExpiration", err)
	}
}

func TestRenameAndReplaceItems(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t, t.TempDir())

	added, err := service.AddTemplate(ctx, domain.AddTemplateRequest{
		Name:  "Old name",
		Items: []domain.TemplateItemRequest{{Name: "Milk", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("AddTemplate: %v", err)
	}

	if err := service.RenameTemplate(ctx, added.ID, "New name"); err != nil {
		t.Fatalf("RenameTemplate: %v", err)
	}
	if err := service.ReplaceItems(ctx, added.ID, domain.ReplaceTemplateItemsRequest{
		Items: []domain.TemplateItemRequest{
			{Name: "Eggs", Quantity: 6},
			{Name: "Butter", Quantity: 1},
		},
	}); err != nil {
		t.Fatalf("ReplaceItems: %v", err)
	}

	got, err := service.GetTemplate(ctx, added.ID)
	if err != nil {
		t.Fatalf("GetTemplate: %v", err)
	}
	if got.Name != "New name" {
		t.Errorf("name = %q, want New name", got.Name)
	}
	if len(got.Items) != 2 || got.Items[0].Name != "Eggs" {
		t.Errorf("items = %v, want Eggs and Butter", got.Items)
	}

	// unknown ids are silent no-ops
	if err := service.RenameTemplate(ctx, uuid.NewString(), "x"); err != nil {
		t.Errorf("rename unknown: %v", err)
	}
	if err := service.ReplaceItems(ctx, uuid.NewString(), domain.ReplaceTemplateItemsRequest{
		Items: []domain.TemplateItemRequest{{Name: "Milk"}},
	}); err != nil {
		t.Errorf("replace unknown: %v", err)
	}
}

func TestGetTemplateByIDNotFound(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t, t.TempDir())

	if _, err := service.GetTemplateByID(ctx, "oops"); !errors.Is(err, domain.ErrParseUUID) {
		t.Errorf("malformed id: got %v, want ErrParseUUID", err)
	}
	if _, err := service.GetTemplateByID(ctx, uuid.NewString()); !errors.Is(err, domain.ErrTemplateNotFound) {
		t.Errorf("unknown id: got %v, want ErrTemplateNotFound", err)
	}
}

func TestAddFromItemsNormalizes(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t, t.TempDir())

	saved := service.AddFromItems(ctx, "Captured", []entities.TemplateItem{
		{ID: uuid.New(), Name: "Milk", Quantity: 0},
	})
	if saved.Items[0].Quantity != 1 {
		t.Errorf("quantity = %d, want the 1 floor", saved.Items[0].Quantity)
	}
	if saved.Items[0].StorageType != entities.StorageFridge {
		t.Errorf("storage = %s, want fridge default", saved.Items[0].StorageType)
	}
}
