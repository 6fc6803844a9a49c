package template

import (
	"context"
	"errors"
	"log"
	"slices"
	"sync"
	"time"

	"fridgemate/domain"
	"fridgemate/entities"
	"fridgemate/internal/utils/storage"

	"github.com/google/uuid"
)

type (
	TemplateService interface {
		AddTemplate(ctx context.Context, req domain.AddTemplateRequest) (domain.TemplateResponse, error)
		GetTemplates(ctx context.Context) ([]domain.TemplateResponse, error)
		GetTemplate(ctx context.Context, id string) (domain.TemplateResponse, error)
		DeleteTemplate(ctx context.Context, id string) error
		RenameTemplate(ctx context.Context, id string, name string) error
		ReplaceItems(ctx context.Context, id string, req domain.ReplaceTemplateItemsRequest) error

		// GetTemplateByID returns the template entity, for the
		// reconciliation engine and the detail endpoint.
		GetTemplateByID(ctx context.Context, id string) (entities.Template, error)
		// AddFromItems appends a ready-made template (list saved as
		// template).
		AddFromItems(ctx context.Context, name string, items []entities.TemplateItem) entities.Template

		Close()
	}

	templateService struct {
		templateRepository TemplateRepository

		mu        sync.Mutex
		templates []entities.Template

		saver *storage.Saver[entities.Template]
	}
)

func NewTemplateService(templateRepository TemplateRepository) TemplateService {
	s := &templateService{templateRepository: templateRepository}

	templates, err := templateRepository.LoadTemplates(context.Background())
	switch {
	case err == nil:
		for i := range templates {
			templates[i].Normalize()
		}
		s.templates = templates
	case errors.Is(err, domain.ErrCollectionNotFound), errors.Is(err, domain.ErrCollectionDecode):
		// Only a true first-ever load (or unreadable data) seeds the
		// defaults; an emptied collection stays empty. The seed is
		// persisted synchronously so a crash right after startup does
		// not produce a second seeding.
		s.templates = defaultTemplates()
		if saveErr := templateRepository.SaveTemplates(context.Background(), slices.Clone(s.templates)); saveErr != nil {
			log.Printf("[template] seed save error: %v", saveErr)
		}
	default:
		log.Printf("[template] load error, starting empty: %v", err)
	}

	s.saver = storage.NewSaver("templates", func(snapshot []entities.Template) error {
		return templateRepository.SaveTemplates(context.Background(), snapshot)
	})
	return s
}

func (s *templateService) Close() {
	s.saver.Close()
}

func (s *templateService) persistLocked() {
	snapshot := make([]entities.Template, len(s.templates))
	for i, t := range s.templates {
		t.Items = slices.Clone(t.Items)
		snapshot[i] = t
	}
	s.saver.Enqueue(snapshot)
}

func (s *templateService) AddTemplate(ctx context.Context, req domain.AddTemplateRequest) (domain.TemplateResponse, error) {
	items := make([]entities.TemplateItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		item, err := itemFromRequest(itemReq)
		if err != nil {
			return domain.TemplateResponse{}, err
		}
		items = append(items, item)
	}

	template := entities.Template{
		ID:    uuid.New(),
		Name:  req.Name,
		Items: items,
	}

	s.mu.Lock()
	s.templates = append(s.templates, template)
	s.persistLocked()
	s.mu.Unlock()

	return toResponse(template), nil
}

func (s *templateService) AddFromItems(ctx context.Context, name string, items []entities.TemplateItem) entities.Template {
	for i := range items {
		items[i].Normalize()
	}
	template := entities.Template{
		ID:    uuid.New(),
		Name:  name,
		Items: items,
	}

	s.mu.Lock()
	s.templates = append(s.templates, template)
	s.persistLocked()
	s.mu.Unlock()

	return template
}

func (s *templateService) GetTemplates(ctx context.Context) ([]domain.TemplateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	response := make([]domain.TemplateResponse, 0, len(s.templates))
	for _, template := range s.templates {
		response = append(response, toResponse(template))
	}
	return response, nil
}

func (s *templateService) GetTemplate(ctx context.Context, id string) (domain.TemplateResponse, error) {
	template, err := s.GetTemplateByID(ctx, id)
	if err != nil {
		return domain.TemplateResponse{}, err
	}
	return toResponse(template), nil
}

func (s *templateService) GetTemplateByID(ctx context.Context, id string) (entities.Template, error) {
	templateID, err := uuid.Parse(id)
	if err != nil {
		return entities.Template{}, domain.ErrParseUUID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, template := range s.templates {
		if template.ID == templateID {
			template.Items = slices.Clone(template.Items)
			return template, nil
		}
	}
	return entities.Template{}, domain.ErrTemplateNotFound
}

func (s *templateService) DeleteTemplate(ctx context.Context, id string) error {
	templateID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.templates[:0]
	for _, template := range s.templates {
		if template.ID != templateID {
			kept = append(kept, template)
		}
	}
	s.templates = kept
	s.persistLocked()
	return nil
}

func (s *templateService) RenameTemplate(ctx context.Context, id string, name string) error {
	templateID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.templates {
		if s.templates[i].ID == templateID {
			s.templates[i].Name = name
			s.persistLocked()
			return nil
		}
	}
	return nil
}

func (s *templateService) ReplaceItems(ctx context.Context, id string, req domain.ReplaceTemplateItemsRequest) error {
	templateID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	items := make([]entities.TemplateItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		item, err := itemFromRequest(itemReq)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.templates {
		if s.templates[i].ID == templateID {
			s.templates[i].Items = items
			s.persistLocked()
			return nil
		}
	}
	return nil
}

func itemFromRequest(req domain.TemplateItemRequest) (entities.TemplateItem, error) {
	item := entities.TemplateItem{
		ID:               uuid.New(),
		Name:             req.Name,
		Quantity:         req.Quantity,
		ExpirationPeriod: req.ExpirationPeriod,
		StorageType:      entities.StorageType(req.StorageType),
		Category:         entities.FoodCategory(req.Category),
	}
	if req.ExpirationDate != "" {
		expirationDate, err := time.Parse("2006-01-02", req.ExpirationDate)
		if err != nil {
			return entities.TemplateItem{}, domain.ErrInvalidExpiration
		}
		item.ExpirationDate = &expirationDate
	}
	item.Normalize()
	return item, nil
}

func toResponse(template entities.Template) domain.TemplateResponse {
	items := make([]domain.TemplateItemResponse, 0, len(template.Items))
	for _, item := range template.Items {
		items = append(items, domain.TemplateItemResponse{
			ID:               item.ID.String(),
			Name:             item.Name,
			Quantity:         item.Quantity,
			ExpirationDate:   item.ExpirationDate,
			ExpirationPeriod: item.ExpirationPeriod,
			StorageType:      string(item.StorageType),
			Category:         string(item.Category),
		})
	}
	return domain.TemplateResponse{
		ID:    template.ID.String(),
		Name:  template.Name,
		Items: items,
	}
}
