package template

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

const collectionTemplates = "templates"

type (
	// TemplateRepository is the persistence port for the template
	// collection: whole-collection load and save only. Load reports
	// domain.ErrCollectionNotFound only when the collection has never
	// been written, which is what gates the one-time default seed.
	TemplateRepository interface {
		LoadTemplates(ctx context.Context) ([]entities.Template, error)
		SaveTemplates(ctx context.Context, templates []entities.Template) error
	}

	templateRepository struct {
		db *gorm.DB
	}
)

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) LoadTemplates(ctx context.Context) ([]entities.Template, error) {
	var state entities.CollectionState
	if err := r.db.WithContext(ctx).Where("name = ?", collectionTemplates).First(&state).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCollectionNotFound
		}
		return nil, err
	}

	var templates []entities.Template
	if err := r.db.WithContext(ctx).Order("position asc").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *templateRepository) SaveTemplates(ctx context.Context, templates []entities.Template) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&entities.Template{}).Error; err != nil {
			return err
		}
		for i := range templates {
			templates[i].Position = i
		}
		if len(templates) > 0 {
			if err := tx.Create(&templates).Error; err != nil {
				return err
			}
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&entities.CollectionState{Name: collectionTemplates, InitializedAt: time.Now()}).Error
	})
}

type templateFileRepository struct {
	templates *storage.FileStore[entities.Template]
}

func NewTemplateFileRepository(dir string) TemplateRepository {
	return &templateFileRepository{
		templates: storage.NewFileStore[entities.Template](dir, "templates.json"),
	}
}

func (r *templateFileRepository) LoadTemplates(ctx context.Context) ([]entities.Template, error) {
	return r.templates.Load()
}

func (r *templateFileRepository) SaveTemplates(ctx context.Context, templates []entities.Template) error {
	return r.templates.Save(templates)
}
