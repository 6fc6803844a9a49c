package user

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

const collectionUsers = "users"

type (
	UserRepository interface {
		LoadUsers(ctx context.Context) ([]entities.User, error)
		SaveUsers(ctx context.Context, users []entities.User) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) LoadUsers(ctx context.Context) ([]entities.User, error) {
	var state entities.CollectionState
	if err := r.db.WithContext(ctx).Where("name = ?", collectionUsers).First(&state).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCollectionNotFound
		}
		return nil, err
	}

	var users []entities.User
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) SaveUsers(ctx context.Context, users []entities.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&entities.User{}).Error; err != nil {
			return err
		}
		if len(users) > 0 {
			if err := tx.Create(&users).Error; err != nil {
				return err
			}
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&entities.CollectionState{Name: collectionUsers, InitializedAt: time.Now()}).Error
	})
}

type userFileRepository struct {
	users *storage.FileStore[entities.User]
}

func NewUserFileRepository(dir string) UserRepository {
	return &userFileRepository{
		users: storage.NewFileStore[entities.User](dir, "users.json"),
	}
}

func (r *userFileRepository) LoadUsers(ctx context.Context) ([]entities.User, error) {
	return r.users.Load()
}

func (r *userFileRepository) SaveUsers(ctx context.Context, users []entities.User) error {
	return r.users.Save(users)
}
