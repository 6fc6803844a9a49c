package user

import (
	"context"
	"errors"
	"log"
	"slices"
	"sync"

	"fridgemate/domain"
	"fridgemate/entities"
	"fridgemate/internal/utils/storage"
	"fridgemate/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)

		Close()
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService

		mu    sync.Mutex
		users []entities.User

		saver *storage.Saver[entities.User]
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	s := &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}

	users, err := userRepository.LoadUsers(context.Background())
	if err == nil {
		s.users = users
	} else if !errors.Is(err, domain.ErrCollectionNotFound) {
		log.Printf("[user] load error, starting empty: %v", err)
	}

	s.saver = storage.NewSaver("users", func(snapshot []entities.User) error {
		return userRepository.SaveUsers(context.Background(), snapshot)
	})
	return s
}

func (s *userService) Close() {
	s.saver.Close()
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == req.Email {
			return domain.UserResponse{}, domain.ErrEmailAlreadyExists
		}
	}

	newUser := entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     domain.RoleUser,
	}
	s.users = append(s.users, newUser)
	s.saver.Enqueue(slices.Clone(s.users))

	return toResponse(newUser), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email != req.Email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(existing.Password), []byte(req.Password)); err != nil {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		token := s.jwtService.GenerateTokenUser(existing.ID.String(), existing.Role)
		return domain.LoginResponse{Token: token, Role: existing.Role}, nil
	}
	return domain.LoginResponse{}, domain.ErrCredentialsInvalid
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return domain.UserResponse{}, domain.ErrParseUUID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.ID == id {
			return toResponse(existing), nil
		}
	}
	return domain.UserResponse{}, domain.ErrUserNotFound
}

func toResponse(u entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
