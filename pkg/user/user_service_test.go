package user

import (
	"context"
	"errors"
	"testing"

	"fridgemate/domain"
	"fridgemate/pkg/jwt"

	"github.com/google/uuid"
)

func newTestService(t *testing.T) UserService {
	t.Helper()
	return newTestServiceAt(t, t.TempDir())
}

func newTestServiceAt(t *testing.T, dir string) UserService {
	t.Helper()
	service := NewUserService(NewUserFileRepository(dir), jwt.NewJWTService())
	t.Cleanup(service.Close)
	return service
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	registered, err := service.Register(ctx, domain.RegisterRequest{
		Name: "Alex", Email: "alex@example.com", Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if registered.Role != domain.RoleUser {
		t.Errorf("role = %q, want %q", registered.Role, domain.RoleUser)
	}

	_, err = service.Register(ctx, domain.RegisterRequest{
		Name: "Other", Email: "alex@example.com", Password: "different",
	})
	if !errors.Is(err, domain.ErrEmailAlreadyExists) {
		t.Errorf("duplicate email: got %v, want ErrEmailAlreadyExists", err)
	}

	login, err := service.Login(ctx, domain.LoginRequest{Email: "alex@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.Token == "" {
		t.Errorf("login returned an empty token")
	}

	_, err = service.Login(ctx, domain.LoginRequest{Email: "alex@example.com", Password: "wrong"})
	if !errors.Is(err, domain.ErrCredentialsInvalid) {
		t.Errorf("wrong password: got %v, want ErrCredentialsInvalid", err)
	}
	_, err = service.Login(ctx, domain.LoginRequest{Email: "nobody@example.com", Password: "hunter22"})
	if !errors.Is(err, domain.ErrCredentialsInvalid) {
		t.Errorf("unknown email: got %v, want ErrCredentialsInvalid", err)
	}
}

func TestLoginSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	service := newTestServiceAt(t, dir)
	if _, err := service.Register(ctx, domain.RegisterRequest{
		Name: "Alex", Email: "alex@example.com", Password: "hunter22",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	service.Close()

	reopened := newTestServiceAt(t, dir)
	if _, err := reopened.Login(ctx, domain.LoginRequest{Email: "alex@example.com", Password: "hunter22"}); err != nil {
		t.Errorf("login after restart: %v", err)
	}
}

func TestMe(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	registered, err := service.Register(ctx, domain.RegisterRequest{
		Name: "Alex", Email: "alex@example.com", Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	me, err := service.Me(ctx, registered.ID)
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if me.Email != "alex@example.com" {
		t.Errorf("email = %q, want alex@example.com", me.Email)
	}

	if _, err := service.Me(ctx, "oops"); !errors.Is(err, domain.ErrParseUUID) {
		t.Errorf("malformed id: got %v, want ErrParseUUID", err)
	}
	if _, err := service.Me(ctx, uuid.NewString()); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("unknown id: got %v, want ErrUserNotFound", err)
	}
}
