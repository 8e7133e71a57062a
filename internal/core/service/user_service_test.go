package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/RaafaGarcia/smartadmin-api/internal/core/domain"
	"github.com/RaafaGarcia/smartadmin-api/internal/core/ports"
)

// recorderSpy captures activities handed to the recorder.
type recorderSpy struct {
	recorded []domain.Activity
}

func (r *recorderSpy) Record(a domain.Activity) {
	r.recorded = append(r.recorded, a)
}

func seedUsers(t *testing.T, repo *stubUserRepo, n int) {
	t.Helper()
	svc := newTestAuthService(repo)
	for i := 0; i < n; i++ {
		email := string(rune('a'+i)) + "@x.com"
		if _, err := svc.Register(context.Background(), email, "user", "User", "pass"); err != nil {
			t.Fatalf("seed user %d: %v", i, err)
		}
	}
}

func TestUserService_List_Pagination(t *testing.T) {
	repo := newStubUserRepo()
	seedUsers(t, repo, 5)
	svc := NewUserService(repo, &recorderSpy{}, zerolog.Nop())

	users, err := svc.List(context.Background(), 2, 2)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}

	// Negative skip and oversized limit are clamped.
	users, err = svc.List(context.Background(), -1, 1000)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(users) != 5 {
		t.Fatalf("expected all 5 users, got %d", len(users))
	}
}

func TestUserService_Get_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &recorderSpy{}, zerolog.Nop())

	if _, err := svc.Get(context.Background(), 9999); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Update_PartialFields(t *testing.T) {
	repo := newStubUserRepo()
	seedUsers(t, repo, 1)
	spy := &recorderSpy{}
	svc := NewUserService(repo, spy, zerolog.Nop())

	name := "Renamed User"
	active := false
	updated, err := svc.Update(context.Background(), 1, ports.UserPatch{FullName: &name, IsActive: &active})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.FullName != "Renamed User" {
		t.Fatalf("full name not updated: %s", updated.FullName)
	}
	if updated.IsActive {
		t.Fatalf("is_active not updated")
	}
	if updated.Email != "a@x.com" {
		t.Fatalf("untouched field changed: %s", updated.Email)
	}
	if len(spy.recorded) != 1 || spy.recorded[0].Action != "Updated user profile" {
		t.Fatalf("expected an activity record, got %+v", spy.recorded)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &recorderSpy{}, zerolog.Nop())

	name := "x"
	if _, err := svc.Update(context.Background(), 42, ports.UserPatch{FullName: &name}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	seedUsers(t, repo, 1)
	svc := NewUserService(repo, &recorderSpy{}, zerolog.Nop())

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), 1); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}
