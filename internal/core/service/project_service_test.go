package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/RaafaGarcia/smartadmin-api/internal/core/domain"
	"github.com/RaafaGarcia/smartadmin-api/internal/core/ports"
)

type stubProjectRepo struct {
	projects map[int64]*domain.Project
	nextID   int64
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[int64]*domain.Project), nextID: 1}
}

func cloneProject(p *domain.Project) *domain.Project {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	copy := cloneProject(p)
	copy.ID = r.nextID
	copy.CreatedAt = time.Now().UTC()
	r.nextID++
	r.projects[copy.ID] = cloneProject(copy)
	return copy, nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id int64) (*domain.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return cloneProject(p), nil
}

func (r *stubProjectRepo) List(_ context.Context, skip, limit int) ([]*domain.Project, error) {
	out := make([]*domain.Project, 0, len(r.projects))
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.projects[id]; ok {
			out = append(out, cloneProject(p))
		}
	}
	if skip >= len(out) {
		return nil, nil
	}
	out = out[skip:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubProjectRepo) Update(_ context.Context, id int64, patch ports.ProjectPatch) (*domain.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Priority != nil {
		p.Priority = *patch.Priority
	}
	now := time.Now().UTC()
	p.UpdatedAt = &now
	return cloneProject(p), nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

func (r *stubProjectRepo) CountByStatus(_ context.Context, status domain.ProjectStatus) (int64, error) {
	var n int64
	for _, p := range r.projects {
		if p.Status == status {
			n++
		}
	}
	return n, nil
}

func newTestProjectService(repo *stubProjectRepo, users *stubUserRepo, spy *recorderSpy) *ProjectService {
	return NewProjectService(repo, users, spy, zerolog.Nop())
}

func TestProjectService_Create_Defaults(t *testing.T) {
	users := newStubUserRepo()
	seedUsers(t, users, 1)
	spy := &recorderSpy{}
	svc := newTestProjectService(newStubProjectRepo(), users, spy)

	project, err := svc.Create(context.Background(), ports.CreateProjectInput{
		Name:    "ERP Module",
		OwnerID: 1,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if project.Status != domain.StatusActive {
		t.Fatalf("expected default status active, got %s", project.Status)
	}
	if project.Priority != domain.PriorityMedium {
		t.Fatalf("expected default priority medium, got %s", project.Priority)
	}
	if len(spy.recorded) != 1 || spy.recorded[0].Action != "Created new project" || spy.recorded[0].Project != "ERP Module" {
		t.Fatalf("expected creation activity, got %+v", spy.recorded)
	}
}

func TestProjectService_Update_CompletedActivity(t *testing.T) {
	users := newStubUserRepo()
	spy := &recorderSpy{}
	repo := newStubProjectRepo()
	svc := newTestProjectService(repo, users, spy)

	created, err := svc.Create(context.Background(), ports.CreateProjectInput{Name: "Dashboard UI", OwnerID: 1})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	done := domain.StatusCompleted
	updated, err := svc.Update(context.Background(), created.ID, ports.ProjectPatch{Status: &done})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Status != domain.StatusCompleted {
		t.Fatalf("status not updated: %s", updated.Status)
	}
	if updated.UpdatedAt == nil {
		t.Fatalf("expected updated_at to be set")
	}
	last := spy.recorded[len(spy.recorded)-1]
	if last.Action != "Completed task" {
		t.Fatalf("expected completion activity, got %+v", last)
	}
}

func TestProjectService_Get_NotFound(t *testing.T) {
	svc := newTestProjectService(newStubProjectRepo(), newStubUserRepo(), &recorderSpy{})

	if _, err := svc.Get(context.Background(), 404); err != domain.ErrProjectNotFound {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectService_Delete_NotFound(t *testing.T) {
	svc := newTestProjectService(newStubProjectRepo(), newStubUserRepo(), &recorderSpy{})

	if err := svc.Delete(context.Background(), 404); err != domain.ErrProjectNotFound {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectService_Create_RejectsUnknownStatus(t *testing.T) {
	users := newStubUserRepo()
	seedUsers(t, users, 1)
	svc := newTestProjectService(newStubProjectRepo(), users, &recorderSpy{})

	_, err := svc.Create(context.Background(), ports.CreateProjectInput{
		Name:    "ERP Module",
		OwnerID: 1,
		Status:  "archived",
	})
	if !errors.Is(err, domain.ErrInvalidProjectData) {
		t.Fatalf("expected ErrInvalidProjectData, got %v", err)
	}
}

func TestProjectService_Create_RejectsUnknownPriority(t *testing.T) {
	users := newStubUserRepo()
	seedUsers(t, users, 1)
	svc := newTestProjectService(newStubProjectRepo(), users, &recorderSpy{})

	_, err := svc.Create(context.Background(), ports.CreateProjectInput{
		Name:     "ERP Module",
		OwnerID:  1,
		Priority: "urgent",
	})
	if !errors.Is(err, domain.ErrInvalidProjectData) {
		t.Fatalf("expected ErrInvalidProjectData, got %v", err)
	}
}

func TestProjectService_Update_RejectsUnknownStatus(t *testing.T) {
	users := newStubUserRepo()
	seedUsers(t, users, 1)
	repo := newStubProjectRepo()
	svc := newTestProjectService(repo, users, &recorderSpy{})

	project, err := svc.Create(context.Background(), ports.CreateProjectInput{Name: "ERP Module", OwnerID: 1})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	bad := domain.ProjectStatus("archived")
	if _, err := svc.Update(context.Background(), project.ID, ports.ProjectPatch{Status: &bad}); !errors.Is(err, domain.ErrInvalidProjectData) {
		t.Fatalf("expected ErrInvalidProjectData, got %v", err)
	}

	kept, err := svc.Get(context.Background(), project.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if kept.Status != domain.StatusActive {
		t.Fatalf("rejected update must not change the stored status, got %s", kept.Status)
	}
}
