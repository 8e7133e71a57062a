package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/RaafaGarcia/smartadmin-api/internal/core/domain"
	"github.com/RaafaGarcia/smartadmin-api/internal/core/ports"
)

type stubProjectService struct {
	createFn func(ctx context.Context, in ports.CreateProjectInput) (*domain.Project, error)
	listFn   func(ctx context.Context, skip, limit int) ([]*domain.Project, error)
	getFn    func(ctx context.Context, id int64) (*domain.Project, error)
	updateFn func(ctx context.Context, id int64, patch ports.ProjectPatch) (*domain.Project, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubProjectService) Create(ctx context.Context, in ports.CreateProjectInput) (*domain.Project, error) {
	return s.createFn(ctx, in)
}

func (s *stubProjectService) List(ctx context.Context, skip, limit int) ([]*domain.Project, error) {
	return s.listFn(ctx, skip, limit)
}

func (s *stubProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return s.getFn(ctx, id)
}

func (s *stubProjectService) Update(ctx context.Context, id int64, patch ports.ProjectPatch) (*domain.Project, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubProjectService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func TestProjectHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubProjectService{
		createFn: func(ctx context.Context, in ports.CreateProjectInput) (*domain.Project, error) {
			if in.Name != "CRM" || in.OwnerID != 2 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Project{
				ID:       5,
				Name:     in.Name,
				Status:   domain.StatusActive,
				Priority: domain.PriorityMedium,
			}, nil
		},
	}
	handler := NewProjectHandler(stub)

	body := strings.NewReader(`{"name":"CRM","owner_id":2}`)
	req := httptest.NewRequest(http.MethodPost, "/projects", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["name"] != "CRM" || resp["status"] != "active" || resp["priority"] != "medium" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProjectHandler_Create_InvalidStatus(t *testing.T) {
	e := newTestEcho()
	stub := &stubProjectService{
		createFn: func(ctx context.Context, in ports.CreateProjectInput) (*domain.Project, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewProjectHandler(stub)

	body := strings.NewReader(`{"name":"CRM","owner_id":2,"status":"archived"}`)
	req := httptest.NewRequest(http.MethodPost, "/projects", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestProjectHandler_Create_MissingOwner(t *testing.T) {
	e := newTestEcho()
	stub := &stubProjectService{
		createFn: func(ctx context.Context, in ports.CreateProjectInput) (*domain.Project, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewProjectHandler(stub)

	body := strings.NewReader(`{"name":"CRM"}`)
	req := httptest.NewRequest(http.MethodPost, "/projects", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestProjectHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubProjectService{
		getFn: func(ctx context.Context, id int64) (*domain.Project, error) {
			return nil, domain.ErrProjectNotFound
		},
	}
	handler := NewProjectHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/projects/9999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9999")

	if err := handler.Get(c); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectHandler_Update_StatusOnly(t *testing.T) {
	e := newTestEcho()
	stub := &stubProjectService{
		updateFn: func(ctx context.Context, id int64, patch ports.ProjectPatch) (*domain.Project, error) {
			if patch.Status == nil || *patch.Status != "completed" {
				t.Fatalf("expected status patch, got %+v", patch)
			}
			if patch.Name != nil || patch.Description != nil || patch.Priority != nil {
				t.Fatalf("omitted fields must stay nil: %+v", patch)
			}
			return &domain.Project{ID: id, Status: domain.StatusCompleted}, nil
		},
	}
	handler := NewProjectHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/projects/6", strings.NewReader(`{"status":"completed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("6")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProjectHandler_Delete_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubProjectService{
		deleteFn: func(ctx context.Context, id int64) error {
			if id != 6 {
				t.Fatalf("unexpected id: %d", id)
			}
			return nil
		},
	}
	handler := NewProjectHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/projects/6", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("6")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "Project deleted successfully" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}
