package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RaafaGarcia/smartadmin-api/internal/api/metrics"
	"github.com/RaafaGarcia/smartadmin-api/internal/core/domain"
	"github.com/RaafaGarcia/smartadmin-api/internal/core/ports"
)

// ProjectHandler handles project CRUD routes.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// List handles GET /api/projects.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query     int  false  "Rows to skip"
// @Param        limit  query     int  false  "Max rows (capped at 100)"
// @Success      200    {array}   domain.Project
// @Failure      401    {object}  errorResponse
// @Router       /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	skip, limit := queryPage(c)
	projects, err := h.service.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Create handles POST /api/projects.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      200   {object}  domain.Project
// @Failure      422   {object}  errorResponse
// @Router       /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	project, err := h.service.Create(c.Request().Context(), ports.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		return err
	}

	metrics.ProjectsCreatedTotal.WithLabelValues(string(project.Priority)).Inc()
	return c.JSON(http.StatusOK, project)
}

// Get handles GET /api/projects/:id.
//
// @Summary      Get a project by id
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Project id"
// @Success      200  {object}  domain.Project
// @Failure      404  {object}  errorResponse
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	project, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Update handles PUT /api/projects/:id — partial field replacement.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Project id"
// @Param        body  body      updateProjectRequest  true  "Fields to update"
// @Success      200   {object}  domain.Project
// @Failure      404   {object}  errorResponse
// @Router       /projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	patch := ports.ProjectPatch{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.ProjectStatus(*req.Status)
		patch.Status = &status
	}
	if req.Priority != nil {
		priority := domain.ProjectPriority(*req.Priority)
		patch.Priority = &priority
	}

	project, err := h.service.Update(c.Request().Context(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Delete handles DELETE /api/projects/:id.
//
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Project id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Project deleted successfully"})
}
