package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"gardenplan/entities"
	"gardenplan/pkg/gardentask/repository"
)

type GardenTaskCtrl struct{ repo repository.GardenTaskRepository }

func New(repo repository.GardenTaskRepository) *GardenTaskCtrl { return &GardenTaskCtrl{repo} }

func (h *GardenTaskCtrl) Create(c echo.Context) error {
	gid, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		Title   string  `json:"title"`
		DueDate *string `json:"due_date"`
		Notes   string  `json:"notes"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "title is required"})
	}
	t := &entities.GardenTask{GardenID: uint(gid), Title: req.Title, DueDate: req.DueDate, Notes: req.Notes, Status: "pending"}
	if err := h.repo.Create(t); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *GardenTaskCtrl) List(c echo.Context) error {
	gid, _ := strconv.Atoi(c.Param("id"))
	ts, err := h.repo.ListByGarden(uint(gid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ts)
}

func (h *GardenTaskCtrl) Patch(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("garden_task_id"))
	t, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req struct {
		Title   *string `json:"title"`
		DueDate *string `json:"due_date"`
		Status  *string `json:"status"`
		Notes   *string `json:"notes"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.DueDate != nil {
		t.DueDate = req.DueDate
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.Notes != nil {
		t.Notes = *req.Notes
	}
	if err := h.repo.Update(t); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, t)
}

func (h *GardenTaskCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("garden_task_id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
