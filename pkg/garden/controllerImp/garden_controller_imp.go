package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"gardenplan/entities"
	"gardenplan/pkg/garden/repository"
)

type GardenCtrl struct{ repo repository.GardenRepository }

func New(repo repository.GardenRepository) *GardenCtrl { return &GardenCtrl{repo} }

func (h *GardenCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	g := &entities.Garden{UserID: uid, Name: req.Name}
	if err := h.repo.Create(g); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, g)
}

func (h *GardenCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	gs, err := h.repo.ListByUser(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, gs)
}

func (h *GardenCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	g, err := h.repo.FindByID(uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, g)
}

func (h *GardenCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id), uid); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
