package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"gardenplan/entities"
	"gardenplan/pkg/bed/repository"
)

type BedCtrl struct{ repo repository.BedRepository }

func New(repo repository.BedRepository) *BedCtrl { return &BedCtrl{repo} }

type bedReq struct {
	Name         string   `json:"name"`
	WidthCM      float64  `json:"width_cm"`
	LengthCM     float64  `json:"length_cm"`
	Segments     int      `json:"segments"`
	IsGreenhouse bool     `json:"is_greenhouse"`
	LocationX    *float64 `json:"location_x"`
	LocationY    *float64 `json:"location_y"`
}

func (h *BedCtrl) Create(c echo.Context) error {
	gid, _ := strconv.Atoi(c.Param("id"))
	var req bedReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Segments < 1 {
		req.Segments = 1
	}
	b := &entities.GardenBed{
		GardenID: uint(gid), Name: req.Name,
		WidthCM: req.WidthCM, LengthCM: req.LengthCM,
		Segments: req.Segments, IsGreenhouse: req.IsGreenhouse,
	}
	if req.LocationX != nil {
		b.LocationX = *req.LocationX
	}
	if req.LocationY != nil {
		b.LocationY = *req.LocationY
	}
	if err := h.repo.Create(b); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *BedCtrl) List(c echo.Context) error {
	gid, _ := strconv.Atoi(c.Param("id"))
	bs, err := h.repo.ListByGarden(uint(gid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, bs)
}

func (h *BedCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("bed_id"))
	b, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BedCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("bed_id"))
	b, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req bedReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name != "" {
		b.Name = req.Name
	}
	if req.WidthCM > 0 {
		b.WidthCM = req.WidthCM
	}
	if req.LengthCM > 0 {
		b.LengthCM = req.LengthCM
	}
	if req.Segments >= 1 {
		b.Segments = req.Segments
	}
	b.IsGreenhouse = req.IsGreenhouse
	if err := h.repo.Update(b); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, b)
}

// PatchLayout moves a bed on the layout canvas. Scheduling is unaffected.
func (h *BedCtrl) PatchLayout(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("bed_id"))
	b, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req struct {
		LocationX *float64 `json:"location_x"`
		LocationY *float64 `json:"location_y"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.LocationX != nil {
		b.LocationX = *req.LocationX
	}
	if req.LocationY != nil {
		b.LocationY = *req.LocationY
	}
	if err := h.repo.Update(b); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BedCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("bed_id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
