package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"gardenplan/entities"
	"gardenplan/pkg/seed/repository"
	"gardenplan/pkg/seed/service"
)

type SeedCtrl struct {
	repo repository.SeedRepository
	svc  service.SeedService
}

func New(repo repository.SeedRepository, svc service.SeedService) *SeedCtrl {
	return &SeedCtrl{repo: repo, svc: svc}
}

type seedReq struct {
	Name                 string `json:"name"`
	Variety              string `json:"variety"`
	SowingType           string `json:"sowing_type"`
	PresowDurationWeeks  *int   `json:"presow_duration_weeks"`
	GrowDurationWeeks    *int   `json:"grow_duration_weeks"`
	HarvestDurationWeeks *int   `json:"harvest_duration_weeks"`
	PlantingMonths       []int  `json:"planting_months"`
	HarvestMonths        []int  `json:"harvest_months"`
	Notes                string `json:"notes"`
}

func (h *SeedCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req seedReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	if req.SowingType != "presow" {
		req.SowingType = "direct"
	}
	s := &entities.Seed{
		UserID: uid, Name: req.Name, Variety: req.Variety, SowingType: req.SowingType,
		PresowDurationWeeks: req.PresowDurationWeeks, GrowDurationWeeks: req.GrowDurationWeeks,
		HarvestDurationWeeks: req.HarvestDurationWeeks,
		PlantingMonths:       req.PlantingMonths, HarvestMonths: req.HarvestMonths,
		Notes: req.Notes,
	}
	if err := h.repo.Create(s); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *SeedCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	ss, err := h.repo.ListByUser(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ss)
}

func (h *SeedCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	s, err := h.repo.FindByID(uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SeedCtrl) Update(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	s, err := h.repo.FindByID(uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req seedReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name != "" {
		s.Name = req.Name
	}
	if req.Variety != "" {
		s.Variety = req.Variety
	}
	if req.SowingType == "presow" || req.SowingType == "direct" {
		s.SowingType = req.SowingType
	}
	if req.PresowDurationWeeks != nil {
		s.PresowDurationWeeks = req.PresowDurationWeeks
	}
	if req.GrowDurationWeeks != nil {
		s.GrowDurationWeeks = req.GrowDurationWeeks
	}
	if req.HarvestDurationWeeks != nil {
		s.HarvestDurationWeeks = req.HarvestDurationWeeks
	}
	if req.PlantingMonths != nil {
		s.PlantingMonths = req.PlantingMonths
	}
	if req.HarvestMonths != nil {
		s.HarvestMonths = req.HarvestMonths
	}
	if req.Notes != "" {
		s.Notes = req.Notes
	}
	if err := h.repo.Update(s); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SeedCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id), uid); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Import accepts a multipart "file" field with an xlsx seed inventory.
func (h *SeedCtrl) Import(c echo.Context) error {
	uid := c.Get("uid").(string)
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	defer f.Close()

	seeds, err := h.svc.ImportXLSX(uid, f)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"imported": len(seeds), "seeds": seeds})
}
