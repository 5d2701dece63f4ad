package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"gardenplan/pkg/planner"
	"gardenplan/pkg/planting/repository"
	"gardenplan/pkg/planting/service"
	"gardenplan/pkg/planting/serviceImp"
)

type PlantingCtrl struct {
	svc  service.PlantingService
	repo repository.PlantingRepository
}

func New(svc service.PlantingService, repo repository.PlantingRepository) *PlantingCtrl {
	return &PlantingCtrl{svc: svc, repo: repo}
}

func (h *PlantingCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	gid, _ := strconv.Atoi(c.Param("id"))
	var req service.PlacementRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	req.GardenID = uint(gid)
	if req.AnchorDate == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "anchor_date is required"})
	}
	if req.Anchor == "" {
		req.Anchor = planner.AnchorGround
	}
	res, err := h.svc.Place(uid, req)
	if err != nil {
		if errors.Is(err, serviceImp.ErrSegmentOutOfBounds) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *PlantingCtrl) List(c echo.Context) error {
	gid, _ := strconv.Atoi(c.Param("id"))
	ps, err := h.repo.ListByGarden(uint(gid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ps)
}

func (h *PlantingCtrl) Get(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("planting_id"))
	p, err := h.repo.FindByID(uint(pid))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, p)
}

// RecordActual stores what really happened at one milestone and replans
// around it. Conflicts are reported, never block the write.
func (h *PlantingCtrl) RecordActual(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("planting_id"))
	var req struct {
		Milestone planner.Anchor `json:"milestone"`
		Date      string         `json:"date"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Date == "" || req.Milestone == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "milestone and date are required"})
	}
	res, err := h.svc.RecordActual(uint(pid), req.Milestone, req.Date)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}

func (h *PlantingCtrl) Move(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("planting_id"))
	var req struct {
		BedID        uint `json:"bed_id"`
		StartSegment int  `json:"start_segment"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	res, err := h.svc.Move(uint(pid), req.BedID, req.StartSegment)
	if err != nil {
		if errors.Is(err, serviceImp.ErrSegmentOutOfBounds) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}

// Slots lists every start segment where the planting would fit in the
// given bed (ascending); the placement UI renders these as drop targets.
func (h *PlantingCtrl) Slots(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("planting_id"))
	bid, _ := strconv.Atoi(c.QueryParam("bed_id"))
	slots, err := h.svc.Slots(uint(pid), uint(bid))
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"slots": slots})
}

func (h *PlantingCtrl) Conflicts(c echo.Context) error {
	gid, _ := strconv.Atoi(c.Param("id"))
	m, count, err := h.svc.Conflicts(uint(gid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"conflicts": m, "unique_count": count})
}

func (h *PlantingCtrl) FindSlot(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("planting_id"))
	var req struct {
		From string `json:"from"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.From == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "from date is required"})
	}
	slot, err := h.svc.EarliestFit(uint(pid), req.From)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	if slot == nil {
		return c.JSON(http.StatusOK, map[string]any{"found": false})
	}
	return c.JSON(http.StatusOK, map[string]any{"found": true, "slot": slot})
}

func (h *PlantingCtrl) Delete(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("planting_id"))
	if err := h.svc.Delete(uint(pid)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
