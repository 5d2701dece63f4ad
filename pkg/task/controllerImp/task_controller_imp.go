package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	repo "gardenplan/pkg/task/repository"
)

type TaskCtrl struct{ repo repo.TaskRepository }

func New(repo repo.TaskRepository) *TaskCtrl { return &TaskCtrl{repo} }

func (h *TaskCtrl) List(c echo.Context) error {
	gid, _ := strconv.Atoi(c.Param("id"))
	from := c.QueryParam("from")
	to := c.QueryParam("to")
	out, err := h.repo.ListByGarden(uint(gid), from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TaskCtrl) Patch(c echo.Context) error {
	tid, _ := strconv.Atoi(c.Param("task_id"))
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	switch body.Status {
	case "":
		body.Status = "done"
	case "pending", "done", "skipped":
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad status"})
	}
	if err := h.repo.PatchStatus(uint(tid), body.Status); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
