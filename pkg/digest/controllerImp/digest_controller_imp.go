package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"gardenplan/pkg/digest"
)

type DigestCtrl struct{ svc *digest.Svc }

func New(svc *digest.Svc) *DigestCtrl { return &DigestCtrl{svc} }

// Weekly is the scheduled-digest entry point: the cron caller posts the
// recipient address and the digest goes out for the logged-in user.
func (h *DigestCtrl) Weekly(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil || req.Email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email required"})
	}
	n, err := h.svc.SendWeekly(uid, req.Email, time.Now())
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"sent": true, "tasks": n})
}

func (h *DigestCtrl) RemindTask(c echo.Context) error {
	tid, _ := strconv.Atoi(c.Param("task_id"))
	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil || req.Email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email required"})
	}
	if err := h.svc.SendTaskReminder(uint(tid), req.Email); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "sent"})
}
