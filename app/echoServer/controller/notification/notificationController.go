package notification

import (
	"log/slog"
	"net/http"
	"strconv"

	"spacerental/app/echoServer/jwtx"
	nsvc "spacerental/service/notification"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc nsvc.Service
	Log *slog.Logger
}

// GET /v1/notifications
func (h *Controller) Inbox(c echo.Context) error {
	uid, _ := jwtx.UserIDFromContext(c)
	rows, err := h.Svc.Inbox(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("notification inbox", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// POST /v1/notifications/:id/read
func (h *Controller) MarkRead(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	uid, _ := jwtx.UserIDFromContext(c)

	if err := h.Svc.MarkRead(c.Request().Context(), uid, id); err != nil {
		if err == nsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "notification not found"})
		}
		h.Log.Error("notification mark read", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "marked as read"})
}
