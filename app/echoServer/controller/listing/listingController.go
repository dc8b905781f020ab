package listing

import (
	"log/slog"
	"net/http"
	"strconv"

	listingsvc "spacerental/service/listing"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc listingsvc.Service
	Log *slog.Logger
}

// GET /v1/listings
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("listing list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/listings/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	l, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		if err == listingsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "listing not found"})
		}
		h.Log.Error("listing detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": l})
}
