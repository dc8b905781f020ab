package billing

import (
	"log/slog"
	"net/http"
	"strconv"

	"spacerental/app/echoServer/jwtx"
	bs "spacerental/service/billing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc bs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/negotiations/:id/billing
func (h *Controller) Register(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req RegisterBillingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	uid, _ := jwtx.UserIDFromContext(c)

	b, err := h.Svc.Register(c.Request().Context(), uid, id, req.PaymentHandle, req.Consent)
	if err != nil {
		switch bs.Code(err) {
		case bs.ErrNoConsent:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "consent is required"})
		case bs.ErrBadHandle:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payment handle"})
		case bs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "negotiation not found"})
		case bs.ErrNotParticipant:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Unauthorized"})
		case bs.ErrHandleTaken:
			return c.JSON(http.StatusConflict, echo.Map{"message": "payment handle already registered"})
		default:
			h.Log.Error("billing register", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"data": b})
}
