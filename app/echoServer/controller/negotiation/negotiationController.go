package negotiation

import (
	"log/slog"
	"net/http"
	"strconv"

	"spacerental/app/echoServer/jwtx"
	"spacerental/model"
	ns "spacerental/service/negotiation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc ns.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/negotiations
// @Summary      Create negotiation
// @Description  Open an offer thread against a listing; notifies the space owner
// @Tags         negotiations
// @Accept       json
// @Produce      json
// @Param        payload  body  CreateNegotiationReq  true  "Offer payload"
// @Success      201  {object}  map[string]any
// @Failure      400,404,422  {object}  map[string]any
// @Router       /v1/negotiations [post]
func (h *Controller) Create(c echo.Context) error {
	var req CreateNegotiationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	uid, _ := jwtx.UserIDFromContext(c)

	n, err := h.Svc.Create(c.Request().Context(), uid, ns.CreateInput{
		ListingID:   req.ListingID,
		ReceiverID:  req.ReceiverID,
		Message:     req.Message,
		OfferAmount: req.OfferAmount,
	})
	if err != nil {
		switch ns.Code(err) {
		case ns.ErrNegativeAmount:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "offer amount must be >= 0"})
		case ns.ErrSelfNegotiation:
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"message": "cannot negotiate with yourself"})
		case ns.ErrListingNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "listing not found"})
		case ns.ErrReceiverNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "receiver not found"})
		default:
			h.Log.Error("negotiation create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{"data": n})
}

// GET /v1/negotiations
func (h *Controller) List(c echo.Context) error {
	uid, _ := jwtx.UserIDFromContext(c)
	role, _ := jwtx.RoleFromContext(c)

	view, err := h.Svc.ListForActor(c.Request().Context(), uid, role)
	if err != nil {
		h.Log.Error("negotiation list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, view)
}

// GET /v1/negotiations/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	uid, _ := jwtx.UserIDFromContext(c)

	n, err := h.Svc.Detail(c.Request().Context(), uid, id)
	if err != nil {
		switch ns.Code(err) {
		case ns.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "negotiation not found"})
		case ns.ErrNotParticipant:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Unauthorized"})
		default:
			h.Log.Error("negotiation detail", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"data": n})
}

// PUT /v1/negotiations/:id/offer-amount
func (h *Controller) UpdateOfferAmount(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req UpdateOfferAmountReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	uid, _ := jwtx.UserIDFromContext(c)

	if err := h.Svc.UpdateOfferAmount(c.Request().Context(), uid, id, req.OfferAmount); err != nil {
		switch ns.Code(err) {
		case ns.ErrNegativeAmount:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "offer amount must be >= 0"})
		case ns.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "negotiation not found"})
		case ns.ErrNotParticipant:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Unauthorized"})
		default:
			h.Log.Error("offer amount update", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "offer amount updated"})
}

// POST /v1/negotiations/:id/status
func (h *Controller) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req UpdateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	uid, _ := jwtx.UserIDFromContext(c)

	n, err := h.Svc.UpdateStatus(c.Request().Context(), uid, id, model.NegotiationStatus(req.Status))
	if err != nil {
		switch ns.Code(err) {
		case ns.ErrInvalidStatus:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid status"})
		case ns.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "negotiation not found"})
		case ns.ErrNotReceiver:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Unauthorized"})
		case ns.ErrInvalidTransition:
			return c.JSON(http.StatusConflict, echo.Map{"message": "negotiation already decided"})
		default:
			h.Log.Error("status update", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"data": n})
}

// GET /v1/payment
func (h *Controller) PaymentContext(c echo.Context) error {
	uid, _ := jwtx.UserIDFromContext(c)

	pc, err := h.Svc.PaymentContext(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("payment context", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, pc)
}
