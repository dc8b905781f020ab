package agreement

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"spacerental/app/echoServer/jwtx"
	"spacerental/model"
	as "spacerental/service/agreement"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc as.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/negotiations/:id/agreement
// @Summary      Finalize rental agreement
// @Description  Convert an approved negotiation into a binding agreement
// @Tags         agreements
// @Accept       json
// @Produce      json
// @Param        payload  body  FinalizeAgreementReq  true  "Agreement payload"
// @Success      201  {object}  map[string]any
// @Failure      400,404,422  {object}  map[string]any
// @Router       /v1/negotiations/{id}/agreement [post]
func (h *Controller) Finalize(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req FinalizeAgreementReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid start date"})
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid end date"})
	}

	a, err := h.Svc.Finalize(c.Request().Context(), as.FinalizeInput{
		NegotiationID: id,
		OwnerID:       req.OwnerID,
		RenterID:      req.RenterID,
		ListingID:     req.ListingID,
		RentalTerm:    model.RentalTerm(req.RentalTerm),
		OfferAmount:   req.OfferAmount,
		DateStart:     start,
		DateEnd:       end,
	})
	if err != nil {
		switch as.Code(err) {
		case as.ErrBadTerm:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "rental term must be weekly, monthly or yearly"})
		case as.ErrBadDates:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "end date must not be before start date"})
		case as.ErrNegativeAmount:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "offer amount must be >= 0"})
		case as.ErrSameParty:
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"message": "owner and renter must differ"})
		case as.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "negotiation not found"})
		case as.ErrListingNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "listing not found"})
		case as.ErrUserNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "owner or renter not found"})
		default:
			h.Log.Error("agreement finalize", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"data": a})
}

// GET /v1/agreements
func (h *Controller) List(c echo.Context) error {
	uid, _ := jwtx.UserIDFromContext(c)
	rows, err := h.Svc.ListForActor(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("agreement list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
