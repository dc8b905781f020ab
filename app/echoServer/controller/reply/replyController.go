package reply

import (
	"log/slog"
	"net/http"
	"strconv"

	"spacerental/app/echoServer/jwtx"
	rs "spacerental/service/reply"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	Log *slog.Logger
}

// POST /v1/negotiations/:id/replies
// Multipart form: "message" (text) and/or "image" (file). The image
// wins when both are present.
func (h *Controller) Append(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	uid, _ := jwtx.UserIDFromContext(c)

	message := c.FormValue("message")

	var img *rs.Image
	if fh, ferr := c.FormFile("image"); ferr == nil && fh != nil {
		f, oerr := fh.Open()
		if oerr != nil {
			h.Log.Error("open upload", "err", oerr)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
		defer f.Close()
		img = &rs.Image{Filename: fh.Filename, Size: fh.Size, Reader: f}
	}

	rep, err := h.Svc.Append(c.Request().Context(), uid, id, message, img)
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "negotiation not found"})
		case rs.ErrNotParticipant:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Unauthorized"})
		case rs.ErrEmptyReply:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "message or image required"})
		case rs.ErrMessageTooLong:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "message too long"})
		case rs.ErrBadImageType:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "image must be jpeg, jpg, png or gif"})
		case rs.ErrImageTooLarge:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "image exceeds 2MB"})
		default:
			h.Log.Error("reply append", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"data": rep})
}

// GET /v1/negotiations/:id/replies
func (h *Controller) List(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	rows, err := h.Svc.List(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("reply list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, rows)
}
