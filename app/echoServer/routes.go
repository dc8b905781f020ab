package echoServer

import (
	"net/http"

	"spacerental/app/echoServer/controller/agreement"
	"spacerental/app/echoServer/controller/auth"
	"spacerental/app/echoServer/controller/billing"
	"spacerental/app/echoServer/controller/listing"
	"spacerental/app/echoServer/controller/negotiation"
	"spacerental/app/echoServer/controller/notification"
	"spacerental/app/echoServer/controller/reply"
	"spacerental/model"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Auth         *auth.Controller
	Listing      *listing.Controller
	Negotiation  *negotiation.Controller
	Reply        *reply.Controller
	Billing      *billing.Controller
	Agreement    *agreement.Controller
	Notification *notification.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/users/register", c.Auth.Register)
	pub.POST("/users/login", c.Auth.Login)

	// Auth
	api := e.Group("/v1")
	api.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(c.JWTSecret),

		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	}))
	// user_id + role extraction from verified claims
	api.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			tokenObj := ctx.Get("user")
			if tokenObj == nil {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}

			claims, ok := tokenObj.(jwt.MapClaims)
			if !ok {
				if tok, isTok := tokenObj.(*jwt.Token); isTok {
					claims, ok = tok.Claims.(jwt.MapClaims)
				}
				if !ok {
					return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
				}
			}

			sub, ok := claims["sub"].(float64)
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			role, _ := claims["role"].(string)
			if !model.Role(role).Valid() {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}

			ctx.Set("user_id", int64(sub))
			ctx.Set("role", role)
			return next(ctx)
		}
	})

	// Listings (read-only)
	api.GET("/listings", c.Listing.List)
	api.GET("/listings/:id", c.Listing.Detail)

	// Negotiations
	api.GET("/negotiations", c.Negotiation.List)
	api.GET("/negotiations/:id", c.Negotiation.Detail)
	api.POST("/negotiations", c.Negotiation.Create, RequireRole(model.RoleBusinessOwner))
	api.PUT("/negotiations/:id/offer-amount", c.Negotiation.UpdateOfferAmount)
	api.POST("/negotiations/:id/status", c.Negotiation.UpdateStatus, RequireRole(model.RoleSpaceOwner))

	// Replies
	api.POST("/negotiations/:id/replies", c.Reply.Append)
	api.GET("/negotiations/:id/replies", c.Reply.List)

	// Billing & agreements
	api.POST("/negotiations/:id/billing", c.Billing.Register, RequireRole(model.RoleBusinessOwner))
	api.POST("/negotiations/:id/agreement", c.Agreement.Finalize, RequireRole(model.RoleBusinessOwner))
	api.GET("/agreements", c.Agreement.List)

	// Payment view
	api.GET("/payment", c.Negotiation.PaymentContext)

	// Notifications
	api.GET("/notifications", c.Notification.Inbox)
	api.POST("/notifications/:id/read", c.Notification.MarkRead)
}
