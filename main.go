// Package main space rental API.
//
// @title           Space Rental Negotiation API
// @version         1.0
// @description     marketplace where business owners negotiate rental terms with space owners.
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"spacerental/app/echoServer"
	agreementctrl "spacerental/app/echoServer/controller/agreement"
	authctrl "spacerental/app/echoServer/controller/auth"
	billingctrl "spacerental/app/echoServer/controller/billing"
	listingctrl "spacerental/app/echoServer/controller/listing"
	negotiationctrl "spacerental/app/echoServer/controller/negotiation"
	notificationctrl "spacerental/app/echoServer/controller/notification"
	replyctrl "spacerental/app/echoServer/controller/reply"
	"spacerental/app/echoServer/validation"
	"spacerental/config"
	agreementrepo "spacerental/repository/agreement"
	billingrepo "spacerental/repository/billing"
	listingrepo "spacerental/repository/listing"
	negotiationrepo "spacerental/repository/negotiation"
	notificationrepo "spacerental/repository/notification"
	replyrepo "spacerental/repository/reply"
	userrepo "spacerental/repository/user"
	agreementsvc "spacerental/service/agreement"
	authsvc "spacerental/service/auth"
	billingsvc "spacerental/service/billing"
	listingsvc "spacerental/service/listing"
	negotiationsvc "spacerental/service/negotiation"
	notificationsvc "spacerental/service/notification"
	replysvc "spacerental/service/reply"
	"spacerental/util/database"
	"spacerental/util/storage"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	images, err := storage.NewDisk(cfg.ImageDir)
	if err != nil {
		log.Error("image dir", "err", err)
		os.Exit(1)
	}

	// repos
	ur := userrepo.New(db)
	lr := listingrepo.New(db)
	nr := negotiationrepo.New(db)
	rr := replyrepo.New(db)
	br := billingrepo.New(db)
	ar := agreementrepo.New(db)
	fr := notificationrepo.New(db)

	// services
	as := authsvc.New(ur, cfg.JWTSecret)
	ls := listingsvc.New(lr)
	ns := negotiationsvc.New(nr, lr, ur, fr, br)
	rs := replysvc.New(rr, nr, images)
	bs := billingsvc.New(br, nr)
	ags := agreementsvc.New(ar, nr, lr, ur)
	nos := notificationsvc.New(fr)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	listingC := &listingctrl.Controller{Svc: ls, Log: log}
	negotiationC := &negotiationctrl.Controller{Svc: ns, V: v, Log: log}
	replyC := &replyctrl.Controller{Svc: rs, Log: log}
	billingC := &billingctrl.Controller{Svc: bs, V: v, Log: log}
	agreementC := &agreementctrl.Controller{Svc: ags, V: v, Log: log}
	notificationC := &notificationctrl.Controller{Svc: nos, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// uploaded reply images
	e.Static("/negotiation_images", cfg.ImageDir)

	echoServer.Register(e, echoServer.C{
		Auth:         authC,
		Listing:      listingC,
		Negotiation:  negotiationC,
		Reply:        replyC,
		Billing:      billingC,
		Agreement:    agreementC,
		Notification: notificationC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "chosen_port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
