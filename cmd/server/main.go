package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"gardenplan/config"
	"gardenplan/database"
	"gardenplan/router"

	authCtrlImp "gardenplan/pkg/auth/controllerImp"
	healthCtrlImp "gardenplan/pkg/health/controllerImp"

	bedCtrlImp "gardenplan/pkg/bed/controllerImp"
	bedRepoImp "gardenplan/pkg/bed/repositoryImp"

	gardenCtrlImp "gardenplan/pkg/garden/controllerImp"
	gardenRepoImp "gardenplan/pkg/garden/repositoryImp"

	seedCtrlImp "gardenplan/pkg/seed/controllerImp"
	seedRepoImp "gardenplan/pkg/seed/repositoryImp"
	seedSvcImp "gardenplan/pkg/seed/serviceImp"

	plantingCtrlImp "gardenplan/pkg/planting/controllerImp"
	plantingRepoImp "gardenplan/pkg/planting/repositoryImp"
	plantingSvcImp "gardenplan/pkg/planting/serviceImp"

	taskCtrlImp "gardenplan/pkg/task/controllerImp"
	taskRepoImp "gardenplan/pkg/task/repositoryImp"

	gtCtrlImp "gardenplan/pkg/gardentask/controllerImp"
	gtRepoImp "gardenplan/pkg/gardentask/repositoryImp"

	wishCtrlImp "gardenplan/pkg/wishlist/controllerImp"
	wishRepoImp "gardenplan/pkg/wishlist/repositoryImp"

	"gardenplan/pkg/digest"
	digestCtrlImp "gardenplan/pkg/digest/controllerImp"
	"gardenplan/pkg/mail"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Mail (mock fallback when no provider configured)
	var mailer mail.Client
	if cfg.MailEndpoint != "" && cfg.MailAPIKey != "" {
		mailer = mail.NewHTTP(cfg.MailEndpoint, cfg.MailAPIKey, cfg.MailFrom)
	} else {
		mailer = mail.NewMock()
	}

	// 5) Repos
	gardenRepo := gardenRepoImp.New(db)
	bedRepo := bedRepoImp.New(db)
	seedRepo := seedRepoImp.New(db)
	plantingRepo := plantingRepoImp.New(db)
	taskRepo := taskRepoImp.New(db)
	gtRepo := gtRepoImp.New(db)
	wishRepo := wishRepoImp.New(db)

	// 6) Services
	seedSvc := seedSvcImp.New(seedRepo)
	plantingSvc := plantingSvcImp.New(plantingRepo, bedRepo, seedRepo, taskRepo)
	digestSvc := digest.New(taskRepo, plantingRepo, seedRepo, mailer, cfg.DigestHorizonDay)

	// 7) Controllers
	gardenCtrl := gardenCtrlImp.New(gardenRepo)
	bedCtrl := bedCtrlImp.New(bedRepo)
	seedCtrl := seedCtrlImp.New(seedRepo, seedSvc)
	plantingCtrl := plantingCtrlImp.New(plantingSvc, plantingRepo)
	taskCtrl := taskCtrlImp.New(taskRepo)
	gtCtrl := gtCtrlImp.New(gtRepo)
	wishCtrl := wishCtrlImp.New(wishRepo)
	digestCtrl := digestCtrlImp.New(digestSvc)
	authCtrl := authCtrlImp.NewAuthController()
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 8) Router
	r := router.New(
		e,
		gardenCtrl,
		bedCtrl,
		seedCtrl,
		plantingCtrl,
		taskCtrl,
		gtCtrl,
		wishCtrl,
		digestCtrl,
		authCtrl,
		healthCtrl,
	)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
