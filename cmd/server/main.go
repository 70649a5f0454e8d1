package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/acme/autocert"

	"github.com/iliyamo/cinema-booking-web/internal/apiclient"
	"github.com/iliyamo/cinema-booking-web/internal/config"
	"github.com/iliyamo/cinema-booking-web/internal/endpoint"
	"github.com/iliyamo/cinema-booking-web/internal/handler"
	"github.com/iliyamo/cinema-booking-web/internal/middleware"
	"github.com/iliyamo/cinema-booking-web/internal/router"
	queue_publisher "github.com/iliyamo/cinema-booking-web/internal/service"
	"github.com/iliyamo/cinema-booking-web/internal/view"
	"github.com/iliyamo/cinema-booking-web/internal/workflow"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly

	cfg := config.Load()
	rdb := config.NewRedisClient() // nil when unreachable; cache and limiter switch off

	reg := endpoint.NewRegistry(cfg.APIBaseURL, cfg.APIInternalURL)
	api := apiclient.New(reg)
	validator := workflow.NewValidator(api, queue_publisher.PublishTicketValidated, cfg.ScanDedupTTL)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = view.NewRenderer()
	e.StaticFS("/static", echo.MustSubFS(view.Static, "static"))

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.Session(cfg.CookieName))

	router.RegisterRoutes(e)
	router.RegisterPages(e, handler.NewPageHandler(api))
	router.RegisterAuth(e, handler.NewAuthHandler(api, cfg.CookieName))
	router.RegisterBooking(e, handler.NewBookingHandler(api))
	router.RegisterValidate(e, handler.NewValidateHandler(validator),
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	router.RegisterReference(e, handler.NewReferenceHandler(api),
		middleware.NewPageCache(config.LoadCacheConfig(), rdb))

	if cfg.AutoTLSDomain != "" {
		e.AutoTLSManager.HostPolicy = autocert.HostWhitelist(cfg.AutoTLSDomain)
		e.AutoTLSManager.Cache = autocert.DirCache(cfg.AutoTLSCacheDir)
		log.Printf("listening on :443 for %s (env=%s)", cfg.AutoTLSDomain, cfg.Env)
		log.Fatal(e.StartAutoTLS(":443"))
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	log.Fatal(e.Start(addr))
}
