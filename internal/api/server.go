package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"prodnames/internal/catalog"
	"prodnames/internal/naming"
)

type Config struct {
	Debug        bool
	AllowOrigins []string
	Status       StatusInfo
}

// New builds the echo instance with middleware and routes. Middleware order:
// recover, request id, request logging, CORS.
func New(cfg Config, svc *catalog.Service, gen *naming.Generator) *echo.Echo {
	e := echo.New()
	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogErrorFunc: logPanic}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(requestLogger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))

	SetupRoutes(e, cfg.Status, svc, gen)

	return e
}

func SetupRoutes(e *echo.Echo, info StatusInfo, svc *catalog.Service, gen *naming.Generator) {
	e.GET("/", Status(info))

	g := e.Group("/api")
	g.GET("/health", Health(info))
	g.POST("/shopify/products", SeasonProducts(svc))
	g.POST("/generate-names", GenerateNames(gen))
	g.POST("/check-name", CheckName(svc))
}
