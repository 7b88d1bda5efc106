package routes

import (
	"log/slog"

	"RealEstateAPI/handlers"
	appmw "RealEstateAPI/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// MaxBodySize caps request bodies; larger ones get 413.
const MaxBodySize = "1M"

// NewServer returns an Echo instance with the shared middleware chain.
func NewServer(logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(appmw.RequestID())
	e.Use(appmw.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(MaxBodySize))
	e.Use(middleware.CORS())
	return e
}

type Controllers struct {
	Health     *handlers.HealthController
	Properties *handlers.PropertyController
	Inquiries  *handlers.InquiryController
}

func RegisterRoutes(e *echo.Echo, ctrl Controllers) {
	e.GET("/", ctrl.Health.Root)
	e.GET("/test", ctrl.Health.Diagnostics)

	api := e.Group("/api")
	api.POST("/properties", ctrl.Properties.CreateProperty)
	api.GET("/properties", ctrl.Properties.ListProperties)
	api.POST("/inquiries", ctrl.Inquiries.CreateInquiry)
}
