package router

import (
	"github.com/labstack/echo/v4"

	"imagedrop/internal/adapter/api/handler"
)

func Setup(e *echo.Echo, uploadHandler *handler.UploadHandler, healthHandler *handler.HealthHandler) {
	e.GET("/", uploadHandler.Index)
	e.POST("/upload", uploadHandler.Upload)
	e.GET("/health", healthHandler.CheckHealth)
}
