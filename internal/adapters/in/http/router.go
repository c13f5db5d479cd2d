package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"intake/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const swaggerInstance = "intake"

var registerDocOnce sync.Once

type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string { return d.json }

// NewRouter builds the echo instance: health check, Swagger UI and the API routes
// behind the OpenAPI request validator.
func NewRouter(server *Server, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	docJSON, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal openapi document: %w", err)
	}
	registerDocOnce.Do(func() {
		if swag.GetSwagger(swaggerInstance) == nil {
			swag.Register(swaggerInstance, openAPIDoc{json: string(docJSON)})
		}
	})

	validateRequests, err := OpenAPIRequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(swaggerInstance)))

	api := e.Group("", validateRequests)
	servers.RegisterHandlers(api, server)

	return e, nil
}

func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status := statusOf(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "unhandled error", "path", c.Path(), "error", err)
		}
		if respErr := c.JSON(status, servers.Error{Code: status, Message: messageOf(err, status)}); respErr != nil {
			logger.ErrorContext(c.Request().Context(), "write error response", "error", respErr)
		}
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	log := logger.With("component", "http")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			log.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency))
			return nil
		},
	})
}
