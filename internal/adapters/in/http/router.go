package http

import (
	"strconv"
	"time"

	"parcelhub/internal/adapters/in/http/apidocs"
	"parcelhub/internal/core/domain/model/user"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// operationRoles lists who may call each operation. Operations missing here
// need an account with any role; those mapped to nil need only a verified
// token.
var operationRoles = map[string][]user.Role{
	"loginUser":         nil,
	"getUserRole":       nil,
	"deleteParcel":      {user.RoleAdmin},
	"assignRider":       {user.RoleAdmin},
	"advanceDelivery":   {user.RoleRider, user.RoleAdmin},
	"addTrackingEvent":  {user.RoleRider, user.RoleAdmin},
	"getRiders":         {user.RoleAdmin},
	"changeRiderStatus": {user.RoleAdmin},
	"getRiderParcels":   {user.RoleRider},
	"cashout":           {user.RoleRider},
	"getWithdrawTotal":  {user.RoleRider},
	"getWithdrawals":    {user.RoleRider},
	"getAdminStats":     {user.RoleAdmin},
	"getRiderStats":     {user.RoleRider},
}

// NewRouter builds the echo instance serving the API, /health, /metrics and
// the swagger UI. With validate set, requests are checked against doc before
// they reach a handler.
func NewRouter(s *Server, doc *openapi3.T, validate bool) (*echo.Echo, error) {
	if err := apidocs.Register(doc); err != nil {
		return nil, err
	}
	var perOperation []echo.MiddlewareFunc
	if validate {
		contract, err := newRequestContract(doc)
		if err != nil {
			return nil, err
		}
		perOperation = append(perOperation, contract.middleware)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)
	e.HTTPErrorHandler = s.errorHandler
	e.Validator = newRequestValidator()

	e.Use(middleware.Recover())
	e.Use(s.requestLogger())
	e.Use(s.instrument)

	e.GET("/health", s.GetHealth)
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("", s.authenticate)
	RegisterHandlers(api, s, func(operationID string) []echo.MiddlewareFunc {
		roles, listed := operationRoles[operationID]
		if listed && roles == nil {
			return perOperation
		}
		return append([]echo.MiddlewareFunc{s.requireRole(roles...)}, perOperation...)
	})

	return e, nil
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			s.log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.String("route", v.RoutePath),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
			)
			return nil
		},
	})
}

// instrument records request counts and latency per route. Errors are
// rendered here so the recorded status is the one the client receives.
func (s *Server) instrument(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request().Method
		s.metrics.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(c.Response().Status)).Inc()
		s.metrics.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return nil
	}
}
