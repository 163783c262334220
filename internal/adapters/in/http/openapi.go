package http

import (
	"errors"
	"fmt"
	"strings"

	"parcelhub/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// requestContract checks requests against the OpenAPI document before a
// handler runs: query enums, required body fields and numeric bounds.
// Authentication is not checked here; it already ran as middleware.
type requestContract struct {
	router routers.Router
}

func newRequestContract(doc *openapi3.T) (*requestContract, error) {
	// Requests are matched by path only, whatever host the service runs on.
	doc.Servers = nil
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}
	return &requestContract{router: router}, nil
}

func (rc *requestContract) middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		route, pathParams, err := rc.router.FindRoute(req)
		if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
			return next(c)
		}
		if err != nil {
			return fmt.Errorf("match openapi route: %w", err)
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
			Options: &openapi3filter.Options{
				AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
			},
		}
		if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("request", contractError(err))
		}
		return next(c)
	}
}

// contractError keeps the caller-facing part of a validation failure.
func contractError(err error) error {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		var schemaErr *openapi3.SchemaError
		if errors.As(reqErr.Err, &schemaErr) {
			if reqErr.Parameter != nil {
				return fmt.Errorf("parameter %q: %s", reqErr.Parameter.Name, schemaErr.Reason)
			}
			return fmt.Errorf("body /%s: %s", strings.Join(schemaErr.JSONPointer(), "/"), schemaErr.Reason)
		}
		return errors.New(reqErr.Error())
	}
	return err
}
