package http

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

// Contract is the loaded OpenAPI document of the API.
type Contract struct {
	doc    *openapi3.T
	router routers.Router
}

// LoadContract parses and validates an OpenAPI 3 document.
func LoadContract(data []byte) (*Contract, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}
	return &Contract{doc: doc, router: router}, nil
}

// RequestValidator rejects requests that break the contract. Requests to routes the
// contract does not describe pass through untouched.
func (c *Contract) RequestValidator() echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, err := c.router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return err
			}
			return next(ctx)
		}
	}
}

type swaggerDoc string

func (d swaggerDoc) ReadDoc() string {
	return string(d)
}

var registerDocOnce sync.Once

// RegisterDocs publishes the contract to swag so /swagger/* can serve it. Only the
// first call in a process registers.
func (c *Contract) RegisterDocs() error {
	data, err := json.Marshal(c.doc)
	if err != nil {
		return fmt.Errorf("render openapi document: %w", err)
	}

	registerDocOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc(data))
	})
	return nil
}
