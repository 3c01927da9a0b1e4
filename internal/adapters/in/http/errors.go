package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError names one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (s *Server) writeError(ctx echo.Context, err error) error {
	status, body := classify(err)
	if status >= http.StatusInternalServerError {
		req := ctx.Request()
		s.logger.ErrorContext(req.Context(), "request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"error", err,
		)
	}
	return ctx.JSON(status, body)
}

// handleError renders errors returned by middleware and routing.
func (s *Server) handleError(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}
	if writeErr := s.writeError(ctx, err); writeErr != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "write error response", "error", writeErr)
	}
}

func classify(err error) (int, ErrorResponse) {
	var (
		httpErr       *echo.HTTPError
		requestErr    *openapi3filter.RequestError
		invalidFields validator.ValidationErrors
	)

	switch {
	case errors.As(err, &invalidFields):
		return respond(http.StatusUnprocessableEntity, "validation failed", validatorFields(invalidFields))
	case errs.IsValidation(err):
		return respond(http.StatusUnprocessableEntity, "validation failed", domainFields(err))
	case errors.Is(err, errs.ErrCapabilityDenied):
		return respond(http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, errs.ErrObjectNotFound):
		return respond(http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, errs.ErrGuardFailed),
		errors.Is(err, errs.ErrSelfDelete),
		errors.Is(err, errs.ErrHasDependents),
		errors.Is(err, errs.ErrObjectAlreadyExists):
		return respond(http.StatusConflict, err.Error(), nil)
	case errors.Is(err, commands.ErrInvalidCredentials):
		return respond(http.StatusUnauthorized, err.Error(), nil)
	case errors.As(err, &requestErr):
		return respond(http.StatusBadRequest, requestErrorMessage(requestErr), nil)
	case errors.As(err, &httpErr):
		return respond(httpErr.Code, fmt.Sprint(httpErr.Message), nil)
	default:
		return respond(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), nil)
	}
}

func respond(status int, message string, fields []FieldError) (int, ErrorResponse) {
	return status, ErrorResponse{Code: status, Message: message, Fields: fields}
}

// domainFields flattens joined validation errors into one entry per failure.
func domainFields(err error) []FieldError {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var fields []FieldError
		for _, e := range joined.Unwrap() {
			fields = append(fields, domainFields(e)...)
		}
		return fields
	}
	if !errs.IsValidation(err) {
		return nil
	}
	return []FieldError{{Field: paramName(err), Message: err.Error()}}
}

func paramName(err error) string {
	var (
		required *errs.ValueIsRequiredError
		invalid  *errs.ValueIsInvalidError
		outside  *errs.ValueIsOutOfRangeError
	)
	switch {
	case errors.As(err, &required):
		return required.ParamName
	case errors.As(err, &invalid):
		return invalid.ParamName
	case errors.As(err, &outside):
		return outside.ParamName
	default:
		return ""
	}
}

func validatorFields(invalid validator.ValidationErrors) []FieldError {
	fields := make([]FieldError, 0, len(invalid))
	for _, fe := range invalid {
		field := fe.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		message := fmt.Sprintf("failed on the %q rule", fe.Tag())
		if fe.Param() != "" {
			message = fmt.Sprintf("failed on the %q rule (%s)", fe.Tag(), fe.Param())
		}
		fields = append(fields, FieldError{Field: field, Message: message})
	}
	return fields
}

func requestErrorMessage(err *openapi3filter.RequestError) string {
	switch {
	case err.Parameter != nil:
		return fmt.Sprintf("parameter %q: %s", err.Parameter.Name, cause(err))
	case err.RequestBody != nil:
		return "request body: " + cause(err)
	default:
		return err.Error()
	}
}

func cause(err *openapi3filter.RequestError) string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Reason
}
