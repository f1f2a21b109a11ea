package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	govalidator "github.com/go-playground/validator/v10"

	"github.com/tuanvumaihuynh/shop-admin/internal/apperr"
	"github.com/tuanvumaihuynh/shop-admin/pkg/validator"
	"github.com/tuanvumaihuynh/shop-admin/pkg/zerror"
)

// ErrorResponse is the error response for the API.
type ErrorResponse struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details *[]FieldError `json:"details,omitempty"`

	// StatusCode is the status code for the error response.
	StatusCode int `json:"-"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ParamError reports a path or query parameter that could not be bound.
type ParamError struct {
	Param string
	Err   error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid format for parameter %s: %v", e.Param, e.Err)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

func New(err error) ErrorResponse {
	return errorToErrorResponse(err)
}

var InternalServerErr = ErrorResponse{
	Code:       "INTERNAL_SERVER_ERROR",
	Message:    "an unknown error occurred",
	StatusCode: http.StatusInternalServerError,
}

func errorToErrorResponse(err error) ErrorResponse {
	var zErr zerror.ZError
	if errors.As(err, &zErr) {
		return ErrorResponse{
			Code:       zErr.Code(),
			Message:    zErrorMessage(zErr),
			StatusCode: ZErrorStatusToHTTPStatus(zErr.Status()),
		}
	}

	var validationErrs govalidator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]FieldError, len(validationErrs))
		for i, fe := range validationErrs {
			details[i] = FieldError{
				Field:   fe.Field(),
				Message: validator.ValidationErrorMessage(fe),
			}
		}

		return ErrorResponse{
			Code:       apperr.ValidationErrorCode,
			Message:    "validation error",
			Details:    &details,
			StatusCode: http.StatusBadRequest,
		}
	}

	var paramErr *ParamError
	if errors.As(err, &paramErr) {
		return ErrorResponse{
			Code:       apperr.ValidationErrorCode,
			Message:    paramErr.Error(),
			StatusCode: http.StatusBadRequest,
		}
	}

	if res, ok := openAPIErrorResponse(err); ok {
		return res
	}

	return InternalServerErr
}

// zErrorMessage appends the parent of a validation error to the message so
// clients see which input was rejected.
func zErrorMessage(zErr zerror.ZError) string {
	if zErr.Status() == zerror.StatusValidationFailed && zErr.Parent() != nil {
		return fmt.Sprintf("%s: %s", zErr.Msg(), zErr.Parent().Error())
	}
	return zErr.Msg()
}

func openAPIErrorResponse(err error) (ErrorResponse, bool) {
	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) {
		return ErrorResponse{}, false
	}

	res := ErrorResponse{
		Code:       apperr.ValidationErrorCode,
		Message:    reqErr.Error(),
		StatusCode: http.StatusBadRequest,
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(reqErr.Err, &schemaErr) {
		field := ""
		if reqErr.Parameter != nil {
			field = reqErr.Parameter.Name
		} else if path := schemaErr.JSONPointer(); len(path) > 0 {
			field = path[len(path)-1]
		}
		res.Message = "validation error"
		res.Details = &[]FieldError{{
			Field:   field,
			Message: schemaErr.Reason,
		}}
	}

	return res, true
}

func ZErrorStatusToHTTPStatus(status zerror.Status) int {
	switch status {
	case zerror.StatusUnauthorized:
		return http.StatusUnauthorized
	case zerror.StatusForbidden:
		return http.StatusForbidden
	case zerror.StatusNotFound:
		return http.StatusNotFound
	case zerror.StatusUnprocessableEntity:
		return http.StatusUnprocessableEntity
	case zerror.StatusConflict:
		return http.StatusConflict
	case zerror.StatusTooManyRequests:
		return http.StatusTooManyRequests
	case zerror.StatusBadRequest:
		return http.StatusBadRequest
	case zerror.StatusValidationFailed:
		return http.StatusBadRequest
	case zerror.StatusUnknown, zerror.StatusInternalServerError:
		return http.StatusInternalServerError
	case zerror.StatusTimeout:
		return http.StatusGatewayTimeout
	case zerror.StatusNotImplemented:
		return http.StatusNotImplemented
	case zerror.StatusBadGateway:
		return http.StatusBadGateway
	case zerror.StatusServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
