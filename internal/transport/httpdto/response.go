package httpdto

import bga_errors "bga-backend/pkg/errors"

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse keeps "error" for clients that only read the summary.
type ValidationErrorResponse struct {
	Error  string                  `json:"error"`
	Errors []bga_errors.FieldError `json:"errors"`
}

func NewSuccessResponse() SuccessResponse {
	return SuccessResponse{Success: true}
}

func NewErrorResponse(err string) ErrorResponse {
	return ErrorResponse{Error: err}
}

func NewValidationErrorResponse(err *bga_errors.ValidationError) ValidationErrorResponse {
	fields := err.Fields
	if fields == nil {
		fields = []bga_errors.FieldError{}
	}
	return ValidationErrorResponse{Error: err.Message, Errors: fields}
}
