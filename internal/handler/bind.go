package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	bga_errors "bga-backend/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// same default limit as the express json parser the frontend was built against
const maxBodyBytes = 100 << 10

// fieldMessages is keyed by the validator's struct namespace, optionally
// suffixed with the failing tag.
var fieldMessages = map[string]string{
	"RegisterRequest.Email":        "Valid email required",
	"RegisterRequest.Password":     "Password min 6 chars",
	"RegisterRequest.Password.max": "Password max 72 bytes",
	"LoginRequest.Email":           "Valid email required",
	"LoginRequest.Password":        "Password required",
}

// report validation failures under the json key rather than the Go field name
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindJSON decodes the body into obj, rejecting unknown fields, then runs the
// binding tags. Every failure is a *ValidationError carrying summary.
func bindJSON(c *gin.Context, obj any, summary string) error {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(obj); err != nil {
		return bga_errors.NewValidationError(summary, bga_errors.FieldError{Field: "body", Message: decodeMessage(err)})
	}
	if dec.More() {
		return bga_errors.NewValidationError(summary, bga_errors.FieldError{Field: "body", Message: "Body must contain a single JSON object"})
	}

	if err := binding.Validator.ValidateStruct(obj); err != nil {
		var vErrs validator.ValidationErrors
		if !errors.As(err, &vErrs) {
			return bga_errors.NewValidationError(summary, bga_errors.FieldError{Field: "body", Message: err.Error()})
		}
		fields := make([]bga_errors.FieldError, 0, len(vErrs))
		for _, fe := range vErrs {
			fields = append(fields, bga_errors.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
		return bga_errors.NewValidationError(summary, fields...)
	}
	return nil
}

func decodeMessage(err error) string {
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		return "Body too large"
	case errors.Is(err, io.EOF):
		return "Request body required"
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		return "Unknown field " + strings.TrimPrefix(err.Error(), "json: unknown field ")
	default:
		return "Malformed JSON body"
	}
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.StructNamespace()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := fieldMessages[fe.StructNamespace()]; ok {
		return msg
	}
	return fe.Field() + " is invalid"
}
