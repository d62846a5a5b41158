// Package validation checks decoded records against the rules declared in
// their `validate` struct tags and reports every failing field.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/form/v4"
	"github.com/go-playground/validator/v10"
)

const (
	CodeMissing      = "missing"
	CodeInvalidType  = "invalid_type"
	CodeInvalidJSON  = "invalid_json"
	CodeInvalidEmail = "invalid_email"
	CodeInvalidEnum  = "invalid_enum"
	CodeTooLong      = "too_long"
	CodeTooShort     = "too_short"
	CodeTooLarge     = "too_large"
	CodeTooSmall     = "too_small"
	CodeInvalid      = "invalid"
)

// BodyField is reported when the request body as a whole is unusable.
const BodyField = "body"

var (
	validate     = newValidator()
	queryDecoder = form.NewDecoder()
)

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Errors lists every field that failed validation.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the name of each failing field in report order.
func (e Errors) Fields() []string {
	out := make([]string, 0, len(e))
	for _, fe := range e {
		out = append(out, fe.Field)
	}
	return out
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return ""
	})
	return v
}

// Struct validates v and returns Errors when any field fails. Any other
// error means v is not something that can be validated.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate %T: %w", v, err)
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fromFieldError(fe))
	}

	return out
}

// DecodeJSON decodes a single JSON document from r into v and validates it.
// Undecodable input is reported as Errors so callers handle both the same way.
func DecodeJSON(r io.Reader, v any) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fromDecodeError(err)
	}

	return Struct(v)
}

// DecodeQuery decodes url query values into v using `form` tags and validates it.
func DecodeQuery(values url.Values, v any) error {
	err := queryDecoder.Decode(v, values)
	if err != nil {
		var decodeErrs form.DecodeErrors
		if !errors.As(err, &decodeErrs) {
			return fmt.Errorf("decode query: %w", err)
		}

		out := make(Errors, 0, len(decodeErrs))
		for field := range decodeErrs {
			out = append(out, FieldError{
				Field:   field,
				Code:    CodeInvalidType,
				Message: "value is not a valid integer",
			})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })

		return out
	}

	return Struct(v)
}

func fromFieldError(fe validator.FieldError) FieldError {
	out := FieldError{Field: fe.Field()}

	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		out.Code = CodeMissing
		out.Message = "field required"
	case "email":
		out.Code = CodeInvalidEmail
		out.Message = "value is not a valid email address"
	case "oneof":
		out.Code = CodeInvalidEnum
		out.Message = fmt.Sprintf("value must be one of: %s", strings.Join(strings.Fields(fe.Param()), ", "))
	case "max":
		if isString {
			out.Code = CodeTooLong
			out.Message = fmt.Sprintf("ensure this value has at most %s characters", fe.Param())
		} else {
			out.Code = CodeTooLarge
			out.Message = fmt.Sprintf("ensure this value is less than or equal to %s", fe.Param())
		}
	case "min":
		if isString {
			out.Code = CodeTooShort
			out.Message = fmt.Sprintf("ensure this value has at least %s characters", fe.Param())
		} else {
			out.Code = CodeTooSmall
			out.Message = fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param())
		}
	default:
		out.Code = CodeInvalid
		out.Message = fmt.Sprintf("failed %s validation", fe.Tag())
	}

	return out
}

func fromDecodeError(err error) error {
	var (
		typeErr *json.UnmarshalTypeError
		maxErr  *http.MaxBytesError
	)

	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = BodyField
		}
		return Errors{{
			Field:   field,
			Code:    CodeInvalidType,
			Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
		}}
	case errors.As(err, &maxErr):
		return Errors{{
			Field:   BodyField,
			Code:    CodeTooLarge,
			Message: fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit),
		}}
	case errors.Is(err, io.EOF):
		return Errors{{Field: BodyField, Code: CodeMissing, Message: "request body required"}}
	default:
		return Errors{{Field: BodyField, Code: CodeInvalidJSON, Message: "request body is not valid JSON"}}
	}
}
