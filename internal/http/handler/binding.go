package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"kbms.app/integrations/internal/http/dto"
)

// Field errors must point at JSON member names, not Go field names.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindingErrorResponse translates a ShouldBindJSON failure into the error
// envelope: malformed JSON is a 400, a well-formed payload that violates
// the schema is a 422 with one detail per violation.
func bindingErrorResponse(err error) (int, dto.ErrorResponse) {
	var (
		syntaxErr      *json.SyntaxError
		typeErr        *json.UnmarshalTypeError
		validationErrs validator.ValidationErrors
	)

	switch {
	case errors.As(err, &validationErrs):
		details := make([]dto.FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			details = append(details, fieldError(fe))
		}
		return http.StatusUnprocessableEntity, dto.ErrorResponse{
			ErrorCode: dto.ErrCodeValidationError,
			Message:   "conversation payload failed validation",
			Details:   details,
		}

	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			// The body decoded but is not an object at all.
			return http.StatusBadRequest, dto.ErrorResponse{
				ErrorCode: dto.ErrCodeInvalidJSON,
				Message:   "request body must be a JSON object",
			}
		}
		return http.StatusUnprocessableEntity, dto.ErrorResponse{
			ErrorCode: dto.ErrCodeValidationError,
			Message:   "conversation payload failed validation",
			Details: []dto.FieldError{{
				Field:   typeErr.Field,
				Issue:   dto.IssueTypeError,
				Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			}},
		}

	case errors.As(err, &syntaxErr),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF):
		return http.StatusBadRequest, dto.ErrorResponse{
			ErrorCode: dto.ErrCodeInvalidJSON,
			Message:   "request body is not valid JSON",
		}
	}

	return http.StatusBadRequest, dto.ErrorResponse{
		ErrorCode: dto.ErrCodeInvalidJSON,
		Message:   "could not read request body",
	}
}

func fieldError(fe validator.FieldError) dto.FieldError {
	if fe.Tag() == "required" {
		return dto.FieldError{
			Field:   fieldPath(fe.Namespace()),
			Issue:   dto.IssueMissing,
			Message: "field is required",
		}
	}
	return dto.FieldError{
		Field:   fieldPath(fe.Namespace()),
		Issue:   dto.IssueInvalid,
		Message: fmt.Sprintf("failed %q validation", fe.Tag()),
	}
}

// fieldPath drops the leading struct token from a validator namespace,
// turning "IntercomConversationRequest.conversation_message.author.id"
// into "conversation_message.author.id".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
