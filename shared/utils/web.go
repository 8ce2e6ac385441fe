package utils

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/itchan-dev/kanban/shared/errors"
	"github.com/itchan-dev/kanban/shared/logger"
)

// validator caches struct metadata, one instance for the process
var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// report json field names instead of Go field names
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

type ErrorResponse struct {
	Error   errors.Kind       `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func StatusCode(kind errors.Kind) int {
	switch kind {
	case errors.NotFound:
		return http.StatusNotFound
	case errors.Forbidden:
		return http.StatusForbidden
	case errors.ValidationFailed:
		return http.StatusBadRequest
	case errors.Conflict:
		return http.StatusConflict
	case errors.Unauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	var e *errors.Error
	if !stderrors.As(err, &e) {
		logger.Log.Error("unclassified error", "error", err)
		e = errors.Wrap(errors.StorageError, err, "Internal error")
	}
	status := StatusCode(e.Kind)
	if status == http.StatusInternalServerError {
		logger.Log.Error("request failed", "kind", e.Kind, "error", err)
	}

	resp := ErrorResponse{Error: e.Kind, Message: e.Message, Fields: e.Fields}
	if e.Kind == errors.StorageError {
		// driver details stay in the log
		resp.Message = "Internal error"
	}
	WriteJSON(w, status, resp)
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
	w.Write([]byte("\n"))
}

// DecodeValidate decodes a JSON body into body and runs its `validate` tags.
// Unknown fields are rejected; type mismatches and tag violations come back as
// ValidationFailed with one entry per offending field.
func DecodeValidate(r io.Reader, body any) error {
	if err := Decode(r, body); err != nil {
		return err
	}
	if err := validate.Struct(body); err != nil {
		var verrs validator.ValidationErrors
		if stderrors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fieldPath(fe)] = describe(fe)
			}
			return errors.Validation("Invalid input", fields)
		}
		return errors.Wrap(errors.ValidationFailed, err, "Invalid input")
	}
	return nil
}

func Decode(r io.Reader, body any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(body); err != nil {
		var typeErr *json.UnmarshalTypeError
		if stderrors.As(err, &typeErr) && typeErr.Field != "" {
			return errors.Validation("Invalid input", map[string]string{typeErr.Field: "must be " + typeErr.Type.String()})
		}
		return errors.Wrap(errors.ValidationFailed, err, "Body is invalid json")
	}
	return nil
}

// fieldPath strips the top level struct name: "CreateCardRequest.name" -> "name"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "datetime":
		return "must be a date in " + fe.Param() + " format"
	case "eqfield":
		return "must match " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}
