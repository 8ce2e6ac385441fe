package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/kanban/shared/domain"
	"github.com/itchan-dev/kanban/shared/errors"
	mw "github.com/itchan-dev/kanban/shared/middleware"
	"github.com/itchan-dev/kanban/shared/utils"
)

const maxBodySize = 1 << 20

// decodeBody reads a size-limited JSON body into body and validates it.
func decodeBody(w http.ResponseWriter, r *http.Request, body any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	return utils.DecodeValidate(r.Body, body)
}

func parseIdParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Validation("Invalid id", map[string]string{name: "must be a positive integer"})
	}
	return id, nil
}

func principal(r *http.Request) (domain.UserId, error) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		return 0, errors.New(errors.Unauthenticated, "Please sign-in")
	}
	return user.Id, nil
}

// parseDueDate expects a value already checked by the datetime validator.
func parseDueDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	d, err := time.Parse(domain.DateLayout, *s)
	if err != nil {
		return nil, errors.Validation("Invalid input", map[string]string{"dueDate": "must be a date in YYYY-MM-DD format"})
	}
	return &d, nil
}
