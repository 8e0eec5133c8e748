package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/expense-dashboard/internal/errs"
)

// idParam reads a numeric record id from the route.
func idParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		return 0, errs.NewValidationError("id must be a positive integer")
	}
	return id, nil
}

// pathParam returns an unescaped route value. chi matches against RawPath
// when the request has one, so "Food %26 Dining" arrives still encoded.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}
