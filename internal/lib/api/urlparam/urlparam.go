package urlparam

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
)

var (
	ErrMissing = errors.New("is required")
	ErrInvalid = errors.New("has invalid format")
)

// ID reads a positive numeric route parameter.
func ID(r *http.Request, key string) (int64, error) {
	s := chi.URLParam(r, key)
	if s == "" {
		return 0, ErrMissing
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalid
	}

	return id, nil
}

// Path reads a route parameter that may hold escaped characters. When the
// request has a raw path, chi matched against it and the value is still
// escaped.
func Path(r *http.Request, key string) (string, error) {
	s := chi.URLParam(r, key)

	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(s)
		if err != nil {
			return "", ErrInvalid
		}
		s = unescaped
	}

	if s == "" {
		return "", ErrMissing
	}

	return s, nil
}
