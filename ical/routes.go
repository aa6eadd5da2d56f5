package ical

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func Routes(path string, loc *time.Location) http.Handler {
	h := NewHandler(path, loc)
	r := chi.NewRouter()
	r.Get("/", h.ServeHTTP)
	r.Get("/{year}", h.ServeHTTP)
	return r
}
