package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akhatri/coldcall/internal/api"
)

func setupRouter(handler api.ServerInterface) http.Handler {
	r := chi.NewRouter()

	// Serve the demo page
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, "static/index.html")
	})

	// Attach API routes to the same router
	return api.HandlerFromMux(handler, r)
}
