package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// MakeCall places an outbound call. (POST /makeCall)
	MakeCall(w http.ResponseWriter, r *http.Request)
	// MakeCallNotAllowed rejects non-POST probes of /makeCall. (GET /makeCall)
	MakeCallNotAllowed(w http.ResponseWriter, r *http.Request)
	// HealthCheck reports service health. (GET /health)
	HealthCheck(w http.ResponseWriter, r *http.Request)
}

// HandlerFromMux attaches all API routes to the given chi router.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	r.Post("/makeCall", si.MakeCall)
	r.Get("/makeCall", si.MakeCallNotAllowed)
	r.Get("/health", si.HealthCheck)

	// Anything else on a known path (PUT, DELETE, ...) gets the same
	// instructional rejection as GET /makeCall.
	r.MethodNotAllowed(si.MakeCallNotAllowed)

	return r
}

// Handler returns an http.Handler serving the API on a fresh router.
func Handler(si ServerInterface) http.Handler {
	return HandlerFromMux(si, chi.NewRouter())
}
