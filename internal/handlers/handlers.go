// Package handlers is the HTTP transport: JSON in, JSON out, and the only
// place where an error kind becomes a status code.
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/yradunchev/podsub/internal/apperr"
	"github.com/yradunchev/podsub/internal/auth"
	"github.com/yradunchev/podsub/internal/subscription"
)

type Handlers struct {
	subs *subscription.Manager
	auth *auth.Service
}

func New(subs *subscription.Manager, authService *auth.Service) *Handlers {
	return &Handlers{
		subs: subs,
		auth: authService,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps an error to a response. Fetch errors respond with the
// upstream status; anything without a kind is an internal error and its
// detail stays out of the response body.
func writeError(w http.ResponseWriter, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		log.Printf("Internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch ae.Kind {
	case apperr.KindAuthentication:
		status = http.StatusUnauthorized
		if ae.Status != 0 {
			status = ae.Status
		}
	case apperr.KindValidation, apperr.KindParse:
		status = http.StatusBadRequest
	case apperr.KindFetch:
		status = http.StatusBadGateway
		if ae.Status >= 400 {
			status = ae.Status
		}
	}
	writeJSON(w, status, errorResponse{Error: ae.Message})
}
