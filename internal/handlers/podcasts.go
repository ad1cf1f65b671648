package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/yradunchev/podsub/internal/apperr"
	"github.com/yradunchev/podsub/internal/middleware"
	"github.com/yradunchev/podsub/internal/models"
)

const (
	defaultPage  = 1
	defaultLimit = 25
)

type subscribeRequest struct {
	URL string `json:"url"`
}

type podcastResponse struct {
	OK      bool            `json:"ok"`
	Podcast *models.Podcast `json:"podcast"`
}

type podcastDetail struct {
	models.Podcast
	Episodes []models.Episode `json:"episodes"`
}

// GetPodcasts lists one page of the user's subscriptions.
func (h *Handlers) GetPodcasts(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	page := queryInt(r, "page", defaultPage)
	limit := queryInt(r, "limit", defaultLimit)

	podcasts, err := h.subs.ListSubscriptions(r.Context(), user, page, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, podcasts)
}

// PostPodcast subscribes the user to the feed URL in the request body.
func (h *Handlers) PostPodcast(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	var body subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}

	podcast, err := h.subs.Subscribe(r.Context(), user, body.URL)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, podcastResponse{OK: true, Podcast: podcast})
}

// GetPodcast returns one subscription with its first episodes.
func (h *Handlers) GetPodcast(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	vars := mux.Vars(r)

	podcast, episodes, err := h.subs.GetSubscription(r.Context(), user, vars["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]podcastDetail{
		"podcast": {Podcast: *podcast, Episodes: episodes},
	})
}

// DeletePodcast removes a subscription; deleting one the user does not
// have succeeds all the same.
func (h *Handlers) DeletePodcast(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	vars := mux.Vars(r)

	if err := h.subs.Unsubscribe(r.Context(), user, vars["id"]); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "message": "Deleted podcast"})
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
