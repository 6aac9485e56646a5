package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"lumina/internal/auth"
	"lumina/internal/content"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SocialHandler struct {
	Store *content.Store
	Log   *zap.Logger
}

type appliedResp struct {
	Applied bool `json:"applied"`
}

// Like answers 200 even for an unknown id; applied reports whether a record
// was touched.
func (h *SocialHandler) Like(kind content.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		ok := h.Store.Like(id, kind)
		if !ok {
			h.Log.Debug("like ignored", zap.String("kind", string(kind)), zap.String("id", id))
		}
		writeJSON(w, http.StatusOK, appliedResp{Applied: ok})
	}
}

type commentReq struct {
	Text string `json:"text"`
}

func (h *SocialHandler) Comment(kind content.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := auth.UserFromContext(r.Context())

		var req commentReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		req.Text = strings.TrimSpace(req.Text)
		if req.Text == "" {
			http.Error(w, "text required", http.StatusBadRequest)
			return
		}

		id := chi.URLParam(r, "id")
		ok := h.Store.AddComment(id, kind, req.Text, u.Username)
		if !ok {
			h.Log.Debug("comment ignored", zap.String("kind", string(kind)), zap.String("id", id))
		}
		writeJSON(w, http.StatusOK, appliedResp{Applied: ok})
	}
}
