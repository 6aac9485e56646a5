package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"lumina/internal/auth"
	"lumina/internal/i18n"

	"go.uber.org/zap"
)

// minPasswordLen applies to accounts registered over HTTP only.
const minPasswordLen = 8

type AuthHandler struct {
	Users *auth.Registry
	JWT   *auth.JWT
	Log   *zap.Logger
}

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResp struct {
	Token string    `json:"token"`
	User  auth.User `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || len(req.Password) < minPasswordLen {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	u, ok := h.Users.Create(req.Username, req.Password)
	if !ok {
		t := i18n.For(r.Header.Get("Accept-Language"))
		http.Error(w, t.T("Username already taken"), http.StatusConflict)
		return
	}

	h.issue(w, u, http.StatusCreated)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	u, ok := h.Users.Verify(req.Username, req.Password)
	if !ok {
		h.Log.Info("login rejected", zap.String("username", req.Username))
		t := i18n.For(r.Header.Get("Accept-Language"))
		http.Error(w, t.T("Invalid credentials"), http.StatusUnauthorized)
		return
	}

	h.issue(w, u, http.StatusOK)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := auth.SessionFromContext(r.Context()); ok {
		h.JWT.Revoke(sess)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) issue(w http.ResponseWriter, u auth.User, status int) {
	token, err := h.JWT.Sign(u)
	if err != nil {
		h.Log.Error("sign token", zap.Error(err))
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, status, sessionResp{Token: token, User: u})
}
