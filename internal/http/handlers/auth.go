package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stuartcarroll/chatextract/internal/domain/errs"
)

type registerReq struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type tokensResp struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Login == "" || req.Password == "" {
		h.Error(w, http.StatusBadRequest, "login and password are required")
		return
	}

	user, err := h.auth.Register(r.Context(), req.Login, req.Password)
	if errors.Is(err, errs.ErrUserAlreadyExists) {
		h.Error(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		h.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.JSON(w, http.StatusCreated, map[string]string{
		"uuid":  user.Uuid.String(),
		"login": user.Login,
		"role":  string(user.Role),
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Login == "" || req.Password == "" {
		h.Error(w, http.StatusBadRequest, "login and password are required")
		return
	}

	tokens, err := h.auth.Login(r.Context(), req.Login, req.Password)
	if errors.Is(err, errs.ErrInvalidCreds) {
		h.Error(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		h.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.JSON(w, http.StatusOK, tokensResp{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken})
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		h.Error(w, http.StatusBadRequest, "refresh_token is required")
		return
	}

	tokens, err := h.auth.Refresh(r.Context(), req.RefreshToken)
	if errors.Is(err, errs.ErrInvalidCreds) {
		h.Error(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		h.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.JSON(w, http.StatusOK, tokensResp{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken})
}
