package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/moore_demo/internal/ports"
)

type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json")
		return
	}

	token, err := h.auth.Login(r.Context(), req.Password)
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "invalid password")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token": token,
	})
}
