package httpx

import (
	"net/http"

	"foodcourt/internal/core/service"
)

// UsersHandler serves login and logout.
type UsersHandler struct {
	users *service.Users
}

func NewUsersHandler(users *service.Users) *UsersHandler {
	return &UsersHandler{users: users}
}

func (h *UsersHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	session, err := h.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Login user successful", session)
}

// Logout revokes the presented token. It deliberately does not require the
// token to still be valid for auth; an expired token simply fails to parse.
func (h *UsersHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeFailure(w, http.StatusBadRequest, "Token is missing")
		return
	}

	if err := h.users.Logout(r.Context(), token); err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Logout user successful", nil)
}
