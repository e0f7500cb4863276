package http

import (
	"fmt"
	"mime"
	"net/http"

	"skkuri-backend/internal/service"
)

type authHandler struct {
	auth service.AuthService
}

type registerRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	Nickname      string `json:"nickname"`
	Department    string `json:"department"`
	StudentNumber string `json:"student_number"`
	PhoneNumber   string `json:"phone_num"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (h *authHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	id, err := h.auth.Register(r.Context(), service.RegisterInput{
		Email:         req.Email,
		Password:      req.Password,
		Nickname:      req.Nickname,
		Department:    req.Department,
		StudentNumber: req.StudentNumber,
		PhoneNumber:   req.PhoneNumber,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int32{"id": id})
}

// Token accepts the OAuth2 password form (username, password) or a JSON body.
func (h *authHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}
	} else {
		r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
		if err := r.ParseForm(); err != nil {
			writeError(w, r, fmt.Errorf("%w: malformed form: %v", service.ErrInvalidInput, err))
			return
		}
		req.Email = r.PostForm.Get("username")
		req.Password = r.PostForm.Get("password")
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}
