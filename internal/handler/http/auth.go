package http

import (
	"net/http"

	"github.com/MKhiriev/go-post-keeper/internal/logger"
	"github.com/MKhiriev/go-post-keeper/internal/utils"
	"github.com/MKhiriev/go-post-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := models.Success(models.UserData{User: user})
	resp.Message = msgUserCreated
	writeJSON(w, r, resp, http.StatusCreated)
}

func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AuthService.VerifyEmail(r.Context(), chi.URLParam(r, "token")); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.SuccessMessage(msgEmailVerified), http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("id", user.UserID).Msg("user successfully logged in")

	resp := models.Success(models.UserData{User: user})
	resp.Token = token.String()
	writeJSON(w, r, resp, http.StatusOK)
}

// forgotPassword answers identically whether or not the email is registered.
func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.RequestPasswordReset(r.Context(), req.Email); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.SuccessMessage(msgPasswordResetLinkSent), http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.ResetPassword(r.Context(), chi.URLParam(r, "token"), req); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.SuccessMessage(msgPasswordResetSucceeded), http.StatusOK)
}
