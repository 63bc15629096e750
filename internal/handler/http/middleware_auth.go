package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-post-keeper/internal/logger"
	"github.com/MKhiriev/go-post-keeper/internal/service"
	"github.com/MKhiriev/go-post-keeper/internal/utils"
	"github.com/MKhiriev/go-post-keeper/models"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header (literal,
// case-sensitive "Bearer " prefix), resolves it to a user via
// [service.AuthService.Authenticate] and stores the user in the request
// context under [utils.UserCtxKey] before delegating to the next handler.
//
// Every rejection is answered with HTTP 401:
//   - missing header, other scheme or empty token: "Unauthorized Access";
//   - bad signature, expiry, issuer or purpose: "Invalid Token";
//   - token subject no longer exists: "Unauthorized Access".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("request without bearer token")
			writeJSON(w, r, models.Failure(msgUnauthorizedAccess), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidToken):
				log.Debug().Err(err).Msg("invalid session token")
				writeJSON(w, r, models.Failure(msgInvalidSessionToken), http.StatusUnauthorized)
			case errors.Is(err, service.ErrUnauthorized):
				log.Debug().Err(err).Msg("session token subject not found")
				writeJSON(w, r, models.Failure(msgUnauthorizedAccess), http.StatusUnauthorized)
			default:
				writeError(w, r, err)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}
