package app

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/metinatakli/movie-booking-api/api"
	"github.com/metinatakli/movie-booking-api/internal/domain"
)

// legacyTokenHeader is still sent by older clients in place of Authorization.
const legacyTokenHeader = "authtoken"

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// authenticate resolves the caller from the bearer token. Requests without a
// token pass through anonymously; a bad or revoked token is rejected.
func (app *Application) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Authorization")

		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		if token == "" {
			app.invalidAuthenticationTokenResponse(w, r)
			return
		}

		claims, err := app.issuer.Parse(token)
		if err != nil {
			app.contextGetLogger(r).Warn("rejected access token", "error", err)
			app.invalidAuthenticationTokenResponse(w, r)
			return
		}

		revoked, err := app.tokenRepo.IsRevoked(r.Context(), claims.ID)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		if revoked {
			app.invalidAuthenticationTokenResponse(w, r)
			return
		}

		next.ServeHTTP(w, contextSetClaims(r, claims))
	})
}

// bearerToken reports whether the request carries a token at all, and the
// token itself when it is well formed.
func bearerToken(r *http.Request) (string, bool) {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") {
			return "", true
		}

		return strings.TrimSpace(token), true
	}

	if token := r.Header.Get(legacyTokenHeader); token != "" {
		return strings.TrimSpace(token), true
	}

	return "", false
}

// requireScopes enforces the bearerAuth requirement the router attaches to
// each operation. Operations without one are public; the admin scope also
// needs the admin role.
func (app *Application) requireScopes(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scopes, ok := r.Context().Value(api.BearerAuthScopes).([]string)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		claims := contextGetClaims(r)
		if claims == nil {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		if slices.Contains(scopes, string(domain.RoleAdmin)) && claims.Role != domain.RoleAdmin {
			app.forbiddenResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}
