package middleware

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/barrabusiness/lead_management_system/backend/auth"
	"github.com/barrabusiness/lead_management_system/backend/controllers"
)

// RequireSession guards the management routes. The check runs on every
// request, nothing is cached. Unauthenticated browser navigation is sent
// to the login page with the original location captured in "from" so login
// can return there; API clients get a plain 401.
func RequireSession(sessions *auth.Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := controllers.RequestToken(r)

			user, err := sessions.Current(r.Context(), token)
			if err != nil {
				log.Printf("Unauthenticated request %s %s", r.Method, r.URL)
				if wantsHTML(r) {
					http.Redirect(w, r, "/login?from="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
					return
				}
				http.Error(w, "Não autenticado", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), controllers.UserKey, user)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
