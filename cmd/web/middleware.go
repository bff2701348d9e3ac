package main

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"haven/internal/session"
)

const sessionCookie = "session"

func (app *application) BasicAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("authorization header is missing"))
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Basic" {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("authorization header is malformed"))
				return
			}

			decoded, err := base64.StdEncoding.DecodeString(parts[1])
			if err != nil {
				app.unauthorizedBasicErrorResponse(w, r, err)
				return
			}

			username := app.config.auth.basic.user
			pass := app.config.auth.basic.pass

			creds := strings.SplitN(string(decoded), ":", 2)
			if username == "" || len(creds) != 2 || creds[0] != username || creds[1] != pass {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("invalid credentials"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// sessionToken returns the bearer token or, failing that, the session cookie.
func sessionToken(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return "", errors.New("authorization header is malformed")
		}
		return parts[1], nil
	}

	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value, nil
	}
	return "", nil
}

// SessionMiddleware resolves the signed-in user, if any. Viewing a spot never
// requires a session, so a bad token only downgrades the request to anonymous.
func (app *application) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/v1/health") || strings.HasPrefix(r.URL.Path, "/v1/debug") {
			next.ServeHTTP(w, r)
			return
		}

		token, err := sessionToken(r)
		if err != nil {
			app.logger.Debugw("ignoring session", "path", r.URL.Path, "error", err.Error())
			next.ServeHTTP(w, r)
			return
		}
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, err := app.authenticator.UserFromToken(token)
		if err != nil {
			app.logger.Debugw("ignoring session", "path", r.URL.Path, "error", err.Error())
			next.ServeHTTP(w, r)
			return
		}

		ctx := session.WithUser(r.Context(), user, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if getUserFromContext(r) == nil {
			app.unauthorizedErrorResponse(w, r, fmt.Errorf("no valid session"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SameOriginMiddleware refuses requests a browser sent from another site.
// Requests carrying neither Sec-Fetch-Site nor Origin come from non-browser
// clients and pass.
func (app *application) SameOriginMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := app.checkSameOrigin(r); err != nil {
			app.forbiddenResponse(w, r, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (app *application) checkSameOrigin(r *http.Request) error {
	switch r.Header.Get("Sec-Fetch-Site") {
	case "same-origin", "none":
		return nil
	case "cross-site", "same-site":
		return errors.New("cross-site request refused")
	}

	origin := r.Header.Get("Origin")
	if origin == "" {
		return nil
	}
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return fmt.Errorf("cross-site request refused: origin %q", origin)
	}
	if strings.EqualFold(u.Host, r.Host) {
		return nil
	}
	if app.config.apiURL != "" && strings.EqualFold(u.Host, app.config.apiURL) {
		return nil
	}
	return fmt.Errorf("cross-site request refused: origin %q", origin)
}

func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !app.config.rateLimiter.Enabled {
			next.ServeHTTP(w, r)
			return
		}

		if allow, retryAfter := app.rateLimiter.Allow(clientKey(r)); !allow {
			app.rateLimitExceededResponse(w, r, retryAfter)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	if user := getUserFromContext(r); user != nil {
		return fmt.Sprintf("user:%d", user.ID)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "ip:" + r.RemoteAddr
	}
	return "ip:" + host
}

func getUserFromContext(r *http.Request) *session.User {
	return session.FromContext(r.Context())
}
