package middleware

import (
	"net/http"
	"slices"

	"github.com/gorilla/mux"
)

// CORS allows the configured origins and answers preflight requests. Listed
// origins are echoed with credentials allowed; "*" admits any other origin
// without credentials.
func CORS(origins []string) mux.MiddlewareFunc {
	allowAny := slices.Contains(origins, "*")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			h := w.Header()
			switch {
			case origin == "":
			case slices.Contains(origins, origin):
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Add("Vary", "Origin")
				setAllowed(h)
			case allowAny:
				h.Set("Access-Control-Allow-Origin", "*")
				setAllowed(h)
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func setAllowed(h http.Header) {
	h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
	h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
}
