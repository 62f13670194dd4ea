// ABOUTME: CORS middleware for API cross-origin requests
// ABOUTME: Allowlist-based origin checks with OPTIONS preflight handling

package middleware

import "net/http"

// CORSWithConfig returns middleware that adds CORS headers for origins in
// the allowlist. Requests from other origins still reach the handler but
// receive no CORS headers, so browsers block the cross-origin read.
// OPTIONS preflight requests are answered without calling the handler.
func CORSWithConfig(allowedOrigins []string) func(http.HandlerFunc) http.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && allowed[origin] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				w.Header().Set("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next(w, r)
		}
	}
}
