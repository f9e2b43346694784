package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/a2sh3r/fundledger/internal/hash"
)

// NewHashMiddleware checks the HashSHA256 header of a request body against the shared key.
// Requests without the header pass through untouched.
func NewHashMiddleware(key string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			received := r.Header.Get(hash.HeaderName)
			if key == "" || received == "" || r.Body == nil {
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				WriteError(w, http.StatusBadRequest, CodeValidation, "failed to read request body")
				return
			}
			_ = r.Body.Close()

			if err := hash.VerifyHash(string(body), key, received); err != nil {
				WriteError(w, http.StatusBadRequest, CodeValidation, "request hash mismatch")
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			next.ServeHTTP(w, r)
		})
	}
}
