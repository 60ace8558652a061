package server

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"github.com/brk3/habittracker/internal/logger"
)

// hashAPIKey creates a SHA256 hash of an API key for comparison
func hashAPIKey(apiKey string) string {
	hash := sha256.Sum256([]byte(apiKey))
	return fmt.Sprintf("%x", hash)
}

// truncateHash returns a truncated hash for display/logging
// Returns first 16 chars + "..." or the full hash if shorter
func truncateHash(hash string) string {
	if len(hash) <= 16 {
		return hash
	}
	return hash[:16] + "..."
}

// authMiddleware requires "Authorization: Bearer <auth_token>" when an auth
// token is configured, and is a no-op otherwise.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.AuthToken == "" {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			RecordAuthEvent("missing")
			http.Error(w, `{"error":"authorization required"}`, http.StatusUnauthorized)
			return
		}

		got, want := hashAPIKey(token), hashAPIKey(s.cfg.AuthToken)
		if subtle.ConstantTimeCompare([]byte(got), []byte(want)) != 1 {
			RecordAuthEvent("rejected")
			logger.Warn("Rejected API token", "hash", truncateHash(got))
			http.Error(w, `{"error":"invalid token"}`, http.StatusUnauthorized)
			return
		}
		RecordAuthEvent("accepted")
		next.ServeHTTP(w, r)
	})
}
