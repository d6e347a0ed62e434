package handlers

import (
	"log"
	"net/http"
	"time"

	"wastesense-backend/internal/token"
	"wastesense-backend/pkg/utils"
)

// CreateToken handles POST /auth/token. It issues a token for a fixed test
// subject with no credential check, a stand-in for a real login flow.
func CreateToken(secret string, ttl time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken, err := token.Issue(map[string]interface{}{"sub": "test_user"}, secret, ttl)
		if err != nil {
			log.Printf("❌ Failed to create token: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "Failed to create token")
			return
		}

		utils.JSON(w, http.StatusOK, map[string]interface{}{
			"access_token": accessToken,
			"token_type":   "bearer",
			"expires_in":   int(ttl.Seconds()),
		})
	}
}
