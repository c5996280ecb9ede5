package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rookgm/storedesk/internal/models"
)

var ErrNoUserClaim = errors.New("token carries no user id")

// userClaimKeys are claim names the backend has used for user id
var userClaimKeys = []string{"id", "userId", "user_id", "sub"}

// Inspect reads payload of backend bearer token. The signature is not
// verified: the desk holds no backend key and the backend checks the token
// on every request anyway.
func Inspect(token string) (*models.TokenPayload, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	payload := &models.TokenPayload{}
	for _, key := range userClaimKeys {
		if v, ok := claims[key].(string); ok && v != "" {
			payload.UserID = v
			break
		}
	}
	if payload.UserID == "" {
		return nil, ErrNoUserClaim
	}

	if v, ok := claims["storeId"].(string); ok {
		payload.StoreID = v
	}
	if exp, ok := claims["exp"].(float64); ok {
		payload.ExpiresAt = time.Unix(int64(exp), 0)
	}

	return payload, nil
}
