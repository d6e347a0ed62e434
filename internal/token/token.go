// Package token implements a compact signed-claims token: three base64url
// segments (header, claims, HMAC-SHA256 signature) joined by dots. It is
// deliberately self-contained; the security bar is keeping casual users out
// of admin routes, not adversarial-grade protection.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrMalformedToken means the token does not split into three segments
	// or a segment cannot be decoded.
	ErrMalformedToken = errors.New("malformed token")

	// ErrSignatureMismatch means the recomputed signature does not match.
	ErrSignatureMismatch = errors.New("token signature mismatch")

	// ErrTokenExpired means the exp claim is not in the future.
	ErrTokenExpired = errors.New("token expired")
)

// header is fixed for every issued token. encoding/json marshals map keys
// in sorted order, so both segments serialize deterministically.
var header = map[string]string{"alg": "HS256", "typ": "JWT"}

// Issue signs the given claims with the secret and returns the token string.
// An "exp" claim (epoch seconds, now+ttl) is always injected; a negative ttl
// produces an already-expired token.
func Issue(claims map[string]interface{}, secret string, ttl time.Duration) (string, error) {
	payload := make(map[string]interface{}, len(claims)+1)
	for k, v := range claims {
		payload[k] = v
	}
	payload["exp"] = time.Now().Add(ttl).Unix()

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return "", fmt.Errorf("failed to encode token header: %w", err)
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode token claims: %w", err)
	}

	headerSeg := base64.RawURLEncoding.EncodeToString(headerJSON)
	payloadSeg := base64.RawURLEncoding.EncodeToString(payloadJSON)

	message := headerSeg + "." + payloadSeg
	signatureSeg := sign(message, secret)

	return message + "." + signatureSeg, nil
}

// Verify checks the token's shape, signature and expiry against the secret
// and returns the decoded claims. Failures are reported through the
// package's sentinel errors so callers can log the specific reason while
// surfacing a uniform denial.
func Verify(tokenString, secret string) (map[string]interface{}, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, ErrMalformedToken
	}

	headerSeg, payloadSeg, signatureSeg := parts[0], parts[1], parts[2]

	expected := sign(headerSeg+"."+payloadSeg, secret)
	if !hmac.Equal([]byte(signatureSeg), []byte(expected)) {
		return nil, ErrSignatureMismatch
	}

	payloadJSON, err := base64.RawURLEncoding.DecodeString(payloadSeg)
	if err != nil {
		return nil, ErrMalformedToken
	}

	var claims map[string]interface{}
	if err := json.Unmarshal(payloadJSON, &claims); err != nil {
		return nil, ErrMalformedToken
	}

	if exp, ok := claims["exp"]; ok {
		expSeconds, ok := exp.(float64)
		if !ok {
			return nil, ErrMalformedToken
		}
		if int64(expSeconds) <= time.Now().Unix() {
			return nil, ErrTokenExpired
		}
	}

	return claims, nil
}

// sign computes the base64url-encoded HMAC-SHA256 of message under secret.
func sign(message, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
