package auth

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
)

// ErrEmptyToken is returned when a signup response carries no body to store
var ErrEmptyToken = errors.New("empty token body")

var tokenFields = []string{"token", "accessToken", "access_token"}

// Credential is the auth token the HTTP client presents to the remote API.
// Raw is the cookie value as stored, Token the bearer value derived from it.
type Credential struct {
	Token string
	Raw   string
}

// IsZero reports whether no token is available
func (c Credential) IsZero() bool {
	return c.Token == ""
}

// Fingerprint returns a short stable identifier for the credential
func (c Credential) Fingerprint() string {
	if c.IsZero() {
		return "anonymous"
	}
	sum := sha256.Sum256([]byte(c.Token))
	return hex.EncodeToString(sum[:8])
}

// EncodeCookieValue serializes a signup response body for storage in the token cookie
func EncodeCookieValue(body []byte) (string, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", ErrEmptyToken
	}

	if json.Valid(trimmed) {
		var buf bytes.Buffer
		if err := json.Compact(&buf, trimmed); err != nil {
			return "", err
		}
		return buf.String(), nil
	}

	encoded, err := json.Marshal(string(trimmed))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// ParseCookieValue derives a credential from a stored token cookie
func ParseCookieValue(value string) Credential {
	cred := Credential{Raw: value}
	if value == "" {
		return cred
	}

	var object map[string]interface{}
	if err := json.Unmarshal([]byte(value), &object); err == nil && object != nil {
		for _, field := range tokenFields {
			if token, ok := object[field].(string); ok && token != "" {
				cred.Token = token
				return cred
			}
		}
		return cred
	}

	var token string
	if err := json.Unmarshal([]byte(value), &token); err == nil {
		cred.Token = token
		return cred
	}

	cred.Token = value
	return cred
}
