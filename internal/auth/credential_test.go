package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCookieValue(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
		err      error
	}{
		{"json object is compacted", "{ \"token\": \"abc123\" }\n", `{"token":"abc123"}`, nil},
		{"plain text becomes json string", "abc123", `"abc123"`, nil},
		{"empty body", "  ", "", ErrEmptyToken},
		{"null body", "null", "", ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := EncodeCookieValue([]byte(tt.body))
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestParseCookieValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		token string
	}{
		{"empty", "", ""},
		{"token field", `{"token":"abc123"}`, "abc123"},
		{"access token field", `{"accessToken":"xyz","user":{"id":1}}`, "xyz"},
		{"snake case field", `{"access_token":"snake"}`, "snake"},
		{"object without token", `{"id":1}`, ""},
		{"json string", `"abc123"`, "abc123"},
		{"raw value", "abc123", "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cred := ParseCookieValue(tt.value)
			assert.Equal(t, tt.token, cred.Token)
			assert.Equal(t, tt.value, cred.Raw)
		})
	}
}

func TestCredential_Fingerprint(t *testing.T) {
	assert.Equal(t, "anonymous", Credential{}.Fingerprint())

	a := ParseCookieValue(`{"token":"abc"}`)
	b := ParseCookieValue(`"abc"`)
	c := ParseCookieValue(`{"token":"other"}`)

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.Len(t, a.Fingerprint(), 16)
}

func TestEncodeThenParse(t *testing.T) {
	value, err := EncodeCookieValue([]byte(`{"token": "abc123"}`))
	require.NoError(t, err)
	assert.Equal(t, "abc123", ParseCookieValue(value).Token)
}
