package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(4)

	digest, err := h.Hash("pw")
	require.NoError(t, err)
	assert.NotEqual(t, "pw", digest)

	ok, err := h.Compare("pw", digest)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Compare("wrong", digest)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = h.Compare("pw", "not-a-bcrypt-digest")
	assert.Error(t, err)
}

func TestNewBcryptHasherFallsBackToDefaultCost(t *testing.T) {
	assert.Equal(t, DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, DefaultCost, NewBcryptHasher(99).cost)
	assert.Equal(t, 12, NewBcryptHasher(12).cost)
}

func TestJWTCodecRoundTrip(t *testing.T) {
	codec := NewJWTCodec("test-secret", 0)

	token, err := codec.Issue("user-1")
	require.NoError(t, err)

	userID, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	// No expiry is embedded unless a TTL is configured.
	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
	assert.NotNil(t, claims.IssuedAt)
}

func TestJWTCodecRejects(t *testing.T) {
	codec := NewJWTCodec("test-secret", 0)
	other := NewJWTCodec("other-secret", 0)

	foreign, err := other.Issue("user-1")
	require.NoError(t, err)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"foo": "bar"})
	noSubjectStr, err := noSubject.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{UserID: "user-1"})
	hs512Str, err := hs512.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"Wrong Secret", foreign},
		{"Malformed", "malformed.token.here"},
		{"Empty", ""},
		{"Missing User ID", noSubjectStr},
		{"Unexpected Algorithm", hs512Str},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestJWTCodecExpiry(t *testing.T) {
	codec := NewJWTCodec("test-secret", time.Minute)
	issuedAt := time.Now()
	codec.now = func() time.Time { return issuedAt }

	token, err := codec.Issue("user-1")
	require.NoError(t, err)

	_, err = codec.Verify(token)
	require.NoError(t, err)

	codec.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTCodecIssueRequiresSecretAndUser(t *testing.T) {
	_, err := NewJWTCodec("", 0).Issue("user-1")
	assert.Error(t, err)

	_, err = NewJWTCodec("secret", 0).Issue("")
	assert.Error(t, err)
}
