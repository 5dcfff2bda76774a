package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "disha-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService(time.Hour)

	token, expiresIn, err := svc.GenerateToken("user-1", "21BCS101", "asha@example.edu", "student")
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "21BCS101", claims.ScholarNo)
	assert.Equal(t, "asha@example.edu", claims.Email)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "disha-test", claims.Issuer)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := testService(-time.Minute)
	token, _, err := svc.GenerateToken("user-1", "21BCS101", "asha@example.edu", "student")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := testService(time.Hour).GenerateToken("user-1", "", "asha@example.edu", "student")
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different", AccessTokenExp: time.Hour})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("bearer abc")
	require.NoError(t, err, "scheme comparison is case insensitive")
	assert.Equal(t, "abc", token)

	for _, bad := range []string{"", "abc.def.ghi", "Basic abc"} {
		_, err := ExtractBearerToken(bad)
		assert.ErrorIs(t, err, ErrInvalidFormat)
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("secret123"))
	assert.ErrorIs(t, ValidatePassword("abc"), ErrPasswordPolicy)
	assert.ErrorIs(t, ValidatePassword(strings.Repeat("x", MaxPasswordLength+1)), ErrPasswordPolicy)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "secret124"))
	assert.False(t, CheckPassword("", "secret123"))
}
