package utils

import (
	"os"
	"testing"
	"time"

	"github.com/Jaydip614/medisync/models"

	"github.com/stretchr/testify/assert"
)

func TestGenerateJWT_SubjectIsAuthID(t *testing.T) {
	os.Setenv("JWT_SECRET", "test_jwt_secret")
	defer os.Unsetenv("JWT_SECRET")

	user := models.User{
		ID:     "internal-uuid",
		AuthID: "usr_3f2e1d0c",
		Role:   models.PatientRole,
	}

	token, err := GenerateJWT(user, 1)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := DecodeJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "usr_3f2e1d0c", claims["sub"])
	assert.Equal(t, "patient", claims["role"])

	exp := int64(claims["exp"].(float64))
	assert.Greater(t, exp, time.Now().Unix())
}

func TestDecodeJWT_InvalidToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "test_jwt_secret")
	defer os.Unsetenv("JWT_SECRET")

	_, err := DecodeJWT("not.a.token")
	assert.Error(t, err)
}

func TestDecodeJWT_WrongSecret(t *testing.T) {
	os.Setenv("JWT_SECRET", "test_jwt_secret")
	token, _ := GenerateJWT(models.User{AuthID: "usr_abc"}, 1)

	os.Setenv("JWT_SECRET", "another_secret")
	defer os.Unsetenv("JWT_SECRET")

	_, err := DecodeJWT(token)
	assert.Error(t, err)
}
