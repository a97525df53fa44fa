package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"gatekeeper/internal/model"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret")
	user := &model.User{
		ID:      uuid.New(),
		Name:    "Test User",
		Email:   "test@example.com",
		Role:    "user",
		Age:     30,
		Country: "FR",
		Gender:  "female",
	}

	before := time.Now()
	token, err := svc.GenerateToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Name, claims.Name)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)
	assert.Equal(t, user.Age, claims.Age)
	assert.Equal(t, user.Country, claims.Country)
	assert.Equal(t, user.Gender, claims.Gender)

	// fixed 1-hour lifetime from issuance
	assert.WithinDuration(t, before.Add(TokenExpiry), claims.ExpiresAt.Time, 5*time.Second)
	assert.Equal(t, TokenExpiry, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_ValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateToken(&model.User{ID: uuid.New(), Email: "a@example.com"})
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateRejectsExpiredToken(t *testing.T) {
	secret := "test-secret"
	claims := &Claims{
		UserID: uuid.NewString(),
		Email:  "test@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)

	_, err = NewJWTService(secret).ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateRejectsWrongAlgorithm(t *testing.T) {
	// a token signed with "none" must never validate
	claims := &Claims{Email: "test@example.com"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = NewJWTService("test-secret").ValidateToken(token)
	assert.Error(t, err)
}
