package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirimkilat/kirimkilat/internal/pkg/models"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60, // 60 minutes
			Issuer:     "kirimkilat-test",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name   string
		userID uuid.UUID
		email  string
		role   string
	}{
		{
			name:   "Valid token generation",
			userID: uuid.New(),
			email:  "ops@kirimkilat.id",
			role:   "admin",
		},
		{
			name:   "Empty email",
			userID: uuid.New(),
			email:  "",
			role:   "admin",
		},
		{
			name:   "Zero UUID",
			userID: uuid.UUID{},
			email:  "ops@kirimkilat.id",
			role:   "admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := getTestConfig()
			tokenString, expiresAt, err := GenerateToken(tt.userID, tt.email, tt.role, config)

			assert.NoError(t, err)
			assert.NotEmpty(t, tokenString)
			assert.Greater(t, expiresAt, time.Now().Unix())

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				return []byte(config.JWT.Secret), nil
			})
			require.NoError(t, err)
			require.True(t, token.Valid)

			claims, ok := token.Claims.(jwt.MapClaims)
			require.True(t, ok)

			assert.Equal(t, tt.userID.String(), claims["user_id"])
			assert.Equal(t, tt.email, claims["email"])
			assert.Equal(t, tt.role, claims["role"])
			assert.Equal(t, config.JWT.Issuer, claims["iss"])
			assert.Equal(t, float64(expiresAt), claims["exp"])
		})
	}
}

func TestGenerateToken_ExpirationTime(t *testing.T) {
	config := getTestConfig()
	config.JWT.Expiration = 30 // 30 minutes

	beforeGeneration := time.Now()
	tokenString, expiresAt, err := GenerateToken(uuid.New(), "ops@kirimkilat.id", "admin", config)
	afterGeneration := time.Now()

	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	expectedMin := beforeGeneration.Add(30 * time.Minute).Unix()
	expectedMax := afterGeneration.Add(30 * time.Minute).Unix()

	assert.GreaterOrEqual(t, expiresAt, expectedMin)
	assert.LessOrEqual(t, expiresAt, expectedMax)
}

func TestValidateToken(t *testing.T) {
	config := getTestConfig()
	userID := uuid.New()
	email := "ops@kirimkilat.id"
	role := "admin"

	validToken, _, err := GenerateToken(userID, email, role, config)
	require.NoError(t, err)

	tests := []struct {
		name        string
		tokenString string
		secret      string
		expectError bool
		setupToken  func() string
	}{
		{
			name:        "Valid token",
			tokenString: validToken,
			secret:      config.JWT.Secret,
			expectError: false,
		},
		{
			name:        "Invalid secret",
			tokenString: validToken,
			secret:      "wrong-secret",
			expectError: true,
		},
		{
			name:        "Malformed token",
			tokenString: "invalid.token.string",
			secret:      config.JWT.Secret,
			expectError: true,
		},
		{
			name:        "Empty token",
			tokenString: "",
			secret:      config.JWT.Secret,
			expectError: true,
		},
		{
			name: "Expired token",
			setupToken: func() string {
				expiredConfig := *config
				expiredConfig.JWT.Expiration = -1
				token, _, _ := GenerateToken(userID, email, role, &expiredConfig)
				return token
			},
			secret:      config.JWT.Secret,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenToTest := tt.tokenString
			if tt.setupToken != nil {
				tokenToTest = tt.setupToken()
			}

			claims, err := ValidateToken(tokenToTest, tt.secret)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, claims)

				claimsMap := *claims
				assert.Equal(t, userID.String(), claimsMap["user_id"])
				assert.Equal(t, email, claimsMap["email"])
				assert.Equal(t, role, claimsMap["role"])
				assert.Equal(t, config.JWT.Issuer, claimsMap["iss"])
			}
		})
	}
}
