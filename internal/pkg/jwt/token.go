package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/careloop/careloop/internal/pkg/models"
)

// SetPasswordTokenTTL bounds the lifetime of tokens minted after OTP
// verification, scoped to the set-password step only.
const SetPasswordTokenTTL = 5 * time.Minute

// GenerateToken mints a long-lived access token for the given identity and
// role, using the configured expiration
func GenerateToken(userID uuid.UUID, mobileNo string, role models.Role, cfg models.JWTConfig) (string, int64, error) {
	ttl := time.Duration(cfg.Expiration) * time.Minute
	return generate(userID, mobileNo, role, ttl, cfg)
}

// GenerateSetPasswordToken mints a short-lived token valid only long enough
// to complete the set-password step
func GenerateSetPasswordToken(userID uuid.UUID, mobileNo string, role models.Role, cfg models.JWTConfig) (string, int64, error) {
	return generate(userID, mobileNo, role, SetPasswordTokenTTL, cfg)
}

func generate(userID uuid.UUID, mobileNo string, role models.Role, ttl time.Duration, cfg models.JWTConfig) (string, int64, error) {
	expiresAt := time.Now().Add(ttl).Unix()

	claims := jwt.MapClaims{
		"user_id":   userID.String(),
		"mobile_no": mobileNo,
		"role":      string(role),
		"exp":       expiresAt,
		"iss":       cfg.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns the claims
func ValidateToken(tokenString string, secret string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
