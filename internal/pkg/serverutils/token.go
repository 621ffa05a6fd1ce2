package serverutils

import (
	"os"

	"github.com/Ishowar84/urban-plate-backend/internal/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is the principal resolved from a bearer token.
type TokenClaims struct {
	UserId   uuid.UUID
	Username string
	Role     string
}

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return []byte(secret)
}

// VerifyToken validates a raw token string (signature + expiry) and resolves
// its claims. It is the single verification entry point, shared by the HTTP
// middleware and the websocket handshake, which cannot carry an
// Authorization header.
func VerifyToken(tokenStr string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperror.Authentication("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, apperror.Wrap(apperror.KindAuthentication, "invalid token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperror.Authentication("invalid claims")
	}

	userIdStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, apperror.Authentication("token missing user_id")
	}
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return nil, apperror.Authentication("invalid user id in token")
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	return &TokenClaims{
		UserId:   userId,
		Username: username,
		Role:     role,
	}, nil
}

// SignToken issues an HS256 token for the given claims map.
func SignToken(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}
