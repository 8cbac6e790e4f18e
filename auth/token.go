package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// Claims point a signed token at its session record. Tokens carry no
// expiry: a session lives until logout deletes the record it references.
type Claims struct {
	UserID    string `json:"userID"`
	SessionID string `json:"sessionID"`
	jwt.StandardClaims
}

func signToken(secret []byte, userID, sessionID string) (string, error) {
	claims := &Claims{
		UserID:    userID,
		SessionID: sessionID,
		StandardClaims: jwt.StandardClaims{
			IssuedAt: time.Now().Unix(),
			Issuer:   "lead_management_system",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func parseToken(secret []byte, tokenStr string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		if err == jwt.ErrSignatureInvalid {
			return nil, errors.New("invalid token signature")
		}
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
