// File: internal/service/token.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims 定義 session token 負載內容
// token 只是 session 的把手，不代表任何授權
type SessionClaims struct {
	SessionID string `json:"sid"`
	UserID    string `json:"uid"`
	jwt.RegisteredClaims
}

type Tokens struct {
	secret []byte
	ttl    time.Duration
}

var parseWithClaims = jwt.ParseWithClaims

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

// Issue 為 session 產生 JWT，回傳 token 與到期時間
func (t *Tokens) Issue(sess *Session) (string, time.Time, error) {
	if len(t.secret) == 0 {
		return "", time.Time{}, errors.New("JWT secret not set")
	}

	now := timeNow()
	exp := now.Add(t.ttl)
	claims := SessionClaims{
		SessionID: sess.ID,
		UserID:    sess.User.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.User.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Verify 驗證並解析 session token
func (t *Tokens) Verify(tokenString string) (*SessionClaims, error) {
	if len(t.secret) == 0 {
		return nil, errors.New("JWT secret not set")
	}

	token, err := parseWithClaims(tokenString, &SessionClaims{}, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
