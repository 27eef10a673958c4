// Package token выпускает и проверяет bearer-токены (HS256 JWT) с email пользователя.
package token

import (
	"errors"
	"time"

	"github.com/DRSN-tech/store-backend/pkg/e"
	"github.com/golang-jwt/jwt/v4"
)

// Claims — полезная нагрузка токена.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Manager подписывает и проверяет токены общим секретом.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue выпускает новый токен для email.
func (m *Manager) Issue(email string) (string, error) {
	now := m.now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", e.Wrap("token.Issue", err)
	}

	return signed, nil
}

// Parse проверяет подпись и срок действия, возвращает email из токена.
// Любая ошибка проверки сводится к e.ErrForbidden.
func (m *Manager) Parse(raw string) (string, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", e.Wrap("token.Parse", errors.Join(e.ErrForbidden, err))
	}

	if claims.Email == "" {
		return "", e.Wrap("token.Parse: empty email", e.ErrForbidden)
	}

	return claims.Email, nil
}
