package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/DRSN-tech/store-backend/internal/domain"
	"github.com/DRSN-tech/store-backend/internal/usecase"
	"github.com/DRSN-tech/store-backend/pkg/e"
	"github.com/DRSN-tech/store-backend/pkg/logger"
	"github.com/go-chi/chi/v5/middleware"
)

type ctxKey int

const identityKey ctxKey = iota

// TokenParser проверяет bearer-токен и возвращает email из него.
type TokenParser interface {
	Parse(raw string) (string, error)
}

// Guard содержит проверки доступа: наличие валидного токена и роль admin.
type Guard struct {
	tokens TokenParser
	users  usecase.UserUC
	logger logger.Logger
}

func NewGuard(tokens TokenParser, users usecase.UserUC, logger logger.Logger) *Guard {
	return &Guard{tokens: tokens, users: users, logger: logger}
}

// RequireToken пропускает запрос только с валидным "Authorization: Bearer <token>".
// Нет заголовка: 401, токен не прошёл проверку: 403.
func (g *Guard) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r)
		if !ok {
			writeError(w, r, g.logger, e.ErrUnauthorized)
			return
		}

		email, err := g.tokens.Parse(raw)
		if err != nil {
			writeError(w, r, g.logger, err)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, domain.Identity{Email: email})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin должен стоять после RequireToken. Неизвестный пользователь считается не админом.
func (g *Guard) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			writeError(w, r, g.logger, e.ErrUnauthorized)
			return
		}

		isAdmin, err := g.users.IsAdmin(r.Context(), identity.Email)
		if err != nil {
			writeError(w, r, g.logger, err)
			return
		}
		if !isAdmin {
			writeError(w, r, g.logger, e.Wrap(identity.Email, e.ErrNotAdmin))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	return identity, ok
}

func bearerToken(r *http.Request) (string, bool) {
	const prefix = "bearer "

	header := r.Header.Get("Authorization")
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

// RequestLogger логирует каждый запрос после его обработки.
func RequestLogger(log logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				log.Infof("%s %s status=%d bytes=%d duration=%s request_id=%s",
					r.Method, r.URL.Path, ww.Status(), ww.BytesWritten(), time.Since(start), middleware.GetReqID(r.Context()))
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
