package middleware

import (
	"brand_site/internal/model"
	"brand_site/pkg/resp"
	"brand_site/pkg/token"
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	localeKey
)

// LoginPath - куда отправлять неаутентифицированного пользователя
const LoginPath = "/login"

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// Auth разбирает "Authorization: Bearer <jwt>" и кладёт ID пользователя в контекст.
// Запрос без токена или с плохим токеном проходит дальше анонимно
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := token.VerifyToken(raw, secretKey)
			if err != nil {
				log.Debug().Err(err).Msg("rejected access token")
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.Subject)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, value, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

// WriteUnauthenticated - 401 с указанием, куда перенаправить пользователя
func WriteUnauthenticated(w http.ResponseWriter) {
	resp.WriteJSONResponse(w, http.StatusUnauthorized, resp.ErrorResponse{
		Error:    model.ErrUnauthenticated.Error(),
		Redirect: LoginPath,
	})
}

// RequireAuth пропускает только аутентифицированные запросы
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserIDFromContext(r.Context()); !ok {
			WriteUnauthenticated(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type ProfileGetter interface {
	GetProfile(ctx context.Context, userID string) (*model.Profile, error)
}

// RequireAdmin пропускает только пользователей с ролью admin
func RequireAdmin(profiles ProfileGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserIDFromContext(r.Context())
			if !ok {
				WriteUnauthenticated(w)
				return
			}

			profile, err := profiles.GetProfile(r.Context(), userID)
			if err != nil {
				if errors.Is(err, model.ErrProfileNotFound) {
					resp.WriteError(w, http.StatusForbidden, model.ErrForbidden.Error())
					return
				}
				log.Error().Err(err).Str("user_id", userID).Msg("failed to load profile for admin check")
				resp.WriteError(w, http.StatusInternalServerError, "internal error")
				return
			}

			if profile.Role != model.RoleAdmin {
				resp.WriteError(w, http.StatusForbidden, model.ErrForbidden.Error())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
