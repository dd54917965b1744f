package middleware

import (
	"context"
	"net/http"
	"strings"
)

const (
	LocaleCookieName = "locale"
	LocaleVI         = "vi"
	LocaleEN         = "en"
	DefaultLocale    = LocaleVI
)

func IsSupportedLocale(l string) bool {
	return l == LocaleVI || l == LocaleEN
}

func LocaleFromContext(ctx context.Context) string {
	l, ok := ctx.Value(localeKey).(string)
	if !ok {
		return DefaultLocale
	}
	return l
}

// Locale определяет язык: cookie, затем Accept-Language, иначе вьетнамский
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale := DefaultLocale

		if c, err := r.Cookie(LocaleCookieName); err == nil && IsSupportedLocale(c.Value) {
			locale = c.Value
		} else if al := strings.ToLower(r.Header.Get("Accept-Language")); strings.HasPrefix(al, LocaleEN) {
			locale = LocaleEN
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), localeKey, locale)))
	})
}

// SetLocaleCookie запоминает выбранный язык на год
func SetLocaleCookie(w http.ResponseWriter, locale string) {
	http.SetCookie(w, &http.Cookie{
		Name:     LocaleCookieName,
		Value:    locale,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   365 * 24 * 60 * 60,
	})
}
