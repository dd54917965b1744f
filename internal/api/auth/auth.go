package auth

import (
	dto "brand_site/internal/api/dto/auth"
	"brand_site/internal/converter"
	"brand_site/internal/model"
	"brand_site/internal/service"
	"brand_site/pkg/req"
	"brand_site/pkg/resp"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	sessionIDCookie    = "session_id"
	refreshTokenCookie = "refresh_token"
	refreshCookiePath  = "/auth"
)

type HandlerDeps struct {
	Serv service.AuthService
	// Срок жизни cookie сессии и refresh токена
	SessionTTL time.Duration
	// Secure-флаг для cookies, выключается только локально
	SecureCookies bool
}

type Handler struct {
	serv          service.AuthService
	sessionTTL    time.Duration
	secureCookies bool
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:          deps.Serv,
		sessionTTL:    deps.SessionTTL,
		secureCookies: deps.SecureCookies,
	}
}

// Register создаёт пользователя, открывает сессию,
// возвращает access_token, а session_id и refresh_token кладёт в cookies
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.DecodeAndValidate[dto.RegisterRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	data, err := h.serv.Register(
		r.Context(),
		converter.RegisterRequestToUserModel(&requestBody),
	)
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			resp.WriteError(w, http.StatusConflict, model.ErrEmailTaken.Error())
			return
		}
		log.Error().Err(err).Msg("register failed")
		resp.WriteError(w, http.StatusInternalServerError, "register failed")
		return
	}

	h.setSessionCookies(w, data)

	resp.WriteJSONResponse(w, http.StatusCreated, dto.TokenResponse{AccessToken: data.AccessToken})
}

// Login создаёт сессию и возвращает access_token
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.DecodeAndValidate[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	data, err := h.serv.Login(r.Context(), converter.LoginRequestToUserModel(&requestBody))
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			resp.WriteError(w, http.StatusUnauthorized, model.ErrInvalidCredentials.Error())
			return
		}
		log.Error().Err(err).Msg("login failed")
		resp.WriteError(w, http.StatusInternalServerError, "login failed")
		return
	}

	h.setSessionCookies(w, data)

	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{AccessToken: data.AccessToken})
}

// Refresh выдаёт новый access_token по session_id и refresh_token из cookies
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	session, err := r.Cookie(sessionIDCookie)
	if err != nil {
		resp.WriteError(w, http.StatusUnauthorized, "no session")
		return
	}
	refresh, err := r.Cookie(refreshTokenCookie)
	if err != nil {
		resp.WriteError(w, http.StatusUnauthorized, "no refresh token")
		return
	}

	accessToken, err := h.serv.Refresh(r.Context(), &model.AuthData{
		SessionID:    session.Value,
		RefreshToken: refresh.Value,
	})
	if err != nil {
		log.Info().Err(err).Msg("refresh rejected")
		resp.WriteError(w, http.StatusUnauthorized, "refresh failed")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{AccessToken: accessToken})
}

// Logout закрывает сессию по session_id
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(sessionIDCookie)
	if err != nil {
		resp.WriteError(w, http.StatusUnauthorized, "no session")
		return
	}

	err = h.serv.Logout(r.Context(), c.Value)
	if err != nil {
		log.Error().Err(err).Msg("logout failed")
		resp.WriteError(w, http.StatusInternalServerError, "logout failed")
		return
	}

	h.deleteCookie(w, sessionIDCookie, "/")
	h.deleteCookie(w, refreshTokenCookie, refreshCookiePath)

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setSessionCookies(w http.ResponseWriter, data *model.AuthData) {
	maxAge := int(h.sessionTTL.Seconds())

	http.SetCookie(w, &http.Cookie{
		Name:     sessionIDCookie,
		Value:    data.SessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   maxAge,
	})

	// refresh_token нужен только ручкам /auth
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    data.RefreshToken,
		Path:     refreshCookiePath,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

func (h *Handler) deleteCookie(w http.ResponseWriter, name, path string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
