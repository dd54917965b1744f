package post

import (
	dto "brand_site/internal/api/dto/post"
	"brand_site/internal/converter"
	"brand_site/internal/middleware"
	"brand_site/internal/model"
	"brand_site/internal/service"
	"brand_site/pkg/req"
	"brand_site/pkg/resp"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type HandlerDeps struct {
	Serv service.PostService
}

type Handler struct {
	serv service.PostService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Landing - главная: текущий язык и меню страниц
func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	landing, err := h.serv.Landing(r.Context(), middleware.LocaleFromContext(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLandingResponse(*landing))
}

func (h *Handler) Pages(w http.ResponseWriter, r *http.Request) {
	landing, err := h.serv.Landing(r.Context(), middleware.LocaleFromContext(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLandingResponse(*landing).Pages)
}

// SetLocale переключает язык сайта
func (h *Handler) SetLocale(w http.ResponseWriter, r *http.Request) {
	payload, err := req.DecodeAndValidate[dto.LocaleRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "unsupported locale")
		return
	}

	middleware.SetLocaleCookie(w, payload.Locale)

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.serv.GetPublishedPost(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPostResponse(*post))
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	payload, err := req.DecodeAndValidate[dto.PostRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	post, err := h.serv.CreatePost(r.Context(), converter.ToPostModel(payload))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToPostResponse(*post))
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		resp.WriteError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	payload, err := req.DecodeAndValidate[dto.PostRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	in := converter.ToPostModel(payload)
	in.ID = id

	post, err := h.serv.UpdatePost(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPostResponse(*post))
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrUnauthenticated):
		middleware.WriteUnauthenticated(w)
	case errors.Is(err, model.ErrPostNotFound):
		resp.WriteError(w, http.StatusNotFound, model.ErrPostNotFound.Error())
	case errors.Is(err, model.ErrSlugTaken):
		resp.WriteError(w, http.StatusConflict, model.ErrSlugTaken.Error())
	case errors.Is(err, model.ErrInvalidPost):
		resp.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg("post request failed")
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
