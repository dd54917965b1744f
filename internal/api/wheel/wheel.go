package wheel

import (
	dto "brand_site/internal/api/dto/wheel"
	"brand_site/internal/converter"
	"brand_site/internal/middleware"
	"brand_site/internal/model"
	"brand_site/internal/service"
	"brand_site/pkg/req"
	"brand_site/pkg/resp"
	wheelGeom "brand_site/pkg/wheel"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
)

type HandlerDeps struct {
	Serv service.WheelService
}

type Handler struct {
	serv service.WheelService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Wheel отдаёт сектора колеса и состояние пользователя
func (h *Handler) Wheel(w http.ResponseWriter, r *http.Request) {
	wheel, err := h.serv.Wheel(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWheelResponse(*wheel))
}

// Result отдаёт выигранный приз, если он есть
func (h *Handler) Result(w http.ResponseWriter, r *http.Request) {
	status, err := h.serv.Status(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatusResponse(*status))
}

// Spin крутит колесо. Повторная попытка получает 409 и уже выигранный приз
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.DecodeAndValidate[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	result, err := h.serv.Spin(r.Context(), converter.ToWheelSpin(payload))
	if err != nil {
		if errors.Is(err, model.ErrAlreadySpun) {
			h.writeAlreadySpun(w, r)
			return
		}
		h.writeError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

// Stats - сколько раз выпал каждый приз
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.serv.Stats(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(stats))
}

func (h *Handler) writeAlreadySpun(w http.ResponseWriter, r *http.Request) {
	body := dto.AlreadySpunResponse{Error: model.ErrAlreadySpun.Error()}

	status, err := h.serv.Status(r.Context())
	if err != nil {
		log.Warn().Err(err).Msg("failed to load existing prize")
	} else if status.Prize != nil {
		prize := converter.ToPrizeResponse(*status.Prize)
		body.Prize = &prize
	}

	resp.WriteJSONResponse(w, http.StatusConflict, body)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrUnauthenticated):
		middleware.WriteUnauthenticated(w)
	case errors.Is(err, model.ErrInvalidPrize):
		resp.WriteError(w, http.StatusBadRequest, model.ErrInvalidPrize.Error())
	case errors.Is(err, wheelGeom.ErrRotationOutOfRange):
		resp.WriteError(w, http.StatusBadRequest, "invalid rotation")
	case errors.Is(err, model.ErrProfileNotFound):
		resp.WriteError(w, http.StatusNotFound, model.ErrProfileNotFound.Error())
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("wheel request failed")
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
