package contact

import (
	dto "brand_site/internal/api/dto/contact"
	"brand_site/internal/converter"
	"brand_site/internal/service"
	"brand_site/pkg/req"
	"brand_site/pkg/resp"
	"net/http"

	"github.com/rs/zerolog/log"
)

type HandlerDeps struct {
	Serv service.ContactService
}

type Handler struct {
	serv service.ContactService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Submit принимает форму обратной связи
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.DecodeAndValidate[dto.ContactRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	err = h.serv.Submit(r.Context(), converter.ToContactModel(payload))
	if err != nil {
		log.Error().Err(err).Msg("contact submit failed")
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
