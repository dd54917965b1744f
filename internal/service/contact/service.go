package contact

import (
	"brand_site/internal/model"
	"brand_site/internal/repository"
	"brand_site/internal/service"
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

type serv struct {
	repo repository.ContactRepository
}

func NewContactService(repo repository.ContactRepository) service.ContactService {
	return &serv{repo: repo}
}

// Submit сохраняет сообщение из формы обратной связи
func (s *serv) Submit(ctx context.Context, contact *model.Contact) error {
	contact.Name = strings.TrimSpace(contact.Name)
	contact.Email = strings.ToLower(strings.TrimSpace(contact.Email))
	contact.Message = strings.TrimSpace(contact.Message)

	err := s.repo.CreateContact(ctx, contact)
	if err != nil {
		return err
	}

	log.Info().Str("email", contact.Email).Msg("contact request received")
	return nil
}
