package usecase

import (
	"memory-mob/internal/reminder"
	"memory-mob/internal/reminder/repository"
	"memory-mob/pkg/datemath"
	"memory-mob/pkg/log"
)

// implUseCase is the private implementation of reminder.UseCase.
type implUseCase struct {
	repo          repository.Repository
	zone          *datemath.Zone
	defaultChatID string
	l             log.Logger
}

var _ reminder.UseCase = (*implUseCase)(nil)

// New creates a new reminder UseCase implementation. defaultChatID is stored on
// reminders created without a chat; when empty a fresh uuid is used instead.
func New(repo repository.Repository, zone *datemath.Zone, defaultChatID string, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:          repo,
		zone:          zone,
		defaultChatID: defaultChatID,
		l:             l,
	}
}
