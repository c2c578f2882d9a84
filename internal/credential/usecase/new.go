package usecase

import (
	"os"

	"memory-mob/internal/credential"
	"memory-mob/internal/credential/repository"
	"memory-mob/pkg/log"
)

// implUseCase is the private implementation of credential.UseCase.
type implUseCase struct {
	repo   repository.Repository
	getenv func(string) string
	l      log.Logger
}

var _ credential.UseCase = (*implUseCase)(nil)

// New creates a credential UseCase. Stored keys win over the environment fallback.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{repo: repo, getenv: os.Getenv, l: l}
}
