package usecase

import (
	"chief-of-staff-api/internal/draft/repository"
	"chief-of-staff-api/pkg/log"
)

// implUseCase is the private implementation of draft.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new draft UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
