package service

import (
	"context"

	"github.com/njprem/DestiMatch_Web/internal/domain"
	"github.com/njprem/DestiMatch_Web/internal/repository/ports"
)

type ProfileOverview struct {
	User       *domain.User         `json:"user"`
	History    []domain.HistoryItem `json:"history"`
	Completion int                  `json:"completion"`
	Level      domain.ProfileLevel  `json:"level"`
}

type ProfileService struct {
	history *HistoryService
}

func NewProfileService(history *HistoryService) *ProfileService {
	return &ProfileService{history: history}
}

// Overview is built from client storage only. It requires a stored user.
func (s *ProfileService) Overview(ctx context.Context, storage ports.ClientStorage) (*ProfileOverview, error) {
	user := NewSessionStore(storage).User(ctx)
	if user == nil {
		return nil, ErrAuthRequired
	}
	score := domain.ProfileCompletion(user)
	return &ProfileOverview{
		User:       user,
		History:    s.history.List(ctx, storage),
		Completion: score,
		Level:      domain.LevelForCompletion(score),
	}, nil
}
