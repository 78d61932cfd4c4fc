package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/njprem/DestiMatch_Web/internal/domain"
	"github.com/njprem/DestiMatch_Web/internal/repository/ports"
)

const HistoryKey = "destimatch_history"

// HistoryService keeps the most recently viewed destinations of a visitor.
// It never reports failures to callers.
type HistoryService struct{}

func NewHistoryService() *HistoryService {
	return &HistoryService{}
}

func (s *HistoryService) Record(ctx context.Context, storage ports.ClientStorage, dest domain.Destination) {
	if dest.ID == "" {
		return
	}
	items, err := s.load(ctx, storage)
	if err != nil {
		log.Printf("history: record %s: %v", dest.ID, err)
		return
	}
	items = domain.PushHistory(items, domain.NewHistoryItem(dest))
	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("history: encode: %v", err)
		return
	}
	if err := storage.Set(ctx, HistoryKey, string(data)); err != nil {
		log.Printf("history: write: %v", err)
	}
}

func (s *HistoryService) List(ctx context.Context, storage ports.ClientStorage) []domain.HistoryItem {
	items, err := s.load(ctx, storage)
	if err != nil {
		log.Printf("history: list: %v", err)
		return []domain.HistoryItem{}
	}
	return items
}

// load returns an empty list for a missing or corrupt entry; corrupt entries
// are removed. Only backend read failures are returned.
func (s *HistoryService) load(ctx context.Context, storage ports.ClientStorage) ([]domain.HistoryItem, error) {
	raw, err := storage.Get(ctx, HistoryKey)
	if err != nil {
		if errors.Is(err, ports.ErrKeyNotFound) {
			return []domain.HistoryItem{}, nil
		}
		return nil, err
	}
	var items []domain.HistoryItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("history: corrupt entry removed: %v", err)
		if err := storage.Delete(ctx, HistoryKey); err != nil {
			log.Printf("history: remove corrupt entry: %v", err)
		}
		return []domain.HistoryItem{}, nil
	}
	if items == nil {
		items = []domain.HistoryItem{}
	}
	return items, nil
}
