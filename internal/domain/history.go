package domain

const HistoryLimit = 5

type HistoryItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Image   string `json:"image"`
}

func NewHistoryItem(d Destination) HistoryItem {
	return HistoryItem{
		ID:      d.ID,
		Name:    d.Name,
		Country: d.Location.Country,
		Image:   d.CoverImage(),
	}
}

// PushHistory returns a new list with item first, any previous entry with the
// same id removed, truncated to HistoryLimit.
func PushHistory(items []HistoryItem, item HistoryItem) []HistoryItem {
	out := make([]HistoryItem, 0, HistoryLimit)
	out = append(out, item)
	for _, existing := range items {
		if len(out) == HistoryLimit {
			break
		}
		if existing.ID == item.ID {
			continue
		}
		out = append(out, existing)
	}
	return out
}
