package domain

type Review struct {
	ID               string            `json:"id,omitempty"`
	Author           string            `json:"author"`
	UserEmail        string            `json:"user_email"`
	DestinationID    string            `json:"destination_id"`
	Rating           float64           `json:"rating"`
	Content          string            `json:"content"`
	Date             string            `json:"date"`
	AspectSentiments map[string]string `json:"aspect_sentiments,omitempty"`
	AIKeywords       []string          `json:"ai_keywords,omitempty"`
}

const (
	MinReviewRating = 0
	MaxReviewRating = 5
)
