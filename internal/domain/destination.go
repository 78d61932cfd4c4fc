package domain

import "math"

type Location struct {
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	CountryCode string   `json:"countryCode,omitempty"`
	Continent   string   `json:"continent,omitempty"`
}

type Destination struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Description        string        `json:"description"`
	Images             []string      `json:"images,omitempty"`
	Location           Location      `json:"location"`
	OfficialTags       []string      `json:"official_tags"`
	AverageDailyCost   float64       `json:"average_daily_cost"`
	BudgetLevel        BudgetLevel   `json:"budget_level"`
	BestMonths         []int         `json:"best_months"`
	CompatibleStyles   []TravelStyle `json:"compatible_styles"`
	Rating             float64       `json:"rating"`
	ReviewCount        int           `json:"review_count"`
	AIScoreCleanliness *float64      `json:"ai_score_cleanliness,omitempty"`
	AIScorePrice       *float64      `json:"aiScore_price,omitempty"`
	CommunityTags      []string      `json:"community_tags,omitempty"`
}

// CoverImage returns the first image of the destination, or an empty string.
func (d Destination) CoverImage() string {
	if len(d.Images) == 0 {
		return ""
	}
	return d.Images[0]
}

type DestinationMatch struct {
	Destination
	MatchScore float64 `json:"match_score"`
}

// RoundedScore is the match score rounded to the nearest whole percent.
func (m DestinationMatch) RoundedScore() int {
	return int(math.Round(m.MatchScore))
}

// SearchParams are the filters evaluated by the remote search endpoint.
type SearchParams struct {
	Query     string `json:"q,omitempty"`
	Continent string `json:"continent,omitempty"`
	Tag       string `json:"tag,omitempty"`
	Style     string `json:"style,omitempty"`
	Budget    string `json:"budget,omitempty"`
}

var monthAbbreviations = [...]string{"Jan", "Fév", "Mar", "Avr", "Mai", "Juin", "Juil", "Aoû", "Sep", "Oct", "Nov", "Déc"}

// MonthNames maps 1-12 month numbers to their short labels. Out of range values are skipped.
func MonthNames(months []int) []string {
	out := make([]string, 0, len(months))
	for _, m := range months {
		if m < 1 || m > 12 {
			continue
		}
		out = append(out, monthAbbreviations[m-1])
	}
	return out
}
