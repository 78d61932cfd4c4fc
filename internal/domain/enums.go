package domain

import (
	"fmt"
	"strings"
)

type BudgetLevel string

const (
	BudgetEco      BudgetLevel = "ECO"
	BudgetModerate BudgetLevel = "MODERATE"
	BudgetHigh     BudgetLevel = "HIGH"
	BudgetLuxury   BudgetLevel = "LUXURY"
)

// Rank orders budget levels from cheapest to most expensive. Unknown or
// missing levels rank 0, below ECO.
func (b BudgetLevel) Rank() int {
	switch b {
	case BudgetEco:
		return 1
	case BudgetModerate:
		return 2
	case BudgetHigh:
		return 3
	case BudgetLuxury:
		return 4
	default:
		return 0
	}
}

func ParseBudgetLevel(raw string) (BudgetLevel, error) {
	level := BudgetLevel(strings.ToUpper(strings.TrimSpace(raw)))
	if level.Rank() == 0 {
		return "", fmt.Errorf("unknown budget level %q", raw)
	}
	return level, nil
}

type TravelStyle string

const (
	TravelSolo    TravelStyle = "SOLO"
	TravelCouple  TravelStyle = "COUPLE"
	TravelFamily  TravelStyle = "FAMILY"
	TravelFriends TravelStyle = "FRIENDS"
)

func ParseTravelStyle(raw string) (TravelStyle, error) {
	style := TravelStyle(strings.ToUpper(strings.TrimSpace(raw)))
	switch style {
	case TravelSolo, TravelCouple, TravelFamily, TravelFriends:
		return style, nil
	default:
		return "", fmt.Errorf("unknown travel style %q", raw)
	}
}
