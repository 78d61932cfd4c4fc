package domain

type ProfileLevel struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// ProfileCompletion scores how much of the matching profile is filled in, out of 100.
func ProfileCompletion(u *User) int {
	if u == nil {
		return 0
	}
	score := 0
	if u.Location != nil && u.Location.City != "" && u.Location.Country != "" {
		score += 25
	}
	if u.TravelStyle != nil {
		score += 25
	}
	if u.BudgetLevel != nil {
		score += 25
	}
	if len(u.FavoriteContinents) > 0 {
		score += 15
	}
	if len(u.Preferences) > 0 {
		score += 10
	}
	return score
}

func LevelForCompletion(score int) ProfileLevel {
	switch {
	case score < 30:
		return ProfileLevel{Label: "Touriste Amateur", Icon: "📸"}
	case score < 60:
		return ProfileLevel{Label: "Voyageur Curieux", Icon: "🧭"}
	case score < 90:
		return ProfileLevel{Label: "Explorateur Averti", Icon: "🌍"}
	default:
		return ProfileLevel{Label: "Maître du Monde", Icon: "🚀"}
	}
}
