package domain

type User struct {
	ID                 string       `json:"id,omitempty"`
	Name               string       `json:"name"`
	Email              string       `json:"email"`
	Location           *Location    `json:"location,omitempty"`
	Roles              []string     `json:"roles"`
	Preferences        []string     `json:"preferences"`
	TravelStyle        *TravelStyle `json:"travel_style,omitempty"`
	BudgetLevel        *BudgetLevel `json:"budget_level,omitempty"`
	FavoriteContinents []string     `json:"favorite_continents,omitempty"`
}

// HasMatchingCriteria reports whether the profile carries enough input for
// the remote matcher to rank destinations.
func (u *User) HasMatchingCriteria() bool {
	if u == nil {
		return false
	}
	return u.TravelStyle != nil || u.BudgetLevel != nil || len(u.Preferences) > 0
}

type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type Registration struct {
	Name     string
	Email    string
	Password string
	Location RegistrationLocation
}

type RegistrationLocation struct {
	City        string `json:"city"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
	Continent   string `json:"continent"`
}

type Preferences struct {
	Tags               []string    `json:"tags"`
	TravelStyle        TravelStyle `json:"travel_style"`
	BudgetLevel        BudgetLevel `json:"budget_level"`
	FavoriteContinents []string    `json:"favoriteContinents"`
}
