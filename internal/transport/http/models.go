package http

// ErrorResponse represents a generic error payload.
type ErrorResponse struct {
	Error string `json:"error" example:"Erreur lors du chargement"`
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"secret"`
}

// RegisterRequest is the body of POST /api/v1/auth/register.
type RegisterRequest struct {
	Name        string `json:"name" example:"Ana"`
	Email       string `json:"email" example:"ana@example.com"`
	Password    string `json:"password" example:"secret"`
	City        string `json:"city" example:"Lyon"`
	Country     string `json:"country" example:"France"`
	CountryCode string `json:"country_code" example:"FR"`
	Continent   string `json:"continent" example:"EUROPE"`
}

// PreferencesRequest is the body of PUT /api/v1/profile/preferences.
type PreferencesRequest struct {
	TravelStyle        string   `json:"travel_style" example:"COUPLE"`
	BudgetLevel        string   `json:"budget_level" example:"MODERATE"`
	FavoriteContinents []string `json:"favorite_continents"`
	Tags               []string `json:"tags"`
}

// ReviewRequest is the body of POST /api/v1/destinations/:id/reviews.
type ReviewRequest struct {
	Rating  float64 `json:"rating" example:"4"`
	Content string  `json:"content" example:"Superbe séjour"`
}
