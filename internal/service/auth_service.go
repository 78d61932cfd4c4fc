package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/njprem/DestiMatch_Web/internal/domain"
	"github.com/njprem/DestiMatch_Web/internal/repository/ports"
)

type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	City        string
	Country     string
	CountryCode string
	Continent   string
}

type PreferencesInput struct {
	TravelStyle        string
	BudgetLevel        string
	FavoriteContinents []string
	Tags               []string
}

// AuthService fronts the account endpoints of the remote API. Token storage
// happens in the gateway through the session attached to ctx.
type AuthService struct {
	users ports.UserGateway
}

func NewAuthService(users ports.UserGateway) *AuthService {
	return &AuthService{users: users}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrCredentialsRequired
	}
	return s.users.Login(ctx, email, password)
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.AuthResult, error) {
	reg, err := buildRegistration(in)
	if err != nil {
		return nil, err
	}
	return s.users.Register(ctx, reg)
}

// Logout forgets the local session. The remote API keeps no session state.
func (s *AuthService) Logout(ctx context.Context, storage ports.ClientStorage) error {
	return NewSessionStore(storage).Clear(ctx)
}

func (s *AuthService) UpdatePreferences(ctx context.Context, in PreferencesInput) (*domain.User, error) {
	prefs, err := buildPreferences(in)
	if err != nil {
		return nil, err
	}
	return s.users.UpdatePreferences(ctx, prefs)
}

func buildRegistration(in RegisterInput) (domain.Registration, error) {
	var problems []string
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" {
		problems = append(problems, "name required")
	}
	if email == "" {
		problems = append(problems, "email required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		problems = append(problems, "email invalid")
	}
	if in.Password == "" {
		problems = append(problems, "password required")
	}
	loc := domain.RegistrationLocation{
		City:        strings.TrimSpace(in.City),
		Country:     strings.TrimSpace(in.Country),
		CountryCode: strings.ToUpper(strings.TrimSpace(in.CountryCode)),
	}
	if strings.TrimSpace(in.Continent) != "" {
		continent, ok := domain.ParseContinent(in.Continent)
		if !ok {
			problems = append(problems, "continent unknown")
		}
		loc.Continent = string(continent)
	}
	if len(problems) > 0 {
		return domain.Registration{}, fmt.Errorf("%w: %s", ErrRegistrationValidation, strings.Join(problems, "; "))
	}
	return domain.Registration{
		Name:     name,
		Email:    email,
		Password: in.Password,
		Location: loc,
	}, nil
}

func buildPreferences(in PreferencesInput) (domain.Preferences, error) {
	var problems []string
	style, err := domain.ParseTravelStyle(in.TravelStyle)
	if err != nil {
		problems = append(problems, err.Error())
	}
	budget, err := domain.ParseBudgetLevel(in.BudgetLevel)
	if err != nil {
		problems = append(problems, err.Error())
	}
	continents := make([]string, 0, len(in.FavoriteContinents))
	for _, raw := range in.FavoriteContinents {
		c, ok := domain.ParseContinent(raw)
		if !ok {
			problems = append(problems, fmt.Sprintf("unknown continent %q", raw))
			continue
		}
		continents = appendUnique(continents, string(c))
	}
	tags := make([]string, 0, len(in.Tags))
	for _, tag := range in.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = appendUnique(tags, tag)
		}
	}
	if len(problems) > 0 {
		return domain.Preferences{}, fmt.Errorf("%w: %s", ErrPreferencesValidation, strings.Join(problems, "; "))
	}
	return domain.Preferences{
		Tags:               tags,
		TravelStyle:        style,
		BudgetLevel:        budget,
		FavoriteContinents: continents,
	}, nil
}

func appendUnique(items []string, v string) []string {
	for _, existing := range items {
		if existing == v {
			return items
		}
	}
	return append(items, v)
}
