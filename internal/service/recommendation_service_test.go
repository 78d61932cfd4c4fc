package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/njprem/DestiMatch_Web/internal/domain"
)

func matches(n int) []domain.DestinationMatch {
	out := make([]domain.DestinationMatch, n)
	for i := range out {
		out[i] = domain.DestinationMatch{
			Destination: domain.Destination{ID: fmt.Sprintf("m%d", i)},
			MatchScore:  90.6 - float64(i),
		}
	}
	return out
}

func sessionWithToken(t *testing.T, user *domain.User) *SessionStore {
	t.Helper()
	store := NewSessionStore(newClientStorage())
	if err := store.Save(context.Background(), user, "tok"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return store
}

func TestRecommendationService_RequiresToken(t *testing.T) {
	svc := NewRecommendationService(&fakeDestinations{})
	_, err := svc.Home(context.Background(), NewSessionStore(newClientStorage()))
	if !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
}

func TestRecommendationService_Sections(t *testing.T) {
	dests := &fakeDestinations{matches: matches(10), catalog: numbered(7)}
	budget := domain.BudgetEco
	rec, err := NewRecommendationService(dests).Home(context.Background(), sessionWithToken(t, &domain.User{BudgetLevel: &budget}))
	if err != nil {
		t.Fatalf("Home: %v", err)
	}
	if rec.Top == nil || rec.Top.ID != "m0" || rec.Top.MatchScore != 91 {
		t.Fatalf("unexpected top %+v", rec.Top)
	}
	if len(rec.Others) != 4 || rec.Others[0].ID != "m1" || rec.Others[3].ID != "m4" {
		t.Fatalf("unexpected others %+v", rec.Others)
	}
	if len(rec.Inspiration) != 4 || rec.Inspiration[0].ID != "m5" || rec.Inspiration[3].ID != "m8" {
		t.Fatalf("unexpected inspiration %+v", rec.Inspiration)
	}
	if !equalIDs(rec.Popular, "d02", "d03", "d04", "d05") {
		t.Fatalf("unexpected popular %v", ids(rec.Popular))
	}
	if !rec.HasCriteria {
		t.Fatalf("expected criteria from budget level")
	}
}

func TestRecommendationService_FailuresYieldEmptySections(t *testing.T) {
	dests := &fakeDestinations{matchErr: errUpstream, catalogErr: errUpstream}
	rec, err := NewRecommendationService(dests).Home(context.Background(), sessionWithToken(t, nil))
	if err != nil {
		t.Fatalf("Home: %v", err)
	}
	if rec.Top != nil || len(rec.Others) != 0 || len(rec.Inspiration) != 0 || len(rec.Popular) != 0 {
		t.Fatalf("expected empty sections, got %+v", rec)
	}
	if rec.Others == nil || rec.Popular == nil {
		t.Fatalf("expected empty slices rather than nil")
	}
	if rec.HasCriteria {
		t.Fatalf("expected no criteria without user")
	}
}

func TestRecommendationService_ShortMatchList(t *testing.T) {
	dests := &fakeDestinations{matches: matches(3), catalog: numbered(1)}
	rec, _ := NewRecommendationService(dests).Home(context.Background(), sessionWithToken(t, nil))
	if len(rec.Others) != 2 || len(rec.Inspiration) != 0 || len(rec.Popular) != 0 {
		t.Fatalf("unexpected sections %+v", rec)
	}
}
