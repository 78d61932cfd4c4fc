package service

import (
	"context"
	"errors"
	"testing"
)

func TestReviewService_Submit(t *testing.T) {
	reviews := &fakeReviews{}
	err := NewReviewService(reviews).Submit(context.Background(), staticToken("tok"), "d1", 4.5, "  Superbe  ")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(reviews.added) != 1 || reviews.added[0].Content != "Superbe" || reviews.added[0].Rating != 4.5 {
		t.Fatalf("unexpected review %+v", reviews.added)
	}
}

func TestReviewService_SubmitValidation(t *testing.T) {
	cases := []struct {
		name    string
		rating  float64
		content string
	}{
		{"rating too high", 6, "ok"},
		{"negative rating", -1, "ok"},
		{"empty content", 3, "   "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reviews := &fakeReviews{}
			err := NewReviewService(reviews).Submit(context.Background(), staticToken("tok"), "d1", tc.rating, tc.content)
			if !errors.Is(err, ErrReviewValidation) {
				t.Fatalf("expected ErrReviewValidation, got %v", err)
			}
			if len(reviews.added) != 0 {
				t.Fatalf("expected no remote call")
			}
		})
	}
}

func TestReviewService_SubmitRequiresToken(t *testing.T) {
	err := NewReviewService(&fakeReviews{}).Submit(context.Background(), staticToken(""), "d1", 3, "ok")
	if !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
}

func TestReviewService_ListDegrades(t *testing.T) {
	got := NewReviewService(&fakeReviews{listErr: errUpstream}).List(context.Background(), "d1")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty list, got %#v", got)
	}
}
