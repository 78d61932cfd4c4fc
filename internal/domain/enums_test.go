package domain

import "testing"

func TestBudgetLevelRank(t *testing.T) {
	levels := []BudgetLevel{"", BudgetEco, BudgetModerate, BudgetHigh, BudgetLuxury}
	for i, level := range levels {
		if level.Rank() != i {
			t.Fatalf("expected %q to rank %d, got %d", level, i, level.Rank())
		}
	}
	if BudgetLevel("PLATINUM").Rank() != 0 {
		t.Fatalf("expected unknown level to rank 0")
	}
}

func TestParseEnums(t *testing.T) {
	if level, err := ParseBudgetLevel(" moderate "); err != nil || level != BudgetModerate {
		t.Fatalf("expected MODERATE, got %q (%v)", level, err)
	}
	if _, err := ParseBudgetLevel("cheap"); err == nil {
		t.Fatal("expected error for unknown budget level")
	}
	if style, err := ParseTravelStyle("family"); err != nil || style != TravelFamily {
		t.Fatalf("expected FAMILY, got %q (%v)", style, err)
	}
	if _, err := ParseTravelStyle("BUSINESS"); err == nil {
		t.Fatal("expected error for unknown travel style")
	}
}

func TestParseContinent(t *testing.T) {
	cases := map[string]Continent{
		"Asie":             ContinentAsia,
		"asia":             ContinentAsia,
		"Amérique du Nord": ContinentNorthAmerica,
		"MIDDLE_EAST":      ContinentMiddleEast,
	}
	for raw, expected := range cases {
		got, ok := ParseContinent(raw)
		if !ok || got != expected {
			t.Fatalf("ParseContinent(%q) = %q, %v; want %q", raw, got, ok, expected)
		}
	}
	if _, ok := ParseContinent("Atlantis"); ok {
		t.Fatal("expected unknown continent to be rejected")
	}
	if ContinentOceania.Label() != "Océanie" {
		t.Fatalf("unexpected label %q", ContinentOceania.Label())
	}
}

func TestMonthNames(t *testing.T) {
	got := MonthNames([]int{1, 8, 13, 12})
	expected := []string{"Jan", "Aoû", "Déc"}
	if len(got) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, got)
		}
	}
}
