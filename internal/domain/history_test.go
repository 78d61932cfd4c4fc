package domain

import "testing"

func TestPushHistoryKeepsMostRecentFiveWithoutDuplicates(t *testing.T) {
	var items []HistoryItem
	for _, id := range []string{"A", "B", "A", "C", "D", "E", "F"} {
		items = PushHistory(items, HistoryItem{ID: id, Name: "dest " + id})
	}

	expected := []string{"F", "E", "D", "C", "A"}
	if len(items) != len(expected) {
		t.Fatalf("expected %d items, got %d", len(expected), len(items))
	}
	for i, id := range expected {
		if items[i].ID != id {
			t.Fatalf("expected %q at position %d, got %q", id, i, items[i].ID)
		}
	}
}

func TestPushHistoryMovesExistingEntryToFront(t *testing.T) {
	items := []HistoryItem{{ID: "B"}, {ID: "A"}, {ID: "C"}}
	items = PushHistory(items, HistoryItem{ID: "C", Name: "updated"})

	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].ID != "C" || items[0].Name != "updated" {
		t.Fatalf("expected refreshed C first, got %+v", items[0])
	}
	if items[1].ID != "B" || items[2].ID != "A" {
		t.Fatalf("unexpected order: %+v", items)
	}
}

func TestNewHistoryItemProjection(t *testing.T) {
	dest := Destination{
		ID:       "kyoto",
		Name:     "Kyoto",
		Images:   []string{"https://img/1.jpg", "https://img/2.jpg"},
		Location: Location{City: "Kyoto", Country: "Japon"},
	}
	item := NewHistoryItem(dest)
	if item.ID != "kyoto" || item.Name != "Kyoto" || item.Country != "Japon" || item.Image != "https://img/1.jpg" {
		t.Fatalf("unexpected projection: %+v", item)
	}

	if img := NewHistoryItem(Destination{ID: "x"}).Image; img != "" {
		t.Fatalf("expected empty image without pictures, got %q", img)
	}
}
