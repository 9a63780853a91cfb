package forvo

import (
	"testing"

	"oto2mcp/internal/model"
)

func TestSelectBest_TakesFirstItemWithoutSexPreference(t *testing.T) {
	items := []model.Pronunciation{
		{ID: 1, Username: "alice", Sex: "f", Rate: 5},
		{ID: 2, Username: "bob", Sex: "m", Rate: 2},
	}
	best, found := SelectBest(items, "")
	if !found {
		t.Fatal("expected a selection")
	}
	if best.ID != 1 {
		t.Fatalf("id=%d want=1", best.ID)
	}
}

func TestSelectBest_SexPreferenceSkipsHigherRatedMismatch(t *testing.T) {
	items := []model.Pronunciation{
		{ID: 1, Sex: "f", Rate: 5},
		{ID: 2, Sex: "m", Rate: 2},
	}
	best, found := SelectBest(items, "m")
	if !found {
		t.Fatal("expected a selection")
	}
	if best.ID != 2 {
		t.Fatalf("id=%d want=2", best.ID)
	}
}

func TestSelectBest_FallsBackWhenNoSexMatch(t *testing.T) {
	items := []model.Pronunciation{
		{ID: 1, Sex: "f", Rate: 5},
		{ID: 2, Sex: "f", Rate: 3},
	}
	best, found := SelectBest(items, "m")
	if !found {
		t.Fatal("fallback should still select an item")
	}
	if best.ID != 1 {
		t.Fatalf("id=%d want=1", best.ID)
	}
}

func TestSelectBest_EmptyListFindsNothing(t *testing.T) {
	_, found := SelectBest(nil, "f")
	if found {
		t.Fatal("empty list must not select")
	}
}

func TestFilterByMinRating_DropsLowRatedItems(t *testing.T) {
	items := []model.Pronunciation{
		{ID: 1, Rate: 5},
		{ID: 2, Rate: 1},
		{ID: 3, Rate: 3},
	}
	filtered := FilterByMinRating(items, 3)
	if len(filtered) != 2 {
		t.Fatalf("len=%d want=2", len(filtered))
	}
	if filtered[0].ID != 1 || filtered[1].ID != 3 {
		t.Fatalf("unexpected items: %+v", filtered)
	}
}

func TestFilterBySex_EmptySexKeepsEverything(t *testing.T) {
	items := []model.Pronunciation{{ID: 1, Sex: "f"}, {ID: 2, Sex: "m"}}
	if got := FilterBySex(items, ""); len(got) != 2 {
		t.Fatalf("len=%d want=2", len(got))
	}
}
