package rank

import (
	"math"
	"reflect"
	"testing"

	"tripplanner/internal/domain/models"
)

func activity(name, category string, rating float64, reviews int) models.Activity {
	return models.Activity{
		Name:             name,
		Category:         category,
		Rating:           &rating,
		UserRatingsTotal: &reviews,
	}
}

func names(p Page) []string {
	out := make([]string, len(p.Items))
	for i, a := range p.Items {
		out[i] = a.Name
	}
	return out
}

func TestScoreBalancesRatingAndPopularity(t *testing.T) {
	many := activity("Museum", "museum", 4.5, 100)
	one := activity("Kiosk", "museum", 5.0, 1)

	if got, want := Score(many), 4.5*math.Log(101); math.Abs(got-want) > 1e-9 {
		t.Fatalf("Score(many) = %f, want %f", got, want)
	}
	if Score(many) <= Score(one) {
		t.Fatalf("4.5 stars over 100 reviews (%f) should outrank 5.0 over 1 (%f)",
			Score(many), Score(one))
	}
}

func TestScoreMissingFields(t *testing.T) {
	if got := Score(models.Activity{Name: "Unknown"}); got != 0 {
		t.Fatalf("score without rating data should be 0, got %f", got)
	}
}

func TestRankOrdering(t *testing.T) {
	in := []models.Activity{
		activity("Kiosk", "food", 5.0, 1),
		activity("Museum", "museum", 4.5, 100),
		activity("Gallery", "museum", 4.0, 40),
	}
	got := names(Rank(in, Params{}))
	want := []string{"Museum", "Gallery", "Kiosk"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestRankTieBreakByName(t *testing.T) {
	in := []models.Activity{
		activity("zoo gate", "park", 4.0, 10),
		activity("Aquarium", "park", 4.0, 10),
		activity("market Hall", "park", 4.0, 10),
	}
	got := names(Rank(in, Params{}))
	want := []string{"Aquarium", "market Hall", "zoo gate"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tie-break order = %v, want %v (case-insensitive)", got, want)
	}
}

func TestRankCategoryFilter(t *testing.T) {
	in := []models.Activity{
		activity("Museum", "museum", 4.5, 100),
		activity("Ramen Bar", "food", 4.4, 200),
	}
	p := Rank(in, Params{Category: "food"})
	if p.TotalCount != 1 || p.Items[0].Name != "Ramen Bar" {
		t.Fatalf("category filter failed: %+v", p)
	}
	if all := Rank(in, Params{Category: "all"}); all.TotalCount != 2 {
		t.Fatalf(`"all" should disable the filter, got total %d`, all.TotalCount)
	}
}

func TestRankShortQueryIgnored(t *testing.T) {
	in := []models.Activity{
		activity("Museum", "museum", 4.5, 100),
		activity("Ramen Bar", "food", 4.4, 200),
	}
	empty := Rank(in, Params{Query: ""})
	for _, q := range []string{"m", " z ", "x"} {
		got := Rank(in, Params{Query: q})
		if !reflect.DeepEqual(names(got), names(empty)) {
			t.Fatalf("query %q should behave like an empty query", q)
		}
	}
}

func TestRankSearchSubstring(t *testing.T) {
	in := []models.Activity{
		activity("National Museum", "museum", 4.5, 100),
		activity("Ramen Bar", "food", 4.4, 200),
	}
	p := Rank(in, Params{Query: "MUSE"})
	if p.TotalCount != 1 || p.Items[0].Name != "National Museum" {
		t.Fatalf("case-insensitive substring search failed: %+v", p)
	}
}

func TestRankPagination(t *testing.T) {
	var in []models.Activity
	for i := 0; i < 45; i++ {
		in = append(in, activity(string(rune('A'+i%26))+"-venue", "park", 4.0, i+1))
	}

	first := Rank(in, Params{Page: 1})
	if len(first.Items) != DefaultPageSize || first.TotalCount != 45 {
		t.Fatalf("page 1: items=%d total=%d", len(first.Items), first.TotalCount)
	}
	last := Rank(in, Params{Page: 3})
	if len(last.Items) != 5 {
		t.Fatalf("page 3 should hold the 5 remaining items, got %d", len(last.Items))
	}
	beyond := Rank(in, Params{Page: 9})
	if len(beyond.Items) != 0 || beyond.TotalCount != 45 {
		t.Fatalf("out-of-range page must return empty items with full total: %+v", beyond)
	}
	if small := Rank(in, Params{Page: 2, PageSize: 10}); len(small.Items) != 10 || small.PageSize != 10 {
		t.Fatalf("custom page size not honored: %+v", small)
	}
}

func TestRankPageNeverExceedsBounds(t *testing.T) {
	in := []models.Activity{
		activity("Museum", "museum", 4.5, 100),
		activity("Gallery", "museum", 4.0, 40),
	}
	p := Rank(in, Params{})
	if len(p.Items) > p.PageSize || len(p.Items) > p.TotalCount {
		t.Fatalf("page bounds violated: %+v", p)
	}
}

func TestRankDeterministic(t *testing.T) {
	in := []models.Activity{
		activity("zoo gate", "park", 4.0, 10),
		activity("Aquarium", "park", 4.0, 10),
		activity("Museum", "museum", 4.5, 100),
	}
	first := Rank(in, Params{})
	for i := 0; i < 5; i++ {
		if got := Rank(in, Params{}); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}
