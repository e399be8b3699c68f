// Package rank turns a raw activity list into a deterministic, filtered,
// scored and paged result set. It is a pure function of its inputs and is
// cheap enough to re-run on every search keystroke or page click.
package rank

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tripplanner/internal/domain/models"
)

// DefaultPageSize matches the activity browser's page length.
const DefaultPageSize = 20

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "all"

// Params are the browse parameters coming from the display layer.
type Params struct {
	// Category filters by exact match; empty or "all" disables the filter.
	Category string
	// Query filters by case-insensitive substring on the name. Trimmed
	// queries shorter than 2 runes are ignored entirely.
	Query string
	// Page is 1-indexed. Out-of-range pages yield an empty page, not an
	// error; clamping is the caller's business.
	Page int
	// PageSize defaults to DefaultPageSize when <= 0.
	PageSize int
}

// Page is one page of ranked activities plus paging metadata.
type Page struct {
	Items      []models.Activity `json:"items"`
	TotalCount int               `json:"totalCount"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
}

// Score is the composite ranking score: rating * ln(reviews + 1).
// The log keeps a single 5-star/1-review outlier from dominating venues
// with thousands of reviews, and is zero when there are no ratings.
func Score(a models.Activity) float64 {
	rating := 0.0
	if a.Rating != nil {
		rating = *a.Rating
	}
	reviews := 0
	if a.UserRatingsTotal != nil {
		reviews = *a.UserRatingsTotal
	}
	return rating * math.Log(float64(reviews)+1)
}

// Rank filters, scores, sorts and pages the given activities.
// Ordering is score descending with ties broken by collated
// case-insensitive name comparison, so equal-scored venues come out in a
// stable, human-sensible order on every call.
func Rank(activities []models.Activity, p Params) Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}

	filtered := filter(activities, p)

	coll := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(filtered, func(i, j int) bool {
		si, sj := Score(filtered[i]), Score(filtered[j])
		if si != sj {
			return si > sj
		}
		return coll.CompareString(filtered[i].Name, filtered[j].Name) < 0
	})

	total := len(filtered)
	start := (p.Page - 1) * p.PageSize
	items := []models.Activity{}
	if start < total {
		end := start + p.PageSize
		if end > total {
			end = total
		}
		items = filtered[start:end]
	}

	return Page{
		Items:      items,
		TotalCount: total,
		Page:       p.Page,
		PageSize:   p.PageSize,
	}
}

func filter(activities []models.Activity, p Params) []models.Activity {
	category := strings.TrimSpace(p.Category)
	byCategory := category != "" && !strings.EqualFold(category, CategoryAll)

	query := strings.ToLower(strings.TrimSpace(p.Query))
	bySearch := len([]rune(query)) >= 2

	out := make([]models.Activity, 0, len(activities))
	for _, a := range activities {
		if byCategory && a.Category != category {
			continue
		}
		if bySearch && !strings.Contains(strings.ToLower(a.Name), query) {
			continue
		}
		out = append(out, a)
	}
	return out
}
