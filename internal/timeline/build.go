// Package timeline partitions a trip's scheduled activities into an
// ordered, per-day view. It groups by calendar date and timezone, attaches
// per-group totals, and annotates every entry with an opening-hours
// conflict check. Build is a pure function; there is no incremental
// update path, the whole timeline is recomputed from the current snapshot.
package timeline

import (
	"sort"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/hours"
	"tripplanner/internal/utils"
)

// Entry is one scheduled activity plus its advisory conflict annotation.
// The annotation never removes or reorders an entry.
type Entry struct {
	models.TripActivity
	Conflict hours.Conflict `json:"conflict"`
}

// Group is one (date, timezone) bucket of the timeline.
// A trip day that crosses timezones yields one group per zone.
type Group struct {
	Date                 string  `json:"date"`
	Timezone             string  `json:"timezone"`
	Activities           []Entry `json:"activities"`
	TotalDurationMinutes int     `json:"totalDurationMinutes"`
	TotalEstimatedCost   float64 `json:"totalEstimatedCost"`
	Count                int     `json:"count"`
}

// Timeline is the full grouping result.
//
// Items scheduled outside the trip's date range land in InvalidByDate,
// keyed by planned date only — once an item is out of range its timezone
// no longer matters for display. Items whose activity reference could not
// be resolved land in Unrenderable. Nothing is silently dropped.
type Timeline struct {
	Groups        []Group                          `json:"groups"`
	InvalidByDate map[string][]models.TripActivity `json:"invalidByDate"`
	InvalidDates  []string                         `json:"invalidDates"`
	Unrenderable  []models.TripActivity            `json:"unrenderable"`
}

// Build groups the trip's scheduled activities for display.
// An item is valid when trip.StartDate <= PlannedDate <= trip.EndDate;
// the dates are zero-padded ISO strings, so plain string comparison is the
// date comparison.
func Build(trip models.Trip, items []models.TripActivity) Timeline {
	out := Timeline{
		Groups:        []Group{},
		InvalidByDate: map[string][]models.TripActivity{},
		InvalidDates:  []string{},
		Unrenderable:  []models.TripActivity{},
	}

	type groupKey struct {
		date string
		tz   string
	}
	buckets := map[groupKey][]models.TripActivity{}

	for _, item := range items {
		if item.Activity == nil {
			// Broken reference; report it so the caller can surface a data
			// error instead of a blank gap in the day.
			out.Unrenderable = append(out.Unrenderable, item)
			continue
		}
		if item.PlannedDate < trip.StartDate || item.PlannedDate > trip.EndDate {
			out.InvalidByDate[item.PlannedDate] = append(out.InvalidByDate[item.PlannedDate], item)
			continue
		}
		key := groupKey{date: item.PlannedDate, tz: item.EffectiveTimezone()}
		buckets[key] = append(buckets[key], item)
	}

	keys := make([]groupKey, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].date != keys[j].date {
			return keys[i].date < keys[j].date
		}
		return keys[i].tz < keys[j].tz
	})

	for _, key := range keys {
		group := Group{Date: key.date, Timezone: key.tz}
		members := buckets[key]
		// HH:MM is zero-padded, so lexical order is chronological order.
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].StartTime < members[j].StartTime
		})
		for _, item := range members {
			group.Activities = append(group.Activities, annotate(item))
			group.TotalDurationMinutes += item.EffectiveDuration()
			if item.Activity.EstimatedCost != nil {
				group.TotalEstimatedCost += *item.Activity.EstimatedCost
			}
		}
		group.Count = len(group.Activities)
		out.Groups = append(out.Groups, group)
	}

	for date, members := range out.InvalidByDate {
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].StartTime < members[j].StartTime
		})
		out.InvalidByDate[date] = members
		out.InvalidDates = append(out.InvalidDates, date)
	}
	sort.Strings(out.InvalidDates)

	sort.SliceStable(out.Unrenderable, func(i, j int) bool {
		if out.Unrenderable[i].PlannedDate != out.Unrenderable[j].PlannedDate {
			return out.Unrenderable[i].PlannedDate < out.Unrenderable[j].PlannedDate
		}
		return out.Unrenderable[i].StartTime < out.Unrenderable[j].StartTime
	})

	return out
}

// annotate runs the opening-hours check for one entry. The checker fails
// open on every ambiguity, so a missing or garbled hours payload never
// produces a false conflict.
func annotate(item models.TripActivity) Entry {
	entry := Entry{TripActivity: item}
	weekday, ok := utils.WeekdayOf(item.PlannedDate)
	if !ok {
		return entry
	}
	week := hours.DecodeWeek(item.Activity.OpeningHours)
	entry.Conflict = hours.CheckConflict(week, weekday, item.StartTime, item.EffectiveDuration())
	return entry
}
