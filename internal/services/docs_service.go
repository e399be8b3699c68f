package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"tripplanner/internal/timeline"
	"tripplanner/internal/utils"
)

// DocsService renders a trip's itinerary as a printable PDF.
type DocsService struct {
	Itinerary ItineraryService
	RequestID string
	// Loader overrides the itinerary assembly in tests.
	Loader func(int64) (Itinerary, error)
}

func (s DocsService) GenerateItineraryPDF(tripID int64) ([]byte, string, error) {
	it, err := s.loadItinerary(tripID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_itinerary", fmt.Sprintf("trip_id=%d", tripID))
	return buildItineraryPDF(it)
}

func (s DocsService) loadItinerary(tripID int64) (Itinerary, error) {
	if s.Loader != nil {
		return s.Loader(tripID)
	}
	return s.Itinerary.BuildItinerary(tripID)
}

func buildItineraryPDF(it Itinerary) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Itinerary", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, safe(it.Trip.Name, "Itinerary"))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("%s to %s", it.Trip.StartDate, it.Trip.EndDate))
	pdf.Ln(10)

	for _, g := range it.Timeline.Groups {
		writeDayHeader(pdf, g)
		pdf.SetFont("Helvetica", "", 11)
		for _, e := range g.Activities {
			name := "(unknown)"
			if e.Activity != nil {
				name = e.Activity.Name
			}
			line := fmt.Sprintf("%s  %s", e.StartTime, name)
			if d := e.EffectiveDuration(); d > 0 {
				line += fmt.Sprintf("  (%d min)", d)
			}
			pdf.Cell(0, 6, line)
			pdf.Ln(6)
			if e.Conflict.InConflict {
				pdf.SetFont("Helvetica", "I", 9)
				pdf.Cell(0, 5, "    ! "+e.Conflict.Reason)
				pdf.Ln(5)
				pdf.SetFont("Helvetica", "", 11)
			}
		}
		pdf.SetFont("Helvetica", "I", 9)
		pdf.Cell(0, 5, fmt.Sprintf("    %d activities, %d min, est. cost %.2f",
			g.Count, g.TotalDurationMinutes, g.TotalEstimatedCost))
		pdf.Ln(8)
	}

	if len(it.Timeline.InvalidDates) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Outside the trip dates")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		for _, date := range it.Timeline.InvalidDates {
			for _, item := range it.Timeline.InvalidByDate[date] {
				name := "(unknown)"
				if item.Activity != nil {
					name = item.Activity.Name
				}
				pdf.Cell(0, 6, fmt.Sprintf("%s %s  %s", date, item.StartTime, name))
				pdf.Ln(6)
			}
		}
		pdf.Ln(4)
	}

	if n := len(it.Timeline.Unrenderable); n > 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.Cell(0, 5, fmt.Sprintf("%d schedule entries reference missing activities and were omitted.", n))
		pdf.Ln(7)
	}

	pdf.SetFont("Helvetica", "B", 12)
	if it.Budget.Budget != nil {
		pdf.Cell(0, 7, fmt.Sprintf("Planned spend %.2f of budget %.2f", it.Budget.PlannedSpend, *it.Budget.Budget))
	} else {
		pdf.Cell(0, 7, fmt.Sprintf("Planned spend %.2f", it.Budget.PlannedSpend))
	}
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.Cell(0, 5, "Generated "+utils.FormatDate(time.Now().UTC()))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("ITINERARY_%d_%s.pdf", it.Trip.ID, safeFilenamePart(it.Trip.Name))
	return buf.Bytes(), filename, nil
}

func writeDayHeader(pdf *gofpdf.Fpdf, g timeline.Group) {
	pdf.SetFont("Helvetica", "B", 12)
	header := g.Date
	if g.Timezone != "UTC" {
		header += " (" + g.Timezone + ")"
	}
	pdf.Cell(0, 7, header)
	pdf.Ln(7)
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "trip"
	}
	return b.String()
}
