package mcp

import (
	"context"
	"fmt"
	"strings"
)

const (
	summaryURI = "tutormatch://summary"
	citiesURI  = "tutormatch://cities"
)

// Resource describes a read-only text document the server exposes
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
}

// ResourceDefinitions lists the resources in resources/list order
var ResourceDefinitions = []Resource{
	{
		URI:         summaryURI,
		Name:        "Marketplace Summary",
		Description: "Tutor and booking counts, average rating and the most taught subjects",
		MimeType:    "text/plain",
	},
	{
		URI:         citiesURI,
		Name:        "Cities",
		Description: "Cities tutors are based in, and the locations distance lookups understand",
		MimeType:    "text/plain",
	},
}

func (s *Server) handleReadResource(ctx context.Context, uri string) (string, error) {
	var render func(context.Context) (string, error)
	switch uri {
	case summaryURI:
		render = s.renderSummary
	case citiesURI:
		render = s.renderCities
	default:
		return "", fmt.Errorf("unknown resource: %s", uri)
	}
	return render(ctx)
}

func (s *Server) renderSummary(ctx context.Context) (string, error) {
	stats, err := s.db.GetStats(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get stats: %w", err)
	}

	var b strings.Builder
	b.WriteString("Tutor Marketplace Summary\n=========================\n")
	fmt.Fprintf(&b, "Tutors:   %d (%d verified) in %d cities\n", stats.TotalTutors, stats.VerifiedTutors, stats.Cities)
	fmt.Fprintf(&b, "Rating:   %.2f average\n", stats.AvgRating)
	fmt.Fprintf(&b, "Bookings: %d\n", stats.TotalBookings)
	for _, row := range []struct {
		label string
		count int
	}{
		{"Pending", stats.PendingBookings},
		{"Confirmed", stats.ConfirmedBookings},
		{"Completed", stats.CompletedBookings},
		{"Cancelled", stats.CancelledBookings},
	} {
		fmt.Fprintf(&b, "  - %-10s %d\n", row.label+":", row.count)
	}

	if len(stats.TopSubjects) > 0 {
		b.WriteString("\nTop Subjects:\n")
		for _, sc := range stats.TopSubjects {
			fmt.Fprintf(&b, "  - %s (%d tutors)\n", sc.Subject, sc.Tutors)
		}
	}

	return b.String(), nil
}

func (s *Server) renderCities(ctx context.Context) (string, error) {
	cities, err := s.db.ListCities(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list cities: %w", err)
	}

	var b strings.Builder
	b.WriteString("Cities\n======\n\n")

	if len(cities) == 0 {
		b.WriteString("No tutors yet. Run 'tutormatch tutors import <file>' to add some.\n")
	} else {
		b.WriteString("Tutors are based in:\n")
		writeList(&b, cities)
	}

	b.WriteString("\nKnown locations for distance:\n")
	writeList(&b, s.matcher.Geocoder().Cities())

	return b.String(), nil
}

func writeList(b *strings.Builder, items []string) {
	for _, item := range items {
		fmt.Fprintf(b, "  - %s\n", item)
	}
}
