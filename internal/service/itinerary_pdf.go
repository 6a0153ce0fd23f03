package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
)

var actionLabels = map[string]string{
	"taxi":        "Taxi",
	"order_food":  "Order food",
	"book_movie":  "Movie tickets",
	"book_flight": "Flight",
	"book_train":  "Train",
	"book_bus":    "Bus",
}

// ExportPDF writes a printable copy of the itinerary to w.
func (s *ItineraryService) ExportPDF(ctx context.Context, sessionID uuid.UUID, searchCountry *string, w io.Writer) error {
	entries, err := s.List(ctx, sessionID, searchCountry)
	if err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Your Itinerary", true)
	pdf.SetAuthor("Holiday Planner", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Your Itinerary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Generated "+time.Now().UTC().Format("02 Jan 2006 15:04 MST"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	if len(entries) == 0 {
		pdf.SetFont("Helvetica", "I", 12)
		pdf.CellFormat(0, 8, "Your itinerary is empty.", "", 1, "L", false, 0, "")
	}

	for i, entry := range entries {
		item := entry.Item
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("%d. %s", i+1, item.Name)), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		meta := []string{item.Category.Label()}
		if item.Address != "" {
			meta = append(meta, item.Address)
		}
		if item.DistanceKm != nil {
			meta = append(meta, fmt.Sprintf("%.1f km away", *item.DistanceKm))
		}
		pdf.MultiCell(0, 5, tr(strings.Join(meta, " | ")), "", "L", false)
		if item.Description != "" {
			pdf.MultiCell(0, 5, tr(item.Description), "", "L", false)
		}

		labels := make([]string, 0, len(entry.Actions))
		for _, action := range entry.Actions {
			label, ok := actionLabels[string(action.Kind)]
			if !ok {
				label = string(action.Kind)
			}
			labels = append(labels, label)
		}
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, tr("Booking: "+strings.Join(labels, ", ")), "", "L", false)
		pdf.Ln(3)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}
