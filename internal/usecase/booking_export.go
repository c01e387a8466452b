package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const exportSheet = "Bookings"

var exportHeaders = []string{"Created At", "Name", "WhatsApp", "Occasion", "Location", "Notes", "Status"}

// ExportBookings writes every booking, newest first, as an xlsx workbook.
func (s *bookingService) ExportBookings(ctx context.Context, w io.Writer) error {
	bookings, err := s.repo.FindAll(ctx, nil)
	if err != nil {
		return fmt.Errorf("export bookings: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cell, header)
		f.SetCellStyle(exportSheet, cell, cell, headerStyle)
	}

	for i, b := range bookings {
		row := i + 2
		notes := ""
		if b.Notes != nil {
			notes = *b.Notes
		}
		values := []any{
			b.CreatedAt.Format("2006-01-02 15:04"),
			b.Name,
			b.WhatsAppNumber,
			b.OccasionType,
			b.Location,
			notes,
			string(b.Status),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(exportSheet, cell, v)
		}
	}

	f.SetColWidth(exportSheet, "A", "A", 18)
	f.SetColWidth(exportSheet, "B", "E", 22)
	f.SetColWidth(exportSheet, "F", "F", 40)
	f.SetColWidth(exportSheet, "G", "G", 12)

	if _, err := f.WriteTo(w); err != nil {
		s.log.Error("Failed to write bookings export", zap.Error(err))
		return fmt.Errorf("write workbook: %w", err)
	}

	s.log.Info("Bookings exported", zap.Int("count", len(bookings)))
	return nil
}
