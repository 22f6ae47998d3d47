package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"
)

// handleExportOwnerBookings streams the owner's bookings as an xlsx workbook.
func (s *HTTPServer) handleExportOwnerBookings(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	views, err := s.bookings.FindAllForOwner(r.Context(), userID, r.URL.Query().Get("state"), nil, nil)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := s.cfg.Exports.SheetName
	index, err := f.NewSheet(sheetName)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create export sheet")
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}
	f.SetActiveSheet(index)

	headers := []string{"ID", "Item", "Booker ID", "Start", "End", "Status"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, header)
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	_ = f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle)

	for i, v := range views {
		row := i + 2
		_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), v.ID)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), v.Item.Name)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), v.Booker.ID)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), v.Start.Format("02.01.2006 15:04"))
		_ = f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), v.End.Format("02.01.2006 15:04"))
		_ = f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), v.Status)
	}

	_ = f.SetColWidth(sheetName, "A", "A", 8)
	_ = f.SetColWidth(sheetName, "B", "B", 30)
	_ = f.SetColWidth(sheetName, "C", "C", 12)
	_ = f.SetColWidth(sheetName, "D", "E", 20)
	_ = f.SetColWidth(sheetName, "F", "F", 12)

	_ = f.DeleteSheet("Sheet1")

	fileName := fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))

	if err := f.Write(w); err != nil {
		s.logger.Error().Err(err).Msg("failed to write export")
	}
}
