package handlers

import (
	"log"
	"net/http"

	"github.com/xuri/excelize/v2"

	"github.com/dopagraming/wastewater-records/models"
)

// Export streams the business register as a spreadsheet, with the council and
// sector references resolved to their display labels.
func (h *BusinessHandler) Export(w http.ResponseWriter, r *http.Request) {
	businesses, err := h.svc.List()
	if err != nil {
		writeError(w, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Businesses"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"Business Name", "Phone", "Work Number", "Sender To", "Payer Number",
		"Email", "Factory Address", "Council/Company", "Sector", "Created At",
	}
	for i, title := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, title)
	}
	for i, b := range businesses {
		row := []interface{}{
			b.BusinessName, b.Phone, b.WorkNumber, b.SenderTo, b.PayerNumber,
			b.Email, b.FactoryAddress, councilLabel(b.InstitutionID), sectorLabel(b.SectorID),
			b.CreatedAt.Format("2006-01-02 15:04"),
		}
		for j, value := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="businesses.xlsx"`)
	// Headers are already sent; a failure mid-stream can only be logged.
	if err := f.Write(w); err != nil {
		log.Println("export write failed:", err)
	}
}

func councilLabel(c *models.CouncilSummary) string {
	if c == nil {
		return ""
	}
	return c.Name + " (" + c.Type + ")"
}

func sectorLabel(s *models.SectorSummary) string {
	if s == nil {
		return ""
	}
	return s.SectorName
}
