package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pharmapack/quotebuilder/models"
	"github.com/pharmapack/quotebuilder/pkg/quote"
)

var exportHeader = []string{
	"#", "Brand Name", "Composition", "Formulation", "Packing",
	"Packaging", "Carton", "Qty", "MRP", "Rate", "Amount",
}

// ExportQuotationToExcel handles GET /quotations/{id}/export/excel: the item
// table plus the totals block, the data dump the printable layouts consume.
func (s *QuotationService) ExportQuotationToExcel(w http.ResponseWriter, r *http.Request) {
	q, ok := s.load(w, r)
	if !ok {
		return
	}
	items, err := q.ItemList()
	if err != nil {
		http.Error(w, "stored items are corrupt", http.StatusInternalServerError)
		return
	}

	file, err := buildQuotationWorkbook(&q, items)
	if err != nil {
		http.Error(w, "Failed to generate Excel file", http.StatusInternalServerError)
		return
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		http.Error(w, "Failed to write Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("%s_%s.xlsx", q.QuotationNumber, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))

	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

// ExportQuotationToCSV handles GET /quotations/{id}/export/csv
func (s *QuotationService) ExportQuotationToCSV(w http.ResponseWriter, r *http.Request) {
	q, ok := s.load(w, r)
	if !ok {
		return
	}
	items, err := q.ItemList()
	if err != nil {
		http.Error(w, "stored items are corrupt", http.StatusInternalServerError)
		return
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)
	writer.Write(exportHeader)
	for i, it := range items {
		writer.Write(itemRow(i, it))
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		http.Error(w, "Failed to write CSV file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("%s_%s.csv", q.QuotationNumber, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

func buildQuotationWorkbook(q *models.Quotation, items []quote.Item) (*excelize.File, error) {
	file := excelize.NewFile()
	sheet := "Quotation"
	file.SetSheetName("Sheet1", sheet)

	file.SetCellValue(sheet, "A1", q.QuotationNumber)
	file.SetCellValue(sheet, "A2", "Party: "+q.PartyName)
	file.SetCellValue(sheet, "A3", "Marketed By: "+q.MarketedBy)

	headerRow := 5
	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, headerRow)
		if err != nil {
			return nil, err
		}
		file.SetCellValue(sheet, cell, title)
	}

	for i, it := range items {
		row := itemRow(i, it)
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, headerRow+1+i)
			if err != nil {
				return nil, err
			}
			file.SetCellValue(sheet, cell, value)
		}
	}

	totals := quote.ComputeTotals(items, quote.Charges{
		DiscountPercent:  q.DiscountPercent,
		TaxPercent:       q.TaxPercent,
		CylinderCharges:  q.CylinderCharges,
		InventoryCharges: q.InventoryCharges,
	})
	base := headerRow + len(items) + 2
	totalRows := []struct {
		label string
		value float64
	}{
		{"Subtotal", totals.Subtotal},
		{"Discount", totals.DiscountAmount},
		{"Total Tax", totals.TotalTax},
		{"Grand Total", totals.Total},
		{"Advance Payment", totals.AdvancePayment},
	}
	for i, row := range totalRows {
		file.SetCellValue(sheet, fmt.Sprintf("J%d", base+i), row.label)
		file.SetCellValue(sheet, fmt.Sprintf("K%d", base+i), row.value)
	}

	return file, nil
}

func itemRow(index int, it quote.Item) []string {
	return []string{
		strconv.Itoa(index + 1),
		it.BrandName,
		it.Composition,
		it.FormulationType,
		it.EffectivePacking(),
		it.EffectivePackagingType(),
		it.EffectiveCartonPacking(),
		strconv.FormatFloat(it.Quantity, 'f', -1, 64),
		strconv.FormatFloat(it.MRP, 'f', 2, 64),
		strconv.FormatFloat(it.Rate, 'f', 2, 64),
		strconv.FormatFloat(it.Amount(), 'f', 2, 64),
	}
}
