// Package excel builds xlsx workbooks for list exports.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/entity"
)

// Exporter renders entity lists as xlsx bytes.
type Exporter struct{}

// NewExporter builds the exporter.
func NewExporter() *Exporter { return &Exporter{} }

// workbook writes one sheet with a bold header row and returns its bytes.
func workbook(sheet string, headers []string, data [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("excel: new sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: header style: %w", err)
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}
	for rowIdx, row := range data {
		for colIdx, v := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Sales renders the sale list.
func (e *Exporter) Sales(sales []*entity.Sale) ([]byte, error) {
	headers := []string{
		"SID", "Timestamp", "RecBy", "BID", "PID",
		"Price", "Qty", "Discount", "ShipPrice", "InstallationPrice", "SumPrice",
		"Pay1Date", "Pay1Price", "Pay2Date", "Pay2Price",
	}
	data := make([][]any, 0, len(sales))
	for _, s := range sales {
		bid := ""
		if s.BID != nil {
			bid = *s.BID
		}
		data = append(data, []any{
			s.SID, s.Timestamp.Format("2006-01-02 15:04:05"), s.RecBy, bid, s.PID,
			s.Price.StringFixed(2), s.Qty, s.Discount.StringFixed(2),
			s.ShipPrice.StringFixed(2), s.InstallationPrice.StringFixed(2), s.SumPrice.StringFixed(2),
			s.Pay1Date, s.Pay1Price.StringFixed(2), s.Pay2Date, s.Pay2Price.StringFixed(2),
		})
	}
	return workbook("Sales", headers, data)
}

// Customers renders the customer list.
func (e *Exporter) Customers(customers []*entity.Customer) ([]byte, error) {
	headers := []string{
		"CID", "Timestamp", "RecBy", "ContractName", "ContractTel",
		"ContractCompany", "ComeFrom", "LineID", "Facebook", "Instagram",
	}
	data := make([][]any, 0, len(customers))
	for _, c := range customers {
		data = append(data, []any{
			c.CID, c.Timestamp.Format("2006-01-02 15:04:05"), c.RecBy, c.ContractName, c.ContractTel,
			c.ContractCompany, c.ComeFrom, c.LineID, c.Facebook, c.Instagram,
		})
	}
	return workbook("Customers", headers, data)
}

// QC renders the inspection list.
func (e *Exporter) QC(recs []*entity.QC) ([]byte, error) {
	headers := []string{
		"SN", "Timestamp", "RecBy", "QCDate", "Staff", "QCPass",
		"ProductType", "BodyColor", "BulbType", "BulbColor", "Dimention", "QCQty",
	}
	data := make([][]any, 0, len(recs))
	for _, r := range recs {
		data = append(data, []any{
			r.SN, r.Timestamp.Format("2006-01-02 15:04:05"), r.RecBy, r.QCDate, r.Staff, r.QCPass,
			r.ProductType, r.BodyColor, r.BulbType, r.BulbColor, r.Dimention, r.QCQty,
		})
	}
	return workbook("QC", headers, data)
}
