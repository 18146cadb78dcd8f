package services

import (
	"github.com/chiplogistics/pricing_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportSvcFacade builds report table data and renders it to a file.
type ReportSvcFacade interface {
	// BuildTableData assembles the report rows: header, one row per result,
	// a blank separator and a total footer.
	BuildTableData(results []domain.CalculationResult, totalPrice decimal.Decimal, customerName string) domain.TableData

	// CreateCalculationsReport renders the table through the configured
	// document renderer and names the file from the current time.
	CreateCalculationsReport(results []domain.CalculationResult, totalPrice decimal.Decimal, customerName string) (*domain.ReportFile, error)
}
