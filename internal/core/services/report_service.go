package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/chiplogistics/pricing_backend/internal/core/domain"
	"github.com/chiplogistics/pricing_backend/internal/core/ports/providers"
	portssvc "github.com/chiplogistics/pricing_backend/internal/core/ports/services"
	"github.com/chiplogistics/pricing_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// reportNameTimeLayout names report files after their creation time.
const reportNameTimeLayout = "15:04-01.02.2006"

// ReportService assembles calculation report tables and renders them through
// a document renderer.
type ReportService struct {
	renderer          providers.DocumentRenderer
	referenceCurrency domain.Currency
}

// NewReportService creates a new ReportService.
func NewReportService(renderer providers.DocumentRenderer, referenceCurrency domain.Currency) *ReportService {
	return &ReportService{
		renderer:          renderer,
		referenceCurrency: referenceCurrency,
	}
}

var _ portssvc.ReportSvcFacade = (*ReportService)(nil)

// BuildTableData assembles the report table: a header row, one row per
// result, a blank separator row and a total footer row. Prices are shown with
// one decimal place; internal values keep full precision until this step.
func (s *ReportService) BuildTableData(results []domain.CalculationResult, totalPrice decimal.Decimal, customerName string) domain.TableData {
	header := []string{
		"Customer",
		"Item",
		"Quantity",
		"Total weight (kg)",
		fmt.Sprintf("Price (%s)", s.referenceCurrency),
	}

	cells := make([][]string, 0, len(results)+3)
	cells = append(cells, header)
	for _, result := range results {
		cells = append(cells, []string{
			customerName,
			result.Item.Name,
			strconv.FormatInt(result.Item.Count, 10),
			result.Item.TotalWeight().String(),
			utils.FormatAmount(result.Price),
		})
	}
	cells = append(cells, []string{})
	cells = append(cells, []string{
		fmt.Sprintf("Total price (%s)", s.referenceCurrency),
		utils.FormatAmount(totalPrice),
	})

	return domain.TableData{
		Cells: cells,
		Cols:  len(header),
		Rows:  len(cells),
	}
}

// CreateCalculationsReport renders the calculation table to a file named
// after the current time.
func (s *ReportService) CreateCalculationsReport(results []domain.CalculationResult, totalPrice decimal.Decimal, customerName string) (*domain.ReportFile, error) {
	table := s.BuildTableData(results, totalPrice, customerName)
	data, err := s.renderer.RenderTable(table)
	if err != nil {
		return nil, fmt.Errorf("failed to render calculations report: %w", err)
	}
	return &domain.ReportFile{
		Name: fmt.Sprintf("calculation-%s.%s", time.Now().Format(reportNameTimeLayout), s.renderer.FileExtension()),
		Data: data,
	}, nil
}
