package services_test

import (
	"testing"
	"time"

	"github.com/chiplogistics/pricing_backend/internal/core/domain"
	"github.com/chiplogistics/pricing_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockDocumentRenderer is a mock type for the DocumentRenderer interface
type MockDocumentRenderer struct {
	mock.Mock
}

func (m *MockDocumentRenderer) RenderTable(table domain.TableData) ([]byte, error) {
	args := m.Called(table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockDocumentRenderer) FileExtension() string {
	args := m.Called()
	return args.String(0)
}

// --- Test Suite Setup ---

type ReportServiceTestSuite struct {
	suite.Suite
	mockRenderer *MockDocumentRenderer
	service      *services.ReportService
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockRenderer = new(MockDocumentRenderer)
	suite.service = services.NewReportService(suite.mockRenderer, domain.CurrencyUSD)
}

func (suite *ReportServiceTestSuite) sampleResults() []domain.CalculationResult {
	item := domain.ArticleItem{
		Name:          "ESP32 devboard",
		Count:         10,
		UnitWeight:    decimal.NewFromFloat(2.1),
		UnitPrice:     decimal.NewFromFloat(125.874),
		PriceCurrency: domain.CurrencyUSD,
		DutyFeeRatio:  decimal.NewFromInt(1),
	}
	return []domain.CalculationResult{
		{Item: item, Price: decimal.NewFromFloat(2303.5)},
	}
}

// --- Test Cases ---

func (suite *ReportServiceTestSuite) TestBuildTableData_Layout() {
	results := suite.sampleResults()
	total := decimal.NewFromFloat(2303.5)

	table := suite.service.BuildTableData(results, total, "ACME Corp")

	// Header + one row per result + blank separator + total footer.
	suite.Require().Len(table.Cells, len(results)+3)
	suite.Equal(len(results)+3, table.Rows)
	suite.Equal(5, table.Cols)

	suite.Equal([]string{"Customer", "Item", "Quantity", "Total weight (kg)", "Price (USD)"}, table.Cells[0])
	suite.Equal([]string{"ACME Corp", "ESP32 devboard", "10", "21", "2303.5"}, table.Cells[1])
	suite.Empty(table.Cells[2])
	suite.Equal([]string{"Total price (USD)", "2303.5"}, table.Cells[3])
}

func (suite *ReportServiceTestSuite) TestBuildTableData_PriceDisplayPrecision() {
	results := suite.sampleResults()
	results[0].Price = decimal.NewFromInt(30901)

	table := suite.service.BuildTableData(results, decimal.NewFromInt(401637), "ACME Corp")

	// Whole-number prices still carry one decimal place on display.
	suite.Equal("30901.0", table.Cells[1][4])
	suite.Equal("401637.0", table.Cells[3][1])
}

func (suite *ReportServiceTestSuite) TestBuildTableData_EmptyResults() {
	table := suite.service.BuildTableData(nil, decimal.Zero, "ACME Corp")

	suite.Require().Len(table.Cells, 3)
	suite.Equal([]string{"Customer", "Item", "Quantity", "Total weight (kg)", "Price (USD)"}, table.Cells[0])
	suite.Empty(table.Cells[1])
	suite.Equal([]string{"Total price (USD)", "0.0"}, table.Cells[2])
}

func (suite *ReportServiceTestSuite) TestBuildTableData_ReferenceCurrencyInHeadings() {
	service := services.NewReportService(suite.mockRenderer, domain.CurrencyCNY)

	table := service.BuildTableData(nil, decimal.Zero, "ACME Corp")

	suite.Equal("Price (CNY)", table.Cells[0][4])
	suite.Equal("Total price (CNY)", table.Cells[1][0])
}

func (suite *ReportServiceTestSuite) TestCreateCalculationsReport_Success() {
	results := suite.sampleResults()
	total := decimal.NewFromFloat(2303.5)
	rendered := []byte("rendered-table")

	suite.mockRenderer.On("RenderTable", mock.AnythingOfType("domain.TableData")).Return(rendered, nil).Once()
	suite.mockRenderer.On("FileExtension").Return("csv").Once()

	before := time.Now()
	report, err := suite.service.CreateCalculationsReport(results, total, "ACME Corp")

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Equal(rendered, report.Data)

	// File is named after its creation time.
	suite.Regexp(`^calculation-\d{2}:\d{2}-\d{2}\.\d{2}\.\d{4}\.csv$`, report.Name)
	suite.Contains(report.Name, before.Format("01.02.2006"))

	suite.mockRenderer.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestCreateCalculationsReport_RenderError() {
	expectedErr := assert.AnError

	suite.mockRenderer.On("RenderTable", mock.AnythingOfType("domain.TableData")).Return(nil, expectedErr).Once()

	report, err := suite.service.CreateCalculationsReport(nil, decimal.Zero, "ACME Corp")

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, expectedErr)

	suite.mockRenderer.AssertExpectations(suite.T())
	suite.mockRenderer.AssertNotCalled(suite.T(), "FileExtension")
}

// --- Run Test Suite ---

func TestReportService(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
