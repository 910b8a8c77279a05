package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/davidrmz/chipsmanager-api/internal/application/analytics"
	"github.com/davidrmz/chipsmanager-api/internal/application/dto"
)

// AnalyticsHandler maneja el reporte financiero y sus exportaciones (protegido).
type AnalyticsHandler struct {
	uc      *appanalytics.ReportUseCase
	pdfGen  appanalytics.ReportPDFGenerator
	xlsxGen appanalytics.ReportExcelExporter
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(
	uc *appanalytics.ReportUseCase,
	pdfGen appanalytics.ReportPDFGenerator,
	xlsxGen appanalytics.ReportExcelExporter,
) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, pdfGen: pdfGen, xlsxGen: xlsxGen}
}

// parsePeriod lee los query params del período. Sin year se asume el año en
// curso; sin month se asume todo el año.
func (h *AnalyticsHandler) parsePeriod(c *fiber.Ctx) dto.FinancialReportRequest {
	return dto.FinancialReportRequest{
		Month: c.QueryInt("month", -1),
		Year:  c.QueryInt("year", time.Now().Year()),
	}
}

// Report godoc
// @Summary      Reporte financiero del período
// @Description  Totales de ventas, gastos, mermas y ganancia neta con las
// @Description  filas que los respaldan. month va de 0 a 11, o -1 para todo el año.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        month  query  int  false  "Mes 0-11, -1 = todo el año"  default(-1)
// @Param        year   query  int  false  "Año calendario"
// @Success      200  {object}  dto.FinancialReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/report [get]
func (h *AnalyticsHandler) Report(c *fiber.Ctx) error {
	report, err := h.uc.GetFinancialReport(h.parsePeriod(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(report)
}

// ReportPDF godoc
// @Summary      Reporte financiero del período en PDF
// @Tags         analytics
// @Security     Bearer
// @Produce      application/pdf
// @Param        month  query  int  false  "Mes 0-11, -1 = todo el año"  default(-1)
// @Param        year   query  int  false  "Año calendario"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/report/pdf [get]
func (h *AnalyticsHandler) ReportPDF(c *fiber.Ctx) error {
	report, err := h.uc.GetFinancialReport(h.parsePeriod(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	pdfBytes, err := h.pdfGen.GenerateReportPDF(c.UserContext(), report)
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="reporte-%d-%d.pdf"`, report.Year, report.Month))
	return c.Send(pdfBytes)
}

// ReportXLSX godoc
// @Summary      Reporte financiero del período en XLSX
// @Tags         analytics
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        month  query  int  false  "Mes 0-11, -1 = todo el año"  default(-1)
// @Param        year   query  int  false  "Año calendario"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/report/xlsx [get]
func (h *AnalyticsHandler) ReportXLSX(c *fiber.Ctx) error {
	report, err := h.uc.GetFinancialReport(h.parsePeriod(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	xlsxBytes, err := h.xlsxGen.ExportReportXLSX(c.UserContext(), report)
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="reporte-%d-%d.xlsx"`, report.Year, report.Month))
	return c.Send(xlsxBytes)
}
