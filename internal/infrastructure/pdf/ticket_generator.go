// Package pdf implementa los documentos imprimibles del sistema con Maroto v2:
// la nota de entrega de un traslado (formato ticket de 80mm) y el reporte
// financiero de período (A4).
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/davidrmz/chipsmanager-api/internal/application/dto"
	appledger "github.com/davidrmz/chipsmanager-api/internal/application/ledger"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 194, Green: 65, Blue: 12}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appledger.TicketGenerator = (*TicketGenerator)(nil)

// TicketGenerator renderiza la nota de entrega de un traslado como ticket de
// 80mm (impresora térmica de mostrador).
type TicketGenerator struct{}

// NewTicketGenerator construye el generador.
func NewTicketGenerator() *TicketGenerator { return &TicketGenerator{} }

// GenerateTicketPDF genera el ticket y devuelve sus bytes.
func (g *TicketGenerator) GenerateTicketPDF(_ context.Context, note *dto.DeliveryNoteDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithDimensions(80, 200).
		WithLeftMargin(4).WithRightMargin(4).
		WithTopMargin(4).WithBottomMargin(4).
		WithDefaultFont(&props.Font{Family: "courier", Size: 8}).
		WithTitle("Nota de Entrega", true).
		Build()

	m := maroto.New(cfg)

	// Encabezado
	m.AddRows(row.New(14).Add(col.New(12).Add(
		text.New("CHIPSMANAGER", props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: colorPrimary, Top: 1,
		}),
		text.New("NOTA DE ENTREGA", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 8,
		}),
	)))
	m.AddRows(row.New(9).Add(col.New(12).Add(
		text.New("Folio: #"+note.Folio, props.Text{Size: 8, Top: 1}),
		text.New("Fecha: "+note.IssuedAt.Format("02/01/2006 15:04"), props.Text{Size: 8, Top: 5}),
	)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	// Destino
	m.AddRows(destinationRows(note)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	// Líneas de producto
	m.AddRows(row.New(6).Add(
		col.New(2).Add(text.New("Cant", props.Text{Style: fontstyle.Bold, Size: 7, Top: 1})),
		col.New(6).Add(text.New("Producto", props.Text{Style: fontstyle.Bold, Size: 7, Top: 1})),
		col.New(4).Add(text.New("Importe", props.Text{Style: fontstyle.Bold, Size: 7, Align: align.Right, Top: 1})),
	))
	for _, item := range note.Items {
		m.AddRows(row.New(7).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", item.Quantity), props.Text{Size: 7, Top: 1})),
			col.New(6).Add(text.New(item.ProductName, props.Text{Size: 7, Top: 1})),
			col.New(4).Add(text.New("$"+item.Subtotal.StringFixed(2), props.Text{Size: 7, Align: align.Right, Top: 1})),
		))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	// Totales
	m.AddRows(row.New(10).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total piezas: %d", note.TotalUnits), props.Text{Size: 8, Top: 1}),
		text.New("Valor total: $"+note.TotalValue.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 5, Color: colorPrimary,
		}),
	)))

	// Firma de recibido
	m.AddRows(row.New(14))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New("Recibí de conformidad", props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ticket: %w", err)
	}
	return doc.GetBytes(), nil
}

// destinationRows: bloque con los datos de la tienda receptora.
func destinationRows(note *dto.DeliveryNoteDTO) []core.Row {
	rows := []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New("ENTREGAR EN:", props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 1}),
			text.New(note.StoreName, props.Text{Style: fontstyle.Bold, Size: 9, Top: 5}),
		)),
	}
	if note.StoreLocation != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(note.StoreLocation, props.Text{Size: 7, Top: 0.5, Color: colorGray}),
		)))
	}
	if note.StoreManager != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Atiende: "+note.StoreManager, props.Text{Size: 7, Top: 0.5, Color: colorGray}),
		)))
	}
	return rows
}
