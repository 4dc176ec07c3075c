// Package pdf genera el informe de analítica del dashboard en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Restaurante + Sucursal  │  Periodo + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Ingresos / Ticket medio / Pagos / Tasa de éxito       │
//	│  Ventanas: 24h / 7d / 30d                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Top ítems (Cant | Nombre | Categoría | Ingresos)     │
//	│  TABLA: Top clientes (Teléfono | Nombre | Pedidos | Total)   │
//	│  TABLA: Ventas por día                                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fecha de generación                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-admin-api/internal/application/ports"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/analytics"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 140, Green: 45, Blue: 25}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ports.AnalyticsPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.AnalyticsPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateAnalyticsPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateAnalyticsPDF(
	_ context.Context,
	header ports.ReportHeader,
	snap analytics.Snapshot,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de ventas", true).
		WithAuthor(nonEmpty(header.RestaurantName, "Restaurante"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(header, snap))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(snap.Totals))
	m.AddRows(windowsRow(snap.Totals))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("PLATOS MÁS VENDIDOS"))
	m.AddRows(tableHeaderRow([]column{
		{"Cant.", 2, align.Center}, {"Plato", 5, align.Left}, {"Categoría", 2, align.Left}, {"Ingresos", 3, align.Right},
	}))
	m.AddRows(itemRows(snap.TopItems)...)

	m.AddRows(sectionTitle("MEJORES CLIENTES"))
	m.AddRows(tableHeaderRow([]column{
		{"Teléfono", 3, align.Left}, {"Nombre", 4, align.Left}, {"Pedidos", 2, align.Center}, {"Total", 3, align.Right},
	}))
	m.AddRows(customerRows(snap.TopCustomers)...)

	m.AddRows(sectionTitle("VENTAS POR DÍA"))
	m.AddRows(tableHeaderRow([]column{
		{"Fecha", 4, align.Left}, {"Pedidos", 3, align.Center}, {"Ingresos", 5, align.Right},
	}))
	m.AddRows(dailyRows(snap.Trends.Daily)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New("Generado el "+snap.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
			Size: 7, Color: colorGray, Align: align.Right, Top: 1,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: restaurante + sucursal (izq) y periodo (der).
func headerRow(header ports.ReportHeader, snap analytics.Snapshot) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(header.RestaurantName, "Restaurante"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Sucursal: "+nonEmpty(header.BranchName, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INFORME DE VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(PeriodLabel(snap.Days), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

func kpiRow(t analytics.Totals) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Top: 6, Align: align.Center}),
		)
	}
	return row.New(16).Add(
		kpi("Ingresos", Money(t.TotalRevenue)),
		kpi("Ticket medio", Money(t.AverageOrderValue)),
		kpi("Pagos", strconv.Itoa(t.PaymentCount)),
		kpi("Tasa de éxito", t.SuccessRate.StringFixed(1)+"%"),
	)
}

func windowsRow(t analytics.Totals) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Últimas 24h: %s   |   7 días: %s   |   30 días: %s",
			Money(t.Revenue24h), Money(t.Revenue7d), Money(t.Revenue30d),
		), props.Text{Size: 8, Color: colorGray, Align: align.Center, Top: 2}),
	))
}

func sectionTitle(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3}),
	))
}

type column struct {
	label string
	size  int
	align align.Type
}

func tableHeaderRow(cols []column) core.Row {
	r := row.New(7)
	for _, c := range cols {
		r.Add(col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1,
		})))
	}
	return r
}

func cell(size int, s string, a align.Type) core.Col {
	return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
}

func emptyRow() core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("Sin datos en el periodo", props.Text{Size: 8, Color: colorGray, Align: align.Center, Top: 1}),
	))
}

func itemRows(items []analytics.ItemStat) []core.Row {
	if len(items) == 0 {
		return []core.Row{emptyRow()}
	}
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(6).Add(
			cell(2, strconv.Itoa(it.Quantity), align.Center),
			cell(5, it.Name, align.Left),
			cell(2, nonEmpty(it.Category, "—"), align.Left),
			cell(3, Money(it.Revenue), align.Right),
		))
	}
	return result
}

func customerRows(customers []analytics.CustomerStat) []core.Row {
	if len(customers) == 0 {
		return []core.Row{emptyRow()}
	}
	result := make([]core.Row, 0, len(customers))
	for _, c := range customers {
		result = append(result, row.New(6).Add(
			cell(3, c.Phone, align.Left),
			cell(4, nonEmpty(c.Name, "—"), align.Left),
			cell(2, strconv.Itoa(c.Orders), align.Center),
			cell(3, Money(c.Revenue), align.Right),
		))
	}
	return result
}

func dailyRows(days []analytics.DailyStat) []core.Row {
	if len(days) == 0 {
		return []core.Row{emptyRow()}
	}
	result := make([]core.Row, 0, len(days))
	for _, d := range days {
		result = append(result, row.New(6).Add(
			cell(4, d.Date, align.Left),
			cell(3, strconv.Itoa(d.Orders), align.Center),
			cell(5, Money(d.Revenue), align.Right),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

// PeriodLabel describe la ventana del informe.
func PeriodLabel(days int) string {
	if days == 0 {
		return "Todo el histórico"
	}
	return fmt.Sprintf("Últimos %d días", days)
}

// Money formatea un importe en pesos sin decimales: 1234567.8 -> "$1.234.568".
func Money(d decimal.Decimal) string {
	s := d.Round(0).StringFixed(0)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	return sign + "$" + formatThousands(s)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
