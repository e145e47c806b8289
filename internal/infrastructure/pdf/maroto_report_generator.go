// Package pdf gera o relatório comparativo de cenários tributários em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + cenários comparados + data de emissão      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Fornecedor | Custo base | Custo alvo | Δ | Δ%       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Total base / Total alvo / Variação total            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: nota metodológica                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/viafiscal/custoreal-api/internal/application/dto"
	"github.com/viafiscal/custoreal-api/internal/application/usecase"
	"github.com/viafiscal/custoreal-api/internal/domain/costing"
)

var _ usecase.ComparisonReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 11, Green: 83, Blue: 69}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorIncrease = &props.Color{Red: 170, Green: 40, Blue: 40}
	colorSavings  = &props.Color{Red: 30, Green: 110, Blue: 60}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa usecase.ComparisonReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateComparisonPDF gera o PDF comparativo e devolve seus bytes.
func (g *MarotoReportGenerator) GenerateComparisonPDF(
	_ context.Context,
	base, target dto.ResultadoResponse,
	cmp costing.ScenarioComparison,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comparativo de Cenários Tributários", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(base.ScenarioKey, target.ScenarioKey))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(base, cmp.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(cmp))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: título (esq) e cenários + data de emissão (dir).
func headerRow(baseKey, targetKey string) core.Row {
	if baseKey == "" {
		baseKey = "vigente"
	}
	emitted := time.Now().Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("COMPARATIVO DE CENÁRIOS TRIBUTÁRIOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Custo efetivo por fornecedor sob a reforma IBS/CBS", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Base: %s", baseKey), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			}),
			text.New(fmt.Sprintf("Alvo: %s", targetKey), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 7,
			}),
			text.New("Emitido: "+emitted, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de itens.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fornecedor", 4, align.Left),
		h("Custo base", 2, align.Right),
		h("Custo alvo", 2, align.Right),
		h("Variação", 2, align.Right),
		h("Variação %", 2, align.Right),
	)
}

// tableItemRows: uma linha por oferta comparada.
func tableItemRows(base dto.ResultadoResponse, items []costing.ItemDelta) []core.Row {
	names := make(map[string]string, len(base.Itens))
	for _, it := range base.Itens {
		names[it.OfferID] = it.SupplierName
	}

	result := make([]core.Row, 0, len(items))
	for _, d := range items {
		name := names[d.OfferID]
		if name == "" {
			name = d.OfferID
		}
		deltaColor := colorSavings
		if d.AbsoluteDelta.IsPositive() {
			deltaColor = colorIncrease
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(name, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New("R$ "+d.BaseCost.StringFixed(4), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New("R$ "+d.TargetCost.StringFixed(4), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New(signed(d.AbsoluteDelta, 4), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1, Color: deltaColor,
			})),
			col.New(2).Add(text.New(signed(d.PercentDelta, 2)+"%", props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1, Color: deltaColor,
			})),
		))
	}
	return result
}

// totalsRow: bloco de totais alinhado à direita.
func totalsRow(cmp costing.ScenarioComparison) core.Row {
	deltaColor := colorSavings
	if cmp.TotalDelta.IsPositive() {
		deltaColor = colorIncrease
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Total base:"),
			label("Total alvo:"),
			text.New("VARIAÇÃO TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2,
			}),
		),
		col.New(4).Add(
			value("R$ "+cmp.TotalBase.StringFixed(4)),
			value("R$ "+cmp.TotalTarget.StringFixed(4)),
			text.New(fmt.Sprintf("%s (%s%%)", signed(cmp.TotalDelta, 4), signed(cmp.TotalDeltaPct, 2)), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: deltaColor, Right: 1,
			}),
		),
	)
}

// footerRow: nota metodológica.
func footerRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(
			"Custos efetivos calculados por unidade utilizável (rendimento aplicado), "+
				"com crédito tributário conforme regime do fornecedor. "+
				"Valores simulados sob a LC 214/2025; não constituem parecer fiscal.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// signed formata um decimal com sinal explícito. Ex: 1.5 → "+1.5000", -2 → "-2.0000"
func signed(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)
	if !d.IsNegative() {
		return "+" + s
	}
	return s
}
