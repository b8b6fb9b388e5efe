package render

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	money "github.com/Rhymond/go-money"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"github.com/rustyeddy/pocketbook/app"
)

// reportMarkdownTemplate is the template for rendering a period report in Markdown.
const reportMarkdownTemplate = `# Report: {{ label .Period }}

Total equity **{{ money .Report.End.Total }}**, net P/L **{{ signed .Report.NetProfit }}** ({{ pct .Report.PeriodROI }} for the period, {{ pct .Report.AllTimeROI }} all time).

## Pockets

| Pocket | Start | End | Share | Net P/L |
|:---|---:|---:|---:|---:|
| MAIN | {{ money .Report.Start.Main }} | {{ money .Report.End.Main }} | {{ printf "%.1f%%" .Report.End.MainShare }} | {{ signed .Report.MainNet }} |
| TEMP | {{ money .Report.Start.Temp }} | {{ money .Report.End.Temp }} | {{ printf "%.1f%%" .Report.End.TempShare }} | {{ signed .Report.TempNet }} |

## Trades

| Metric | Value |
|:---|---:|
| Trades | {{ .Report.Trades }} |
| Win rate | {{ printf "%.2f%%" .Report.WinRate }} |
| Profit factor | {{ .Report.ProfitFactor }} |
| Expected payoff | {{ money .Report.ExpectedPayoff }} |
| Average win | {{ money .Report.AvgWin }} |
| Average loss | {{ money .Report.AvgLoss }} |
| Max drawdown | {{ printf "%.2f%%" .Report.MaxDrawdownPct }} |
| Max consecutive wins | {{ .Report.MaxConsecutiveWins }} |
| Max consecutive losses | {{ .Report.MaxConsecutiveLosses }} |

{{- if .Report.Trades }}

## Sessions

| Session | Trades | Wins | Net |
|:---|---:|---:|---:|
{{- range .Report.Sessions }}
| {{ .Session }} | {{ .Trades }} | {{ .Wins }} | {{ signed .Net }} |
{{- end }}
{{- end }}

{{- if .Events }}

## Timeline

| Time | Event | Detail | Value | Total |
|:---|:---|:---|---:|---:|
{{- range .Events }}
| {{ .Local.Format "2006-01-02 15:04" }} | {{ if .IsTrade }}{{ .Side }}{{ else }}{{ .TxType }}{{ end }} | {{ if .IsTrade }}{{ printf "%.2f lot, %.1f pips" .Trade.Lots .Pips }}{{ else }}{{ .Allocation }}{{ end }} | {{ signed .Value }} | {{ money .Running.Total }} |
{{- end }}
{{- end }}
`

// Markdown renders v as a markdown document in the given currency.
func Markdown(v app.View, currency string) (string, error) {
	if currency == "" {
		currency = money.USD
	}
	display := func(x float64) string { return money.NewFromFloat(x, currency).Display() }
	funcs := template.FuncMap{
		"label": periodLabel,
		"money": display,
		"signed": func(x float64) string {
			if x > 0 {
				return "+" + display(x)
			}
			return display(x)
		},
		"pct": func(x float64) string { return fmt.Sprintf("%.2f%%", x) },
	}

	tmpl, err := template.New("report").Funcs(funcs).Parse(reportMarkdownTemplate)
	if err != nil {
		return "", fmt.Errorf("parse report template: %w", err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, v); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return b.String(), nil
}

// Pretty renders markdown for the terminal. With color off the notty style
// is used so the output stays free of escape codes.
func Pretty(w io.Writer, md string, color bool, width int) error {
	style := styles.AutoStyle
	if !color {
		style = styles.NoTTYStyle
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
