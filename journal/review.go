package journal

import (
	"io"
	"text/template"
	"time"

	"github.com/pkg/errors"

	"github.com/rustyeddy/pocketbook/ledger"
)

// Review is the data behind a period review in Org-mode.
type Review struct {
	Period  string
	Created time.Time
	Report  ledger.Report
	Events  []ledger.Event
}

var reviewOrgFuncs = template.FuncMap{
	"orTime": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
	"event": FormatEventOrg,
}

var reviewOrg = template.Must(template.New("review").Funcs(reviewOrgFuncs).Parse(ReviewOrgTemplate))

// WriteReviewOrg renders r as an Org-mode review to w.
func WriteReviewOrg(w io.Writer, r Review) error {
	if err := reviewOrg.Execute(w, r); err != nil {
		return errors.Wrap(err, "render review")
	}
	return nil
}

const ReviewOrgTemplate = `* REVIEW: {{.Period}}
:PROPERTIES:
:PERIOD:       {{.Period}}
:START_BAL:    {{printf "%.2f" .Report.Start.Total}}
:END_BAL:      {{printf "%.2f" .Report.End.Total}}
:MAIN_BAL:     {{printf "%.2f" .Report.End.Main}}
:TEMP_BAL:     {{printf "%.2f" .Report.End.Temp}}
:NET_PL:       {{printf "%.2f" .Report.NetProfit}}
:PERIOD_ROI:   {{printf "%.2f" .Report.PeriodROI}}
:ALLTIME_ROI:  {{printf "%.2f" .Report.AllTimeROI}}
:MAX_DD_PCT:   {{printf "%.2f" .Report.MaxDrawdownPct}}
:TRADES:       {{.Report.Trades}}
:WINS:         {{.Report.Wins}}
:LOSSES:       {{.Report.Losses}}
:WIN_RATE:     {{printf "%.2f" .Report.WinRate}}
:PROFIT_FAC:   {{.Report.ProfitFactor}}
:CREATED:      [{{(orTime .Created).Format "2006-01-02 Mon 15:04"}}]
:END:

** Performance Summary
- Net P/L:          *{{printf "%.2f" .Report.NetProfit}}*
- Period ROI:       *{{printf "%.2f" .Report.PeriodROI}}%*
- All-time ROI:     *{{printf "%.2f" .Report.AllTimeROI}}%*
- Max Drawdown:     *{{printf "%.2f" .Report.MaxDrawdownPct}}%*
- Win Rate:         *{{printf "%.2f" .Report.WinRate}}%*
- Profit Factor:    *{{.Report.ProfitFactor}}*
- Expected Payoff:  *{{printf "%.2f" .Report.ExpectedPayoff}}*

** Pockets
| Pocket | Balance | Share % | Net P/L |
|--------+---------+---------+---------|
| MAIN   | {{printf "%.2f" .Report.End.Main}} | {{printf "%.1f" .Report.End.MainShare}} | {{printf "%.2f" .Report.MainNet}} |
| TEMP   | {{printf "%.2f" .Report.End.Temp}} | {{printf "%.1f" .Report.End.TempShare}} | {{printf "%.2f" .Report.TempNet}} |

** Trade Distribution
| Outcome | Count |
|---------+-------|
| Wins    | {{.Report.Wins}} |
| Losses  | {{.Report.Losses}} |
| Total   | {{.Report.Trades}} |
{{- if .Events }}

** Timeline
{{- range .Events }}

{{ event . }}
{{- end }}
{{- end }}
`
