// Package render turns application views into terminal output: plain text
// dashboards and reports, colored when enabled, and a markdown report that
// can be passed through glamour.
package render

import (
	"fmt"
	"io"
	"strings"

	money "github.com/Rhymond/go-money"
	"github.com/charmbracelet/lipgloss"
)

const rule = "--------------------------------------------------"

var (
	winColor   = lipgloss.AdaptiveColor{Light: "#2E9E4F", Dark: "#73F59F"}
	lossColor  = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF6B6B"}
	mainColor  = lipgloss.AdaptiveColor{Light: "#1F6FB2", Dark: "#38BDF8"}
	tempColor  = lipgloss.AdaptiveColor{Light: "#B7791F", Dark: "#FBBF24"}
	mutedColor = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6B7280"}

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	winStyle   = lipgloss.NewStyle().Foreground(winColor)
	lossStyle  = lipgloss.NewStyle().Foreground(lossColor)
	mainStyle  = lipgloss.NewStyle().Foreground(mainColor)
	tempStyle  = lipgloss.NewStyle().Foreground(tempColor)
	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)
)

// Options controls the presentation.
type Options struct {
	Currency string
	Color    bool
}

// Printer writes views to w.
type Printer struct {
	w    io.Writer
	opts Options
}

// NewPrinter returns a printer writing to w. An empty currency means USD.
func NewPrinter(w io.Writer, opts Options) *Printer {
	if opts.Currency == "" {
		opts.Currency = money.USD
	}
	return &Printer{w: w, opts: opts}
}

func (p *Printer) paint(s lipgloss.Style, text string) string {
	if !p.opts.Color {
		return text
	}
	return s.Render(text)
}

// Money formats an amount in the configured currency, e.g. "$1,234.50".
func (p *Printer) Money(x float64) string {
	return money.NewFromFloat(x, p.opts.Currency).Display()
}

// Signed formats an amount with an explicit sign, colored by direction.
func (p *Printer) Signed(x float64) string {
	s := p.Money(x)
	switch {
	case x > 0:
		return p.paint(winStyle, "+"+s)
	case x < 0:
		return p.paint(lossStyle, s)
	}
	return s
}

// Pct formats a percentage colored by direction.
func (p *Printer) Pct(x float64) string {
	s := fmt.Sprintf("%.2f%%", x)
	switch {
	case x > 0:
		return p.paint(winStyle, "+"+s)
	case x < 0:
		return p.paint(lossStyle, s)
	}
	return s
}

func (p *Printer) title(s string) {
	fmt.Fprintln(p.w, "==================================================")
	fmt.Fprintln(p.w, " "+p.paint(titleStyle, s))
	fmt.Fprintln(p.w, "==================================================")
}

func (p *Printer) section(s string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, s)
	fmt.Fprintln(p.w, rule)
}

// bar draws a horizontal bar of width cells filled to pct percent.
func bar(pct float64, width int) string {
	n := int(pct/100*float64(width) + 0.5)
	n = max(0, min(width, n))
	return strings.Repeat("█", n) + strings.Repeat("░", width-n)
}

func periodLabel(period string) string {
	if period == "" || period == "all" {
		return "All Time"
	}
	return period
}
