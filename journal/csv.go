package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/rustyeddy/pocketbook/ledger"
)

var (
	timelineHeader = []string{
		"id", "category", "time", "local_time", "type", "allocation", "session",
		"lots", "pips", "value", "main", "temp", "total", "main_net", "temp_net", "deposits", "growth_pct",
	}
	equityHeader = []string{"label", "time", "main", "temp", "total"}
)

// CSVExporter writes an enriched timeline and its equity curve to two CSV
// files.
type CSVExporter struct {
	timeline *csv.Writer
	equity   *csv.Writer
	tf, ef   *os.File
}

// NewCSV creates both files and writes their headers.
func NewCSV(timelinePath, equityPath string) (*CSVExporter, error) {
	tf, err := os.Create(timelinePath)
	if err != nil {
		return nil, errors.Wrap(err, "create timeline csv")
	}
	ef, err := os.Create(equityPath)
	if err != nil {
		_ = tf.Close()
		return nil, errors.Wrap(err, "create equity csv")
	}

	x := &CSVExporter{
		timeline: csv.NewWriter(tf),
		equity:   csv.NewWriter(ef),
		tf:       tf,
		ef:       ef,
	}
	if err := x.timeline.Write(timelineHeader); err != nil {
		_ = x.Close()
		return nil, err
	}
	if err := x.equity.Write(equityHeader); err != nil {
		_ = x.Close()
		return nil, err
	}
	return x, nil
}

// WriteEvent appends one timeline row.
func (x *CSVExporter) WriteEvent(e ledger.Event) error {
	var typ, lots, pips string
	if e.IsTrade() {
		typ = string(e.Trade.Side)
		lots = f(e.Trade.Lots)
		pips = strconv.FormatFloat(e.Pips, 'f', 1, 64)
	} else {
		typ = string(e.Transaction.Type)
	}

	return x.timeline.Write([]string{
		e.ID,
		string(e.Category),
		e.Timestamp.UTC().Format(time.RFC3339),
		e.Local.Format(time.RFC3339),
		typ,
		string(e.Allocation),
		string(e.Session),
		lots,
		pips,
		f(e.Value),
		f(e.Running.Main),
		f(e.Running.Temp),
		f(e.Running.Total),
		f(e.Running.MainNet),
		f(e.Running.TempNet),
		f(e.Running.Deposits),
		f(e.Growth),
	})
}

// WritePoint appends one equity curve row.
func (x *CSVExporter) WritePoint(p ledger.Point) error {
	var ts string
	if !p.Time.IsZero() {
		ts = p.Time.Format(time.RFC3339)
	}
	return x.equity.Write([]string{p.Label, ts, f(p.Main), f(p.Temp), f(p.Total)})
}

// Export writes a whole period in one go.
func (x *CSVExporter) Export(events []ledger.Event, curve []ledger.Point) error {
	for _, e := range events {
		if err := x.WriteEvent(e); err != nil {
			return errors.Wrapf(err, "write event %s", e.ID)
		}
	}
	for _, p := range curve {
		if err := x.WritePoint(p); err != nil {
			return errors.Wrap(err, "write equity point")
		}
	}
	return nil
}

func (x *CSVExporter) Close() error {
	x.timeline.Flush()
	if err := x.timeline.Error(); err != nil {
		return err
	}
	x.equity.Flush()
	if err := x.equity.Error(); err != nil {
		return err
	}

	if err := x.tf.Close(); err != nil {
		return err
	}
	if err := x.ef.Close(); err != nil {
		return err
	}
	return nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
