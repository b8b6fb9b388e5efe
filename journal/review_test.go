package journal

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/pocketbook/ledger"
)

func TestWriteReviewOrg(t *testing.T) {
	t.Parallel()

	events := sampleTimeline()
	r := Review{
		Period:  "2024-01",
		Created: time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC),
		Report:  ledger.Summarize(events, ledger.Baseline{}),
		Events:  events,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReviewOrg(&buf, r))
	out := buf.String()

	assert.Contains(t, out, "* REVIEW: 2024-01\n")
	assert.Contains(t, out, ":END_BAL:      1154.50\n")
	assert.Contains(t, out, ":TRADES:       1\n")
	assert.Contains(t, out, ":PROFIT_FAC:   ∞\n")
	assert.Contains(t, out, ":CREATED:      [2024-02-01 Thu 10:30]\n")
	assert.Contains(t, out, "| TEMP   | 1154.50 | 100.0 | 154.50 |")
	assert.Contains(t, out, "** Timeline")
	assert.Contains(t, out, "** Trade: BUY")
}

func TestWriteReviewOrgWithoutEvents(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteReviewOrg(&buf, Review{Period: "all", Created: time.Now()}))
	assert.NotContains(t, buf.String(), "** Timeline")
	assert.Contains(t, buf.String(), ":PROFIT_FAC:   0.00\n")
}
