// Package remote talks to the hosted record store: a spreadsheet-backed web
// app that serves the whole dataset on GET and accepts one mutation per POST.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/rustyeddy/pocketbook/journal"
)

// DefaultTimeout bounds every request when no timeout is configured.
const DefaultTimeout = 30 * time.Second

const statusSuccess = "success"

var (
	// ErrIngest marks a failed or rejected dataset fetch.
	ErrIngest = errors.New("ingest failed")
	// ErrMutation marks a failed or rejected mutation.
	ErrMutation = errors.New("mutation failed")
)

// Client is a journal.Store backed by the web app at baseURL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ journal.Store = (*Client)(nil)

// NewClient creates a client for the web app at baseURL. A zero timeout
// selects DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type payload struct {
	Trades       []wireTrade       `json:"trades"`
	Transactions []wireTransaction `json:"transactions"`
}

// Fetch downloads the full dataset.
func (c *Client) Fetch(ctx context.Context) (journal.Dataset, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return journal.Dataset{}, errors.Wrapf(ErrIngest, "parse url: %v", err)
	}
	q := u.Query()
	q.Set("action", "getData")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return journal.Dataset{}, errors.Wrapf(ErrIngest, "create request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return journal.Dataset{}, errors.Wrapf(ErrIngest, "execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return journal.Dataset{}, errors.Wrapf(ErrIngest, "status %d: %s", resp.StatusCode, string(body))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return journal.Dataset{}, errors.Wrapf(ErrIngest, "decode response: %v", err)
	}
	if env.Status != statusSuccess {
		return journal.Dataset{}, errors.Wrapf(ErrIngest, "status %q: %s", env.Status, env.Message)
	}

	var p payload
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return journal.Dataset{}, errors.Wrapf(ErrIngest, "decode data: %v", err)
		}
	}

	ds := journal.Dataset{}
	for _, t := range p.Trades {
		ds.Trades = append(ds.Trades, t.record())
	}
	for _, t := range p.Transactions {
		ds.Transactions = append(ds.Transactions, t.record())
	}
	return ds, nil
}

// Submit validates m and posts it as one flat JSON object. A 2xx reply whose
// body is not a JSON envelope counts as accepted; the web app often answers
// with a plain redirect page.
func (c *Client) Submit(ctx context.Context, m journal.Mutation) error {
	if err := m.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(encodeMutation(m))
	if err != nil {
		return errors.Wrapf(ErrMutation, "encode %s: %v", m.Action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return errors.Wrapf(ErrMutation, "create request: %v", err)
	}
	// text/plain keeps the request simple for the web app.
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(ErrMutation, "execute %s: %v", m.Action, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Wrapf(ErrMutation, "%s: status %d: %s", m.Action, resp.StatusCode, truncate(raw))
	}

	var env envelope
	if json.Unmarshal(raw, &env) == nil && env.Status != "" && env.Status != statusSuccess {
		return errors.Wrapf(ErrMutation, "%s: status %q: %s", m.Action, env.Status, env.Message)
	}
	return nil
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func truncate(b []byte) string {
	if len(b) > 512 {
		b = b[:512]
	}
	return string(b)
}
