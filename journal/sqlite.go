package journal

import (
	"context"
	"database/sql"

	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/rustyeddy/pocketbook/ledger"
)

// SQLite is a Store kept in a local SQLite file. Records come back in the
// order they were first added; edits keep a record's position.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at path and applies the schema.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "apply schema")
	}

	return &SQLite{db: db}, nil
}

// Fetch loads every trade and transaction.
func (j *SQLite) Fetch(ctx context.Context) (Dataset, error) {
	trades, err := j.listTrades(ctx)
	if err != nil {
		return Dataset{}, err
	}
	txs, err := j.listTransactions(ctx)
	if err != nil {
		return Dataset{}, err
	}
	return Dataset{Trades: trades, Transactions: txs}, nil
}

// Submit applies a validated mutation.
func (j *SQLite) Submit(ctx context.Context, m Mutation) error {
	if err := m.Validate(); err != nil {
		return err
	}

	switch m.Action {
	case AddTrade:
		return j.insertTrade(ctx, *m.Trade)
	case EditTrade:
		return j.updateTrade(ctx, *m.Trade)
	case DeleteTrade:
		return j.delete(ctx, "trades", m.ID)
	case AddTransaction:
		return j.insertTransaction(ctx, *m.Transaction)
	case EditTransaction:
		return j.updateTransaction(ctx, *m.Transaction)
	case DeleteTransaction:
		return j.delete(ctx, "transactions", m.ID)
	}
	return errors.Wrapf(ErrInvalidMutation, "unknown action %q", m.Action)
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

func (j *SQLite) insertTrade(ctx context.Context, t ledger.TradeRecord) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO trades
		(id, side, lots, entry_price, exit_price, open_time, close_time, net_profit)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, string(t.Side), t.Lots, t.EntryPrice, t.ExitPrice,
		t.OpenTime.UTC(), t.CloseTime.UTC(), t.NetProfit,
	)
	return insertErr(err, "insert trade", t.ID)
}

func (j *SQLite) updateTrade(ctx context.Context, t ledger.TradeRecord) error {
	res, err := j.db.ExecContext(ctx, `
		UPDATE trades
		SET side = ?, lots = ?, entry_price = ?, exit_price = ?, open_time = ?, close_time = ?, net_profit = ?
		WHERE id = ?`,
		string(t.Side), t.Lots, t.EntryPrice, t.ExitPrice,
		t.OpenTime.UTC(), t.CloseTime.UTC(), t.NetProfit, t.ID,
	)
	return affected(res, err, "update trade", t.ID)
}

func (j *SQLite) insertTransaction(ctx context.Context, t ledger.TransactionRecord) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO transactions
		(id, type, amount, allocation, date)
		VALUES (?, ?, ?, ?, ?)`,
		t.ID, string(t.Type), t.Amount, string(t.Allocation), t.Date.UTC(),
	)
	return insertErr(err, "insert transaction", t.ID)
}

func (j *SQLite) updateTransaction(ctx context.Context, t ledger.TransactionRecord) error {
	res, err := j.db.ExecContext(ctx, `
		UPDATE transactions
		SET type = ?, amount = ?, allocation = ?, date = ?
		WHERE id = ?`,
		string(t.Type), t.Amount, string(t.Allocation), t.Date.UTC(), t.ID,
	)
	return affected(res, err, "update transaction", t.ID)
}

// table is one of the two fixed table names, never user input.
func (j *SQLite) delete(ctx context.Context, table, recID string) error {
	res, err := j.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, recID)
	return affected(res, err, "delete from "+table, recID)
}

func (j *SQLite) listTrades(ctx context.Context) ([]ledger.TradeRecord, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT id, side, lots, entry_price, exit_price, open_time, close_time, net_profit
		FROM trades
		ORDER BY seq ASC`)
	if err != nil {
		return nil, errors.Wrap(err, "query trades")
	}
	defer rows.Close()

	var out []ledger.TradeRecord
	for rows.Next() {
		var (
			rec  ledger.TradeRecord
			side string
		)
		if err := rows.Scan(
			&rec.ID,
			&side,
			&rec.Lots,
			&rec.EntryPrice,
			&rec.ExitPrice,
			&rec.OpenTime,
			&rec.CloseTime,
			&rec.NetProfit,
		); err != nil {
			return nil, errors.Wrap(err, "scan trade")
		}
		rec.Side = ledger.Side(side)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate trades")
	}
	return out, nil
}

func (j *SQLite) listTransactions(ctx context.Context) ([]ledger.TransactionRecord, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT id, type, amount, allocation, date
		FROM transactions
		ORDER BY seq ASC`)
	if err != nil {
		return nil, errors.Wrap(err, "query transactions")
	}
	defer rows.Close()

	var out []ledger.TransactionRecord
	for rows.Next() {
		var (
			rec             ledger.TransactionRecord
			typ, allocation string
		)
		if err := rows.Scan(&rec.ID, &typ, &rec.Amount, &allocation, &rec.Date); err != nil {
			return nil, errors.Wrap(err, "scan transaction")
		}
		rec.Type = ledger.TxType(typ)
		rec.Allocation = ledger.Pocket(allocation)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate transactions")
	}
	return out, nil
}

func insertErr(err error, op, recID string) error {
	if err == nil {
		return nil
	}
	var se sqlite3.Error
	if errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique {
		return errors.Wrapf(ErrDuplicate, "%s %q", op, recID)
	}
	return errors.Wrapf(err, "%s %q", op, recID)
}

func affected(res sql.Result, err error, op, recID string) error {
	if err != nil {
		return errors.Wrapf(err, "%s %q", op, recID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "%s %q", op, recID)
	}
	if n == 0 {
		return errors.Wrapf(ErrNotFound, "%s %q", op, recID)
	}
	return nil
}
