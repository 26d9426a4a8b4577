package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/zjrosen/spacetraders/internal/ledger"
)

const entryColumns = `id, agent, kind, reference, delta, balance, created_at`

// ledgerRepository implements ledger.Repository using SQLite.
type ledgerRepository struct {
	db *sql.DB
}

func newLedgerRepository(db *sql.DB) *ledgerRepository {
	return &ledgerRepository{db: db}
}

// Ensure ledgerRepository implements ledger.Repository.
var _ ledger.Repository = (*ledgerRepository)(nil)

func scanEntry(scanner interface{ Scan(...any) error }) (*EntryModel, error) {
	var model EntryModel
	err := scanner.Scan(
		&model.ID, &model.Agent, &model.Kind, &model.Reference,
		&model.Delta, &model.Balance, &model.CreatedAt,
	)
	return &model, err
}

// Record inserts a new entry.
func (r *ledgerRepository) Record(ctx context.Context, entry *ledger.Entry) error {
	model := toEntryModel(entry)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO ledger_entries (`+entryColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		model.ID, model.Agent, model.Kind, model.Reference,
		model.Delta, model.Balance, model.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ledger entry: %w", err)
	}
	return nil
}

// FindByID retrieves an entry by id.
// Returns EntryNotFoundError if no matching entry exists.
func (r *ledgerRepository) FindByID(ctx context.Context, id string) (*ledger.Entry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM ledger_entries WHERE id = ?`, id)
	model, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &ledger.EntryNotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find ledger entry: %w", err)
	}
	return model.toDomain(), nil
}

// List retrieves an agent's entries, newest first.
func (r *ledgerRepository) List(ctx context.Context, agent string, filter ledger.ListFilter) ([]*ledger.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE agent = ?`
	args := []any{agent}
	if filter.Kind != "" {
		query += ` AND kind = ?`
		args = append(args, string(filter.Kind))
	}
	query += ` ORDER BY created_at DESC, seq DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*ledger.Entry
	for rows.Next() {
		model, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, model.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger entries: %w", err)
	}
	return entries, nil
}

// Net sums every delta recorded for an agent.
func (r *ledgerRepository) Net(ctx context.Context, agent string) (int64, error) {
	var net int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(delta), 0) FROM ledger_entries WHERE agent = ?`, agent,
	).Scan(&net)
	if err != nil {
		return 0, fmt.Errorf("failed to sum ledger entries: %w", err)
	}
	return net, nil
}

// Close is a no-op; the connection belongs to DB.
func (r *ledgerRepository) Close() error {
	return nil
}
