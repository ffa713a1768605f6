package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hance08/caja/internal/model"
)

const transactionColumns = `t.id, t.box_id, t.amount, t.type, t.description, t.date, t.created_at, b.name`

func (s *Store) CreateTransaction(ctx context.Context, tx *model.Transaction) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO transactions (id, box_id, amount, type, description, date, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `,
		tx.ID, tx.BoxID, tx.Amount, string(tx.Type), tx.Description,
		tx.Date.Unix(), tx.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction : %w", mapSQLiteErr(err))
	}
	return nil
}

// GetTransaction looks a transaction up through its box, so a transaction is
// only visible to the owner of the box holding it.
func (s *Store) GetTransaction(ctx context.Context, ownerID, id string) (*model.Transaction, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT `+transactionColumns+`
        FROM transactions t
        INNER JOIN boxes b ON b.id = t.box_id
        WHERE t.id = ? AND b.owner_id = ?
    `, id, ownerID)

	tx, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query transaction %s: %w", id, err)
	}
	return tx, nil
}

func (s *Store) UpdateTransaction(ctx context.Context, tx *model.Transaction) error {
	result, err := s.db.ExecContext(ctx, `
        UPDATE transactions
        SET box_id = ?, amount = ?, type = ?, description = ?, date = ?
        WHERE id = ?
    `, tx.BoxID, tx.Amount, string(tx.Type), tx.Description, tx.Date.Unix(), tx.ID)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", mapSQLiteErr(err))
	}

	return checkAffected(result, "transaction", tx.ID)
}

func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `
        DELETE FROM transactions
        WHERE id = ?
    `, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return checkAffected(result, "transaction", id)
}

// ListTransactions returns the owner's transactions, newest first unless
// filter.Ascending is set. A non-positive Limit means no limit.
func (s *Store) ListTransactions(ctx context.Context, ownerID string, filter TransactionFilter) ([]*model.Transaction, error) {
	where, args := transactionWhere(ownerID, filter.BoxID, "", filter.From, filter.To)

	order := "DESC"
	if filter.Ascending {
		order = "ASC"
	}

	query := `
        SELECT ` + transactionColumns + `
        FROM transactions t
        INNER JOIN boxes b ON b.id = t.box_id
        WHERE ` + where + `
        ORDER BY t.date ` + order + `, t.created_at ` + order + `, t.id ` + order

	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Skip)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var transactions []*model.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

func (s *Store) CountTransactions(ctx context.Context, ownerID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
        SELECT COUNT(*)
        FROM transactions t
        INNER JOIN boxes b ON b.id = t.box_id
        WHERE b.owner_id = ?
    `, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// SumTransactions totals the amounts of one type within [from, to].
func (s *Store) SumTransactions(ctx context.Context, ownerID string, txType model.TxType, from, to time.Time) (int64, error) {
	where, args := transactionWhere(ownerID, "", txType, from, to)

	var sum sql.NullInt64
	err := s.db.QueryRowContext(ctx, `
        SELECT SUM(t.amount)
        FROM transactions t
        INNER JOIN boxes b ON b.id = t.box_id
        WHERE `+where, args...).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("failed to sum transactions: %w", err)
	}

	if sum.Valid {
		return sum.Int64, nil
	}
	return 0, nil
}

func transactionWhere(ownerID, boxID string, txType model.TxType, from, to time.Time) (string, []any) {
	clauses := []string{"b.owner_id = ?"}
	args := []any{ownerID}

	if boxID != "" {
		clauses = append(clauses, "t.box_id = ?")
		args = append(args, boxID)
	}
	if txType != "" {
		clauses = append(clauses, "t.type = ?")
		args = append(args, string(txType))
	}
	if !from.IsZero() {
		clauses = append(clauses, "t.date >= ?")
		args = append(args, from.Unix())
	}
	if !to.IsZero() {
		clauses = append(clauses, "t.date <= ?")
		args = append(args, to.Unix())
	}

	return strings.Join(clauses, " AND "), args
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	tx := &model.Transaction{}

	var (
		txType          string
		date, createdAt int64
	)

	err := row.Scan(
		&tx.ID, &tx.BoxID, &tx.Amount, &txType, &tx.Description,
		&date, &createdAt, &tx.BoxName,
	)
	if err != nil {
		return nil, err
	}

	tx.Type = model.TxType(txType)
	tx.Date = time.Unix(date, 0)
	tx.CreatedAt = time.Unix(createdAt, 0)

	return tx, nil
}
