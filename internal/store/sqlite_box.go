package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hance08/caja/internal/model"
)

const boxColumns = `id, owner_id, name, icon, color, balance, is_goal, target_amount, is_third_party, is_archived, created_at`

func (s *Store) CreateBox(ctx context.Context, box *model.Box) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO boxes (`+boxColumns+`)
        VALUES (?, ?, ?, ?, ?, 0, ?, ?, ?, ?, ?)
    `,
		box.ID, box.OwnerID, box.Name, box.Icon, box.Color,
		box.IsGoal, box.TargetAmount, box.IsThirdParty, box.IsArchived,
		box.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to create box '%s': %w", box.Name, mapSQLiteErr(err))
	}

	// balance always starts at zero; it only moves through AdjustBalance
	box.Balance = 0
	return nil
}

// GetBox returns the box regardless of its archived flag. Boxes owned by
// someone else are reported as ErrRecordNotFound.
func (s *Store) GetBox(ctx context.Context, ownerID, id string) (*model.Box, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+boxColumns+" FROM boxes WHERE id = ? AND owner_id = ?", id, ownerID)

	box, err := scanBox(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("box %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query box %s: %w", id, err)
	}
	return box, nil
}

func (s *Store) ListBoxes(ctx context.Context, ownerID string, filter BoxFilter) ([]*model.Box, error) {
	query := "SELECT " + boxColumns + " FROM boxes WHERE owner_id = ?"
	args := []any{ownerID}

	if !filter.IncludeArchived {
		query += " AND is_archived = 0"
	}
	if filter.GoalsOnly {
		query += " AND is_goal = 1"
	}
	query += " ORDER BY name COLLATE NOCASE, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query boxes: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var boxes []*model.Box
	for rows.Next() {
		box, err := scanBox(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan box: %w", err)
		}
		boxes = append(boxes, box)
	}

	return boxes, rows.Err()
}

// UpdateBox writes the descriptive fields of a box. Balance is never
// touched here.
func (s *Store) UpdateBox(ctx context.Context, box *model.Box) error {
	result, err := s.db.ExecContext(ctx, `
        UPDATE boxes
        SET name = ?, icon = ?, color = ?, is_goal = ?, target_amount = ?, is_third_party = ?
        WHERE id = ? AND owner_id = ?
    `,
		box.Name, box.Icon, box.Color, box.IsGoal, box.TargetAmount, box.IsThirdParty,
		box.ID, box.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update box: %w", mapSQLiteErr(err))
	}

	return checkAffected(result, "box", box.ID)
}

func (s *Store) ArchiveBox(ctx context.Context, ownerID, id string) error {
	result, err := s.db.ExecContext(ctx, `
        UPDATE boxes SET is_archived = 1
        WHERE id = ? AND owner_id = ? AND is_archived = 0
    `, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to archive box: %w", err)
	}

	return checkAffected(result, "box", id)
}

func (s *Store) AdjustBalance(ctx context.Context, boxID string, delta int64) error {
	result, err := s.db.ExecContext(ctx, `
        UPDATE boxes SET balance = balance + ?
        WHERE id = ?
    `, delta, boxID)
	if err != nil {
		return fmt.Errorf("failed to adjust balance of box %s: %w", boxID, err)
	}

	return checkAffected(result, "box", boxID)
}

// LedgerSum recomputes the balance of a box from its transaction history.
func (s *Store) LedgerSum(ctx context.Context, boxID string) (int64, error) {
	var sum sql.NullInt64
	err := s.db.QueryRowContext(ctx, `
        SELECT SUM(CASE type WHEN 'INCOME' THEN amount ELSE -amount END)
        FROM transactions
        WHERE box_id = ?
    `, boxID).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate ledger sum: %w", err)
	}

	if sum.Valid {
		return sum.Int64, nil
	}
	return 0, nil
}

func scanBox(row rowScanner) (*model.Box, error) {
	box := &model.Box{}

	var (
		icon, color sql.NullString
		target      sql.NullInt64
		createdAt   int64
	)

	err := row.Scan(
		&box.ID, &box.OwnerID, &box.Name, &icon, &color, &box.Balance,
		&box.IsGoal, &target, &box.IsThirdParty, &box.IsArchived, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if icon.Valid {
		box.Icon = &icon.String
	}
	if color.Valid {
		box.Color = &color.String
	}
	if target.Valid {
		box.TargetAmount = &target.Int64
	}
	box.CreatedAt = time.Unix(createdAt, 0)

	return box, nil
}
