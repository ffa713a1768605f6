package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hance08/caja/internal/model"
)

const templateColumns = `p.id, p.owner_id, p.box_id, p.name, p.amount, p.type, p.description, p.created_at, b.name`

func (s *Store) CreateTemplate(ctx context.Context, tpl *model.Template) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO transaction_templates (id, owner_id, box_id, name, amount, type, description, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `,
		tpl.ID, tpl.OwnerID, tpl.BoxID, tpl.Name, tpl.Amount, string(tpl.Type),
		tpl.Description, tpl.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert template '%s': %w", tpl.Name, mapSQLiteErr(err))
	}
	return nil
}

func (s *Store) GetTemplate(ctx context.Context, ownerID, id string) (*model.Template, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT `+templateColumns+`
        FROM transaction_templates p
        INNER JOIN boxes b ON b.id = p.box_id
        WHERE p.id = ? AND p.owner_id = ?
    `, id, ownerID)

	tpl, err := scanTemplate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("template %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query template %s: %w", id, err)
	}
	return tpl, nil
}

func (s *Store) ListTemplates(ctx context.Context, ownerID string) ([]*model.Template, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT `+templateColumns+`
        FROM transaction_templates p
        INNER JOIN boxes b ON b.id = p.box_id
        WHERE p.owner_id = ?
        ORDER BY p.name COLLATE NOCASE, p.id
    `, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query templates: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var templates []*model.Template
	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, tpl)
	}

	return templates, rows.Err()
}

func (s *Store) DeleteTemplate(ctx context.Context, ownerID, id string) error {
	result, err := s.db.ExecContext(ctx, `
        DELETE FROM transaction_templates
        WHERE id = ? AND owner_id = ?
    `, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	return checkAffected(result, "template", id)
}

func scanTemplate(row rowScanner) (*model.Template, error) {
	tpl := &model.Template{}

	var (
		txType    string
		createdAt int64
	)

	err := row.Scan(
		&tpl.ID, &tpl.OwnerID, &tpl.BoxID, &tpl.Name, &tpl.Amount, &txType,
		&tpl.Description, &createdAt, &tpl.BoxName,
	)
	if err != nil {
		return nil, err
	}

	tpl.Type = model.TxType(txType)
	tpl.CreatedAt = time.Unix(createdAt, 0)

	return tpl, nil
}
