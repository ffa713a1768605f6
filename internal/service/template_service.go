package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/hance08/caja/internal/model"
	"github.com/hance08/caja/internal/store"
	"github.com/hance08/caja/internal/validation"
)

type TemplateService struct {
	base
}

type CreateTemplateInput struct {
	Name        string
	BoxID       string
	Type        model.TxType
	Amount      int64
	Description string
}

// CreateTemplate saves a reusable transaction shape. Templates never touch
// balances.
func (ps *TemplateService) CreateTemplate(ctx context.Context, ownerID string, in CreateTemplateInput) (*model.Template, error) {
	if err := validation.ValidateTemplateName(in.Name); err != nil {
		return nil, err
	}
	if err := validation.ValidateTransaction(in.Amount, in.Type, in.Description); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.BoxID) == "" {
		return nil, invalid("box", "box is required")
	}

	tpl := &model.Template{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		BoxID:       in.BoxID,
		Name:        strings.TrimSpace(in.Name),
		Amount:      in.Amount,
		Type:        in.Type,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   ps.now(),
	}

	err := ps.repo.ExecTx(ctx, func(repo store.Repository) error {
		box, err := activeBox(ctx, repo, ownerID, in.BoxID)
		if err != nil {
			return err
		}
		if err := repo.CreateTemplate(ctx, tpl); err != nil {
			return storageErr(err)
		}
		tpl.BoxName = box.Name
		return nil
	})
	if err != nil {
		return nil, storageErr(err)
	}

	ps.logger.Debug("template created", ps.logger.Args("id", tpl.ID, "name", tpl.Name))
	return tpl, nil
}

func (ps *TemplateService) GetTemplate(ctx context.Context, ownerID, id string) (*model.Template, error) {
	tpl, err := ps.repo.GetTemplate(ctx, ownerID, id)
	if err != nil {
		return nil, notFoundOr(err, ErrTemplateNotFound)
	}
	return tpl, nil
}

func (ps *TemplateService) ListTemplates(ctx context.Context, ownerID string) ([]*model.Template, error) {
	templates, err := ps.repo.ListTemplates(ctx, ownerID)
	if err != nil {
		return nil, storageErr(err)
	}
	return templates, nil
}

func (ps *TemplateService) DeleteTemplate(ctx context.Context, ownerID, id string) error {
	if err := ps.repo.DeleteTemplate(ctx, ownerID, id); err != nil {
		return notFoundOr(err, ErrTemplateNotFound)
	}

	ps.logger.Debug("template deleted", ps.logger.Args("id", id))
	return nil
}
