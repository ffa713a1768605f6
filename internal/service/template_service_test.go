package service

import (
	"context"
	"testing"

	"github.com/hance08/caja/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc, s := setup(t)
	box := mustBox(t, svc, alice, CreateBoxInput{Name: "Wallet", OpeningBalance: 100})

	tpl, err := svc.Template.CreateTemplate(ctx, alice, CreateTemplateInput{
		Name: " Coffee ", BoxID: box.ID, Type: model.TxExpense, Amount: 4, Description: "Flat white",
	})
	require.NoError(t, err)
	assert.Equal(t, "Coffee", tpl.Name)
	assert.Equal(t, "Wallet", tpl.BoxName)
	assert.Equal(t, int64(100), balanceOf(t, s, alice, box.ID), "templates never move money")

	got, err := svc.Template.GetTemplate(ctx, alice, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Amount)

	_, err = svc.Template.GetTemplate(ctx, bob, tpl.ID)
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	assert.ErrorIs(t, svc.Template.DeleteTemplate(ctx, bob, tpl.ID), ErrTemplateNotFound)
	require.NoError(t, svc.Template.DeleteTemplate(ctx, alice, tpl.ID))
	assert.ErrorIs(t, svc.Template.DeleteTemplate(ctx, alice, tpl.ID), ErrTemplateNotFound)

	list, err := svc.Template.ListTemplates(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateTemplate_Rejections(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)
	box := mustBox(t, svc, alice, CreateBoxInput{Name: "Wallet"})
	archived := mustBox(t, svc, alice, CreateBoxInput{Name: "Old"})
	require.NoError(t, svc.Box.ArchiveBox(ctx, alice, archived.ID))

	valid := CreateTemplateInput{Name: "Rent", BoxID: box.ID, Type: model.TxExpense, Amount: 900, Description: "Rent"}

	in := valid
	in.Name = ""
	_, err := svc.Template.CreateTemplate(ctx, alice, in)
	assert.ErrorIs(t, err, ErrValidation)

	in = valid
	in.Amount = 0
	_, err = svc.Template.CreateTemplate(ctx, alice, in)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Template.CreateTemplate(ctx, bob, valid)
	assert.ErrorIs(t, err, ErrBoxNotFound)

	in = valid
	in.BoxID = archived.ID
	_, err = svc.Template.CreateTemplate(ctx, alice, in)
	assert.ErrorIs(t, err, ErrBoxNotFound)
}
