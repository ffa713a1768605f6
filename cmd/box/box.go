package box

import (
	"github.com/hance08/caja/internal/auth"
	"github.com/hance08/caja/internal/service"
	"github.com/spf13/cobra"
)

func NewBoxCmd(svc *service.Service, owner auth.Resolver) *cobra.Command {
	boxCmd := &cobra.Command{
		Use:     "box",
		Aliases: []string{"boxes"},
		Short:   "Create, list, edit, archive and verify boxes.",
		Long: `A box is a named pot of money: a wallet, a bank account, or a savings goal.
Its balance only ever moves through the transactions recorded in it.`,
	}

	boxCmd.AddCommand(NewCreateCmd(svc, owner))
	boxCmd.AddCommand(NewListCmd(svc, owner))
	boxCmd.AddCommand(NewShowCmd(svc, owner))
	boxCmd.AddCommand(NewEditCmd(svc, owner))
	boxCmd.AddCommand(NewArchiveCmd(svc, owner))
	boxCmd.AddCommand(NewVerifyCmd(svc, owner))

	return boxCmd
}
