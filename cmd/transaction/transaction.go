/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package transaction

import (
	"github.com/hance08/caja/internal/auth"
	"github.com/hance08/caja/internal/service"
	"github.com/spf13/cobra"
)

// NewTransactionCmd represents the transaction command
func NewTransactionCmd(svc *service.Service, owner auth.Resolver) *cobra.Command {
	transactionCmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
		Long:    "Manage transactions: list, view details, edit, or delete them. Box balances follow every change.",
	}

	transactionCmd.AddCommand(NewListCmd(svc, owner))
	transactionCmd.AddCommand(NewShowCmd(svc, owner))
	transactionCmd.AddCommand(NewEditCmd(svc, owner))
	transactionCmd.AddCommand(NewDeleteCmd(svc, owner))

	return transactionCmd
}
