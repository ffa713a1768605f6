package template

import (
	"github.com/hance08/caja/internal/auth"
	"github.com/hance08/caja/internal/service"
	"github.com/spf13/cobra"
)

// NewTemplateCmd groups the commands that manage transaction templates.
func NewTemplateCmd(svc *service.Service, owner auth.Resolver) *cobra.Command {
	templateCmd := &cobra.Command{
		Use:     "template",
		Aliases: []string{"tpl"},
		Short:   "Manage transaction templates",
		Long: `Templates store a box, type, amount and description you record often.
Use one with "caja add --template <id>".`,
	}

	templateCmd.AddCommand(NewCreateCmd(svc, owner))
	templateCmd.AddCommand(NewListCmd(svc, owner))
	templateCmd.AddCommand(NewDeleteCmd(svc, owner))

	return templateCmd
}
