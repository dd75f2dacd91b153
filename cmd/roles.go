package cmd

import (
	"github.com/spf13/cobra"

	"github.com/qaforge/patloc/lib/patloc"
)

func getRolesCmd() *cobra.Command {
	var inputOnly bool

	rolesCmd := &cobra.Command{
		Use:   "roles",
		Short: "List the supported element roles",
		Long: `List the element roles a locator can be resolved for. Roles marked with *
take part in label association when a label template is configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, role := range patloc.AllRoles {
				if inputOnly && !role.InputLike() {
					continue
				}
				marker := ""
				if role.InputLike() {
					marker = " *"
				}
				fprintf(stdout, "%s%s\n", role, marker)
			}
			return nil
		},
	}

	rolesCmd.Flags().BoolVar(&inputOnly, "input-only", false, "only list roles that accept input")
	return rolesCmd
}
