package cmd

import (
	"encoding/json"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/qaforge/patloc/errext"
	"github.com/qaforge/patloc/errext/exitcodes"
	"github.com/qaforge/patloc/lib/patloc"
)

//nolint:gochecknoglobals
var descColor = color.New(color.Faint)

func getResolveCmd(logger logrus.FieldLogger) *cobra.Command {
	var (
		page   string
		value  string
		isJSON bool
	)

	resolveCmd := &cobra.Command{
		Use:   "resolve <role> <field>",
		Short: "Resolve a field into its element locators",
		Long: `Resolve a (page, role, field) triple into the locators a driver should try,
using the configured explicit locators and role templates.`,
		Example: `  patloc resolve --page "Login Page" button "Log In"
  patloc resolve -p app.properties --page Signup radio Plan --value premium`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, _, err := newResolver(cmd.Flags(), logger)
			if err != nil {
				return err
			}

			res, err := resolver.ByRoleValue(page, args[0], args[1], value)
			if err != nil {
				return errext.WithExitCodeIfNone(err, exitcodes.ResolutionFailed)
			}

			if isJSON {
				out, jsonErr := json.Marshal(res.All())
				if jsonErr != nil {
					return jsonErr
				}
				fprintf(stdout, "%s\n", string(out))
				return nil
			}

			if res.Description != "" {
				fprintf(stdout, "%s\n", descColor.Sprint(res.Description))
			}
			for _, locator := range res.All() {
				fprintf(stdout, "%s\n", locator)
			}
			return nil
		},
	}

	resolveCmd.Flags().SortFlags = false
	resolveCmd.Flags().AddFlagSet(configFlagSet())
	resolveCmd.Flags().StringVar(&page, "page", patloc.DefaultPage, "page name the field lives on")
	resolveCmd.Flags().StringVar(&value, "value", "", "field value for ${loc.auto.fieldValue}")
	resolveCmd.Flags().BoolVar(&isJSON, "json", false, "print the locator list as JSON")
	return resolveCmd
}
