package cmd

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/qaforge/patloc/errext"
	"github.com/qaforge/patloc/errext/exitcodes"
)

func getCheckCmd(logger logrus.FieldLogger) *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the configured role templates",
		Long: `Load the configured property files and validate every role template:
the role must be supported, the template must split into at least one
plausible locator candidate and may only use supported placeholders.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, b, err := newResolver(cmd.Flags(), logger)
			if err != nil {
				return err
			}

			errs := resolver.CheckTemplates()
			for _, checkErr := range errs {
				fields := logrus.Fields{}
				var hint errext.HasHint
				if errors.As(checkErr, &hint) {
					fields["hint"] = hint.Hint()
				}
				logger.WithFields(fields).Error(checkErr)
			}
			if len(errs) > 0 {
				return errext.WithExitCodeIfNone(
					fmt.Errorf("%d invalid locator template(s)", len(errs)),
					exitcodes.InvalidConfig,
				)
			}

			fprintf(stdout, "%d templates ok (%d properties loaded)\n", len(resolver.Roles()), b.Len())
			return nil
		},
	}

	checkCmd.Flags().SortFlags = false
	checkCmd.Flags().AddFlagSet(configFlagSet())
	return checkCmd
}
