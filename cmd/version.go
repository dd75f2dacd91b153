package cmd

import (
	"github.com/spf13/cobra"

	"github.com/qaforge/patloc/lib/consts"
)

func getVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show application version",
		Long:  `Show the application version and exit.`,
		Run: func(_ *cobra.Command, _ []string) {
			fprintf(stdout, "patloc v%s\n", consts.FullVersion())
		},
	}
}
