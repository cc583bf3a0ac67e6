package cmd

import (
	"github.com/spf13/cobra"
)

// newAutocompleteCmd represents the command to generate shell autocompletion scripts
func newAutocompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "autocomplete [shell]",
		Short: "Generate autocomplete script for your shell",
		Long: `Generate an autocomplete script for gputemp.
This command supports Bash and Zsh shells.`,
		DisableFlagsInUseLine: true,
		Hidden:                true,
		ValidArgs:             []string{"bash", "zsh"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			default:
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			}
		},
	}
}
