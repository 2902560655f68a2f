package cli

import (
	"github.com/spf13/cobra"
)

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// completionCommand prints a shell completion script. The scripts complete
// subcommands, flags and, for generate, catalog diagram names.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Print a shell completion script",
		Long: `Print a completion script for gymdiag.

Once loaded, "gymdiag generate <TAB>" lists the catalog diagrams
(pentagon_gym_erd, pentagon_gym_class_diagram, ...), and --format and
--engine complete their accepted values.

  bash        source <(gymdiag completion bash)
  zsh         gymdiag completion zsh > "${fpath[1]}/_gymdiag"
  fish        gymdiag completion fish | source
  powershell  gymdiag completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             completionShells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, w := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(w, true)
			case "zsh":
				return root.GenZshCompletion(w)
			case "fish":
				return root.GenFishCompletion(w, true)
			default:
				return root.GenPowerShellCompletionWithDesc(w)
			}
		},
	}
	return cmd
}
