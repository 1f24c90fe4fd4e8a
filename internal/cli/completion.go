package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// completionGenerators maps shell names to cobra's completion writers.
var completionGenerators = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash": func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletion(w) },
	"zsh":  func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish": func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error {
		return root.GenPowerShellCompletionWithDesc(w)
	},
}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for plotgrid.

To load completions:

Bash:
  $ source <(plotgrid completion bash)

  # To load completions for each session, execute once:
  $ plotgrid completion bash > /etc/bash_completion.d/plotgrid

Zsh:
  $ plotgrid completion zsh > "${fpath[1]}/_plotgrid"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ plotgrid completion fish > ~/.config/fish/completions/plotgrid.fish

PowerShell:
  PS> plotgrid completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionGenerators[args[0]](cmd.Root(), os.Stdout)
		},
	}
}
