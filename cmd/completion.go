package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for toggltxt.

The completion command allows you to generate shell completion scripts for
bash, zsh, fish, and powershell. This enables tab-completion for commands,
flags, and arguments in your shell.

Usage:
  toggltxt completion bash       Generate bash completion script
  toggltxt completion zsh        Generate zsh completion script
  toggltxt completion fish       Generate fish completion script
  toggltxt completion powershell Generate powershell completion script

Installation Instructions:

Bash:
  # Load completion temporarily (current session only):
  source <(toggltxt completion bash)

  # Install completion permanently:
  # Linux:
  toggltxt completion bash > ~/.local/share/bash-completion/completions/toggltxt

  # macOS (requires bash-completion from Homebrew):
  toggltxt completion bash > $(brew --prefix)/etc/bash_completion.d/toggltxt

Zsh:
  # Load completion temporarily (current session only):
  source <(toggltxt completion zsh)

  # Install completion permanently:
  mkdir -p ~/.zsh/completion
  toggltxt completion zsh > ~/.zsh/completion/_toggltxt

  # Then add to ~/.zshrc and restart your shell:
  echo 'fpath=(~/.zsh/completion $fpath)' >> ~/.zshrc
  echo 'autoload -Uz compinit && compinit' >> ~/.zshrc

Fish:
  # Install completion permanently:
  toggltxt completion fish > ~/.config/fish/completions/toggltxt.fish

PowerShell:
  # Add this line to your PowerShell profile:
  toggltxt completion powershell | Out-String | Invoke-Expression`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.ExactValidArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// generateCompletion generates the appropriate completion script based on shell type
func generateCompletion(shell string) {
	var err error

	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(deps.Stdout)
	case "zsh":
		err = rootCmd.GenZshCompletion(deps.Stdout)
	case "fish":
		err = rootCmd.GenFishCompletion(deps.Stdout, true)
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(deps.Stdout)
	default:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unsupported shell '%s'\n", shell)
		_, _ = fmt.Fprintln(deps.Stderr, "Supported shells: bash, zsh, fish, powershell")
		deps.Exit(1)
		return
	}

	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to generate %s completion: %v\n", shell, err)
		deps.Exit(1)
		return
	}
}
