package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const Version = "1.0.0"

var (
	jsonOutput     bool
	nonInteractive bool

	logoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB454")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD787")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
)

const Logo = `
 ██████╗ ██╗   ██╗██╗ ██████╗██╗  ██╗████████╗ █████╗ ██████╗ ███████╗
██╔═══██╗██║   ██║██║██╔════╝██║ ██╔╝╚══██╔══╝██╔══██╗██╔══██╗██╔════╝
██║   ██║██║   ██║██║██║     █████╔╝    ██║   ███████║██████╔╝███████╗
██║▄▄ ██║██║   ██║██║██║     ██╔═██╗    ██║   ██╔══██║██╔══██╗╚════██║
╚██████╔╝╚██████╔╝██║╚██████╗██║  ██╗   ██║   ██║  ██║██████╔╝███████║
 ╚══▀▀═╝  ╚═════╝ ╚═╝ ╚═════╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝╚═════╝ ╚══════╝
`

var rootCmd = &cobra.Command{
	Use:   "quicktabs",
	Short: "Save links and open them in your preferred browser",
	Long: Logo + `
Quicktabs keeps a collection of tagged links and aliases and opens them in
the browser you choose. The first launch detects the browsers installed on
this machine and remembers your pick; private/incognito mode is a flag away.`,
	Version: Version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal reports whether it is sensible to show interactive UI.
func isTerminal() bool {
	if os.Getenv("CI") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func warn(format string, args ...any) {
	fmt.Fprintln(os.Stderr, warnStyle.Render(fmt.Sprintf("Warning: "+format, args...)))
}

func init() {
	rootCmd.SetVersionTemplate("quicktabs version {{.Version}}\n")

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(launchCmd)
	rootCmd.AddCommand(addLinkCmd)
	rootCmd.AddCommand(removeLinkCmd)
	rootCmd.AddCommand(listLinksCmd)
	rootCmd.AddCommand(openAllLinksCmd)
	rootCmd.AddCommand(addAliasCmd)
	rootCmd.AddCommand(removeAliasCmd)
	rootCmd.AddCommand(openAllAliasesCmd)

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON (disables interactive mode)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "no-interactive", false, "Skip interactive prompts (for CI/automation)")
}
