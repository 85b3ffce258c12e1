package cmd

import (
	"fmt"
	"os"

	"quicktabs/pkg/browser"
	"quicktabs/pkg/launcher"
	"quicktabs/pkg/store"

	"github.com/spf13/cobra"
)

var incognito bool

var launchCmd = &cobra.Command{
	Use:   "launch <target>",
	Short: "Open a tag, alias, or URL in the preferred browser",
	Args:  cobra.ExactArgs(1),
	Run:   runLaunch,
}

func runLaunch(cmd *cobra.Command, args []string) {
	b := requireBrowser()
	target := args[0]

	links, err := store.LoadLinks(store.GetLinksPath())
	if err != nil {
		warn("%v", err)
	}
	aliases, err := store.LoadAliases(store.GetAliasesPath())
	if err != nil {
		warn("%v", err)
	}

	// Aliases shadow link tags; anything unknown is taken as a literal URL.
	url := target
	if resolved, ok := aliases.Resolve(target); ok {
		url = resolved
	} else if resolved, ok := links.GetURL(target); ok {
		url = resolved
	}

	mode := launcher.ModeNormal
	if incognito {
		mode = launcher.ModePrivate
	}

	fmt.Println(infoStyle.Render(fmt.Sprintf("Launching %s in %s (%s mode)", url, b.Path, mode)))
	if err := launcher.Launch(*b, []string{url}, mode); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// requireBrowser resolves the preferred browser and refuses to continue
// without one.
func requireBrowser() *browser.Browser {
	b := resolveBrowser(false)
	if b == nil {
		fmt.Fprintln(os.Stderr, "Error: no browser configured. Run 'quicktabs detect' or enter one manually.")
		os.Exit(1)
	}
	return b
}

func init() {
	launchCmd.Flags().BoolVarP(&incognito, "incognito", "i", false, "Open in private/incognito mode")
}
