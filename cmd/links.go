package cmd

import (
	"fmt"
	"os"

	"quicktabs/pkg/launcher"
	"quicktabs/pkg/store"

	"github.com/spf13/cobra"
)

var addLinkCmd = &cobra.Command{
	Use:   "add-link <tag> <url>",
	Short: "Save a link under a tag",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		links := loadLinks()
		if links.Add(args[0], args[1]) {
			fmt.Println(infoStyle.Render("Replacing existing link for tag: " + args[0]))
		}
		saveOrExit(links.Save)
		fmt.Println(successStyle.Render("Link saved!"))
	},
}

var removeLinkCmd = &cobra.Command{
	Use:   "remove-link <tag>",
	Short: "Remove a saved link",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		links := loadLinks()
		if !links.Remove(args[0]) {
			fmt.Println(warnStyle.Render(fmt.Sprintf("Link tag %q not found.", args[0])))
			return
		}
		saveOrExit(links.Save)
		fmt.Println(successStyle.Render("Link removed!"))
	},
}

var listLinksCmd = &cobra.Command{
	Use:   "list-links",
	Short: "List saved links and aliases",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		links := loadLinks()
		aliases := loadAliases()

		if len(links.Links) == 0 {
			fmt.Println("No links saved.")
		} else {
			fmt.Println(successStyle.Render("Saved links:"))
			for _, l := range links.Links {
				fmt.Printf("  [%s] %s\n", l.Tag, l.URL)
			}
		}

		if len(aliases.Aliases) == 0 {
			fmt.Println("No aliases saved.")
		} else {
			fmt.Println(successStyle.Render("Saved aliases:"))
			for _, tag := range aliases.Tags() {
				fmt.Printf("  [%s] -> %s\n", tag, aliases.Aliases[tag])
			}
		}
	},
}

var openAllLinksCmd = &cobra.Command{
	Use:   "open-all-links",
	Short: "Open every saved link",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		openAll(loadLinks().URLs(), "links")
	},
}

func openAll(urls []string, what string) {
	if len(urls) == 0 {
		fmt.Printf("No %s to open.\n", what)
		return
	}

	b := requireBrowser()

	mode := launcher.ModeNormal
	if incognito {
		mode = launcher.ModePrivate
	}

	fmt.Println(infoStyle.Render(fmt.Sprintf("Launching %d %s in %s (%s mode)", len(urls), what, b.Path, mode)))
	if err := launcher.Launch(*b, urls, mode); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadLinks() *store.LinkStore {
	links, err := store.LoadLinks(store.GetLinksPath())
	if err != nil {
		warn("%v", err)
	}
	return links
}

func loadAliases() *store.AliasStore {
	aliases, err := store.LoadAliases(store.GetAliasesPath())
	if err != nil {
		warn("%v", err)
	}
	return aliases
}

func saveOrExit(save func() error) {
	if err := save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	openAllLinksCmd.Flags().BoolVarP(&incognito, "incognito", "i", false, "Open in private/incognito mode")
}
