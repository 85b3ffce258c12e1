package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addAliasCmd = &cobra.Command{
	Use:   "add-alias <tag> <url>",
	Short: "Save an alias shortcut",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		aliases := loadAliases()
		aliases.Add(args[0], args[1])
		saveOrExit(aliases.Save)
		fmt.Println(successStyle.Render("Alias saved!"))
	},
}

var removeAliasCmd = &cobra.Command{
	Use:   "remove-alias <tag>",
	Short: "Remove a saved alias",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		aliases := loadAliases()
		if !aliases.Remove(args[0]) {
			fmt.Println(warnStyle.Render(fmt.Sprintf("Alias tag %q not found.", args[0])))
			return
		}
		saveOrExit(aliases.Save)
		fmt.Println(successStyle.Render("Alias removed!"))
	},
}

var openAllAliasesCmd = &cobra.Command{
	Use:   "open-all-aliases",
	Short: "Open every saved alias",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		openAll(loadAliases().URLs(), "aliases")
	},
}

func init() {
	openAllAliasesCmd.Flags().BoolVarP(&incognito, "incognito", "i", false, "Open in private/incognito mode")
}
