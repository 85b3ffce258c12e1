package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"quicktabs/cmd/ui/browsermenu"
	"quicktabs/cmd/ui/spinner"
	"quicktabs/pkg/browser"
	"quicktabs/pkg/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var forceDetect bool

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect installed browsers and choose the preferred one",
	Long: Logo + `
Probes the executable search path, well-known install directories, and the
platform's registered browser handlers, then lets you pick the browser used
by launch and open-all. The choice is saved and reused until it goes stale.`,
	Run: runDetect,
}

func runDetect(cmd *cobra.Command, args []string) {
	if jsonOutput {
		found := browser.Detect(context.Background())
		if found == nil {
			found = []browser.Browser{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(found); err != nil {
			warn("could not encode browser list: %v", err)
		}
		return
	}

	if isTerminal() {
		fmt.Printf("%s\n", logoStyle.Render(Logo))
	}

	if resolveBrowser(forceDetect) == nil {
		fmt.Fprintln(os.Stderr, "No browser selected.")
		os.Exit(1)
	}
}

// resolveBrowser returns the browser to launch with: the saved one when it
// is still valid (unless force), otherwise the result of a fresh detection
// run plus selection. A fresh selection is persisted before returning. nil
// means the user ended up with no browser; callers that need one refuse to
// continue.
func resolveBrowser(force bool) *browser.Browser {
	if !force {
		if b := config.Load(); b != nil {
			fmt.Println(infoStyle.Render(fmt.Sprintf("Using saved browser: %s", b.Path)))
			return b
		}
	}

	ctx := context.Background()
	found := detectWithSpinner(ctx)

	if err := browser.WriteReport(".", found); err != nil {
		warn("could not write detection report: %v", err)
	}

	if len(found) > 0 {
		fmt.Println(successStyle.Render(fmt.Sprintf("Found %d unique browser(s)", len(found))))
	}

	selected := selectBrowser(ctx, found)
	if selected == nil {
		return nil
	}

	if err := config.Save(*selected); err != nil {
		// The in-memory selection still works for this run.
		warn("could not save browser preference: %v", err)
	} else {
		fmt.Println(infoStyle.Render("Saved preferred browser to " + config.GetConfigPath()))
	}
	return selected
}

func detectWithSpinner(ctx context.Context) []browser.Browser {
	if !isTerminal() {
		return browser.Detect(ctx)
	}

	spinnerProgram := tea.NewProgram(spinner.InitialModel("Searching for installed browsers..."))
	go func() {
		if _, err := spinnerProgram.Run(); err != nil {
			// The program is killed once detection finishes; that error is expected.
			if err.Error() != "program was killed" {
				fmt.Fprintf(os.Stderr, "Error running spinner: %v\n", err)
			}
		}
	}()

	found := browser.Detect(ctx)
	spinnerProgram.Quit()
	spinnerProgram.Wait()
	return found
}

// selectBrowser applies the selection policy. The bubbletea menu handles
// the N>=2 case on a real terminal; everywhere else the line-oriented
// Selector covers all counts, so scripted and piped input behave the same.
func selectBrowser(ctx context.Context, found []browser.Browser) *browser.Browser {
	if nonInteractive {
		// CI mode never prompts: take the first candidate or give up.
		if len(found) == 0 {
			fmt.Println(warnStyle.Render("No browsers detected."))
			return nil
		}
		b := found[0]
		fmt.Println(successStyle.Render("Auto-selected: " + b.Name))
		return &b
	}

	selector := browser.NewSelector(os.Stdin, os.Stdout)

	if len(found) >= 2 && isTerminal() {
		index, manual, err := browsermenu.Show(found)
		if err != nil {
			warn("%v", err)
			return nil
		}
		if manual {
			return selector.ManualEntry(ctx)
		}
		b := found[index]
		fmt.Println(successStyle.Render("Selected: " + b.Name))
		return &b
	}

	return selector.Select(ctx, found)
}

func init() {
	detectCmd.Flags().BoolVar(&forceDetect, "force", false, "Ignore the saved browser and re-detect")
}
