package cmd

import (
	"fmt"
	"os"
	"strings"

	"ezforum-cli/pages"
	"ezforum-cli/term"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Show the app's pages and tab bar",
	Args:  cobra.NoArgs,
	Run:   listPages,
}

func init() {
	RootCmd.AddCommand(pagesCmd)
	pagesCmd.Flags().String("active", "", "Route to highlight in the tab bar")
}

func listPages(cmd *cobra.Command, args []string) {
	active, _ := cmd.Flags().GetString("active")
	if active == "" {
		active = pages.App.Home().Path
	}
	if _, ok := pages.App.Find(active); !ok {
		term.OutputErrorAndExit("%s", unknownRouteMsg(active))
	}

	fmt.Println(renderTabBar(&pages.App, active))
	fmt.Println()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Route", "Title", "Tab", "Command"})
	for _, p := range pages.App.Pages {
		tab := ""
		if pages.App.IsTab(p.Path) {
			tab = "✓"
		}
		table.Append([]string{p.Path, p.Title(), tab, "ezforum " + p.Command})
	}
	table.Render()
}

func unknownRouteMsg(route string) string {
	msg := fmt.Sprintf("no page at %s", route)
	if suggestions := pages.App.Suggest(route); len(suggestions) > 0 {
		msg += ". Did you mean " + strings.Join(suggestions, " or ") + "?"
	}
	return msg
}

// renderTabBar draws the tab bar in its configured colors, with the tab for
// the active route in the selected color.
func renderTabBar(cfg *pages.Config, active string) string {
	bar := cfg.TabBar
	active = pages.Normalize(active)

	base := lipgloss.NewStyle().
		Padding(0, 3).
		Background(lipgloss.Color(bar.BackgroundColor)).
		Foreground(lipgloss.Color(bar.Color))
	selected := base.Foreground(lipgloss.Color(bar.SelectedColor)).Bold(true)

	tabs := make([]string, 0, len(bar.List))
	for _, item := range bar.List {
		style := base
		if item.PagePath == active {
			style = selected
		}
		tabs = append(tabs, style.Render(item.Text))
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(lipgloss.Color(bar.BorderStyle)).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}
