package cmd

import (
	"context"

	"ezforum-cli/api"
	"ezforum-cli/term"
	"ezforum-cli/types"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   `ezforum [command] [flags]`,
	Short: "EZ论坛: the forum from your terminal",
	Long:  "Browse posts, comment, like and moderate the EZ forum from the command line.",
}

var apiClient *api.Api
var store types.KeyValueStore
var nav *navigator

// Execute wires the client and the session store into the command tree and
// runs it. It is called once by main.main().
func Execute(ctx context.Context, client *api.Api, kv types.KeyValueStore, toaster *term.Toaster) {
	apiClient = client
	store = kv
	nav = newNavigator()
	toaster.SetNavigateFn(nav.NavigateTo)

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		term.OutputErrorAndExit("Error executing root command: %v", err)
	}
}
