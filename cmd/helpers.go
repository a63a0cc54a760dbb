package cmd

import (
	"context"

	"ezforum-cli/api"
	"ezforum-cli/shared"
	"ezforum-cli/term"

	"github.com/spf13/cobra"
)

// handleApiError exits after a failed call. Failures the transport already
// toasted exit without a second message.
func handleApiError(ctx context.Context, apiErr *shared.ApiError) {
	term.StopSpinner()

	switch apiErr.Type {
	case shared.ApiErrorTypeUnauthorized:
		followNavigation(ctx)
		term.ExitSilently()
	case shared.ApiErrorTypeRequestFailed, shared.ApiErrorTypeNetwork:
		term.ExitSilently()
	default:
		term.OutputErrorAndExit("%v", apiErr)
	}
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().Int("page", 0, "Page number (server default when unset)")
	cmd.Flags().Int("limit", 0, "Items per page (server default when unset)")
	cmd.Flags().StringToString("param", nil, "Extra query parameter, e.g. --param search=go")
}

// listParams builds the query for a list command. Unset page and limit are
// left out so the backend applies its defaults.
func listParams(cmd *cobra.Command) any {
	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")
	extra, _ := cmd.Flags().GetStringToString("param")

	if len(extra) == 0 {
		return shared.ListParams{Page: page, Limit: limit}
	}

	params := api.Params{}
	for k, v := range extra {
		params[k] = v
	}
	if page > 0 {
		params["page"] = page
	}
	if limit > 0 {
		params["limit"] = limit
	}
	return params
}

func confirmed(cmd *cobra.Command, msg string, args ...interface{}) bool {
	yes, _ := cmd.Flags().GetBool("yes")
	if yes || !term.IsInteractive() {
		return true
	}

	res, err := term.ConfirmYesNo(msg, args...)
	if err != nil {
		term.OutputErrorAndExit("Error getting confirmation: %v", err)
	}
	return res
}
