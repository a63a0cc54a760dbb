package cmd

import (
	"fmt"
	"strings"

	"ezforum-cli/shared"
	"ezforum-cli/term"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Moderation commands (admins only)",
}

var adminPostsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List all posts",
	Args:  cobra.NoArgs,
	Run:   adminListPosts,
}

var adminDeletePostCmd = &cobra.Command{
	Use:   "delete-post <post-id>",
	Short: "Delete any post",
	Args:  cobra.ExactArgs(1),
	Run:   adminDeletePost,
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List all users",
	Args:  cobra.NoArgs,
	Run:   adminListUsers,
}

var adminSetRoleCmd = &cobra.Command{
	Use:   "set-role <user-id> [role]",
	Short: "Change a user's role",
	Args:  cobra.RangeArgs(1, 2),
	Run:   adminSetRole,
}

var roles = []string{shared.RoleUser, shared.RoleAdmin}

func init() {
	RootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminPostsCmd, adminDeletePostCmd, adminUsersCmd, adminSetRoleCmd)

	addListFlags(adminPostsCmd)
	addListFlags(adminUsersCmd)

	adminDeletePostCmd.Flags().BoolP("yes", "y", false, "Skip confirmation")
}

func adminListPosts(cmd *cobra.Command, args []string) {
	term.StartSpinner("")
	res, apiErr := apiClient.Admin.GetAllPosts(cmd.Context(), listParams(cmd))
	term.StopSpinner()
	if apiErr != nil {
		handleApiError(cmd.Context(), apiErr)
	}

	printPostList(&res.Data)
}

func adminDeletePost(cmd *cobra.Command, args []string) {
	if !confirmed(cmd, "Delete post %s for everyone?", args[0]) {
		fmt.Println("🤷‍♂️ Delete canceled")
		return
	}

	term.StartSpinner("")
	_, apiErr := apiClient.Admin.DeletePost(cmd.Context(), args[0])
	term.StopSpinner()
	if apiErr != nil {
		handleApiError(cmd.Context(), apiErr)
	}

	term.OutputSuccess("Deleted post %s", args[0])
}

func adminListUsers(cmd *cobra.Command, args []string) {
	term.StartSpinner("")
	res, apiErr := apiClient.Admin.GetAllUsers(cmd.Context(), listParams(cmd))
	term.StopSpinner()
	if apiErr != nil {
		handleApiError(cmd.Context(), apiErr)
	}

	printUserList(&res.Data)
}

func adminSetRole(cmd *cobra.Command, args []string) {
	userId := args[0]

	var role string
	if len(args) > 1 {
		var err error
		role, err = resolveRole(args[1])
		if err != nil {
			term.OutputErrorAndExit("%v", err)
		}
	} else {
		term.StartSpinner("")
		current, apiErr := apiClient.Users.GetUserById(cmd.Context(), userId)
		term.StopSpinner()
		if apiErr != nil {
			handleApiError(cmd.Context(), apiErr)
		}

		var err error
		role, err = term.SelectFromList(fmt.Sprintf("Role for %s:", current.Data.Username), roles, current.Data.Role)
		if err != nil {
			term.OutputErrorAndExit("Error selecting role: %v", err)
		}
		if role == current.Data.Role {
			fmt.Printf("🤷‍♂️ %s is already %s\n", current.Data.Username, role)
			return
		}
	}

	term.StartSpinner("")
	res, apiErr := apiClient.Admin.UpdateUserRole(cmd.Context(), userId, role)
	term.StopSpinner()
	if apiErr != nil {
		handleApiError(cmd.Context(), apiErr)
	}

	term.OutputSuccess("%s is now %s", res.Data.Username, res.Data.Role)
}

// resolveRole maps loose input ("admin", "adm", "u") to exactly one role.
func resolveRole(input string) (string, error) {
	input = strings.TrimSpace(input)
	for _, r := range roles {
		if strings.EqualFold(r, input) {
			return r, nil
		}
	}

	if input != "" {
		matches := fuzzy.FindFold(input, roles)
		if len(matches) == 1 {
			return matches[0], nil
		}
	}
	return "", fmt.Errorf("unknown role %q, expected one of %s", input, strings.Join(roles, ", "))
}
