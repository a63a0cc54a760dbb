package cmd

import (
	"ezforum-cli/auth"
	"ezforum-cli/shared"
	"ezforum-cli/term"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:     "users",
	Aliases: []string{"u"},
	Short:   "View users and edit your profile",
}

var usersShowCmd = &cobra.Command{
	Use:   "show <user-id>",
	Short: "Show a user's profile",
	Args:  cobra.ExactArgs(1),
	Run:   showUser,
}

var usersUpdateProfileCmd = &cobra.Command{
	Use:   "update-profile",
	Short: "Update your username, bio or avatar",
	Args:  cobra.NoArgs,
	Run:   updateProfile,
}

func init() {
	RootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersShowCmd, usersUpdateProfileCmd)

	usersUpdateProfileCmd.Flags().String("username", "", "New username")
	usersUpdateProfileCmd.Flags().String("bio", "", "New bio")
	usersUpdateProfileCmd.Flags().String("avatar", "", "Avatar url")
	usersUpdateProfileCmd.Flags().String("avatar-file", "", "Local image to upload as your avatar")
}

func showUser(cmd *cobra.Command, args []string) {
	term.StartSpinner("")
	res, apiErr := apiClient.Users.GetUserById(cmd.Context(), args[0])
	term.StopSpinner()
	if apiErr != nil {
		handleApiError(cmd.Context(), apiErr)
	}

	printUser(&res.Data)
}

func updateProfile(cmd *cobra.Command, args []string) {
	var req shared.UpdateProfileRequest
	if cmd.Flags().Changed("username") {
		username, _ := cmd.Flags().GetString("username")
		req.Username = &username
	}
	if cmd.Flags().Changed("bio") {
		bio, _ := cmd.Flags().GetString("bio")
		req.Bio = &bio
	}
	if cmd.Flags().Changed("avatar") {
		avatar, _ := cmd.Flags().GetString("avatar")
		req.Avatar = &avatar
	}
	if avatarFile, _ := cmd.Flags().GetString("avatar-file"); avatarFile != "" {
		urls := uploadAll(cmd.Context(), []string{avatarFile})
		req.Avatar = &urls[0]
	}

	if req.Username == nil && req.Bio == nil && req.Avatar == nil {
		term.OutputErrorAndExit("Nothing to update. Pass --username, --bio, --avatar or --avatar-file.")
	}

	term.StartSpinner("")
	res, apiErr := apiClient.Users.UpdateProfile(cmd.Context(), req)
	term.StopSpinner()
	if apiErr != nil {
		handleApiError(cmd.Context(), apiErr)
	}

	// keep the cached profile in step with the server
	err := auth.SetUser(store, &res.Data)
	if err != nil {
		term.OutputSimpleError("Error updating stored profile: %v", err)
	}

	term.OutputSuccess("Profile updated")
	printUser(&res.Data)
}
