package cmd

import (
	"context"
	"fmt"
	"time"

	"ezforum-cli/api"
	"ezforum-cli/auth"
	"ezforum-cli/fs"
	"ezforum-cli/shared"
	"ezforum-cli/term"
	"ezforum-cli/types"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to your forum account",
	Args:  cobra.NoArgs,
	Run:   login,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a forum account",
	Args:  cobra.NoArgs,
	Run:   register,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the stored session",
	Args:  cobra.NoArgs,
	Run:   logout,
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show your profile",
	Args:  cobra.NoArgs,
	Run:   me,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the local session and connection settings",
	Args:  cobra.NoArgs,
	Run:   status,
}

func init() {
	RootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, meCmd, statusCmd)

	loginCmd.Flags().String("email", "", "Account email")
	loginCmd.Flags().String("password", "", "Account password (prompted when omitted)")

	registerCmd.Flags().String("username", "", "Username")
	registerCmd.Flags().String("email", "", "Email")
	registerCmd.Flags().String("password", "", "Password (prompted when omitted)")
}

// promptLogin asks for whatever credentials are missing, signs in and
// stores the session.
func promptLogin(ctx context.Context, email, password string) (*shared.User, error) {
	var err error
	if email == "" {
		email, err = term.GetRequiredUserStringInput("Email:")
		if err != nil {
			return nil, err
		}
	}
	if password == "" {
		password, err = term.GetUserPasswordInput("Password:")
		if err != nil {
			return nil, err
		}
	}

	term.StartSpinner("")
	res, apiErr := apiClient.Auth.Login(ctx, shared.LoginRequest{Email: email, Password: password})
	term.StopSpinner()
	if apiErr != nil {
		return nil, apiErr
	}

	err = auth.SetSession(store, &res.Data)
	if err != nil {
		return nil, err
	}
	return &res.Data.User, nil
}

func login(cmd *cobra.Command, args []string) {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	user, err := promptLogin(cmd.Context(), email, password)
	if apiErr, ok := err.(*shared.ApiError); ok {
		handleApiError(cmd.Context(), apiErr)
	}
	if err != nil {
		term.OutputErrorAndExit("Error signing in: %v", err)
	}

	term.OutputSuccess("Signed in as %s", user.Username)
}

func register(cmd *cobra.Command, args []string) {
	username, _ := cmd.Flags().GetString("username")
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	var err error
	if username == "" {
		username, err = term.GetRequiredUserStringInput("Username:")
		if err != nil {
			term.OutputErrorAndExit("Error getting username: %v", err)
		}
	}
	if email == "" {
		email, err = term.GetRequiredUserStringInput("Email:")
		if err != nil {
			term.OutputErrorAndExit("Error getting email: %v", err)
		}
	}
	if password == "" {
		password, err = term.GetUserPasswordInput("Password:")
		if err != nil {
			term.OutputErrorAndExit("Error getting password: %v", err)
		}
	}

	term.StartSpinner("")
	res, apiErr := apiClient.Auth.Register(cmd.Context(), shared.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	term.StopSpinner()
	if apiErr != nil {
		handleApiError(cmd.Context(), apiErr)
	}

	err = auth.SetSession(store, &res.Data)
	if err != nil {
		term.OutputErrorAndExit("Error storing session: %v", err)
	}

	term.OutputSuccess("Welcome, %s! You're signed in.", res.Data.User.Username)
}

func logout(cmd *cobra.Command, args []string) {
	if !auth.IsSignedIn(store) {
		fmt.Println("🤷‍♂️ Not signed in")
		return
	}

	term.StartSpinner("")
	_, apiErr := apiClient.Auth.Logout(cmd.Context())
	term.StopSpinner()

	// the local session goes either way
	err := auth.ClearSession(store)
	if err != nil {
		term.OutputErrorAndExit("Error clearing session: %v", err)
	}

	if apiErr != nil && !apiErr.IsUnauthorized() {
		handleApiError(cmd.Context(), apiErr)
	}

	term.OutputSuccess("Signed out")
}

func me(cmd *cobra.Command, args []string) {
	term.StartSpinner("")
	res, apiErr := apiClient.Auth.GetMe(cmd.Context())
	term.StopSpinner()
	if apiErr != nil {
		handleApiError(cmd.Context(), apiErr)
	}

	err := auth.SetUser(store, &res.Data)
	if err != nil {
		term.OutputSimpleError("Error updating stored profile: %v", err)
	}

	printUser(&res.Data)
}

func status(cmd *cobra.Command, args []string) {
	bold := color.New(color.Bold)

	mode := "direct"
	if api.UseProxy() {
		mode = "proxy"
	}
	fmt.Printf("%s %s (%s)\n", bold.Sprint("API:"), displayBaseUrl(), mode)
	fmt.Printf("%s %s\n", bold.Sprint("State:"), fs.HomeEzForumDir)

	user, err := auth.CurrentUser(store)
	if err != nil {
		term.OutputErrorAndExit("Error reading stored user: %v", err)
	}

	if !auth.IsSignedIn(store) {
		fmt.Printf("%s not signed in\n", bold.Sprint("Session:"))
		return
	}

	name := "unknown user"
	if user != nil {
		name = fmt.Sprintf("%s <%s> %s", user.Username, user.Email, user.Role)
	}
	fmt.Printf("%s %s\n", bold.Sprint("Session:"), name)

	token := store.Get(types.StorageKeyToken)
	if exp, ok := auth.TokenExpiry(token); ok {
		if exp.Before(time.Now()) {
			fmt.Printf("%s %s\n", bold.Sprint("Token:"), color.New(term.ColorError).Sprintf("expired %s", humanize.Time(exp)))
		} else {
			fmt.Printf("%s expires %s\n", bold.Sprint("Token:"), humanize.Time(exp))
		}
	}
}

func displayBaseUrl() string {
	base := api.BaseUrl(api.UseProxy())
	if base == "" {
		return "relative urls via " + api.ProxyOrigin()
	}
	return base
}
