package cmd

import (
	"context"
	"fmt"

	"ezforum-cli/shared"
	"ezforum-cli/term"

	"github.com/spf13/cobra"
)

var postsCmd = &cobra.Command{
	Use:     "posts",
	Aliases: []string{"p"},
	Short:   "Browse and manage posts",
}

var postsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List posts",
	Args:    cobra.NoArgs,
	Run:     listPosts,
}

var postsShowCmd = &cobra.Command{
	Use:   "show <post-id>",
	Short: "Show a post",
	Args:  cobra.ExactArgs(1),
	Run:   showPost,
}

var postsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Publish a new post",
	Args:  cobra.NoArgs,
	Run:   createPost,
}

var postsUpdateCmd = &cobra.Command{
	Use:   "update <post-id>",
	Short: "Edit one of your posts",
	Args:  cobra.ExactArgs(1),
	Run:   updatePost,
}

var postsDeleteCmd = &cobra.Command{
	Use:     "delete <post-id>",
	Aliases: []string{"rm"},
	Short:   "Delete one of your posts",
	Args:    cobra.ExactArgs(1),
	Run:     deletePost,
}

var postsLikeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Like a post",
	Args:  cobra.ExactArgs(1),
	Run:   likePost,
}

var postsUnlikeCmd = &cobra.Command{
	Use:   "unlike <post-id>",
	Short: "Remove your like from a post",
	Args:  cobra.ExactArgs(1),
	Run:   unlikePost,
}

var postsUserCmd = &cobra.Command{
	Use:   "user <user-id>",
	Short: "List a user's posts",
	Args:  cobra.ExactArgs(1),
	Run:   listUserPosts,
}

var postsLikedCmd = &cobra.Command{
	Use:   "liked",
	Short: "List posts you liked",
	Args:  cobra.NoArgs,
	Run:   listLikedPosts,
}

func init() {
	RootCmd.AddCommand(postsCmd)
	postsCmd.AddCommand(
		postsListCmd,
		postsShowCmd,
		postsCreateCmd,
		postsUpdateCmd,
		postsDeleteCmd,
		postsLikeCmd,
		postsUnlikeCmd,
		postsUserCmd,
		postsLikedCmd,
	)

	addListFlags(postsListCmd)
	addListFlags(postsUserCmd)
	addListFlags(postsLikedCmd)

	postsShowCmd.Flags().Bool("comments", false, "Also show the comment thread")

	postsCreateCmd.Flags().String("title", "", "Post title")
	postsCreateCmd.Flags().String("content", "", "Post content (markdown)")
	postsCreateCmd.Flags().StringArray("image", nil, "Image url to attach (repeatable)")
	postsCreateCmd.Flags().StringArray("upload", nil, "Local image to upload and attach (repeatable)")

	postsUpdateCmd.Flags().String("title", "", "New title")
	postsUpdateCmd.Flags().String("content", "", "New content (markdown)")
	postsUpdateCmd.Flags().StringArray("image", nil, "Replace the attached images (repeatable)")

	postsDeleteCmd.Flags().BoolP("yes", "y", false, "Skip confirmation")
}

func listPosts(cmd *cobra.Command, args []string) {
	term.StartSpinner("")
	res, apiErr := apiClient.Posts.GetPosts(cmd.Context(), listParams(cmd))
	term.StopSpinner()
	if apiErr != nil {
		handleApiError(cmd.Context(), apiErr)
	}

	printPostList(&res.Data)
}

func showPost(cmd *cobra.Command, args []string) {
	withComments, _ := cmd.Flags().GetBool("comments")

	term.StartSpinner("")
	res, apiErr := apiClient.Posts.GetPostById(cmd.Context(), args[0])
	if apiErr != nil {
		handleApiError(cmd.Context(), apiErr)
	}

	var comments *shared.CommentList
	if withComments {
		cres, apiErr := apiClient.Comments.GetPostComments(cmd.Context(), args[0], nil)
		if apiErr != nil {
			handleApiError(cmd.Context(), apiErr)
		}
		comments = &cres.Data
	}
	term.StopSpinner()

	printPost(&res.Data)

	if comments != nil {
		fmt.Println()
		printCommentTree(fmt.Sprintf("💬 %d comments", res.Data.CommentCount), comments)
	}
}

func createPost(cmd *cobra.Command, args []string) {
	title, _ := cmd.Flags().GetString("title")
	content, _ := cmd.Flags().GetString("content")
	images, _ := cmd.Flags().GetStringArray("image")
	uploads, _ := cmd.Flags().GetStringArray("upload")

	var err error
	if title == "" {
		title, err = term.GetRequiredUserStringInput("Title:")
		if err != nil {
			term.OutputErrorAndExit("Error getting title: %v", err)
		}
	}
	if content == "" {
		content, err = term.GetRequiredUserStringInput("Content:")
		if err != nil {
			term.OutputErrorAndExit("Error getting content: %v", err)
		}
	}

	uploaded := uploadAll(cmd.Context(), uploads)
	images = append(images, uploaded...)
	if images == nil {
		images = []string{}
	}

	term.StartSpinner("")
	res, apiErr := apiClient.Posts.CreatePost(cmd.Context(), shared.CreatePostRequest{
		Title:   title,
		Content: content,
		Images:  images,
	})
	term.StopSpinner()
	if apiErr != nil {
		handleApiError(cmd.Context(), apiErr)
	}

	term.OutputSuccess("Published %s (%s)", res.Data.Title, res.Data.Id)
}

func updatePost(cmd *cobra.Command, args []string) {
	var req shared.UpdatePostRequest
	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		req.Title = &title
	}
	if cmd.Flags().Changed("content") {
		content, _ := cmd.Flags().GetString("content")
		req.Content = &content
	}
	if cmd.Flags().Changed("image") {
		req.Images, _ = cmd.Flags().GetStringArray("image")
	}

	if req.Title == nil && req.Content == nil && req.Images == nil {
		term.OutputErrorAndExit("Nothing to update. Pass --title, --content or --image.")
	}

	term.StartSpinner("")
	res, apiErr := apiClient.Posts.UpdatePost(cmd.Context(), args[0], req)
	term.StopSpinner()
	if apiErr != nil {
		handleApiError(cmd.Context(), apiErr)
	}

	term.OutputSuccess("Updated %s", res.Data.Title)
}

func deletePost(cmd *cobra.Command, args []string) {
	if !confirmed(cmd, "Delete post %s?", args[0]) {
		fmt.Println("🤷‍♂️ Delete canceled")
		return
	}

	term.StartSpinner("")
	_, apiErr := apiClient.Posts.DeletePost(cmd.Context(), args[0])
	term.StopSpinner()
	if apiErr != nil {
		handleApiError(cmd.Context(), apiErr)
	}

	term.OutputSuccess("Deleted post %s", args[0])
}

func likePost(cmd *cobra.Command, args []string) {
	term.StartSpinner("")
	_, apiErr := apiClient.Posts.LikePost(cmd.Context(), args[0])
	term.StopSpinner()
	if apiErr != nil {
		handleApiError(cmd.Context(), apiErr)
	}

	term.OutputSuccess("♥ Liked %s", args[0])
}

func unlikePost(cmd *cobra.Command, args []string) {
	term.StartSpinner("")
	_, apiErr := apiClient.Posts.UnlikePost(cmd.Context(), args[0])
	term.StopSpinner()
	if apiErr != nil {
		handleApiError(cmd.Context(), apiErr)
	}

	term.OutputSuccess("Removed like from %s", args[0])
}

func listUserPosts(cmd *cobra.Command, args []string) {
	term.StartSpinner("")
	res, apiErr := apiClient.Posts.GetUserPosts(cmd.Context(), args[0], listParams(cmd))
	term.StopSpinner()
	if apiErr != nil {
		handleApiError(cmd.Context(), apiErr)
	}

	printPostList(&res.Data)
}

func listLikedPosts(cmd *cobra.Command, args []string) {
	term.StartSpinner("")
	res, apiErr := apiClient.Posts.GetLikedPosts(cmd.Context(), listParams(cmd))
	term.StopSpinner()
	if apiErr != nil {
		handleApiError(cmd.Context(), apiErr)
	}

	printPostList(&res.Data)
}

// uploadAll uploads local files one at a time and returns their urls.
func uploadAll(ctx context.Context, paths []string) []string {
	var urls []string
	for _, path := range paths {
		term.StartSpinner("📤 Uploading " + path)
		res, apiErr := apiClient.Uploads.UploadFile(ctx, path)
		term.StopSpinner()
		if apiErr != nil {
			handleApiError(ctx, apiErr)
		}
		urls = append(urls, res.Data.Url)
	}
	return urls
}
