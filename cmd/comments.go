package cmd

import (
	"fmt"

	"ezforum-cli/shared"
	"ezforum-cli/term"

	"github.com/spf13/cobra"
)

var commentsCmd = &cobra.Command{
	Use:     "comments",
	Aliases: []string{"c"},
	Short:   "Read and write comments",
}

var commentsListCmd = &cobra.Command{
	Use:     "list <post-id>",
	Aliases: []string{"ls"},
	Short:   "Show a post's comment thread",
	Args:    cobra.ExactArgs(1),
	Run:     listComments,
}

var commentsCreateCmd = &cobra.Command{
	Use:   "create <post-id>",
	Short: "Comment on a post",
	Args:  cobra.ExactArgs(1),
	Run:   createComment,
}

var commentsUpdateCmd = &cobra.Command{
	Use:   "update <comment-id>",
	Short: "Edit one of your comments",
	Args:  cobra.ExactArgs(1),
	Run:   updateComment,
}

var commentsDeleteCmd = &cobra.Command{
	Use:     "delete <comment-id>",
	Aliases: []string{"rm"},
	Short:   "Delete one of your comments",
	Args:    cobra.ExactArgs(1),
	Run:     deleteComment,
}

var commentsRepliesCmd = &cobra.Command{
	Use:   "replies <comment-id>",
	Short: "List replies to a comment",
	Args:  cobra.ExactArgs(1),
	Run:   listReplies,
}

var commentsMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List your comments",
	Args:  cobra.NoArgs,
	Run:   listMyComments,
}

func init() {
	RootCmd.AddCommand(commentsCmd)
	commentsCmd.AddCommand(
		commentsListCmd,
		commentsCreateCmd,
		commentsUpdateCmd,
		commentsDeleteCmd,
		commentsRepliesCmd,
		commentsMineCmd,
	)

	addListFlags(commentsListCmd)
	addListFlags(commentsRepliesCmd)
	addListFlags(commentsMineCmd)

	commentsCreateCmd.Flags().String("content", "", "Comment text")
	commentsCreateCmd.Flags().String("reply-to", "", "Id of the comment to reply to")

	commentsUpdateCmd.Flags().String("content", "", "New comment text")

	commentsDeleteCmd.Flags().BoolP("yes", "y", false, "Skip confirmation")
}

func listComments(cmd *cobra.Command, args []string) {
	term.StartSpinner("")
	res, apiErr := apiClient.Comments.GetPostComments(cmd.Context(), args[0], listParams(cmd))
	term.StopSpinner()
	if apiErr != nil {
		handleApiError(cmd.Context(), apiErr)
	}

	printCommentTree(fmt.Sprintf("💬 post %s", args[0]), &res.Data)
}

func createComment(cmd *cobra.Command, args []string) {
	content := commentContent(cmd)

	req := shared.CreateCommentRequest{Content: content}
	if replyTo, _ := cmd.Flags().GetString("reply-to"); replyTo != "" {
		req.ParentId = &replyTo
	}

	term.StartSpinner("")
	res, apiErr := apiClient.Comments.CreateComment(cmd.Context(), args[0], req)
	term.StopSpinner()
	if apiErr != nil {
		handleApiError(cmd.Context(), apiErr)
	}

	if res.Data.IsReply() {
		term.OutputSuccess("Replied (%s)", res.Data.Id)
	} else {
		term.OutputSuccess("Commented (%s)", res.Data.Id)
	}
}

func updateComment(cmd *cobra.Command, args []string) {
	content := commentContent(cmd)

	term.StartSpinner("")
	_, apiErr := apiClient.Comments.UpdateComment(cmd.Context(), args[0], shared.UpdateCommentRequest{Content: content})
	term.StopSpinner()
	if apiErr != nil {
		handleApiError(cmd.Context(), apiErr)
	}

	term.OutputSuccess("Updated comment %s", args[0])
}

func deleteComment(cmd *cobra.Command, args []string) {
	if !confirmed(cmd, "Delete comment %s?", args[0]) {
		fmt.Println("🤷‍♂️ Delete canceled")
		return
	}

	term.StartSpinner("")
	_, apiErr := apiClient.Comments.DeleteComment(cmd.Context(), args[0])
	term.StopSpinner()
	if apiErr != nil {
		handleApiError(cmd.Context(), apiErr)
	}

	term.OutputSuccess("Deleted comment %s", args[0])
}

func listReplies(cmd *cobra.Command, args []string) {
	term.StartSpinner("")
	res, apiErr := apiClient.Comments.GetCommentReplies(cmd.Context(), args[0], listParams(cmd))
	term.StopSpinner()
	if apiErr != nil {
		handleApiError(cmd.Context(), apiErr)
	}

	printCommentTree(fmt.Sprintf("↳ replies to %s", args[0]), &res.Data)
}

func listMyComments(cmd *cobra.Command, args []string) {
	term.StartSpinner("")
	res, apiErr := apiClient.Comments.GetMyComments(cmd.Context(), listParams(cmd))
	term.StopSpinner()
	if apiErr != nil {
		handleApiError(cmd.Context(), apiErr)
	}

	printCommentList(&res.Data)
}

func commentContent(cmd *cobra.Command) string {
	content, _ := cmd.Flags().GetString("content")
	if content != "" {
		return content
	}

	content, err := term.GetRequiredUserStringInput("Comment:")
	if err != nil {
		term.OutputErrorAndExit("Error getting comment: %v", err)
	}
	return content
}
