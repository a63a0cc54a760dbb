package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"ezforum-cli/format"
	"ezforum-cli/shared"
	"ezforum-cli/term"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/xlab/treeprint"
)

func printPostList(list *shared.PostList) {
	if len(list.Items) == 0 {
		fmt.Println("🤷‍♂️ No posts")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "ID", "Title", "Author", "Likes", "Comments", "Views", "Created"})

	for i, post := range list.Items {
		title := post.Title
		if post.IsLiked {
			title = "♥ " + title
		}
		table.Append([]string{
			strconv.Itoa((max(list.Page, 1)-1)*list.Limit + i + 1),
			post.Id,
			title,
			post.Author.Username,
			format.Count(post.LikeCount),
			format.Count(post.CommentCount),
			format.Count(post.Views),
			format.Time(post.CreatedAt),
		})
	}

	table.Render()
	printPageFooter(list.Page, list.TotalPages, list.Total)
}

func printPageFooter(page, totalPages, total int) {
	fmt.Println(color.New(color.FgHiBlack).Sprintf("page %d/%d · %s total", page, max(totalPages, 1), format.Count(total)))
}

func printPost(post *shared.Post) {
	fmt.Println(color.New(color.Bold, term.ColorAccent).Sprint(post.Title))
	fmt.Println(color.New(color.FgHiBlack).Sprintf("%s · %s · %s views · %s likes · %s comments",
		post.Author.Username,
		format.Time(post.CreatedAt),
		format.Count(post.Views),
		format.Count(post.LikeCount),
		format.Count(post.CommentCount),
	))
	if post.IsLiked {
		fmt.Println(color.New(term.ColorError).Sprint("♥ You liked this post"))
	}
	fmt.Println(term.GetDivisionLine())

	md, err := term.GetMarkdown(post.Content)
	if err != nil {
		fmt.Println(term.GetPlain(post.Content))
	} else {
		fmt.Print(md)
	}

	if len(post.Images) > 0 {
		fmt.Println()
		for _, img := range post.Images {
			fmt.Println("🖼  " + img)
		}
	}
}

func commentLabel(c *shared.Comment) string {
	head := color.New(color.Bold).Sprint(c.Author.Username)
	meta := color.New(color.FgHiBlack).Sprintf("%s · %s", c.Id, format.Time(c.CreatedAt))
	content := strings.ReplaceAll(strings.TrimSpace(c.Content), "\n", " ")
	return fmt.Sprintf("%s %s\n%s", head, meta, content)
}

func addCommentNodes(tree treeprint.Tree, comments []*shared.Comment) {
	for _, c := range comments {
		if len(c.Replies) == 0 {
			tree.AddNode(commentLabel(c))
			continue
		}
		branch := tree.AddBranch(commentLabel(c))
		addCommentNodes(branch, c.Replies)
	}
}

func printCommentTree(title string, list *shared.CommentList) {
	if len(list.Items) == 0 {
		fmt.Println("🤷‍♂️ No comments")
		return
	}

	tree := treeprint.NewWithRoot(color.New(color.Bold).Sprint(title))
	addCommentNodes(tree, list.Items)
	fmt.Print(tree.String())
	printPageFooter(list.Page, list.TotalPages, list.Total)
}

func printCommentList(list *shared.CommentList) {
	if len(list.Items) == 0 {
		fmt.Println("🤷‍♂️ No comments")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Post", "Reply To", "Content", "Created"})

	for _, c := range list.Items {
		replyTo := ""
		if c.Parent != nil {
			replyTo = c.Parent.Author.Username
		}
		table.Append([]string{c.Id, c.PostId, replyTo, truncate(c.Content, 48), format.Time(c.CreatedAt)})
	}

	table.Render()
	printPageFooter(list.Page, list.TotalPages, list.Total)
}

func printUser(user *shared.User) {
	role := user.Role
	if user.IsAdmin() {
		role = color.New(term.ColorAdmin, color.Bold).Sprint(role)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.AppendBulk([][]string{
		{"ID", user.Id},
		{"Username", user.Username},
		{"Email", user.Email},
		{"Role", role},
		{"Avatar", shared.StrOr(user.Avatar, "-")},
		{"Bio", shared.StrOr(user.Bio, "-")},
	})
	table.Render()
}

func printUserList(list *shared.UserList) {
	if len(list.Items) == 0 {
		fmt.Println("🤷‍♂️ No users")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Username", "Email", "Role", "Posts", "Comments"})

	for _, u := range list.Items {
		table.Append([]string{
			u.Id,
			u.Username,
			u.Email,
			u.Role,
			format.Count(u.Count.Posts),
			format.Count(u.Count.Comments),
		})
	}

	table.Render()
	printPageFooter(list.Page, list.TotalPages, list.Total)
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
