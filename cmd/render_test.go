package cmd

import (
	"strings"
	"testing"

	"ezforum-cli/shared"

	"github.com/stretchr/testify/assert"
	"github.com/xlab/treeprint"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "one two", truncate("one\ntwo", 10))
	assert.Equal(t, "论坛论…", truncate("论坛论坛论坛", 4))
}

func TestCommentTreeNestsReplies(t *testing.T) {
	parent := "c1"
	comments := []*shared.Comment{
		{
			Id:      "c1",
			Content: "first",
			Author:  shared.AuthorSummary{Username: "lin"},
			Replies: []*shared.Comment{
				{Id: "c2", Content: "reply", ParentId: &parent, Author: shared.AuthorSummary{Username: "mo"}},
			},
		},
		{Id: "c3", Content: "second", Author: shared.AuthorSummary{Username: "kai"}},
	}

	tree := treeprint.New()
	addCommentNodes(tree, comments)
	out := tree.String()

	assert.Contains(t, out, "first")
	assert.Contains(t, out, "reply")
	assert.Contains(t, out, "second")
	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "reply"))
	assert.Less(t, strings.Index(out, "reply"), strings.Index(out, "second"))
	assert.True(t, comments[0].Replies[0].IsReply())
	assert.False(t, comments[0].IsReply())
}
