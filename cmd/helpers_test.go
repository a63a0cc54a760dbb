package cmd

import (
	"testing"

	"ezforum-cli/api"
	"ezforum-cli/shared"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListCmd(t *testing.T, args ...string) *cobra.Command {
	c := &cobra.Command{Use: "list"}
	addListFlags(c)
	require.NoError(t, c.Flags().Parse(args))
	return c
}

func TestListParams(t *testing.T) {
	assert.Equal(t, shared.ListParams{}, listParams(newListCmd(t)))
	assert.Equal(t, shared.ListParams{Page: 2, Limit: 5}, listParams(newListCmd(t, "--page", "2", "--limit", "5")))

	params := listParams(newListCmd(t, "--page", "3", "--param", "search=go lang"))
	assert.Equal(t, api.Params{"page": 3, "search": "go lang"}, params)

	encoded, err := api.EncodeParams(params)
	require.NoError(t, err)
	assert.Equal(t, "page=3&search=go%20lang", encoded)
}
