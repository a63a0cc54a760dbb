package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfigIsValid(t *testing.T) {
	require.NoError(t, App.Validate())
	assert.Equal(t, ForumIndex, App.Home().Path)
	assert.Len(t, App.Pages, 6)
	assert.Len(t, App.TabBar.List, 2)
}

func TestFind(t *testing.T) {
	tests := []struct {
		route   string
		path    string
		command string
	}{
		{"/pages/user/login", UserLogin, "login"},
		{"pages/user/login", UserLogin, "login"},
		{"/pages/post/detail?id=42", PostDetail, "posts show"},
		{"/pages/forum/index#top", ForumIndex, "posts list"},
	}

	for _, tc := range tests {
		t.Run(tc.route, func(t *testing.T) {
			page, ok := App.Find(tc.route)
			require.True(t, ok)
			assert.Equal(t, tc.path, page.Path)
			assert.Equal(t, tc.command, page.Command)
		})
	}

	_, ok := App.Find("/pages/nope")
	assert.False(t, ok)
}

func TestIsTab(t *testing.T) {
	assert.True(t, App.IsTab("/pages/user/profile"))
	assert.False(t, App.IsTab(UserLogin))
}

func TestValidateRejectsDanglingTab(t *testing.T) {
	cfg := Config{
		Pages:  []Page{{Path: ForumIndex}},
		TabBar: TabBar{List: []TabBarItem{{PagePath: UserProfile, Text: "me"}}},
	}
	assert.Error(t, cfg.Validate())

	cfg.Pages = append(cfg.Pages, Page{Path: ForumIndex})
	assert.Error(t, cfg.Validate())
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		route string
		first string
	}{
		{"login", UserLogin},
		{"/user/prof", UserProfile},
		{"pages/user/logn", UserLogin},
		{"pages/forum/indx?tab=1", ForumIndex},
		{"pages/user/lgoin", UserLogin},
	}

	for _, tc := range tests {
		t.Run(tc.route, func(t *testing.T) {
			suggestions := App.Suggest(tc.route)
			require.NotEmpty(t, suggestions)
			assert.Equal(t, tc.first, suggestions[0])
		})
	}

	assert.Empty(t, App.Suggest("pages/settings/billing"))
	assert.Empty(t, App.Suggest(""))
}
