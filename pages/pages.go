// Package pages holds the declarative app shell: the page registry, the tab
// bar and the global navigation style. Routes use the "pages/<group>/<name>"
// form; navigation targets may carry a leading slash and a query string.
package pages

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

type GlobalStyle struct {
	NavigationStyle              string `json:"navigationStyle"`
	NavigationBarTitleText       string `json:"navigationBarTitleText"`
	NavigationBarBackgroundColor string `json:"navigationBarBackgroundColor"`
	NavigationBarTextStyle       string `json:"navigationBarTextStyle"`
	BackgroundColor              string `json:"backgroundColor"`
}

type TabBarItem struct {
	IconPath         string `json:"iconPath"`
	SelectedIconPath string `json:"selectedIconPath"`
	PagePath         string `json:"pagePath"`
	Text             string `json:"text"`
}

type TabBar struct {
	Color           string       `json:"color"`
	SelectedColor   string       `json:"selectedColor"`
	BackgroundColor string       `json:"backgroundColor"`
	BorderStyle     string       `json:"borderStyle"`
	Height          string       `json:"height"`
	FontSize        string       `json:"fontSize"`
	IconWidth       string       `json:"iconWidth"`
	Spacing         string       `json:"spacing"`
	List            []TabBarItem `json:"list"`
}

type PageStyle struct {
	NavigationBarTitleText string `json:"navigationBarTitleText"`
}

type Page struct {
	Path  string    `json:"path"`
	Style PageStyle `json:"style"`

	// Command is the ezforum command that renders this page.
	Command string `json:"-"`
}

func (p *Page) Title() string {
	return p.Style.NavigationBarTitleText
}

type Config struct {
	GlobalStyle GlobalStyle `json:"globalStyle"`
	TabBar      TabBar      `json:"tabBar"`
	Pages       []Page      `json:"pages"`
}

const (
	ForumIndex   = "pages/forum/index"
	ForumPublish = "pages/forum/publish"
	PostDetail   = "pages/post/detail"
	UserLogin    = "pages/user/login"
	UserProfile  = "pages/user/profile"
	UserRegister = "pages/user/register"
)

var App = Config{
	GlobalStyle: GlobalStyle{
		NavigationStyle:              "default",
		NavigationBarTitleText:       "EZ论坛",
		NavigationBarBackgroundColor: "#f8f8f8",
		NavigationBarTextStyle:       "black",
		BackgroundColor:              "#FFFFFF",
	},
	TabBar: TabBar{
		Color:           "#999999",
		SelectedColor:   "#018d71",
		BackgroundColor: "#F8F8F8",
		BorderStyle:     "black",
		Height:          "50px",
		FontSize:        "10px",
		IconWidth:       "24px",
		Spacing:         "3px",
		List: []TabBarItem{
			{
				IconPath:         "static/tabbar/home.png",
				SelectedIconPath: "static/tabbar/homeHL.png",
				PagePath:         ForumIndex,
				Text:             "论坛",
			},
			{
				IconPath:         "static/tabbar/example.png",
				SelectedIconPath: "static/tabbar/exampleHL.png",
				PagePath:         UserProfile,
				Text:             "我的",
			},
		},
	},
	Pages: []Page{
		{Path: ForumIndex, Style: PageStyle{NavigationBarTitleText: "论坛"}, Command: "posts list"},
		{Path: ForumPublish, Style: PageStyle{NavigationBarTitleText: "发布帖子"}, Command: "posts create"},
		{Path: PostDetail, Style: PageStyle{NavigationBarTitleText: "帖子详情"}, Command: "posts show"},
		{Path: UserLogin, Style: PageStyle{NavigationBarTitleText: "登录"}, Command: "login"},
		{Path: UserProfile, Style: PageStyle{NavigationBarTitleText: "个人中心"}, Command: "me"},
		{Path: UserRegister, Style: PageStyle{NavigationBarTitleText: "注册"}, Command: "register"},
	},
}

// Normalize strips the leading slash and query string from a route.
func Normalize(route string) string {
	route = strings.TrimPrefix(route, "/")
	if i := strings.IndexAny(route, "?#"); i >= 0 {
		route = route[:i]
	}
	return route
}

func (c *Config) Find(route string) (*Page, bool) {
	path := Normalize(route)
	for i := range c.Pages {
		if c.Pages[i].Path == path {
			return &c.Pages[i], true
		}
	}
	return nil, false
}

// max edit distance for a route to count as a typo of a registered page
const typoDistance = 3

// Suggest lists registered pages resembling an unknown route, closest
// first. Routes matching as a subsequence ("login", "user/prof") rank ahead
// of near-misses by edit distance.
func (c *Config) Suggest(route string) []string {
	path := Normalize(route)
	if path == "" {
		return nil
	}

	paths := make([]string, len(c.Pages))
	for i, p := range c.Pages {
		paths[i] = p.Path
	}

	ranks := fuzzy.RankFindFold(path, paths)
	sort.Sort(ranks)

	var out []string
	seen := map[string]bool{}
	for _, r := range ranks {
		out = append(out, r.Target)
		seen[r.Target] = true
	}

	type miss struct {
		path string
		dist int
	}
	var misses []miss
	for _, p := range paths {
		if seen[p] {
			continue
		}
		if d := fuzzy.LevenshteinDistance(strings.ToLower(path), p); d <= typoDistance {
			misses = append(misses, miss{p, d})
		}
	}
	sort.SliceStable(misses, func(i, j int) bool { return misses[i].dist < misses[j].dist })
	for _, m := range misses {
		out = append(out, m.path)
	}
	return out
}

// Home is the first registered page, shown on launch.
func (c *Config) Home() *Page {
	if len(c.Pages) == 0 {
		return nil
	}
	return &c.Pages[0]
}

func (c *Config) IsTab(route string) bool {
	path := Normalize(route)
	for _, item := range c.TabBar.List {
		if item.PagePath == path {
			return true
		}
	}
	return false
}

func (c *Config) Validate() error {
	seen := map[string]bool{}
	for _, p := range c.Pages {
		if p.Path == "" {
			return fmt.Errorf("page with empty path")
		}
		if seen[p.Path] {
			return fmt.Errorf("duplicate page %s", p.Path)
		}
		seen[p.Path] = true
	}

	for _, item := range c.TabBar.List {
		if !seen[item.PagePath] {
			return fmt.Errorf("tab %q points at unregistered page %s", item.Text, item.PagePath)
		}
	}
	return nil
}
