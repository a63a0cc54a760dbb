package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"ezforum-cli/pages"
	"ezforum-cli/term"

	"github.com/fatih/color"
)

// how long a failed command waits for the transport's scheduled redirect
const navigationWait = 3 * time.Second

// navigator queues navigation requests coming from the transport so the
// running command can follow them before the process exits.
type navigator struct {
	routes chan string
}

func newNavigator() *navigator {
	return &navigator{routes: make(chan string, 4)}
}

func (n *navigator) NavigateTo(route string) {
	select {
	case n.routes <- route:
	default:
		log.Printf("Navigation queue full, dropping %s\n", route)
	}
}

func (n *navigator) await(timeout time.Duration) (string, bool) {
	select {
	case route := <-n.routes:
		return route, true
	case <-time.After(timeout):
		return "", false
	}
}

// followNavigation waits for a pending redirect and opens the page. The
// login page prompts for credentials when attached to a terminal; anything
// else prints the command that renders the page.
func followNavigation(ctx context.Context) {
	route, ok := nav.await(navigationWait)
	if !ok {
		return
	}

	page, ok := pages.App.Find(route)
	if !ok {
		log.Printf("Navigation to unknown route: %s\n", unknownRouteMsg(route))
		return
	}

	if page.Path == pages.UserLogin && term.IsInteractive() {
		fmt.Println(color.New(color.Bold).Sprintf("→ %s", page.Title()))
		user, err := promptLogin(ctx, "", "")
		if err != nil {
			term.OutputSimpleError("Error signing in: %v", err)
			return
		}
		term.OutputSuccess("Signed in as %s. Run the command again to continue.", user.Username)
		return
	}

	fmt.Printf("→ %s: run %s\n", page.Title(), color.New(color.Bold, term.ColorAccent).Sprint("ezforum "+page.Command))
}
