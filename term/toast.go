package term

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"ezforum-cli/types"

	"github.com/fatih/color"
	"github.com/gen2brain/beeep"
)

const desktopTitle = "EZ论坛"

// Toaster is the terminal notification host. Toasts go to stderr and,
// when Desktop is set, to the OS notification center as well.
type Toaster struct {
	Desktop bool
	Out     io.Writer

	mu       sync.Mutex
	navigate func(route string)
}

var _ types.Notifier = (*Toaster)(nil)

func NewToaster(desktop bool) *Toaster {
	return &Toaster{Desktop: desktop, Out: os.Stderr}
}

// SetNavigateFn registers the function that opens a route. Navigation
// requests made before registration are dropped.
func (t *Toaster) SetNavigateFn(fn func(route string)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.navigate = fn
}

func (t *Toaster) Toast(msg string) {
	StopSpinner()

	fmt.Fprintln(t.Out, color.New(ColorToast, color.Bold).Sprint("💬 "+msg))

	if t.Desktop {
		if err := beeep.Notify(desktopTitle, msg, ""); err != nil {
			log.Printf("Error sending desktop notification: %v\n", err)
		}
	}
}

func (t *Toaster) NavigateTo(route string) {
	t.mu.Lock()
	fn := t.navigate
	t.mu.Unlock()

	if fn == nil {
		log.Printf("No navigator registered, dropping navigation to %s\n", route)
		return
	}
	fn(route)
}
