package term

import (
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

// a spinner that flashes for a few frames is worse than none
const minVisible = 350 * time.Millisecond

type loader struct {
	mu      sync.Mutex
	s       *spinner.Spinner
	msg     string
	since   time.Time
	running bool
}

var busy = &loader{
	s: spinner.New(spinner.CharSets[33], 100*time.Millisecond, spinner.WithWriter(os.Stderr)),
}

// StartSpinner shows the spinner on stderr with an optional message.
// Restarting with the same message is a no-op. Nothing is drawn when
// not attached to a terminal.
func StartSpinner(msg string) {
	busy.start(msg)
}

// StopSpinner hides the spinner. Safe to call when it is not running.
func StopSpinner() {
	busy.stop()
}

func (l *loader) start(msg string) {
	if !IsInteractive() {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running && msg == l.msg {
		return
	}
	if l.running {
		l.s.Stop()
	}

	l.msg = msg
	l.since = time.Now()
	l.s.Prefix = ""
	if msg != "" {
		l.s.Prefix = msg + " "
	}
	l.s.Start()
	l.running = true
}

func (l *loader) stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.running {
		return
	}

	wait := minVisible
	if l.msg != "" {
		wait *= 2
	}
	if elapsed := time.Since(l.since); elapsed < wait {
		time.Sleep(wait - elapsed)
	}

	l.s.Stop()
	ClearCurrentLine()
	l.running = false
}
