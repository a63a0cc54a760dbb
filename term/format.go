package term

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
)

const maxTextWidth = 80

func textWidth() int {
	return min(TerminalWidth(), maxTextWidth)
}

// GetMarkdown renders post content for the terminal.
func GetMarkdown(input string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(textWidth()),
		glamour.WithPreservedNewLines(),
	)
	if err != nil {
		return "", err
	}

	return r.Render(input)
}

// GetPlain wraps and indents content in a muted color, for when markdown
// rendering fails.
func GetPlain(input string) string {
	s := indent.String(wordwrap.String(input, textWidth()-2), 2)

	muted := "234"
	if IsDarkBg {
		muted = "251"
	}
	return termenv.String(s).Foreground(termenv.ANSI256.Color(muted)).String()
}
