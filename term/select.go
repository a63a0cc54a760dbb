package term

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/plandex-ai/survey/v2"
)

const currentMarker = " (current)"

// SelectFromList picks one of options. When current is one of them it is
// preselected and marked in the list; the returned value never carries the
// marker.
func SelectFromList(msg string, options []string, current string) (string, error) {
	labels, def := markCurrent(options, current)

	var selected string
	prompt := &survey.Select{
		Message: color.New(ColorAdmin, color.Bold).Sprint(msg),
		Options: labels,
	}
	if def != nil {
		prompt.Default = def
	}
	err := survey.AskOne(prompt, &selected)
	if err != nil {
		if err.Error() == "interrupt" {
			os.Exit(0)
		}
		return "", err
	}

	return strings.TrimSuffix(selected, currentMarker), nil
}

// markCurrent labels options for display, flagging current. def is nil when
// current is not among the options.
func markCurrent(options []string, current string) (labels []string, def interface{}) {
	labels = make([]string, len(options))
	for i, opt := range options {
		labels[i] = opt
		if opt == current {
			labels[i] = opt + currentMarker
			def = labels[i]
		}
	}
	return labels, def
}
