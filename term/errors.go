package term

import (
	"fmt"
	"os"

	"ezforum-cli/shared"

	"github.com/fatih/color"
)

func OutputSimpleError(msg string, args ...interface{}) {
	msg = fmt.Sprintf(msg, args...)
	fmt.Fprintln(os.Stderr, color.New(ColorError, color.Bold).Sprint("🚨 "+shared.Capitalize(msg)))
}

func OutputErrorAndExit(msg string, args ...interface{}) {
	StopSpinner()
	OutputSimpleError(msg, args...)
	os.Exit(1)
}

// ExitSilently exits non-zero for failures that were already shown to the
// user as a toast.
func ExitSilently() {
	StopSpinner()
	os.Exit(1)
}

func OutputSuccess(msg string, args ...interface{}) {
	fmt.Println(color.New(ColorSuccess, color.Bold).Sprint("✅ " + fmt.Sprintf(msg, args...)))
}
