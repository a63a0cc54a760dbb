package term

import (
	"github.com/fatih/color"
	"github.com/muesli/termenv"
)

var IsDarkBg = termenv.HasDarkBackground()

// Semantic colors. Bright variants wash out on light terminals, so each
// role maps to the plain variant there.
var (
	ColorSuccess color.Attribute // confirmations
	ColorAdmin   color.Attribute // admin role, prompts
	ColorError   color.Attribute // errors, likes
	ColorToast   color.Attribute // transport notices
	ColorAccent  color.Attribute // titles, commands
)

func init() {
	pick := func(dark, light color.Attribute) color.Attribute {
		if IsDarkBg {
			return dark
		}
		return light
	}

	ColorSuccess = pick(color.FgHiGreen, color.FgGreen)
	ColorAdmin = pick(color.FgHiMagenta, color.FgMagenta)
	ColorError = pick(color.FgHiRed, color.FgRed)
	ColorToast = pick(color.FgHiYellow, color.FgYellow)
	ColorAccent = pick(color.FgHiCyan, color.FgCyan)
}
