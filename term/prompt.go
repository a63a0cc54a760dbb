package term

import (
	"fmt"
	"os"
	"strings"

	"github.com/cqroot/prompt"
	"github.com/cqroot/prompt/input"
	"github.com/eiannone/keyboard"
	"github.com/fatih/color"
)

// error text cqroot/prompt returns on ctrl-c or esc
const quitPromptErr = "user quit prompt"

func exitOnQuit(err error) {
	if err != nil && err.Error() == quitPromptErr {
		os.Exit(0)
	}
}

// GetRequiredUserStringInput keeps asking until the answer is non-blank.
func GetRequiredUserStringInput(msg string) (string, error) {
	for {
		res, err := GetUserStringInputWithDefault(msg, "")
		if err != nil {
			return "", fmt.Errorf("failed to get user input: %v", err)
		}
		if strings.TrimSpace(res) != "" {
			return res, nil
		}
		color.New(color.Bold, ColorError).Fprintln(os.Stderr, "🚨 This input is required")
	}
}

func GetUserStringInputWithDefault(msg, def string) (string, error) {
	res, err := prompt.New().Ask(msg).Input(def)
	exitOnQuit(err)
	return res, err
}

func GetUserPasswordInput(msg string) (string, error) {
	res, err := prompt.New().Ask(msg).Input("", input.WithEchoMode(input.EchoPassword))
	exitOnQuit(err)
	return res, err
}

func readKey() (rune, error) {
	err := keyboard.Open()
	if err != nil {
		return 0, fmt.Errorf("failed to open keyboard: %v", err)
	}
	defer keyboard.Close()

	char, key, err := keyboard.GetKey()
	if err != nil {
		return 0, fmt.Errorf("failed to read keypress: %v", err)
	}
	if key == keyboard.KeyCtrlC || key == keyboard.KeyEsc {
		os.Exit(0)
	}
	return char, nil
}

// ConfirmYesNo asks a y/n question answered with a single keypress.
func ConfirmYesNo(fmtStr string, fmtArgs ...interface{}) (bool, error) {
	ask := color.New(ColorAdmin, color.Bold)
	for {
		ask.Printf(fmtStr+" (y)es | (n)o > ", fmtArgs...)

		char, err := readKey()
		if err != nil {
			return false, fmt.Errorf("failed to get user input: %v", err)
		}
		fmt.Println(string(char))

		switch char {
		case 'y', 'Y':
			return true, nil
		case 'n', 'N':
			return false, nil
		}
		color.New(ColorError, color.Bold).Println("Enter 'y' for yes or 'n' for no.")
	}
}
