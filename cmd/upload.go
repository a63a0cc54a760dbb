package cmd

import (
	"fmt"
	"os"

	"ezforum-cli/format"
	"ezforum-cli/term"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload an image and print its url",
	Args:  cobra.ExactArgs(1),
	Run:   upload,
}

func init() {
	RootCmd.AddCommand(uploadCmd)
	uploadCmd.Flags().BoolP("copy", "c", false, "Copy the url to the clipboard")
}

func upload(cmd *cobra.Command, args []string) {
	path := args[0]
	copyUrl, _ := cmd.Flags().GetBool("copy")

	info, err := os.Stat(path)
	if err != nil {
		term.OutputErrorAndExit("Error reading %s: %v", path, err)
	}
	if info.IsDir() {
		term.OutputErrorAndExit("%s is a directory", path)
	}

	term.StartSpinner(fmt.Sprintf("📤 Uploading %s (%s)", info.Name(), format.Bytes(info.Size())))
	res, apiErr := apiClient.Uploads.UploadFile(cmd.Context(), path)
	term.StopSpinner()
	if apiErr != nil {
		handleApiError(cmd.Context(), apiErr)
	}

	term.OutputSuccess("Uploaded %s (%s)", res.Data.Filename, res.Data.Mimetype)
	fmt.Println(res.Data.Url)

	if copyUrl {
		err = clipboard.WriteAll(res.Data.Url)
		if err != nil {
			term.OutputSimpleError("Error copying to clipboard: %v", err)
			return
		}
		fmt.Println("📋 Copied to clipboard")
	}
}
