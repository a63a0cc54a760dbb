package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"ezforum-cli/api"
	"ezforum-cli/auth"
	"ezforum-cli/cmd"
	"ezforum-cli/fs"
	"ezforum-cli/pages"
	"ezforum-cli/term"

	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"
)

func init() {
	// a missing .env is fine
	_ = godotenv.Load()

	err := fs.EnsureHomeDir()
	if err != nil {
		term.OutputErrorAndExit("Error creating state directory: %v", err)
	}

	log.SetOutput(&lumberjack.Logger{
		Filename:   fs.LogPath,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	})

	if api.UseProxy() {
		_, err = api.ParseOrigin(api.ProxyOrigin())
		if err != nil {
			term.OutputErrorAndExit("Invalid EZFORUM_PROXY_ORIGIN: %v", err)
		}
	}

	err = pages.App.Validate()
	if err != nil {
		term.OutputErrorAndExit("Invalid page config: %v", err)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store := auth.NewFileStore(fs.HomeAuthPath)
	toaster := term.NewToaster(os.Getenv("EZFORUM_DESKTOP_NOTIFY") == "1")

	client := api.New(api.NewTransport(api.Config{
		Store:    store,
		Notifier: toaster,
	}))

	cmd.Execute(ctx, client, store, toaster)
}
