package main

import (
	"fmt"
	"os"
	"path/filepath"

	"flexicoach/fincoach/cmd/analyze"
	"flexicoach/fincoach/cmd/challenges"
	"flexicoach/fincoach/cmd/chat"
	"flexicoach/fincoach/cmd/root"

	"github.com/joho/godotenv"
)

func init() {
	loadEnvSilently()

	root.Init()

	root.Cmd.AddCommand(analyze.Cmd)
	root.Cmd.AddCommand(chat.Cmd)
	root.Cmd.AddCommand(challenges.Cmd)
}

// loadEnvSilently loads environment variables without logging anything.
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
