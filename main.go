package main

import (
	// standard
	"os"

	// external
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	// local
	"listmerge/internal/config"
	"listmerge/internal/runner"
	"listmerge/internal/tty"
)

func init() {
	// a .env file may supply LISTMERGE_SUBS; absence is fine
	godotenv.Load()
}

func main() {
	conf := config.Init()

	if tty.IsTTY(os.Stderr) {
		tty.SmartFprintf(os.Stderr, "\033[0;90m"+config.HEADER+"\033[0m\n")
	}

	if err := runner.Run(conf); err != nil {
		log.Error(err.Error())
		os.Exit(2)
	}
	os.Exit(0)
}
