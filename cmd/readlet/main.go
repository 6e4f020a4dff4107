package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mlvd/readlet"
	"github.com/mlvd/readlet/editor"
	"github.com/mlvd/readlet/history"
	"github.com/mlvd/readlet/screen"
)

func main() {
	s, err := screen.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "readlet:", err)
		os.Exit(1)
	}
	defer s.Fini()

	hist := history.New()
	e := editor.New(s, editor.Config{Prompt: "debug> ", History: hist})
	e.Run(func(line string) string {
		return eval(hist, line)
	})
}

func eval(hist *history.History, line string) string {
	switch strings.TrimSpace(line) {
	case "":
		return ""
	case "help":
		return "commands: help, history, version (ctrl+d quits)"
	case "history":
		return strings.Join(hist.Entries(), "\n")
	case "version":
		return "readlet " + readlet.VersionTag()
	default:
		return line
	}
}
