package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	load := flag.String("load", "", "program file to load before starting")
	runOnce := flag.Bool("run", false, "load the program, run it once, and exit")
	plain := flag.Bool("plain", false, "line-mode REPL without the TUI")
	confPath := flag.String("config", "", "YAML config file")
	flag.Parse()

	cfg, err := loadConfig(*confPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *load != "" {
		cfg.loadPath = *load
	}

	if *runOnce {
		if err := runBatch(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "tinybasic: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := runPlain(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "tinybasic: %v\n", err)
			os.Exit(1)
		}
		return
	}

	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tui: %v\n", err)
		os.Exit(1)
	}
}
