package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danswartzendruber/liner"

	"github.com/gosuda/tinybasic"
	tbruntime "github.com/gosuda/tinybasic/runtime"
)

// runPlain is the line-mode REPL used when stdout is not a terminal
// capable of the TUI, or when -plain is given.
func runPlain(cfg appConfig) error {
	session := tinybasic.NewSession()
	session.SetOutputHook(printOutput)

	l := liner.NewLiner()
	l.SetMultiLineMode(false)
	defer l.Close()

	session.SetInputProvider(func(req tbruntime.InputRequest) (string, error) {
		return l.Prompt("? ")
	})

	if cfg.loadPath != "" {
		if err := loadFile(session, cfg.loadPath); err != nil {
			return fmt.Errorf("load %s: %w", cfg.loadPath, err)
		}
	}

	say := func(text string) { fmt.Println(text) }
	for {
		s, err := l.Prompt(cfg.prompt)
		if err == io.EOF || err == liner.ErrPromptAborted {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(s) != "" {
			l.AppendHistory(s)
		}
		if handled, quit := handleReplCommand(session, s, say); quit {
			return nil
		} else if handled {
			continue
		}
		if _, err := session.SubmitLine(s); err != nil {
			fmt.Println("ERROR:", err)
		}
	}
}

func printOutput(out tbruntime.Output) {
	if out.NewLine {
		fmt.Println(out.Text)
	} else {
		fmt.Print(out.Text)
	}
}

// runBatch loads a program, runs it once against stdin/stdout, and exits.
func runBatch(cfg appConfig) error {
	if cfg.loadPath == "" {
		return fmt.Errorf("-run requires a program (-load or config autoload)")
	}
	session := tinybasic.NewSession()
	session.SetOutputHook(printOutput)

	reader := bufio.NewReader(os.Stdin)
	session.SetInputProvider(func(req tbruntime.InputRequest) (string, error) {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	})

	if err := loadFile(session, cfg.loadPath); err != nil {
		return fmt.Errorf("load %s: %w", cfg.loadPath, err)
	}
	return session.Run()
}
