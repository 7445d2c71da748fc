package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gosuda/tinybasic"
	tbruntime "github.com/gosuda/tinybasic/runtime"
)

// replService runs the interpreter on its own goroutine. The TUI feeds
// submitted lines and INPUT responses through channels; the interpreter
// reports output chunks, input prompts, and per-line results as tea.Msg
// events. The interpreter itself stays strictly synchronous.
type replService struct {
	lines  chan string
	inputs chan string
	events chan tea.Msg
}

func startService(cfg appConfig) *replService {
	svc := &replService{
		lines:  make(chan string),
		inputs: make(chan string),
		events: make(chan tea.Msg, 256),
	}
	go svc.run(cfg)
	return svc
}

func (svc *replService) run(cfg appConfig) {
	defer close(svc.events)

	session := tinybasic.NewSession()
	session.SetOutputHook(func(out tbruntime.Output) {
		svc.events <- sessionOutputMsg{out: out}
	})
	session.SetInputProvider(func(req tbruntime.InputRequest) (string, error) {
		svc.events <- sessionPromptMsg{req: req}
		return <-svc.inputs, nil
	})

	if cfg.loadPath != "" {
		if err := loadFile(session, cfg.loadPath); err != nil {
			svc.events <- lineDoneMsg{err: err}
		}
	}

	for line := range svc.lines {
		if handled, quit := handleReplCommand(session, line, svc.emitText); quit {
			svc.events <- sessionClosedMsg{}
			return
		} else if handled {
			svc.events <- lineDoneMsg{}
			continue
		}
		outcome, err := session.SubmitLine(line)
		svc.events <- lineDoneMsg{outcome: outcome, err: err}
	}
}

func (svc *replService) emitText(text string) {
	svc.events <- sessionOutputMsg{out: tbruntime.Output{Text: text, NewLine: true}}
}

// handleReplCommand intercepts the few front-end commands that are not
// part of the dialect: BYE, SAVE <file>, LOAD <file>.
func handleReplCommand(session *tinybasic.Session, line string, say func(string)) (handled, quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, false
	}
	switch fields[0] {
	case "BYE":
		return true, true
	case "SAVE":
		if len(fields) != 2 {
			say("SAVE needs a file name")
			return true, false
		}
		if err := saveFile(session, fields[1]); err != nil {
			say(fmt.Sprintf("SAVE: %v", err))
		}
		return true, false
	case "LOAD":
		if len(fields) != 2 {
			say("LOAD needs a file name")
			return true, false
		}
		if err := loadFile(session, fields[1]); err != nil {
			say(fmt.Sprintf("LOAD: %v", err))
		}
		return true, false
	default:
		return false, false
	}
}

func loadFile(session *tinybasic.Session, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return session.Load(string(b))
}

// saveFile serializes the listing as plain (line number, source text)
// pairs, the same shape LOAD resubmits.
func saveFile(session *tinybasic.Session, path string) error {
	var b strings.Builder
	for _, ln := range session.Listing() {
		fmt.Fprintf(&b, "%d %s\n", ln.Number, ln.Source)
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
