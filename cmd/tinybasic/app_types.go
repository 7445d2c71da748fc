package main

import (
	"github.com/gosuda/tinybasic"
	tbruntime "github.com/gosuda/tinybasic/runtime"
)

type sessionOutputMsg struct {
	out tbruntime.Output
}

type sessionPromptMsg struct {
	req tbruntime.InputRequest
}

type lineDoneMsg struct {
	outcome tinybasic.Outcome
	err     error
}

type sessionClosedMsg struct{}

type pollMsg struct{}
