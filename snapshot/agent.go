package snapshot

import (
	"fmt"

	"github.com/puppetlabs/accfind/acc"
)

// Agent simulates code injected into a browser process. It runs an enablement
// routine on behalf of a caller in another process.
type Agent struct {
	enable func(w acc.Window) error
	calls  int
}

// EnableWebPage runs the agent's enablement routine for w.
func (a *Agent) EnableWebPage(w acc.Window) error {
	a.calls++
	return a.enable(w)
}

// Calls returns how many times EnableWebPage was called.
func (a *Agent) Calls() int {
	return a.calls
}

// InjectAgent injects an agent running enable into the process of window w.
// It fails unless w allows agents.
func (s *Snapshot) InjectAgent(w acc.Window, enable func(w acc.Window) error) (*Agent, error) {
	sw, ok := w.(*Window)
	if !ok || sw.snap != s {
		return nil, fmt.Errorf("window %#x is not in this snapshot", w.Handle())
	}
	if !sw.spec.Agent {
		return nil, fmt.Errorf("cannot inject an agent into window %#x", w.Handle())
	}
	return &Agent{enable: enable}, nil
}
