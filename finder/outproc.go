package finder

import (
	"time"

	"github.com/avast/retry-go"
	"github.com/pkg/errors"
	"github.com/puppetlabs/accfind/acc"
	log "github.com/sirupsen/logrus"
)

// Agent is code running inside a browser process.
type Agent interface {
	// EnableWebPage runs the in-process enablement routine for window w. It
	// returns ErrWaitRetry while the browser is still building the objects.
	EnableWebPage(w acc.Window) error
}

// Injector loads an Agent into the process that owns a window.
type Injector interface {
	Inject(w acc.Window) (Agent, error)
}

// InjectorFunc adapts a function to an Injector.
type InjectorFunc func(w acc.Window) (Agent, error)

// Inject implements Injector.
func (f InjectorFunc) Inject(w acc.Window) (Agent, error) {
	return f(w)
}

// EnableResult is the outcome of EnableChrome.
type EnableResult int

// The EnableChrome results.
const (
	// EnableFailed means the window is not a Chrome window or enablement failed.
	EnableFailed EnableResult = iota
	EnableAlready
	// EnableNow means the objects were enabled by this call.
	EnableNow
)

func (r EnableResult) String() string {
	switch r {
	case EnableAlready:
		return "already enabled"
	case EnableNow:
		return "enabled now"
	default:
		return "failed"
	}
}

// Cross-process enablement polls the agent at most EnableAttempts times, so
// EnableChrome blocks for about EnableAttempts*EnableDelay in the worst case.
const (
	EnableAttempts = 100
	EnableDelay    = 10 * time.Millisecond
)

// EnableChrome enables the web page objects of top-level Chrome window w from
// another process. It injects an agent into the browser and polls its
// enablement routine until the objects are ready. If checkClassName is set,
// windows whose class is not Chrome's fail immediately.
func (st *StatusStore) EnableChrome(w acc.Window, injector Injector, checkClassName bool) EnableResult {
	if checkClassName && !chromeClass.Match(w.ClassName()) {
		return EnableFailed
	}
	switch st.Get(w) {
	case EnableYes:
		return EnableAlready
	case EnableStarted, EnableNo:
		return EnableFailed
	}

	agent, err := injector.Inject(w)
	if err != nil {
		log.Debugf("Could not inject agent into window %#x: %v", w.Handle(), err)
		return EnableFailed
	}

	result := EnableFailed
	err = retry.Do(
		func() error {
			err := agent.EnableWebPage(w)
			if err == nil {
				if result == EnableNow {
					time.Sleep(EnableDelay)
				} else {
					result = EnableAlready
				}
				return nil
			}
			if errors.Is(err, ErrWaitRetry) {
				result = EnableNow
			}
			return err
		},
		retry.Attempts(EnableAttempts),
		retry.Delay(EnableDelay),
		retry.DelayType(retry.FixedDelay),
		retry.RetryIf(func(error) bool { return result == EnableNow }),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		log.Debugf("Enabling window %#x: %v", w.Handle(), err)
	}
	if result == EnableFailed {
		st.Set(w, EnableNo)
	}
	return result
}
