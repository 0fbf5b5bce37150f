package finder

import (
	"fmt"

	"github.com/puppetlabs/accfind/acc"
	"github.com/puppetlabs/accfind/datastore"
)

// EnableStatus is the progress of enabling a browser window's web page objects.
type EnableStatus int

// The enablement statuses.
const (
	EnableNotStarted EnableStatus = iota
	// EnableStarted means the web page was found but its objects were not
	// ready, and enablement was triggered.
	EnableStarted
	EnableYes
	// EnableNo means cross-process enablement failed. It is not attempted again.
	EnableNo
)

func (s EnableStatus) String() string {
	switch s {
	case EnableNotStarted:
		return "not started"
	case EnableStarted:
		return "enabling"
	case EnableYes:
		return "enabled"
	case EnableNo:
		return "no"
	default:
		return fmt.Sprintf("EnableStatus(%d)", int(s))
	}
}

// StatusStore remembers the enablement status of browser windows. It is safe
// for concurrent use. Window handles can be reused, so entries of destroyed
// windows are ignored.
type StatusStore struct {
	cache *datastore.MemCache
}

// NewStatusStore creates an empty StatusStore.
func NewStatusStore() *StatusStore {
	return &StatusStore{cache: datastore.NewMemCache()}
}

// DefaultStatusStore is the process-wide store used by finders that don't set
// their own.
var DefaultStatusStore = NewStatusStore()

type statusEntry struct {
	window acc.Window
	status EnableStatus
}

func statusKey(w acc.Window) string {
	return fmt.Sprintf("window/%#x", w.Handle())
}

// Get returns w's status.
func (st *StatusStore) Get(w acc.Window) EnableStatus {
	value, ok := st.cache.Get(statusKey(w))
	if !ok {
		return EnableNotStarted
	}
	entry := value.(statusEntry)
	if !entry.window.IsAlive() || !w.IsAlive() {
		st.Forget(w)
		return EnableNotStarted
	}
	return entry.status
}

// Set records w's status.
func (st *StatusStore) Set(w acc.Window, status EnableStatus) {
	st.cache.Set(statusKey(w), statusEntry{window: w, status: status})
}

// Forget removes w's status.
func (st *StatusStore) Forget(w acc.Window) {
	st.cache.Delete(statusKey(w))
}
