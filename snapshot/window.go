package snapshot

import (
	"fmt"

	"github.com/puppetlabs/accfind/acc"
)

// Window is a snapshot window. It implements acc.Window.
type Window struct {
	snap      *Snapshot
	spec      *WindowSpec
	parent    *Window
	children  []*Window
	destroyed bool
	// enableRequests counts enablement requests made through the client object.
	enableRequests int
}

var _ acc.Window = &Window{}

// Handle implements acc.Window.
func (w *Window) Handle() uintptr {
	return uintptr(w.spec.Handle)
}

// ClassName implements acc.Window.
func (w *Window) ClassName() string {
	return w.spec.Class
}

// ControlID implements acc.Window.
func (w *Window) ControlID() int {
	return w.spec.ID
}

// IsVisible implements acc.Window.
func (w *Window) IsVisible() bool {
	return !w.spec.Hidden
}

// IsChild implements acc.Window.
func (w *Window) IsChild() bool {
	return w.parent != nil
}

// IsAlive implements acc.Window.
func (w *Window) IsAlive() bool {
	return !w.destroyed
}

// Destroy marks the window as destroyed.
func (w *Window) Destroy() {
	w.destroyed = true
}

// ChildWindows implements acc.Window.
func (w *Window) ChildWindows() []acc.Window {
	var all []acc.Window
	for _, c := range w.children {
		all = append(all, c)
		all = append(all, c.ChildWindows()...)
	}
	return all
}

// Object implements acc.Window.
func (w *Window) Object(id acc.ObjectID) (acc.Object, error) {
	if w.spec.Tree == nil {
		return nil, fmt.Errorf("window %#x has no accessible objects", w.spec.Handle)
	}
	switch id {
	case acc.ObjectWindow:
		return w.newObject(w.spec.Tree, acc.MSAA), nil
	case acc.ObjectClient:
		for _, n := range w.spec.Tree.Children {
			if n.role == acc.RoleClient {
				return w.newObject(n, acc.MSAA), nil
			}
		}
		return nil, fmt.Errorf("window %#x has no client object", w.spec.Handle)
	}
	return nil, fmt.Errorf("unsupported object id %v", id)
}

// UIA implements acc.Window.
func (w *Window) UIA() (acc.Object, error) {
	if w.spec.UIA == nil {
		return nil, fmt.Errorf("window %#x has no UI-Automation elements", w.spec.Handle)
	}
	return w.newObject(w.spec.UIA, acc.UIA), nil
}

// Java implements acc.Window.
func (w *Window) Java() (acc.Object, error) {
	if w.spec.Java == nil {
		return nil, nil
	}
	return w.newObject(w.spec.Java, acc.Java), nil
}

// Enabled returns true once the window's lazy objects are available.
func (w *Window) Enabled() bool {
	after := w.spec.EnableAfter
	if after < 1 {
		after = 1
	}
	return w.enableRequests >= after
}

// EnableRequests returns the number of enablement requests the window received.
func (w *Window) EnableRequests() int {
	return w.enableRequests
}

// findNavigate returns the node that document navigation returns.
func findNavigate(n *Node) *Node {
	if n == nil {
		return nil
	}
	if n.Navigate {
		return n
	}
	for _, c := range n.Children {
		if found := findNavigate(c); found != nil {
			return found
		}
	}
	return nil
}
