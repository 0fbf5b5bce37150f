// Package snapshot is an accessibility backend that serves recorded trees. A
// snapshot is loaded from a YAML or JSON document describing windows, their
// child controls and their MSAA, UI-Automation and Java object trees. Snapshots
// model browser behavior too: Firefox document navigation, Chrome objects that
// appear only after enablement, and agents injected into browser processes.
package snapshot

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/puppetlabs/accfind/acc"
	"github.com/puppetlabs/accfind/wildex"
)

// Snapshot is a loaded snapshot. Objects it hands out are counted until
// released, which lets tests check that every object is released exactly once.
type Snapshot struct {
	windows  []*Window
	refs     int64
	released int64
}

// New builds a snapshot from a parsed document.
func New(f *File) (*Snapshot, error) {
	s := &Snapshot{}
	for _, spec := range f.Windows {
		w, err := s.newWindow(spec, nil)
		if err != nil {
			return nil, err
		}
		s.windows = append(s.windows, w)
	}
	return s, nil
}

func (s *Snapshot) newWindow(spec *WindowSpec, parent *Window) (*Window, error) {
	w := &Window{snap: s, spec: spec, parent: parent}
	for _, tree := range []*Node{spec.Tree, spec.UIA, spec.Java} {
		if err := prepare(tree); err != nil {
			return nil, errors.Wrapf(err, "window %#x", spec.Handle)
		}
	}
	for _, childSpec := range spec.Children {
		child, err := s.newWindow(childSpec, w)
		if err != nil {
			return nil, err
		}
		w.children = append(w.children, child)
	}
	return w, nil
}

// prepare resolves the roles and states of n and its descendants and expands
// repeated nodes.
func prepare(n *Node) error {
	if n == nil {
		return nil
	}
	if r, ok := acc.ParseRole(n.Role); ok {
		n.role = r
	} else if code, err := strconv.ParseInt(n.Role, 0, 32); err == nil {
		n.role = acc.Role(code)
	} else {
		n.roleName = n.Role
	}
	for _, name := range n.State {
		st, ok := acc.ParseState(name)
		if !ok {
			return fmt.Errorf("unknown state %v", name)
		}
		n.state |= st
	}
	n.fails = make(map[string]bool)
	for _, op := range n.Fail {
		n.fails[op] = true
	}

	var children []*Node
	for _, child := range n.Children {
		if err := prepare(child); err != nil {
			return err
		}
		children = append(children, child)
		for i := 1; i < child.Repeat; i++ {
			children = append(children, child)
		}
	}
	n.Children = children
	return nil
}

// Windows returns the top-level windows.
func (s *Snapshot) Windows() []*Window {
	return s.windows
}

// FindWindow returns the first top-level window matching selector, which is a
// window handle or a wildcard expression matched against the class name. An
// empty selector selects the first window.
func (s *Snapshot) FindWindow(selector string) (*Window, error) {
	if len(s.windows) == 0 {
		return nil, fmt.Errorf("the snapshot has no windows")
	}
	if selector == "" {
		return s.windows[0], nil
	}
	if handle, err := strconv.ParseInt(selector, 0, 64); err == nil {
		for _, w := range s.windows {
			if w.spec.Handle == handle {
				return w, nil
			}
		}
		return nil, fmt.Errorf("no window with handle %v", selector)
	}
	class, err := wildex.Parse(selector)
	if err != nil {
		return nil, err
	}
	for _, w := range s.windows {
		if class.Match(w.ClassName()) {
			return w, nil
		}
	}
	return nil, fmt.Errorf("no window with class %v", selector)
}

// Refs returns the number of objects handed out and not yet released.
func (s *Snapshot) Refs() int64 {
	return atomic.LoadInt64(&s.refs)
}

// Overreleased returns the number of Release calls on already released objects.
func (s *Snapshot) Overreleased() int64 {
	return atomic.LoadInt64(&s.released)
}
