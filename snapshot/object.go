package snapshot

import (
	"fmt"
	"sync/atomic"

	"github.com/puppetlabs/accfind/acc"
)

// object is a reference to a snapshot node.
type object struct {
	win      *Window
	node     *Node
	kind     acc.Kind
	released bool
}

func (w *Window) newObject(n *Node, kind acc.Kind) *object {
	atomic.AddInt64(&w.snap.refs, 1)
	return &object{win: w, node: n, kind: kind}
}

func (o *object) fail(op string) error {
	if o.node.fails[op] {
		return fmt.Errorf("%v failed on %v object %q", op, o.node.Role, o.node.Name)
	}
	return nil
}

func (o *object) Kind() acc.Kind {
	return o.kind
}

func (o *object) Elem() int {
	return o.node.Elem
}

func (o *object) Role() (acc.Role, error) {
	if err := o.fail("role"); err != nil {
		return 0, err
	}
	return o.node.role, nil
}

func (o *object) RoleName() string {
	return o.node.roleName
}

func (o *object) lazy() bool {
	return o.node.Lazy && !o.win.Enabled()
}

func (o *object) State() (acc.State, error) {
	if err := o.fail("state"); err != nil {
		return 0, err
	}
	state := o.node.state
	if o.lazy() {
		state |= acc.StateBusy
	}
	return state, nil
}

func (o *object) Location() (acc.Rect, error) {
	if err := o.fail("location"); err != nil {
		return acc.Rect{}, err
	}
	if o.node.Rect == nil {
		return acc.Rect{}, nil
	}
	return *o.node.Rect, nil
}

func (o *object) Property(name string) (string, error) {
	if err := o.fail("property"); err != nil {
		return "", err
	}
	n := o.node
	switch name {
	case acc.PropName:
		return n.Name, nil
	case acc.PropValue:
		return n.Value, nil
	case acc.PropDescription:
		return n.Description, nil
	case acc.PropHelp:
		return n.Help, nil
	case acc.PropAction:
		return n.Action, nil
	case acc.PropKey:
		return n.Key, nil
	case acc.PropAutomationID:
		return n.AutomationID, nil
	}
	return "", fmt.Errorf("unknown property %v", name)
}

// children returns the child nodes that currently exist.
func (o *object) children() []*Node {
	if o.node.Elem != 0 || o.lazy() {
		return nil
	}
	if o.win.Enabled() {
		return o.node.Children
	}
	var children []*Node
	for _, c := range o.node.Children {
		if !c.Pending {
			children = append(children, c)
		}
	}
	return children
}

func (o *object) ChildCount() (int, error) {
	if err := o.fail("children"); err != nil {
		return 0, err
	}
	return len(o.children()), nil
}

func (o *object) Child(index int) (acc.Object, error) {
	if err := o.fail("children"); err != nil {
		return nil, err
	}
	children := o.children()
	if index < 0 || index >= len(children) {
		return nil, fmt.Errorf("child index %v out of range", index)
	}
	child := children[index]
	if child.fails["child"] {
		return nil, fmt.Errorf("could not get child %v", index)
	}
	return o.win.newObject(child, o.kind), nil
}

func (o *object) Release() {
	if o.released {
		atomic.AddInt64(&o.win.snap.released, 1)
		return
	}
	o.released = true
	atomic.AddInt64(&o.win.snap.refs, -1)
}

// Navigate implements acc.Navigator.
func (o *object) Navigate(direction int) (acc.Object, error) {
	if direction != acc.NavigateDocument {
		return nil, fmt.Errorf("unsupported navigation direction %#x", direction)
	}
	n := findNavigate(o.win.spec.Tree)
	if n == nil {
		return nil, fmt.Errorf("navigation failed")
	}
	return o.win.newObject(n, o.kind), nil
}

// QueryAccessible2 implements acc.Accessible2Provider. Each call is an
// enablement request to the window.
func (o *object) QueryAccessible2() error {
	o.win.enableRequests++
	return nil
}

// HTMLAttribute implements acc.HTMLAttributer.
func (o *object) HTMLAttribute(name string) (string, bool) {
	value, ok := o.node.HTML[name]
	return value, ok
}

// OwnerWindow implements acc.WindowOwner.
func (o *object) OwnerWindow() (acc.Window, error) {
	return o.win, nil
}
