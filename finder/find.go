// Package finder finds accessible objects in accessibility trees with queries
// that describe an object's role or path, name, properties and state.
//
// A query is parsed once with Parse and can then be used by any number of
// searches. Searches walk the tree depth-first and call a Callback for every
// matching object until the callback returns StopFound.
package finder

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/puppetlabs/accfind/acc"
	log "github.com/sirupsen/logrus"
)

// Finder searches windows and objects with a parsed query.
type Finder struct {
	Query *Query
	// HTML matches HTML attribute constraints. Defaults to AttributeMatcher.
	HTML HTMLMatcher
	// Status holds the enablement status of browser windows. Defaults to
	// DefaultStatusStore.
	Status *StatusStore
	// Stats describes the last search. A Finder is not safe for concurrent searches.
	Stats Stats
}

// New returns a Finder for q.
func New(q *Query) *Finder {
	return &Finder{Query: q}
}

// Find parses p and searches window w.
func Find(w acc.Window, p Params, cb Callback) error {
	q, err := Parse(p)
	if err != nil {
		return err
	}
	return New(q).FindInWindow(w, cb)
}

// search is the state of one search.
type search struct {
	query     *Query
	callback  Callback
	html      HTMLMatcher
	htmlAttrs []HTMLAttr
	status    *StatusStore
	stats     *Stats
	// window is the top-level window being searched. It is set only while
	// a Java window can still be detected.
	window acc.Window
	found  bool
}

func (f *Finder) newSearch(cb Callback) *search {
	f.Stats = Stats{}
	s := &search{
		query:     f.Query,
		callback:  cb,
		html:      f.HTML,
		htmlAttrs: f.Query.HTMLAttrs(),
		status:    f.Status,
		stats:     &f.Stats,
	}
	if s.html == nil {
		s.html = AttributeMatcher{}
	}
	if s.status == nil {
		s.status = DefaultStatusStore
	}
	return s
}

func (s *search) newWalker() *walker {
	w := &walker{
		path:        s.query.path,
		reverse:     s.query.flags&Reverse != 0,
		maxChildren: s.query.maxChildren,
		evaluate:    s.match,
		stats:       s.stats,
	}
	if s.window != nil {
		w.noChildren = s.javaFallback
	}
	return w
}

func (s *search) result() error {
	if s.found {
		return nil
	}
	return ErrNotFound
}

// FindInWindow searches window w. Depending on the query's scope, it searches
// w's whole tree, matching child controls or the web page.
func (f *Finder) FindInWindow(w acc.Window, cb Callback) error {
	s := f.newSearch(cb)
	q := f.Query
	switch {
	case q.scope.InWebPage():
		if q.flags&UIA != 0 {
			return queryErr("Cannot use flag UIA when searching in web page.")
		}
		if err := s.findInWebPage(w); err != nil {
			return err
		}
	case q.scope.InControls():
		for _, c := range w.ChildWindows() {
			if q.flags&HiddenToo == 0 && !c.IsVisible() {
				continue
			}
			if q.scope == ScopeClass {
				if !q.class.Match(c.ClassName()) {
					continue
				}
			} else if c.ControlID() != q.controlID {
				continue
			}
			if err := s.findInWindow(c); err != nil {
				log.Debugf("Could not search control %#x: %v", c.Handle(), err)
				continue
			}
			if s.found {
				break
			}
		}
	default:
		s.window = w
		if err := s.findInWindow(w); err != nil {
			return err
		}
	}
	return s.result()
}

// FindInObject searches the descendants of o. o is owned by the caller. The
// query must not have a scope prefix.
func (f *Finder) FindInObject(o acc.Object, cb Callback) error {
	s := f.newSearch(cb)
	if f.Query.scope != ScopeWindow {
		return queryErr("role cannot have a prefix when searching in an object.")
	}
	if f.Query.flags&UIA != 0 {
		return queryErr("Cannot use flag UIA when searching in an object.")
	}
	s.newWalker().walk(o, 0)
	return s.result()
}

// findInWindow searches the tree of w from its root object.
func (s *search) findInWindow(w acc.Window) error {
	var root acc.Object
	var err error
	if s.query.flags&UIA != 0 {
		root, err = w.UIA()
	} else {
		root, err = w.Object(acc.ObjectWindow)
	}
	if err != nil {
		return errors.Wrapf(err, "could not get the root object of window %#x", w.Handle())
	}
	defer root.Release()
	s.newWalker().walk(root, 0)
	return nil
}

func (s *search) findInWebPage(w acc.Window) error {
	if s.query.scope == ScopeWeb {
		if ies := findIES(w); ies != nil {
			return s.findInWindow(ies)
		}
	}

	doc, err := s.findDocument(w)
	if err != nil {
		return err
	}
	s.stats.visit(0)
	switch s.match(doc, 0) {
	case matchStop:
		return nil
	case matchSkipChildren:
		doc.Release()
		return ErrNotFound
	}
	s.newWalker().walk(doc, 1)
	doc.Release()
	return nil
}

// findIES returns the visible Internet Explorer control hosted by w, or nil.
func findIES(w acc.Window) acc.Window {
	for _, c := range w.ChildWindows() {
		if c.IsVisible() && strings.EqualFold(c.ClassName(), iesClass) {
			return c
		}
	}
	return nil
}

// javaFallback searches the Java Access Bridge tree of a Java window whose
// CLIENT object has no children.
func (s *search) javaFallback(parent acc.Object, level int) (acc.Object, bool) {
	w := s.window
	if w == nil || level != 1 || w.IsChild() || !javaClass.Match(w.ClassName()) {
		return nil, false
	}
	if role, err := parent.Role(); err != nil || role != acc.RoleClient {
		return nil, false
	}
	root, err := w.Java()
	if err != nil || root == nil {
		return nil, false
	}
	log.Debugf("Searching the Java tree of window %#x", w.Handle())
	s.window = nil
	return root, true
}
