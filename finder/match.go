package finder

import (
	"strings"

	"github.com/puppetlabs/accfind/acc"
	"github.com/puppetlabs/accfind/wildex"
	log "github.com/sirupsen/logrus"
)

// CallbackResult tells the search what to do after a match.
type CallbackResult int

const (
	// Continue keeps searching. The object is released by the search.
	Continue CallbackResult = iota
	// StopFound ends the search successfully. The callback takes ownership of
	// the object and must release it.
	StopFound
)

// Callback is called for every object that matches a query, with the object's
// level below the search root.
type Callback func(o acc.Object, level int) CallbackResult

type invisibility int

const (
	visible invisibility = iota
	// invisibleOnly is INVISIBLE without OFFSCREEN.
	invisibleOnly
	invisibleOffscreen
)

// skipIfInvisible returns true for roles whose invisible objects are not
// searched. Objects with these roles often have many descendants.
func skipIfInvisible(role acc.Role) bool {
	switch role {
	case acc.RoleWindow,
		acc.RoleDocument,
		acc.RolePropertyPage,
		acc.RoleGrouping,
		acc.RoleAlert,
		acc.RoleMenuPopup:
		return true
	}
	return false
}

const iesClass = "Internet Explorer_Server"

// evaluation is the state of one object while it is evaluated.
type evaluation struct {
	o            acc.Object
	level        int
	role         acc.Role
	roleName     string
	roleNeeded   string
	skipChildren bool

	stateRead bool
	state     acc.State
}

func (e *evaluation) getState() acc.State {
	if !e.stateRead {
		e.stateRead = true
		state, err := e.o.State()
		if err != nil {
			log.Debugf("Could not get the state of a %v object: %v", e.roleName, err)
		}
		e.state = state
	}
	return e.state
}

func (e *evaluation) invisibility() invisibility {
	switch e.getState() & (acc.StateInvisible | acc.StateOffscreen) {
	case acc.StateInvisible:
		return invisibleOnly
	case acc.StateInvisible | acc.StateOffscreen:
		return invisibleOffscreen
	}
	return visible
}

type filterResult int

const (
	filterFail filterResult = iota
	filterSkip
	filterStop
)

// match evaluates o against the query and calls the callback if it matches.
func (s *search) match(o acc.Object, level int) matchResult {
	q := s.query
	e := &evaluation{
		o:            o,
		level:        level,
		roleNeeded:   q.roleNeeded(level),
		skipChildren: o.Elem() != 0 || level >= q.maxLevel,
	}
	var err error
	e.role, e.roleName, err = acc.RoleOf(o)
	if err != nil {
		log.Debugf("Could not get the role of an object at level %v: %v", level, err)
	}

	if q.isSkipRole(e.roleName) {
		return matchSkipChildren
	}
	if level >= q.minLevel {
		switch s.filter(e) {
		case filterStop:
			return matchStop
		case filterSkip:
			return matchSkipChildren
		}
	}
	return s.prune(e)
}

// filter applies the query's filters to e and calls the callback if all pass.
func (s *search) filter(e *evaluation) filterResult {
	q := s.query
	if e.roleNeeded != "" && e.roleNeeded != e.roleName {
		// Path levels are positional, so no descendant can match either
		if q.path != nil {
			return filterSkip
		}
		return filterFail
	}
	if q.path != nil {
		if e.level < len(q.path)-1 {
			return filterFail
		}
		e.skipChildren = true
	}

	if q.elemSet && e.o.Elem() != q.elem {
		return filterFail
	}
	if q.name != nil && !matchProperty(e.o, acc.PropName, q.name) {
		return filterFail
	}

	if q.flags&HiddenToo == 0 {
		switch e.invisibility() {
		case invisibleOffscreen:
			// Some frameworks mark visible offscreen objects as invisible
			if !skipIfInvisible(e.role) {
				break
			}
			fallthrough
		case invisibleOnly:
			e.skipChildren = true
			return filterFail
		}
	}

	if q.stateYes|q.stateNo != 0 {
		state := e.getState()
		if state&q.stateYes != q.stateYes || state&q.stateNo != 0 {
			return filterFail
		}
	}

	if q.hasRect() && !s.matchRect(e.o) {
		return filterFail
	}

	if !s.matchProps(e.o) {
		return filterFail
	}

	if s.callback(e.o, e.level) == StopFound {
		s.found = true
		return filterStop
	}
	return filterFail
}

func (s *search) matchRect(o acc.Object) bool {
	q := s.query
	r, err := o.Location()
	if err != nil {
		log.Debugf("Could not get object location: %v", err)
		return false
	}
	switch {
	case q.rectFields&rectL != 0 && r.Left != q.rect.Left:
		return false
	case q.rectFields&rectT != 0 && r.Top != q.rect.Top:
		return false
	case q.rectFields&rectW != 0 && r.Width != q.rect.Width:
		return false
	case q.rectFields&rectH != 0 && r.Height != q.rect.Height:
		return false
	}
	return true
}

func (s *search) matchProps(o acc.Object) bool {
	it := s.query.props.Iterator()
	for it.Next() {
		if !matchProperty(o, it.Key().(string), it.Value().(*wildex.Wildex)) {
			return false
		}
	}
	if len(s.htmlAttrs) == 0 {
		return true
	}
	// Sub-elements have no HTML attributes
	if o.Elem() != 0 {
		return false
	}
	return s.html.MatchAll(o, s.htmlAttrs)
}

func matchProperty(o acc.Object, name string, w *wildex.Wildex) bool {
	value, err := o.Property(name)
	if err != nil {
		log.Debugf("Could not get property %v: %v", name, err)
		return false
	}
	return w.Match(value)
}

// prune decides whether the children of an object that did not stop the
// search are searched.
func (s *search) prune(e *evaluation) matchResult {
	if !e.skipChildren {
		e.skipChildren = s.isRoleToSkipDescendants(e)
		if !e.skipChildren && s.query.flags&HiddenToo == 0 && skipIfInvisible(e.role) {
			e.skipChildren = e.invisibility() != visible
		}
	}
	if e.skipChildren {
		log.Tracef("Skipping the children of a %v object at level %v", e.roleName, e.level)
		return matchSkipChildren
	}
	return matchContinue
}

// isRoleToSkipDescendants returns true for objects that usually have many
// descendants which the flags exclude.
func (s *search) isRoleToSkipDescendants(e *evaluation) bool {
	flags := s.query.flags
	switch e.role {
	case acc.RoleMenuItem:
		if flags&MenuToo == 0 {
			return e.roleNeeded != "MENUITEM" && e.roleNeeded != "MENUPOPUP"
		}
	case acc.RoleOutline, acc.RoleList:
		return flags&SkipLists != 0
	case acc.RoleDocument:
		return flags&SkipWeb != 0
	case acc.RolePane:
		if flags&SkipWeb != 0 {
			return isInIES(e.o)
		}
	}
	return false
}

// isInIES returns true if o belongs to an Internet Explorer web browser control.
func isInIES(o acc.Object) bool {
	owner, ok := o.(acc.WindowOwner)
	if !ok {
		return false
	}
	w, err := owner.OwnerWindow()
	if err != nil || w == nil {
		return false
	}
	return strings.EqualFold(w.ClassName(), iesClass)
}
