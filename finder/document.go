package finder

import (
	"strings"

	"github.com/puppetlabs/accfind/acc"
	"github.com/puppetlabs/accfind/wildex"
	log "github.com/sirupsen/logrus"
)

// documentMaxLevel bounds the search for a DOCUMENT. Browsers put it at level 3.
const documentMaxLevel = 10

const devtoolsPrefix = "chrome-devtools:"

var (
	firefoxClass = wildex.MustParse("Mozilla*")
	chromeClass  = wildex.MustParse("Chrome*")
	javaClass    = wildex.MustParse("SunAwt*")
)

// documentSkipRoles are roles whose objects never contain the web page.
var documentSkipRoles = map[acc.Role]bool{
	acc.RoleMenuBar:    true,
	acc.RoleTitleBar:   true,
	acc.RoleMenuPopup:  true,
	acc.RoleToolbar:    true,
	acc.RoleStatusBar:  true,
	acc.RoleOutline:    true,
	acc.RoleList:       true,
	acc.RoleScrollBar:  true,
	acc.RoleGrip:       true,
	acc.RoleSeparator:  true,
	acc.RolePushButton: true,
	acc.RoleText:       true,
	acc.RoleStaticText: true,
	acc.RoleTooltip:    true,
	acc.RoleTable:      true,
}

// browserScope returns the browser family of w. It returns scope unchanged if
// it already names a browser.
func browserScope(w acc.Window, scope Scope) Scope {
	if scope != ScopeWeb {
		return scope
	}
	class := w.ClassName()
	switch {
	case firefoxClass.Match(class):
		return ScopeFirefox
	case chromeClass.Match(class):
		return ScopeChrome
	}
	return scope
}

// findDocument finds the DOCUMENT object of the web page in browser window w.
// It returns ErrNotFound or ErrWaitRetry if there is none yet.
func (s *search) findDocument(w acc.Window) (acc.Object, error) {
	client, err := w.Object(acc.ObjectClient)
	if err != nil {
		log.Debugf("Could not get the client object of window %#x: %v", w.Handle(), err)
		return nil, ErrNotFound
	}
	defer client.Release()

	scope := browserScope(w, s.query.scope)
	switch scope {
	case ScopeFirefox:
		doc, err := navigateDocument(client)
		if err == nil {
			return doc, nil
		}
		log.Debugf("Firefox document navigation failed, searching instead: %v", err)
	case ScopeChrome:
		return s.status.chromeDocument(w, client, s.stats)
	}
	return findDocumentSimple(client, scope, s.stats)
}

func navigateDocument(client acc.Object) (acc.Object, error) {
	nav, ok := client.(acc.Navigator)
	if !ok {
		return nil, ErrNotFound
	}
	doc, err := nav.Navigate(acc.NavigateDocument)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNotFound
	}
	return doc, nil
}

// documentSearch finds the first visible DOCUMENT in a bounded walk.
type documentSearch struct {
	scope Scope
	doc   acc.Object
}

// findDocumentSimple searches the descendants of client for the web page's DOCUMENT.
func findDocumentSimple(client acc.Object, scope Scope, stats *Stats) (acc.Object, error) {
	ds := &documentSearch{scope: scope}
	w := &walker{
		maxChildren: DefaultMaxChildren,
		evaluate:    ds.match,
		stats:       stats,
	}
	if !w.walk(client, 0) {
		return nil, ErrNotFound
	}
	return ds.doc, nil
}

func (ds *documentSearch) match(o acc.Object, level int) matchResult {
	if o.Elem() != 0 {
		return matchSkipChildren
	}
	result := ds.evaluate(o)
	if result == matchContinue && level >= documentMaxLevel {
		result = matchSkipChildren
	}
	return result
}

func (ds *documentSearch) evaluate(o acc.Object) matchResult {
	role, err := o.Role()
	if err != nil {
		log.Debugf("Could not get role while searching for the web page: %v", err)
		return matchContinue
	}
	if role != acc.RoleDocument {
		if documentSkipRoles[role] {
			return matchSkipChildren
		}
		return matchContinue
	}

	state, err := o.State()
	if err != nil || state.Has(acc.StateInvisible) {
		return matchSkipChildren
	}
	if ds.scope == ScopeChrome {
		if value, err := o.Property(acc.PropValue); err == nil && strings.HasPrefix(value, devtoolsPrefix) {
			return matchSkipChildren
		}
	}
	ds.doc = o
	return matchStop
}
