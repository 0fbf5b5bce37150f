package finder

import (
	"github.com/puppetlabs/accfind/acc"
	"github.com/puppetlabs/accfind/wildex"
)

// HTMLAttr is an HTML attribute constraint, given in queries as "@name=value".
type HTMLAttr struct {
	Name  string
	Value *wildex.Wildex
}

// HTMLMatcher matches all HTML attribute constraints of a query against a web
// page object in one call.
type HTMLMatcher interface {
	MatchAll(o acc.Object, attrs []HTMLAttr) bool
}

// AttributeMatcher is the default HTMLMatcher. It reads attributes through
// acc.HTMLAttributer. Objects without a constrained attribute don't match.
type AttributeMatcher struct{}

// MatchAll implements HTMLMatcher.
func (AttributeMatcher) MatchAll(o acc.Object, attrs []HTMLAttr) bool {
	attributer, ok := o.(acc.HTMLAttributer)
	if !ok {
		return false
	}
	for _, attr := range attrs {
		value, ok := attributer.HTMLAttribute(attr.Name)
		if !ok || !attr.Value.Match(value) {
			return false
		}
	}
	return true
}

// HTMLAttrs returns the query's HTML attribute constraints in the order given.
func (q *Query) HTMLAttrs() []HTMLAttr {
	var attrs []HTMLAttr
	it := q.html.Iterator()
	for it.Next() {
		attrs = append(attrs, HTMLAttr{Name: it.Key().(string), Value: it.Value().(*wildex.Wildex)})
	}
	return attrs
}
