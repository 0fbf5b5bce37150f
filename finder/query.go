package finder

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/puppetlabs/accfind/acc"
	"github.com/puppetlabs/accfind/wildex"
)

// Flags are user-visible search options.
type Flags uint

// The search flags.
const (
	// HiddenToo includes invisible objects and hidden child controls.
	HiddenToo Flags = 1 << iota
	// Reverse walks children from last to first.
	Reverse
	// MenuToo searches inside MENUITEM objects.
	MenuToo
	// SkipLists doesn't search inside LIST and OUTLINE objects.
	SkipLists
	// SkipWeb doesn't search inside web pages.
	SkipWeb
	// UIA searches the UI-Automation tree instead of the MSAA tree.
	UIA
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{HiddenToo, "hiddenToo"},
	{Reverse, "reverse"},
	{MenuToo, "menuToo"},
	{SkipLists, "skipLists"},
	{SkipWeb, "skipWeb"},
	{UIA, "uia"},
}

// ParseFlags parses a comma-separated list of flag names like "hiddenToo,reverse".
// Names are case-insensitive.
func ParseFlags(s string) (Flags, error) {
	var flags Flags
	if strings.TrimSpace(s) == "" {
		return flags, nil
	}
outer:
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		for _, f := range flagNames {
			if strings.EqualFold(token, f.name) {
				flags |= f.flag
				continue outer
			}
		}
		return 0, queryErr(fmt.Sprintf("unknown flag %v", token))
	}
	return flags, nil
}

func (f Flags) String() string {
	var names []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, ",")
}

// Scope says where a query starts searching. It comes from the role prefix.
type Scope int

// The scopes.
const (
	// ScopeWindow searches the window's whole tree.
	ScopeWindow Scope = iota
	// ScopeClass searches child controls with a matching class name ("class=X:").
	ScopeClass
	// ScopeControlID searches child controls with a matching control ID ("id=N:").
	ScopeControlID
	// ScopeWeb searches the web page of any supported browser ("web:").
	ScopeWeb
	// ScopeFirefox searches a Firefox web page ("firefox:").
	ScopeFirefox
	// ScopeChrome searches a Chrome web page ("chrome:").
	ScopeChrome
)

// InControls returns true for the child control scopes.
func (s Scope) InControls() bool {
	return s == ScopeClass || s == ScopeControlID
}

// InWebPage returns true for the web page scopes.
func (s Scope) InWebPage() bool {
	return s >= ScopeWeb
}

// PathPart is one level of a path like "A/B[2]/C".
type PathPart struct {
	// Role is empty when any role is allowed at this level.
	Role string
	// Index is the 1-based index of the first child to look at. 0 means from the first.
	Index int
	// Exact is true when only the child at Index is looked at ("B[2!]").
	Exact bool
}

func (p PathPart) String() string {
	switch {
	case p.Index == 0:
		return p.Role
	case p.Exact:
		return fmt.Sprintf("%v[%d!]", p.Role, p.Index)
	default:
		return fmt.Sprintf("%v[%d]", p.Role, p.Index)
	}
}

// Default level and children limits.
const (
	DefaultMaxLevel    = 1000
	DefaultMaxChildren = 10000
)

type rectField uint8

const (
	rectL rectField = 1 << iota
	rectT
	rectW
	rectH
)

// Query is a parsed search query. It is immutable after Parse returns.
type Query struct {
	scope     Scope
	class     *wildex.Wildex
	controlID int

	role string
	path []PathPart

	name *wildex.Wildex
	// props maps string property names to *wildex.Wildex in the order given.
	props *linkedhashmap.Map
	// html maps HTML attribute names (without the "@" prefix) to *wildex.Wildex.
	html *linkedhashmap.Map

	stateYes, stateNo acc.State
	levelSet          bool
	minLevel          int
	maxLevel          int
	maxChildren       int
	skipRoles         *hashset.Set
	skipRoleNames     []string
	rect              acc.Rect
	rectFields        rectField
	elem              int
	elemSet           bool

	flags Flags
}

func newQuery() *Query {
	return &Query{
		maxLevel:    DefaultMaxLevel,
		maxChildren: DefaultMaxChildren,
		props:       linkedhashmap.New(),
		html:        linkedhashmap.New(),
		skipRoles:   hashset.New(),
	}
}

// Scope returns where the query starts searching.
func (q *Query) Scope() Scope {
	return q.scope
}

// Flags returns the query's flags, including flags implied by its scope.
func (q *Query) Flags() Flags {
	return q.flags
}

// Path returns the query's path, or nil if the query has no path.
func (q *Query) Path() []PathPart {
	return append([]PathPart(nil), q.path...)
}

// Role returns the single role filter. It is empty when the query has a path
// or no role.
func (q *Query) Role() string {
	return q.role
}

// LevelRange returns the inclusive range of levels at which objects can match.
func (q *Query) LevelRange() (int, int) {
	return q.minLevel, q.maxLevel
}

// MaxChildren returns the limit above which an object's children are not searched.
func (q *Query) MaxChildren() int {
	return q.maxChildren
}

func (q *Query) hasRect() bool {
	return q.rectFields != 0
}

// roleNeeded returns the role an object at level must have, or "".
func (q *Query) roleNeeded(level int) string {
	if q.path != nil {
		if level < len(q.path) {
			return q.path[level].Role
		}
		return ""
	}
	return q.role
}

func (q *Query) isSkipRole(role string) bool {
	return q.skipRoles.Size() > 0 && q.skipRoles.Contains(role)
}
