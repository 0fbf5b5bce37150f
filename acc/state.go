package acc

import (
	"fmt"
	"strings"
)

// State is a set of MSAA state flags (STATE_SYSTEM_*).
type State int

// The standard MSAA state flags.
const (
	StateDisabled State = 1 << iota
	StateSelected
	StateFocused
	StatePressed
	StateChecked
	StateMixed
	StateReadonly
	StateHotTracked
	StateDefault
	StateExpanded
	StateCollapsed
	StateBusy
	StateFloating
	StateMarqueed
	StateAnimated
	StateInvisible
	StateOffscreen
	StateSizeable
	StateMoveable
	StateSelfVoicing
	StateFocusable
	StateSelectable
	StateLinked
	StateTraversed
	StateMultiSelectable
	StateExtSelectable
	StateAlertLow
	StateAlertMedium
	StateAlertHigh
	StateProtected
	StateHasPopup
)

// stateNames is indexed by bit number.
var stateNames = [...]string{
	"DISABLED",
	"SELECTED",
	"FOCUSED",
	"PRESSED",
	"CHECKED",
	"MIXED",
	"READONLY",
	"HOTTRACKED",
	"DEFAULT",
	"EXPANDED",
	"COLLAPSED",
	"BUSY",
	"FLOATING",
	"MARQUEED",
	"ANIMATED",
	"INVISIBLE",
	"OFFSCREEN",
	"SIZEABLE",
	"MOVEABLE",
	"SELFVOICING",
	"FOCUSABLE",
	"SELECTABLE",
	"LINKED",
	"TRAVERSED",
	"MULTISELECTABLE",
	"EXTSELECTABLE",
	"ALERT_LOW",
	"ALERT_MEDIUM",
	"ALERT_HIGH",
	"PROTECTED",
	"HASPOPUP",
}

// Names used by other tools for the same flags.
var stateAliases = map[string]State{
	"UNAVAILABLE":   StateDisabled,
	"INDETERMINATE": StateMixed,
}

var statesByName = func() map[string]State {
	m := make(map[string]State, len(stateNames)+len(stateAliases))
	for i, name := range stateNames {
		m[name] = 1 << uint(i)
	}
	for name, s := range stateAliases {
		m[name] = s
	}
	return m
}()

// ParseState returns the state flag with the given symbolic name. The lookup is
// case-insensitive, so "focused" and "FOCUSED" are the same flag.
func ParseState(name string) (State, bool) {
	s, ok := statesByName[strings.ToUpper(name)]
	return s, ok
}

// Has returns true if s contains all of the flags in x.
func (s State) Has(x State) bool {
	return s&x == x
}

// Names returns the symbolic names of the set flags, lowest bit first.
func (s State) Names() []string {
	var names []string
	for i, name := range stateNames {
		if s&(1<<uint(i)) != 0 {
			names = append(names, name)
		}
	}
	return names
}

// String returns the set flags as a comma-separated list of names. Bits
// without a name are appended as a hexadecimal number.
func (s State) String() string {
	names := s.Names()
	if rest := s &^ (1<<uint(len(stateNames)) - 1); rest != 0 {
		names = append(names, fmt.Sprintf("0x%X", int(rest)))
	}
	if len(names) == 0 {
		return "0"
	}
	return strings.Join(names, ",")
}

// StateFlags returns all named state flags ordered by bit.
func StateFlags() []State {
	flags := make([]State, len(stateNames))
	for i := range stateNames {
		flags[i] = 1 << uint(i)
	}
	return flags
}
