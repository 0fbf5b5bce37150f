package finder

import (
	"fmt"
	"strings"

	"github.com/puppetlabs/accfind/acc"
)

// Params is the raw text of a query. A nil field means the parameter was not given,
// which is different from an empty string for Role.
type Params struct {
	// Role is a role, a path like "A/B[2]/C", either one optionally preceded by a
	// scope prefix like "class=Edit:" or "web:".
	Role *string
	// Name is a wildcard expression matched against the accessible name.
	Name *string
	// Prop is a list of NUL-separated "name=value" chunks.
	Prop *string
	Flags Flags
}

// Str returns a pointer to s. It is a helper for building Params.
func Str(s string) *string {
	return &s
}

// JoinProps joins "name=value" chunks into the NUL-separated form used by Params.Prop.
func JoinProps(chunks ...string) *string {
	if len(chunks) == 0 {
		return nil
	}
	return Str(strings.Join(chunks, "\x00"))
}

// Parse parses p into a Query. It returns a *QueryError if p is invalid.
func Parse(p Params) (*Query, error) {
	q := newQuery()
	q.flags = p.Flags
	if p.Role != nil {
		if err := q.parseRole(*p.Role); err != nil {
			return nil, err
		}
	}
	if p.Name != nil && *p.Name != "" {
		name, err := parseWildex(*p.Name)
		if err != nil {
			return nil, err
		}
		q.name = name
	}
	if p.Prop != nil {
		if err := q.parseProp(*p.Prop); err != nil {
			return nil, err
		}
	}
	if q.scope.InWebPage() {
		q.flags |= MenuToo
	}
	return q, nil
}

// Params returns the canonical text form of q. Parsing it yields a query that
// behaves the same as q.
func (q *Query) Params() Params {
	p := Params{Flags: q.flags}
	if role, ok := q.roleText(); ok {
		p.Role = Str(role)
	}
	if q.name != nil {
		p.Name = Str(q.name.String())
	}
	p.Prop = JoinProps(q.propChunks()...)
	return p
}

func (q *Query) roleText() (string, bool) {
	var b strings.Builder
	switch q.scope {
	case ScopeClass:
		fmt.Fprintf(&b, "class=%v:", q.class)
	case ScopeControlID:
		fmt.Fprintf(&b, "id=%d:", q.controlID)
	case ScopeWeb:
		b.WriteString("web:")
	case ScopeFirefox:
		b.WriteString("firefox:")
	case ScopeChrome:
		b.WriteString("chrome:")
	}
	if q.path != nil {
		parts := make([]string, len(q.path))
		for i, part := range q.path {
			parts[i] = part.String()
		}
		b.WriteString(strings.Join(parts, "/"))
	} else {
		b.WriteString(q.role)
	}
	return b.String(), b.Len() > 0
}

func (q *Query) propChunks() []string {
	var chunks []string
	q.props.Each(func(key interface{}, value interface{}) {
		chunks = append(chunks, fmt.Sprintf("%v=%v", key, value))
	})
	q.html.Each(func(key interface{}, value interface{}) {
		chunks = append(chunks, fmt.Sprintf("@%v=%v", key, value))
	})
	if q.stateYes != 0 || q.stateNo != 0 {
		tokens := stateTokens(q.stateYes, "")
		tokens = append(tokens, stateTokens(q.stateNo, "!")...)
		chunks = append(chunks, "state="+strings.Join(tokens, ", "))
	}
	if q.levelSet {
		chunks = append(chunks, fmt.Sprintf("level=%d %d", q.minLevel, q.maxLevel))
	}
	if q.maxChildren != DefaultMaxChildren {
		chunks = append(chunks, fmt.Sprintf("maxChildren=%d", q.maxChildren))
	}
	if len(q.skipRoleNames) > 0 {
		chunks = append(chunks, "skipRoles="+strings.Join(q.skipRoleNames, ","))
	}
	if q.hasRect() {
		var fields []string
		if q.rectFields&rectL != 0 {
			fields = append(fields, fmt.Sprintf("L=%d", q.rect.Left))
		}
		if q.rectFields&rectT != 0 {
			fields = append(fields, fmt.Sprintf("T=%d", q.rect.Top))
		}
		if q.rectFields&rectW != 0 {
			fields = append(fields, fmt.Sprintf("W=%d", q.rect.Width))
		}
		if q.rectFields&rectH != 0 {
			fields = append(fields, fmt.Sprintf("H=%d", q.rect.Height))
		}
		chunks = append(chunks, "rect={"+strings.Join(fields, " ")+"}")
	}
	if q.elemSet {
		chunks = append(chunks, fmt.Sprintf("elem=%d", q.elem))
	}
	return chunks
}

// stateTokens returns one token per bit of s. Bits without a name are written
// as hex numbers.
func stateTokens(s acc.State, prefix string) []string {
	var tokens []string
	for bit := uint(0); bit < 32; bit++ {
		flag := acc.State(1) << bit
		if s&flag != 0 {
			tokens = append(tokens, prefix+flag.String())
		}
	}
	return tokens
}
