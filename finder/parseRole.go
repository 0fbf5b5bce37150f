package finder

import (
	"strconv"
	"strings"

	"github.com/puppetlabs/accfind/wildex"
)

const errInvalidRole = "Invalid role."

var rolePrefixes = []struct {
	prefix string
	scope  Scope
}{
	{"class=", ScopeClass},
	{"id=", ScopeControlID},
	{"web", ScopeWeb},
	{"firefox", ScopeFirefox},
	{"chrome", ScopeChrome},
}

func (q *Query) parseRole(role string) error {
	if role == "" {
		return queryErr("role cannot be empty.")
	}

	rest, err := q.parseRolePrefix(role)
	if err != nil || rest == "" {
		return err
	}

	if !strings.Contains(rest, "/") {
		q.role = rest
		return nil
	}
	return q.parsePath(rest)
}

// parseRolePrefix consumes a scope prefix ending with the first ':'. Text that
// merely contains a ':' is a role.
func (q *Query) parseRolePrefix(role string) (string, error) {
	colon := strings.IndexByte(role, ':')
	if colon <= 0 {
		return role, nil
	}
	head := role[:colon]
	if eq := strings.IndexByte(head, '='); eq >= 0 {
		head = head[:eq+1]
	}
	for _, p := range rolePrefixes {
		if head != p.prefix {
			continue
		}
		value := role[len(head):colon]
		switch p.scope {
		case ScopeClass:
			if value == "" {
				return "", queryErr(errInvalidRole)
			}
			class, err := parseWildex(value)
			if err != nil {
				return "", err
			}
			q.class = class
		case ScopeControlID:
			id, err := strconv.ParseInt(value, 0, 32)
			if err != nil {
				return "", queryErr(errInvalidRole)
			}
			q.controlID = int(id)
		}
		q.scope = p.scope
		return role[colon+1:], nil
	}
	return role, nil
}

// parsePath parses "A/B[2]/C[3!]". Every level has a part, possibly with an
// empty role.
func (q *Query) parsePath(s string) error {
	var path []PathPart
	for {
		end := strings.IndexAny(s, "/[")
		if end < 0 {
			end = len(s)
		}
		part := PathPart{Role: s[:end]}
		s = s[end:]
		if strings.HasPrefix(s, "[") {
			closing := strings.IndexByte(s, ']')
			if closing < 0 {
				return queryErr(errInvalidRole)
			}
			index := s[1:closing]
			if strings.HasSuffix(index, "!") {
				part.Exact = true
				index = index[:len(index)-1]
			}
			n, err := strconv.ParseInt(index, 0, 32)
			if err != nil || n < 1 {
				return queryErr(errInvalidRole)
			}
			part.Index = int(n)
			s = s[closing+1:]
			if s != "" && s[0] != '/' {
				return queryErr(errInvalidRole)
			}
		}
		path = append(path, part)
		if s == "" {
			break
		}
		// Skip the '/'
		s = s[1:]
	}
	q.path = path
	return nil
}

func parseWildex(pattern string) (*wildex.Wildex, error) {
	w, err := wildex.Parse(pattern)
	if err != nil {
		return nil, queryErr(err.Error())
	}
	return w, nil
}
