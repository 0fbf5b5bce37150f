package finder

import (
	"strconv"
	"strings"

	"github.com/puppetlabs/accfind/acc"
)

const errInvalidProp = "Invalid prop string."

var stringProps = map[string]bool{
	acc.PropValue:        true,
	acc.PropDescription:  true,
	acc.PropHelp:         true,
	acc.PropAction:       true,
	acc.PropKey:          true,
	acc.PropAutomationID: true,
}

func (q *Query) parseProp(prop string) error {
	for _, chunk := range strings.Split(prop, "\x00") {
		// Allow space before name, eg "name1=value1\0 name2=value2"
		chunk = strings.TrimLeft(chunk, " \t\r\n")
		if chunk == "" {
			continue
		}
		eq := strings.IndexByte(chunk, '=')
		if eq < 0 {
			return queryErr("Missing = in prop string.")
		}
		name, value := chunk[:eq], chunk[eq+1:]

		if strings.HasPrefix(name, "@") {
			w, err := parseWildex(value)
			if err != nil {
				return err
			}
			q.html.Put(name[1:], w)
			continue
		}
		if stringProps[name] {
			w, err := parseWildex(value)
			if err != nil {
				return err
			}
			q.props.Put(name, w)
			continue
		}

		var err error
		switch name {
		case "state":
			err = q.parseState(value)
		case "level":
			err = q.parseLevel(value)
		case "maxChildren":
			n, convErr := parseInt(value)
			if convErr != nil || n <= 0 {
				return queryErr(errInvalidProp)
			}
			q.maxChildren = n
		case "skipRoles":
			q.parseSkipRoles(value)
		case "rect":
			err = q.parseRect(value)
		case "elem":
			n, convErr := parseInt(value)
			if convErr != nil {
				return queryErr(errInvalidProp)
			}
			q.elem = n
			q.elemSet = true
		default:
			return queryErr("Unknown property. For HTML attributes use prefix @.")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// parseState parses "focused, !invisible, 0x100". Tokens prefixed with '!' are
// states the object must not have.
func (q *Query) parseState(value string) error {
	for _, token := range strings.Split(value, ",") {
		token = strings.TrimPrefix(token, " ")
		not := strings.HasPrefix(token, "!")
		if not {
			token = token[1:]
		}
		var state acc.State
		if token != "" && token[0] >= '0' && token[0] <= '9' {
			n, err := strconv.ParseUint(token, 0, 32)
			if err != nil {
				return queryErr(errInvalidProp)
			}
			state = acc.State(n)
		} else {
			var ok bool
			if state, ok = acc.ParseState(token); !ok {
				return queryErr("Unknown state name.")
			}
		}
		if not {
			q.stateNo |= state
		} else {
			q.stateYes |= state
		}
	}
	return nil
}

// parseLevel parses "min" or "min max".
func (q *Query) parseLevel(value string) error {
	if q.path != nil {
		return queryErr("Path and level.")
	}
	fields := strings.Fields(value)
	if len(fields) == 0 || len(fields) > 2 {
		return queryErr(errInvalidProp)
	}
	min, err := parseInt(fields[0])
	if err != nil || min < 0 {
		return queryErr(errInvalidProp)
	}
	max := min
	if len(fields) == 2 {
		if max, err = parseInt(fields[1]); err != nil || max < min {
			return queryErr(errInvalidProp)
		}
	}
	q.minLevel, q.maxLevel = min, max
	q.levelSet = true
	return nil
}

func (q *Query) parseSkipRoles(value string) {
	q.skipRoles.Clear()
	q.skipRoleNames = nil
	for _, role := range strings.Split(value, ",") {
		role = strings.TrimPrefix(role, " ")
		q.skipRoles.Add(role)
		q.skipRoleNames = append(q.skipRoleNames, role)
	}
}

// parseRect parses "{L=10 T=20 W=100 H=30}". All fields are optional.
func (q *Query) parseRect(value string) error {
	if len(value) < 2 || value[0] != '{' || value[len(value)-1] != '}' {
		return queryErr("Invalid rect format.")
	}
	q.rectFields = 0
	for _, field := range strings.Fields(value[1 : len(value)-1]) {
		if len(field) < 3 || field[1] != '=' {
			return queryErr("Invalid rect format.")
		}
		n, err := parseInt(field[2:])
		if err != nil {
			return queryErr("Invalid rect format.")
		}
		switch field[0] {
		case 'L':
			q.rect.Left = n
			q.rectFields |= rectL
		case 'T':
			q.rect.Top = n
			q.rectFields |= rectT
		case 'W':
			q.rect.Width = n
			q.rectFields |= rectW
		case 'H':
			q.rect.Height = n
			q.rectFields |= rectH
		default:
			return queryErr("Invalid rect format.")
		}
	}
	return nil
}

// parseInt accepts decimal, 0x hex and 0 octal numbers.
func parseInt(s string) (int, error) {
	n, err := strconv.ParseInt(s, 0, 32)
	return int(n), err
}
