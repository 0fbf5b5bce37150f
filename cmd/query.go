package cmd

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/puppetlabs/accfind/acc"
	"github.com/puppetlabs/accfind/finder"
	"github.com/puppetlabs/accfind/snapshot"
	"github.com/spf13/cobra"
)

const queryUsage = `Queries:
  --role    A role like PUSHBUTTON, or a path like "WINDOW/CLIENT/LIST[2]/LISTITEM"
            where [N] starts at the Nth child and [N!] takes only the Nth child.
            The role can start with a scope: "class=Edit:" or "id=15:" search child
            controls, "web:", "firefox:" and "chrome:" search the web page.
  --name    A wildcard expression matched against the object's name.
  --prop    A "name=value" property. Can be repeated. Names are value, description,
            help, action, key, uiaAutomationId, @<html attribute>, state, level,
            maxChildren, skipRoles, rect and elem. For example:
              --prop 'state=focused, !invisible' --prop 'rect={W=100 H=30}'
  --props   Several properties in one shell-quoted string.
  --flags   Comma-separated flags: hiddenToo, reverse, menuToo, skipLists, skipWeb, uia.

Wildcard expressions use * and ?, and are case-insensitive. They can start with
"**opts " where opts are t (text), c (case-sensitive), r (regex), R (case-sensitive
regex), m (|| separated parts) and n (not).`

func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("role", "r", "", "Role, path and scope of the object")
	cmd.Flags().StringP("name", "n", "", "Wildcard expression for the object's name")
	cmd.Flags().StringArrayP("prop", "P", nil, "Property of the object, as name=value")
	cmd.Flags().String("props", "", "Shell-quoted list of properties")
	cmd.Flags().String("flags", "", "Comma-separated search flags")
	cmd.Flags().StringP("window", "w", "", "Search the window with this handle or class (default: the first window)")
}

// queryParams builds the query's Params from cmd's flags.
func queryParams(cmd *cobra.Command) (finder.Params, error) {
	var p finder.Params
	flags := cmd.Flags()
	if flags.Changed("role") {
		role, err := flags.GetString("role")
		if err != nil {
			return p, err
		}
		p.Role = finder.Str(role)
	}
	if flags.Changed("name") {
		name, err := flags.GetString("name")
		if err != nil {
			return p, err
		}
		p.Name = finder.Str(name)
	}

	props, err := flags.GetStringArray("prop")
	if err != nil {
		return p, err
	}
	quoted, err := flags.GetString("props")
	if err != nil {
		return p, err
	}
	if quoted != "" {
		more, err := shellquote.Split(quoted)
		if err != nil {
			return p, &finder.QueryError{Msg: fmt.Sprintf("could not split --props: %v", err)}
		}
		props = append(props, more...)
	}
	p.Prop = finder.JoinProps(props...)

	flagList, err := flags.GetString("flags")
	if err != nil {
		return p, err
	}
	if p.Flags, err = finder.ParseFlags(flagList); err != nil {
		return p, err
	}
	return p, nil
}

// parseQuery parses the query given by cmd's flags.
func parseQuery(cmd *cobra.Command) (*finder.Query, error) {
	p, err := queryParams(cmd)
	if err != nil {
		return nil, err
	}
	return finder.Parse(p)
}

// loadWindow loads a snapshot and selects the window given by --window.
func loadWindow(cmd *cobra.Command, file string) (*snapshot.Snapshot, *snapshot.Window, error) {
	selector, err := cmd.Flags().GetString("window")
	if err != nil {
		return nil, nil, err
	}
	snap, err := snapshot.Load(file)
	if err != nil {
		return nil, nil, err
	}
	w, err := snap.FindWindow(selector)
	if err != nil {
		return nil, nil, fmt.Errorf("%v: %v", file, err)
	}
	return snap, w, nil
}

// object is how found objects are printed.
type object struct {
	Snapshot string    `json:"snapshot,omitempty"`
	Window   string    `json:"window"`
	Level    int       `json:"level"`
	Role     string    `json:"role"`
	Name     string    `json:"name"`
	Value    string    `json:"value,omitempty"`
	State    []string  `json:"state,omitempty"`
	Rect     *acc.Rect `json:"rect,omitempty"`
	Elem     int       `json:"elem,omitempty"`
}

// describe reads o's properties. w is the searched window, used when o can't
// tell which child control it belongs to.
func describe(w acc.Window, o acc.Object, level int) object {
	if owner, ok := o.(acc.WindowOwner); ok {
		if ow, err := owner.OwnerWindow(); err == nil && ow != nil {
			w = ow
		}
	}
	d := object{
		Window: fmt.Sprintf("%#x", w.Handle()),
		Level:  level,
		Elem:   o.Elem(),
	}
	// Properties that can't be read are left empty
	_, d.Role, _ = acc.RoleOf(o)
	d.Name, _ = o.Property(acc.PropName)
	d.Value, _ = o.Property(acc.PropValue)
	if state, err := o.State(); err == nil {
		d.State = state.Names()
	}
	if rect, err := o.Location(); err == nil && rect != (acc.Rect{}) {
		d.Rect = &rect
	}
	return d
}

func (o object) stateString() string {
	return strings.Join(o.State, ",")
}

func (o object) rectString() string {
	if o.Rect == nil {
		return ""
	}
	return fmt.Sprintf("{L=%v T=%v W=%v H=%v}", o.Rect.Left, o.Rect.Top, o.Rect.Width, o.Rect.Height)
}

// exitCodeFor maps a search result to the process exit code. Not finding
// anything is not an error, like grep.
func exitCodeFor(err error) int {
	switch finder.CodeOf(err) {
	case finder.Success:
		return 0
	case finder.NotFound:
		return 1
	case finder.InvalidParameter:
		return 2
	case finder.WaitRetry:
		return 3
	default:
		return 4
	}
}
