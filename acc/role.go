// Package acc describes accessible objects (AOs) the way the platform accessibility
// backends expose them. Roles and states use the integer codes of the legacy MSAA
// enumerations so that symbolic names in queries resolve to the same values that
// MSAA, UI-Automation and Java-bridge objects report.
package acc

import (
	"strconv"
)

// Role is an MSAA role code (ROLE_SYSTEM_*).
type Role int

// The standard MSAA roles.
const (
	RoleTitleBar Role = iota + 1
	RoleMenuBar
	RoleScrollBar
	RoleGrip
	RoleSound
	RoleCursor
	RoleCaret
	RoleAlert
	RoleWindow
	RoleClient
	RoleMenuPopup
	RoleMenuItem
	RoleTooltip
	RoleApplication
	RoleDocument
	RolePane
	RoleChart
	RoleDialog
	RoleBorder
	RoleGrouping
	RoleSeparator
	RoleToolbar
	RoleStatusBar
	RoleTable
	RoleColumnHeader
	RoleRowHeader
	RoleColumn
	RoleRow
	RoleCell
	RoleLink
	RoleHelpBalloon
	RoleCharacter
	RoleList
	RoleListItem
	RoleOutline
	RoleOutlineItem
	RolePageTab
	RolePropertyPage
	RoleIndicator
	RoleGraphic
	RoleStaticText
	RoleText
	RolePushButton
	RoleCheckButton
	RoleRadioButton
	RoleComboBox
	RoleDropList
	RoleProgressBar
	RoleDial
	RoleHotkeyField
	RoleSlider
	RoleSpinButton
	RoleDiagram
	RoleAnimation
	RoleEquation
	RoleButtonDropDown
	RoleButtonMenu
	RoleButtonDropDownGrid
	RoleWhitespace
	RolePageTabList
	RoleClock
	RoleSplitButton
	RoleIPAddress
	RoleOutlineButton
)

// roleNames is indexed by role code.
var roleNames = [...]string{
	"",
	"TITLEBAR",
	"MENUBAR",
	"SCROLLBAR",
	"GRIP",
	"SOUND",
	"CURSOR",
	"CARET",
	"ALERT",
	"WINDOW",
	"CLIENT",
	"MENUPOPUP",
	"MENUITEM",
	"TOOLTIP",
	"APPLICATION",
	"DOCUMENT",
	"PANE",
	"CHART",
	"DIALOG",
	"BORDER",
	"GROUPING",
	"SEPARATOR",
	"TOOLBAR",
	"STATUSBAR",
	"TABLE",
	"COLUMNHEADER",
	"ROWHEADER",
	"COLUMN",
	"ROW",
	"CELL",
	"LINK",
	"HELPBALLOON",
	"CHARACTER",
	"LIST",
	"LISTITEM",
	"OUTLINE",
	"OUTLINEITEM",
	"PAGETAB",
	"PROPERTYPAGE",
	"INDICATOR",
	"GRAPHIC",
	"STATICTEXT",
	"TEXT",
	"PUSHBUTTON",
	"CHECKBUTTON",
	"RADIOBUTTON",
	"COMBOBOX",
	"DROPLIST",
	"PROGRESSBAR",
	"DIAL",
	"HOTKEYFIELD",
	"SLIDER",
	"SPINBUTTON",
	"DIAGRAM",
	"ANIMATION",
	"EQUATION",
	"BUTTONDROPDOWN",
	"BUTTONMENU",
	"BUTTONDROPDOWNGRID",
	"WHITESPACE",
	"PAGETABLIST",
	"CLOCK",
	"SPLITBUTTON",
	"IPADDRESS",
	"OUTLINEBUTTON",
}

var rolesByName = func() map[string]Role {
	m := make(map[string]Role, len(roleNames))
	for i, name := range roleNames {
		if name != "" {
			m[name] = Role(i)
		}
	}
	return m
}()

// String returns the role's symbolic name, like "PUSHBUTTON". Roles without a
// standard name (eg IAccessible2 roles) are returned as a decimal number.
func (r Role) String() string {
	if r > 0 && int(r) < len(roleNames) {
		return roleNames[r]
	}
	return strconv.Itoa(int(r))
}

// ParseRole returns the role with the given symbolic name. Names are
// case-sensitive, as they are in queries.
func ParseRole(name string) (Role, bool) {
	r, ok := rolesByName[name]
	return r, ok
}

// Roles returns all standard roles ordered by code.
func Roles() []Role {
	roles := make([]Role, 0, len(roleNames)-1)
	for i := 1; i < len(roleNames); i++ {
		roles = append(roles, Role(i))
	}
	return roles
}

// RoleNamer is implemented by objects whose role is a custom string rather than a
// standard code. Such objects report role 0 from Role.
type RoleNamer interface {
	RoleName() string
}

// RoleOf returns o's role code and the string that queries compare against. For
// custom string roles the code is 0.
func RoleOf(o Object) (Role, string, error) {
	r, err := o.Role()
	if err != nil {
		return 0, "", err
	}
	if r == 0 {
		if namer, ok := o.(RoleNamer); ok {
			if name := namer.RoleName(); name != "" {
				return 0, name, nil
			}
		}
	}
	return r, r.String(), nil
}
