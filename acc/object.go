package acc

import "fmt"

// Kind identifies the accessibility backend that produced an object.
type Kind int

// The supported backends.
const (
	MSAA Kind = iota
	UIA
	Java
)

func (k Kind) String() string {
	switch k {
	case MSAA:
		return "MSAA"
	case UIA:
		return "UIA"
	case Java:
		return "Java"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Names of the string properties readable with Object.Property.
const (
	PropName         = "name"
	PropValue        = "value"
	PropDescription  = "description"
	PropHelp         = "help"
	PropAction       = "action"
	PropKey          = "key"
	PropAutomationID = "uiaAutomationId"
)

// Rect is an object's location in screen coordinates.
type Rect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (r Rect) String() string {
	return fmt.Sprintf("{L=%d T=%d W=%d H=%d}", r.Left, r.Top, r.Width, r.Height)
}

// Object is one node of an accessibility tree. It is a reference to a native
// backend object; the holder must call Release when done with it.
//
// Objects with a non-zero Elem are sub-elements: numbered parts of a composite
// object (eg a list item of a standard list control) that have no object identity
// of their own and never have children.
type Object interface {
	Kind() Kind
	Elem() int
	Role() (Role, error)
	State() (State, error)
	Location() (Rect, error)
	// Property returns a string property. name is one of the Prop* constants.
	Property(name string) (string, error)
	ChildCount() (int, error)
	// Child returns the child at the given 0-based index.
	Child(index int) (Object, error)
	Release()
}

// NavigateDocument is the navigation direction that Firefox-family browsers
// answer with the web page's DOCUMENT object.
const NavigateDocument = 0x1009

// Navigator is implemented by objects that support accNavigate.
type Navigator interface {
	Navigate(direction int) (Object, error)
}

// Accessible2Provider is implemented by objects that can be asked for their
// IAccessible2 service. Chrome starts building the web page objects as a side
// effect of the query, even when the query itself fails.
type Accessible2Provider interface {
	QueryAccessible2() error
}

// HTMLAttributer is implemented by web page objects that expose HTML attributes.
type HTMLAttributer interface {
	HTMLAttribute(name string) (string, bool)
}

// WindowOwner is implemented by objects that know the window they belong to.
type WindowOwner interface {
	OwnerWindow() (Window, error)
}
