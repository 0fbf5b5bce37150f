package acc

// ObjectID selects which object of a window to get (OBJID_*).
type ObjectID int

// Object IDs used by the finder.
const (
	ObjectWindow ObjectID = 0
	ObjectClient ObjectID = -4
)

// Window is a native top-level window or child control.
type Window interface {
	Handle() uintptr
	ClassName() string
	ControlID() int
	IsVisible() bool
	// IsChild returns true for child controls (WS_CHILD).
	IsChild() bool
	// IsAlive returns false after the window has been destroyed. Handles can be
	// reused, so state cached per handle must be validated with IsAlive.
	IsAlive() bool
	// ChildWindows returns all descendant controls in Z order.
	ChildWindows() []Window
	// Object returns the window's MSAA object with the given ID.
	Object(id ObjectID) (Object, error)
	// UIA returns the window's UI-Automation element.
	UIA() (Object, error)
	// Java returns the root of the window's Java Access Bridge tree, or nil
	// when the window is not a Java window.
	Java() (Object, error)
}
