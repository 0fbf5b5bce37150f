package snapshot

import (
	"testing"

	"github.com/puppetlabs/accfind/acc"
	"github.com/stretchr/testify/suite"
)

type SnapshotTestSuite struct {
	suite.Suite
}

func (suite *SnapshotTestSuite) mustParse(doc string) *Snapshot {
	s, err := Parse([]byte(doc))
	suite.Require().NoError(err)
	return s
}

func (suite *SnapshotTestSuite) TestLoad() {
	s, err := Load("testdata/notepad.yaml")
	if suite.NoError(err) {
		suite.Len(s.Windows(), 1)
		w := s.Windows()[0]
		suite.Equal(uintptr(0x10010), w.Handle())
		suite.Equal("Notepad", w.ClassName())
		suite.False(w.IsChild())
		suite.True(w.IsVisible())
		if suite.Len(w.ChildWindows(), 1) {
			c := w.ChildWindows()[0]
			suite.Equal(15, c.ControlID())
			suite.True(c.IsChild())
		}
	}

	_, err = Load("testdata/missing.yaml")
	suite.Error(err)
}

func (suite *SnapshotTestSuite) TestParseRejectsInvalidDocuments() {
	_, err := Parse([]byte("windows: [{handle: 1, class: A, colour: red}]"))
	suite.Regexp("invalid snapshot", err)

	_, err = Parse([]byte("windows: [{class: A}]"))
	suite.Regexp("handle", err)

	_, err = Parse([]byte("windows: [{handle: 1, class: A, tree: {role: WINDOW, state: [shiny]}}]"))
	suite.Regexp("unknown state shiny", err)

	_, err = Parse([]byte("windows: ["))
	suite.Error(err)
}

func (suite *SnapshotTestSuite) TestFindWindow() {
	s := suite.mustParse(`
windows:
  - {handle: 1, class: Notepad}
  - {handle: 2, class: Chrome_WidgetWin_1}
`)
	w, err := s.FindWindow("")
	suite.NoError(err)
	suite.Equal("Notepad", w.ClassName())

	w, err = s.FindWindow("chrome*")
	suite.NoError(err)
	suite.Equal(uintptr(2), w.Handle())

	w, err = s.FindWindow("0x1")
	suite.NoError(err)
	suite.Equal("Notepad", w.ClassName())

	_, err = s.FindWindow("3")
	suite.Regexp("no window with handle", err)
	_, err = s.FindWindow("Firefox")
	suite.Regexp("no window with class", err)
}

func (suite *SnapshotTestSuite) TestObjects() {
	s := suite.mustParse(`
windows:
  - handle: 1
    class: A
    tree:
      role: WINDOW
      children:
        - role: CLIENT
          children:
            - {role: PUSHBUTTON, name: OK, state: [focused], rect: {left: 1, top: 2, width: 3, height: 4}}
            - {role: heading, html: {id: title}}
            - {role: "0x2A"}
            - {role: LISTITEM, elem: 3}
            - {role: LISTITEM, repeat: 3}
            - {role: TEXT, fail: [child]}
`)
	w := s.Windows()[0]
	client, err := w.Object(acc.ObjectClient)
	suite.Require().NoError(err)
	count, err := client.ChildCount()
	suite.NoError(err)
	suite.Equal(8, count)

	button, err := client.Child(0)
	suite.Require().NoError(err)
	role, err := button.Role()
	suite.NoError(err)
	suite.Equal(acc.RolePushButton, role)
	name, _ := button.Property(acc.PropName)
	suite.Equal("OK", name)
	state, _ := button.State()
	suite.Equal(acc.StateFocused, state)
	rect, _ := button.Location()
	suite.Equal(acc.Rect{Left: 1, Top: 2, Width: 3, Height: 4}, rect)

	heading, _ := client.Child(1)
	r, roleName, err := acc.RoleOf(heading)
	suite.NoError(err)
	suite.Equal(acc.Role(0), r)
	suite.Equal("heading", roleName)
	id, ok := heading.(acc.HTMLAttributer).HTMLAttribute("id")
	suite.True(ok)
	suite.Equal("title", id)

	numbered, _ := client.Child(2)
	role, _ = numbered.Role()
	suite.Equal(acc.RoleText, role)

	elem, _ := client.Child(3)
	suite.Equal(3, elem.Elem())

	_, err = client.Child(7)
	suite.Error(err)
	_, err = client.Child(8)
	suite.Error(err)

	suite.Equal(int64(5), s.Refs())
	for _, o := range []acc.Object{client, button, heading, numbered, elem} {
		o.Release()
	}
	suite.Equal(int64(0), s.Refs())
	client.Release()
	suite.Equal(int64(1), s.Overreleased())
}

func (suite *SnapshotTestSuite) TestLazyObjects() {
	s := suite.mustParse(`
windows:
  - handle: 1
    class: Chrome_WidgetWin_1
    enableAfter: 2
    tree:
      role: WINDOW
      children:
        - role: CLIENT
          children:
            - role: DOCUMENT
              lazy: true
              children:
                - {role: LINK}
            - {role: DOCUMENT, pending: true}
`)
	w := s.Windows()[0]
	client, _ := w.Object(acc.ObjectClient)
	defer client.Release()
	count, _ := client.ChildCount()
	suite.Equal(1, count)
	doc, _ := client.Child(0)
	defer doc.Release()
	state, _ := doc.State()
	suite.True(state.Has(acc.StateBusy))
	count, _ = doc.ChildCount()
	suite.Equal(0, count)

	a2 := client.(acc.Accessible2Provider)
	suite.NoError(a2.QueryAccessible2())
	suite.False(w.Enabled())
	suite.NoError(a2.QueryAccessible2())
	suite.True(w.Enabled())
	suite.Equal(2, w.EnableRequests())

	state, _ = doc.State()
	suite.False(state.Has(acc.StateBusy))
	count, _ = doc.ChildCount()
	suite.Equal(1, count)
	count, _ = client.ChildCount()
	suite.Equal(2, count)
}

func (suite *SnapshotTestSuite) TestNavigate() {
	s := suite.mustParse(`
windows:
  - handle: 1
    class: MozillaWindowClass
    tree:
      role: WINDOW
      children:
        - role: CLIENT
          children:
            - role: GROUPING
              children:
                - {role: DOCUMENT, name: Page, navigate: true}
`)
	client, _ := s.Windows()[0].Object(acc.ObjectClient)
	doc, err := client.(acc.Navigator).Navigate(acc.NavigateDocument)
	if suite.NoError(err) {
		name, _ := doc.Property(acc.PropName)
		suite.Equal("Page", name)
	}
	_, err = client.(acc.Navigator).Navigate(1)
	suite.Error(err)
}

func (suite *SnapshotTestSuite) TestInjectAgent() {
	s := suite.mustParse(`
windows:
  - {handle: 1, class: Chrome_WidgetWin_1, agent: true}
  - {handle: 2, class: Chrome_WidgetWin_1}
`)
	called := 0
	agent, err := s.InjectAgent(s.Windows()[0], func(acc.Window) error {
		called++
		return nil
	})
	if suite.NoError(err) {
		suite.NoError(agent.EnableWebPage(s.Windows()[0]))
		suite.Equal(1, called)
		suite.Equal(1, agent.Calls())
	}

	_, err = s.InjectAgent(s.Windows()[1], nil)
	suite.Regexp("cannot inject", err)

	other := suite.mustParse("windows: [{handle: 1, class: A, agent: true}]")
	_, err = s.InjectAgent(other.Windows()[0], nil)
	suite.Regexp("not in this snapshot", err)
}

func (suite *SnapshotTestSuite) TestDestroy() {
	s := suite.mustParse("windows: [{handle: 1, class: A}]")
	w := s.Windows()[0]
	suite.True(w.IsAlive())
	w.Destroy()
	suite.False(w.IsAlive())
}

func TestSnapshot(t *testing.T) {
	suite.Run(t, new(SnapshotTestSuite))
}
