package finder

const browsers = `
windows:
  - handle: 0x200
    class: Chrome_WidgetWin_1
    agent: true
    tree:
      role: WINDOW
      children:
        - role: TITLEBAR
        - role: CLIENT
          children:
            - role: PANE
              children:
                - role: TOOLBAR
                  children: [{role: DOCUMENT, name: toolbar doc}]
                - {role: DOCUMENT, name: devtools, value: "chrome-devtools://devtools/inspector.html"}
                - role: DOCUMENT
                  name: page
                  value: https://example.com
                  lazy: true
                  children:
                    - {role: LINK, name: Home}
                    - {role: PUSHBUTTON, name: Submit}
  - handle: 0x300
    class: MozillaWindowClass
    tree:
      role: WINDOW
      children:
        - role: CLIENT
          children:
            - role: GROUPING
              children:
                - role: DOCUMENT
                  name: hidden tab
                  state: [invisible]
                  children: [{role: LINK, name: Hidden}]
                - role: DOCUMENT
                  name: one
                  children: [{role: LINK, name: One}]
                - role: DOCUMENT
                  name: two
                  navigate: true
                  children: [{role: LINK, name: Two}]
  - handle: 0x301
    class: MozillaWindowClass
    tree:
      role: WINDOW
      children:
        - role: CLIENT
          children:
            - role: GROUPING
              children:
                - role: DOCUMENT
                  name: one
                  children: [{role: LINK, name: One}]
                - role: DOCUMENT
                  name: two
                  children: [{role: LINK, name: Two}]
  - handle: 0x400
    class: Chrome_WidgetWin_1
    tree:
      role: WINDOW
      children:
        - role: CLIENT
          children:
            - {role: DOCUMENT, name: page, pending: true, children: [{role: LINK, name: Home}]}
  - handle: 0x500
    class: IEFrame
    tree: {role: WINDOW, children: [{role: CLIENT}]}
    children:
      - handle: 0x501
        class: Internet Explorer_Server
        tree:
          role: WINDOW
          children:
            - role: CLIENT
              children:
                - role: PANE
                  children: [{role: LINK, name: IE link}]
`

func (suite *FindTestSuite) TestChromeLazyDocument() {
	s, _ := suite.load(browsers)
	w := s.Windows()[0]

	r := suite.search(s, w, Params{Role: Str("chrome:LINK")}, "Home")
	suite.Equal(ErrWaitRetry, r.err)
	suite.Equal(WaitRetry, CodeOf(r.err))
	suite.Equal(EnableStarted, suite.status.Get(w))
	suite.Equal(1, w.EnableRequests())

	r = suite.search(s, w, Params{Role: Str("chrome:LINK")}, "Home")
	suite.NoError(r.err)
	suite.Equal([]string{"Home@1"}, r.hits)
	suite.Equal(EnableYes, suite.status.Get(w))

	r = suite.search(s, w, Params{Role: Str("web:DOCUMENT")}, "page")
	suite.NoError(r.err)
	suite.Equal([]string{"page@0"}, r.hits)
	suite.Equal(1, w.EnableRequests())
}

func (suite *FindTestSuite) TestChromeDocumentNotFoundYet() {
	s, _ := suite.load(browsers)
	w := s.Windows()[3]

	r := suite.search(s, w, Params{Role: Str("web:LINK")}, "")
	suite.Equal(ErrWaitRetry, r.err)
	suite.Equal(EnableStarted, suite.status.Get(w))

	r = suite.search(s, w, Params{Role: Str("web:LINK")}, "Home")
	suite.NoError(r.err)
	suite.Equal(EnableYes, suite.status.Get(w))
}

func (suite *FindTestSuite) TestFirefoxDocument() {
	s, _ := suite.load(browsers)
	navigable, other := s.Windows()[1], s.Windows()[2]

	r := suite.search(s, navigable, Params{Role: Str("web:LINK")}, "")
	suite.Equal([]string{"Two@1"}, r.hits)

	// Without navigation the first visible DOCUMENT is the page
	r = suite.search(s, other, Params{Role: Str("firefox:LINK")}, "")
	suite.Equal([]string{"One@1"}, r.hits)

	r = suite.search(s, navigable, Params{Role: Str("web:DOCUMENT")}, "two")
	suite.NoError(r.err)
	suite.Equal([]string{"two@0"}, r.hits)

	r = suite.search(s, navigable, Params{Role: Str("web:DOCUMENT/LINK")}, "")
	suite.Equal([]string{"Two@1"}, r.hits)

	r = suite.search(s, navigable, Params{Role: Str("web:LINK/X")}, "")
	suite.Equal(ErrNotFound, r.err)
	suite.Empty(r.hits)
}

func (suite *FindTestSuite) TestWebPageErrors() {
	s, _ := suite.load(browsers)
	r := suite.search(s, s.Windows()[1], Params{Role: Str("web:LINK"), Flags: UIA}, "")
	suite.Regexp("Cannot use flag UIA when searching in web page", r.err)
	suite.Equal(InvalidParameter, CodeOf(r.err))

	// No document to navigate to or find
	r = suite.search(s, s.Windows()[4], Params{Role: Str("firefox:LINK")}, "")
	suite.Equal(ErrNotFound, r.err)
}

func (suite *FindTestSuite) TestSkipWeb() {
	s, _ := suite.load(browsers)
	firefox := s.Windows()[1]
	r := suite.search(s, firefox, Params{Role: Str("LINK")}, "")
	suite.Equal([]string{"One@3", "Two@3"}, r.hits)
	r = suite.search(s, firefox, Params{Role: Str("LINK"), Flags: SkipWeb}, "")
	suite.Empty(r.hits)

	ies := s.Windows()[4].ChildWindows()[0]
	r = suite.search(s, ies, Params{Role: Str("LINK")}, "")
	suite.Equal([]string{"IE link@2"}, r.hits)
	r = suite.search(s, ies, Params{Role: Str("LINK"), Flags: SkipWeb}, "")
	suite.Empty(r.hits)
}

func (suite *FindTestSuite) TestInternetExplorer() {
	s, _ := suite.load(browsers)
	r := suite.search(s, s.Windows()[4], Params{Role: Str("web:LINK")}, "IE link")
	suite.NoError(r.err)
	suite.Equal([]string{"IE link@2"}, r.hits)
}

func (suite *FindTestSuite) TestStatusIsForgottenWhenWindowIsDestroyed() {
	s, _ := suite.load(browsers)
	w := s.Windows()[0]
	suite.status.Set(w, EnableYes)
	suite.Equal(EnableYes, suite.status.Get(w))
	w.Destroy()
	suite.Equal(EnableNotStarted, suite.status.Get(w))
}

func (suite *FindTestSuite) TestForgetRemovesOnlyThatWindow() {
	s, _ := suite.load(browsers)
	first, second := s.Windows()[0], s.Windows()[1]
	suite.status.Set(first, EnableYes)
	suite.status.Set(second, EnableNo)

	suite.status.Forget(first)
	suite.Equal(EnableNotStarted, suite.status.Get(first))
	suite.Equal(EnableNo, suite.status.Get(second))
}

func (suite *FindTestSuite) TestInternetExplorerClassIgnoresCase() {
	s, w := suite.load(`
windows:
  - handle: 0x600
    class: IEFrame
    tree: {role: WINDOW, children: [{role: CLIENT}]}
    children:
      - handle: 0x601
        class: internet explorer_server
        tree:
          role: WINDOW
          children:
            - role: CLIENT
              children:
                - role: PANE
                  children: [{role: LINK, name: IE link}]
`)
	r := suite.search(s, w, Params{Role: Str("web:LINK")}, "IE link")
	suite.NoError(r.err)
	suite.Equal([]string{"IE link@2"}, r.hits)
}
