package finder

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/puppetlabs/accfind/acc"
	"github.com/stretchr/testify/suite"
)

type ParseTestSuite struct {
	suite.Suite
}

type parseTestCase struct {
	role     *string
	prop     *string
	expected Params
	errRegex *regexp.Regexp
}

// nRTC => newRoleTestCase. Saves some typing
func nRTC(role string, expectedRole string) parseTestCase {
	return parseTestCase{
		role:     Str(role),
		expected: Params{Role: Str(expectedRole)},
	}
}

// nPTC => newPropTestCase. The prop chunks are separated by '|' to keep the
// cases readable.
func nPTC(prop string, expectedProp string) parseTestCase {
	c := parseTestCase{prop: Str(strings.Replace(prop, "|", "\x00", -1))}
	if expectedProp != "" {
		c.expected.Prop = JoinProps(strings.Split(expectedProp, "|")...)
	}
	return c
}

// nRETC => newRoleErrorTestCase. Saves some typing
func nRETC(role string, errRegex string) parseTestCase {
	return parseTestCase{
		role:     Str(role),
		errRegex: regexp.MustCompile(errRegex),
	}
}

// nPETC => newPropErrorTestCase. Saves some typing
func nPETC(prop string, errRegex string) parseTestCase {
	return parseTestCase{
		prop:     Str(strings.Replace(prop, "|", "\x00", -1)),
		errRegex: regexp.MustCompile(errRegex),
	}
}

func str(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%q", *p)
}

func (suite *ParseTestSuite) runTestCases(testCases ...parseTestCase) {
	for _, c := range testCases {
		input := fmt.Sprintf("role %v, prop %v", str(c.role), str(c.prop))
		q, err := Parse(Params{Role: c.role, Prop: c.prop})
		if c.errRegex != nil {
			if suite.Error(err, "Input was %v", input) {
				suite.Regexp(c.errRegex, err.Error(), "Input was %v", input)
				suite.Equal(InvalidParameter, CodeOf(err))
			}
			continue
		}
		if suite.NoError(err, "Input was %v", input) {
			p := q.Params()
			suite.Equal(str(c.expected.Role), str(p.Role), "Input was %v", input)
			suite.Equal(str(c.expected.Prop), str(p.Prop), "Input was %v", input)
		}
	}
}

func (suite *ParseTestSuite) TestParseRole() {
	suite.runTestCases(
		nRTC("PUSHBUTTON", "PUSHBUTTON"),
		nRTC("heading", "heading"),
		nRTC("a:b", "a:b"),
		nRTC("web=x:LINK", "web=x:LINK"),
	)
	q, err := Parse(Params{Role: Str("PUSHBUTTON")})
	if suite.NoError(err) {
		suite.Equal("PUSHBUTTON", q.Role())
		suite.Nil(q.Path())
		suite.Equal(ScopeWindow, q.Scope())
	}
}

func (suite *ParseTestSuite) TestParseRolePrefix() {
	suite.runTestCases(
		nRTC("class=Edit:TEXT", "class=Edit:TEXT"),
		nRTC("class=Internet*:", "class=Internet*:"),
		nRTC("id=15:TEXT", "id=15:TEXT"),
		nRTC("id=0x10:", "id=16:"),
		nRTC("web:LINK", "web:LINK"),
		nRTC("firefox:DOCUMENT", "firefox:DOCUMENT"),
		nRTC("chrome:", "chrome:"),
		nRTC("web:A/B", "web:A/B"),
	)

	q, err := Parse(Params{Role: Str("id=15:TEXT")})
	if suite.NoError(err) {
		suite.Equal(ScopeControlID, q.Scope())
		suite.True(q.Scope().InControls())
		suite.Equal("TEXT", q.Role())
	}
	q, err = Parse(Params{Role: Str("web:")})
	if suite.NoError(err) {
		suite.True(q.Scope().InWebPage())
		suite.Equal(MenuToo, q.Flags()&MenuToo)
	}
}

func (suite *ParseTestSuite) TestParsePath() {
	suite.runTestCases(
		nRTC("A/B/C", "A/B/C"),
		nRTC("A/B[2]/C", "A/B[2]/C"),
		nRTC("A/B[0x2!]/C", "A/B[2!]/C"),
		nRTC("/B", "/B"),
		nRTC("A//C[3]", "A//C[3]"),
		nRTC("A/", "A/"),
		nRTC("[4]/B", "[4]/B"),
	)
	q, err := Parse(Params{Role: Str("A/B[2!]/")})
	if suite.NoError(err) {
		suite.Equal([]PathPart{
			{Role: "A"},
			{Role: "B", Index: 2, Exact: true},
			{},
		}, q.Path())
		suite.Equal("", q.Role())
	}
}

func (suite *ParseTestSuite) TestParseRoleErrors() {
	suite.runTestCases(
		nRETC("", "^role cannot be empty"),
		nRETC("class=:TEXT", "^Invalid role"),
		nRETC("id=:TEXT", "^Invalid role"),
		nRETC("id=x:TEXT", "^Invalid role"),
		nRETC("A/B[/C", "^Invalid role"),
		nRETC("A/B[]/C", "^Invalid role"),
		nRETC("A/B[x]/C", "^Invalid role"),
		nRETC("A/B[0]/C", "^Invalid role"),
		nRETC("A/B[-1]/C", "^Invalid role"),
		nRETC("A/B[2]C", "^Invalid role"),
		nRETC("A/B[2!!]", "^Invalid role"),
		nRETC("class=**q x:TEXT", "options"),
	)
}

func (suite *ParseTestSuite) TestParseStringProps() {
	suite.runTestCases(
		nPTC("value=5", "value=5"),
		nPTC("value=a|description=b|help=c|action=d|key=e|uiaAutomationId=f", "value=a|description=b|help=c|action=d|key=e|uiaAutomationId=f"),
		nPTC("value=a| help=b|  key=c", "value=a|help=b|key=c"),
		nPTC("value=a||", "value=a"),
		nPTC("value=a=b", "value=a=b"),
		nPTC("value=", "value="),
		nPTC("@id=main|@class=big*", "@id=main|@class=big*"),
		nPTC("value=1|value=2", "value=2"),
	)
	q, err := Parse(Params{Prop: JoinProps("@id=main", "@href=*.html")})
	if suite.NoError(err) {
		attrs := q.HTMLAttrs()
		if suite.Len(attrs, 2) {
			suite.Equal("id", attrs[0].Name)
			suite.Equal("href", attrs[1].Name)
			suite.True(attrs[1].Value.Match("INDEX.HTML"))
		}
	}
}

func (suite *ParseTestSuite) TestParseState() {
	suite.runTestCases(
		nPTC("state=focused", "state=FOCUSED"),
		nPTC("state=focused,!invisible", "state=FOCUSED, !INVISIBLE"),
		nPTC("state=CHECKED, FOCUSABLE", "state=CHECKED, FOCUSABLE"),
		nPTC("state=0x10, !4", "state=CHECKED, !FOCUSED"),
		nPTC("state=unavailable", "state=DISABLED"),
		nPTC("state=0x80000000", "state=0x80000000"),
	)
	q, err := Parse(Params{Prop: Str("state=focused,!invisible")})
	if suite.NoError(err) {
		suite.Equal(acc.StateFocused, q.stateYes)
		suite.Equal(acc.StateInvisible, q.stateNo)
	}
}

func (suite *ParseTestSuite) TestParseLevel() {
	suite.runTestCases(
		nPTC("level=2", "level=2 2"),
		nPTC("level=0 5", "level=0 5"),
		nPTC("level=1 1", "level=1 1"),
		nPTC("level=1  3", "level=1 3"),
	)
	q, err := Parse(Params{})
	if suite.NoError(err) {
		min, max := q.LevelRange()
		suite.Equal(0, min)
		suite.Equal(DefaultMaxLevel, max)
		suite.Equal(DefaultMaxChildren, q.MaxChildren())
	}
}

func (suite *ParseTestSuite) TestParseOtherDirectives() {
	suite.runTestCases(
		nPTC("maxChildren=5", "maxChildren=5"),
		nPTC("maxChildren=10000", ""),
		nPTC("skipRoles=MENUITEM", "skipRoles=MENUITEM"),
		nPTC("skipRoles=LIST, OUTLINE,TABLE", "skipRoles=LIST,OUTLINE,TABLE"),
		nPTC("rect={W=100}", "rect={W=100}"),
		nPTC("rect={H=4 L=1 T=2 W=3}", "rect={L=1 T=2 W=3 H=4}"),
		nPTC("rect={L=-5}", "rect={L=-5}"),
		nPTC("rect={}", ""),
		nPTC("elem=3", "elem=3"),
		nPTC("elem=0", "elem=0"),
	)
}

func (suite *ParseTestSuite) TestParsePropErrors() {
	suite.runTestCases(
		nPETC("value", "^Missing = in prop string"),
		nPETC("value=a| help", "^Missing ="),
		nPETC("name=OK", "^Unknown property. For HTML attributes use prefix @"),
		nPETC("Value=OK", "^Unknown property"),
		nPETC("state=shiny", "^Unknown state name"),
		nPETC("state=focused,", "^Unknown state name"),
		nPETC("level=x", "^Invalid prop string"),
		nPETC("level=-1", "^Invalid prop string"),
		nPETC("level=3 2", "^Invalid prop string"),
		nPETC("level=1 2 3", "^Invalid prop string"),
		nPETC("level=", "^Invalid prop string"),
		nPETC("maxChildren=0", "^Invalid prop string"),
		nPETC("maxChildren=x", "^Invalid prop string"),
		nPETC("elem=x", "^Invalid prop string"),
		nPETC("rect=W=100", "^Invalid rect format"),
		nPETC("rect={W=}", "^Invalid rect format"),
		nPETC("rect={X=1}", "^Invalid rect format"),
		nPETC("rect={W100}", "^Invalid rect format"),
		nPETC("value=**r (", "regular expression"),
	)
	_, err := Parse(Params{Role: Str("A/B"), Prop: Str("level=1")})
	suite.Regexp("^Path and level", err)
	_, err = Parse(Params{Name: Str("**x OK")})
	suite.Regexp("options", err)
}

func (suite *ParseTestSuite) TestParseName() {
	q, err := Parse(Params{Name: Str("")})
	if suite.NoError(err) {
		suite.Nil(q.name)
		suite.Nil(q.Params().Name)
	}
	q, err = Parse(Params{Name: Str("O?")})
	if suite.NoError(err) {
		suite.Equal("O?", *q.Params().Name)
	}
}

func (suite *ParseTestSuite) TestRoundTrip() {
	inputs := []Params{
		{Role: Str("PUSHBUTTON"), Name: Str("OK")},
		{Role: Str("class=Edit:A/B[2]/C[3!]"), Flags: HiddenToo | Reverse},
		{Role: Str("chrome:LINK"), Name: Str("**r ^Sign (in|up)$"), Prop: JoinProps("@href=*login*", "state=!INVISIBLE, focusable")},
		{Prop: JoinProps("value=x", "level=1 3", "maxChildren=50", "skipRoles=LIST, MENUITEM", "rect={T=5 W=100}", "elem=2", "state=0x40000001")},
		{Flags: SkipLists | SkipWeb | UIA},
	}
	for _, p := range inputs {
		q1, err := Parse(p)
		if !suite.NoError(err) {
			continue
		}
		canonical := q1.Params()
		q2, err := Parse(canonical)
		if suite.NoError(err) {
			suite.Equal(canonical, q2.Params())
			suite.Equal(q1.flags, q2.flags)
			suite.Equal(q1.stateYes, q2.stateYes)
			suite.Equal(q1.stateNo, q2.stateNo)
			suite.Equal(q1.path, q2.path)
			suite.Equal(q1.rect, q2.rect)
		}
	}
}

func (suite *ParseTestSuite) TestParseFlags() {
	flags, err := ParseFlags("hiddenToo, REVERSE,uia")
	suite.NoError(err)
	suite.Equal(HiddenToo|Reverse|UIA, flags)
	suite.Equal("hiddenToo,reverse,uia", flags.String())

	flags, err = ParseFlags("")
	suite.NoError(err)
	suite.Equal(Flags(0), flags)

	_, err = ParseFlags("hidden")
	suite.Regexp("unknown flag hidden", err)
}

func TestParse(t *testing.T) {
	suite.Run(t, new(ParseTestSuite))
}
