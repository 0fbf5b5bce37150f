package finder

import (
	"errors"
	"testing"

	"github.com/puppetlabs/accfind/acc"
	"github.com/puppetlabs/accfind/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadParent(t *testing.T) (*snapshot.Snapshot, acc.Object) {
	s, err := snapshot.Parse([]byte(`
windows:
  - handle: 1
    class: List
    tree:
      role: LIST
      children:
        - {role: LISTITEM, name: "1"}
        - {role: LISTITEM, name: "2"}
        - {role: LISTITEM, name: "3", fail: [child]}
        - {role: LISTITEM, name: "4"}
        - {role: LISTITEM, name: "5"}
`))
	require.NoError(t, err)
	parent, err := s.Windows()[0].Object(acc.ObjectWindow)
	require.NoError(t, err)
	return s, parent
}

func names(c *children) []string {
	var names []string
	for {
		child, ok := c.next()
		if !ok {
			return names
		}
		name, _ := child.Property(acc.PropName)
		names = append(names, name)
		child.Release()
	}
}

func TestChildren(t *testing.T) {
	s, parent := loadParent(t)
	defer parent.Release()

	assert.Equal(t, []string{"1", "2", "4", "5"}, names(newChildren(parent, 0, false, false, 10)))
	assert.Equal(t, []string{"5", "4", "2", "1"}, names(newChildren(parent, 0, false, true, 10)))
	assert.Equal(t, []string{"4", "5"}, names(newChildren(parent, 4, false, false, 10)))
	assert.Equal(t, []string{"2"}, names(newChildren(parent, 2, true, false, 10)))
	assert.Equal(t, []string{"4"}, names(newChildren(parent, 2, true, true, 10)))
	assert.Equal(t, int64(1), s.Refs())
}

func TestChildrenEmpty(t *testing.T) {
	_, parent := loadParent(t)
	defer parent.Release()

	c := newChildren(parent, 0, false, false, 4)
	assert.True(t, c.empty())
	assert.Empty(t, names(c))

	c = newChildren(parent, 0, false, true, 4)
	assert.True(t, c.empty())
	assert.Empty(t, names(c))

	c = newChildren(parent, 2, true, true, 4)
	assert.True(t, c.empty())
	assert.Empty(t, names(c))

	c = newChildren(parent, 6, false, false, 10)
	assert.True(t, c.empty())

	// A child that fails to load still counts
	c = newChildren(parent, 3, true, false, 10)
	assert.False(t, c.empty())
	assert.Empty(t, names(c))

	assert.False(t, newChildren(parent, 5, true, false, 5).empty())
}

type countFailsObject struct {
	acc.Object
	childCalls int
}

func (o *countFailsObject) ChildCount() (int, error) {
	return 0, errors.New("child count failed")
}

func (o *countFailsObject) Child(index int) (acc.Object, error) {
	o.childCalls++
	return nil, errors.New("unexpected")
}

func TestChildrenCountFails(t *testing.T) {
	for _, reverse := range []bool{false, true} {
		parent := &countFailsObject{}
		c := newChildren(parent, 0, false, reverse, 10)
		assert.True(t, c.empty())
		_, ok := c.next()
		assert.False(t, ok)
		assert.Equal(t, 0, parent.childCalls, "reverse=%v", reverse)
	}
}
