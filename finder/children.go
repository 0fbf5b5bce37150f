package finder

import (
	"github.com/puppetlabs/accfind/acc"
	log "github.com/sirupsen/logrus"
)

// children lazily yields the children of an object. Children are fetched only
// when consumed.
type children struct {
	parent  acc.Object
	count   int
	reverse bool
	// pos and last are 1-based positions in walk order.
	pos, last int
}

// newChildren returns the children of parent starting at the 1-based position
// start (0 means the first). If exact is set, it yields at most the child at
// start. If parent has more than max children, it yields nothing.
func newChildren(parent acc.Object, start int, exact bool, reverse bool, max int) *children {
	// pos > last until the count is known, so nothing is fetched on failure
	c := &children{parent: parent, reverse: reverse, pos: 1}
	count, err := parent.ChildCount()
	if err != nil {
		log.Debugf("Could not get child count: %v", err)
		return c
	}
	if count > max {
		log.Tracef("Not searching an object with %v children", count)
		return c
	}
	c.count = count
	c.last = count
	if start > 0 {
		c.pos = start
		if exact {
			c.last = start
		}
	}
	return c
}

// empty returns true if no children will be yielded. Children that fail to
// load still count.
func (c *children) empty() bool {
	return c.count == 0 || c.pos > c.last || c.pos > c.count
}

func (c *children) next() (acc.Object, bool) {
	for c.pos <= c.last && c.pos <= c.count {
		index := c.pos - 1
		if c.reverse {
			index = c.count - c.pos
		}
		c.pos++
		child, err := c.parent.Child(index)
		if err != nil {
			log.Debugf("Could not get child %v: %v", index, err)
			continue
		}
		if child == nil {
			continue
		}
		return child, true
	}
	return nil, false
}
