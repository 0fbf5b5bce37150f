package finder

import (
	"github.com/golang-collections/collections/stack"
	"github.com/puppetlabs/accfind/acc"
)

type matchResult int

const (
	// matchContinue means the object didn't stop the search and its children
	// should be searched.
	matchContinue matchResult = iota
	// matchStop ends the search.
	matchStop
	// matchSkipChildren means the object's children must not be searched.
	matchSkipChildren
)

// Stats describes the work done by a search.
type Stats struct {
	// Visited is the number of objects evaluated.
	Visited int
	// MaxLevel is the deepest level evaluated.
	MaxLevel int
}

func (s *Stats) visit(level int) {
	s.Visited++
	if level > s.MaxLevel {
		s.MaxLevel = level
	}
}

// walker walks a tree depth-first, in pre-order, with an explicit stack of
// frames. The stack never grows deeper than the levels the evaluator allows.
type walker struct {
	path        []PathPart
	reverse     bool
	maxChildren int
	evaluate    func(o acc.Object, level int) matchResult
	// noChildren is called when an object has no children to search. It can
	// return another object to search at the same level instead, which the
	// walker then owns.
	noChildren func(parent acc.Object, level int) (acc.Object, bool)
	stats      *Stats
}

type frame struct {
	parent   acc.Object
	owned    bool
	children *children
	level    int
}

func (w *walker) newFrame(parent acc.Object, owned bool, level int) *frame {
	var start int
	var exact bool
	if w.path != nil && level < len(w.path) {
		start, exact = w.path[level].Index, w.path[level].Exact
	}
	f := &frame{
		parent:   parent,
		owned:    owned,
		children: newChildren(parent, start, exact, w.reverse, w.maxChildren),
		level:    level,
	}
	if f.children.empty() && w.noChildren != nil {
		if other, ok := w.noChildren(parent, level); ok {
			if owned {
				parent.Release()
			}
			return w.newFrame(other, true, level)
		}
	}
	return f
}

// walk searches the descendants of root. root's children are at level. root
// is owned by the caller. walk returns true if the evaluator stopped the search.
// The object that stopped it is not released.
func (w *walker) walk(root acc.Object, level int) bool {
	frames := stack.New()
	frames.Push(w.newFrame(root, false, level))
	for frames.Len() > 0 {
		f := frames.Peek().(*frame)
		child, ok := f.children.next()
		if !ok {
			frames.Pop()
			if f.owned {
				f.parent.Release()
			}
			continue
		}

		if w.stats != nil {
			w.stats.visit(f.level)
		}
		switch w.evaluate(child, f.level) {
		case matchStop:
			for frames.Len() > 0 {
				if f := frames.Pop().(*frame); f.owned {
					f.parent.Release()
				}
			}
			return true
		case matchSkipChildren:
			child.Release()
			continue
		}
		frames.Push(w.newFrame(child, true, f.level+1))
	}
	return false
}
