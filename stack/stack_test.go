// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package stack_test

import (
	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/deque/stack"
)

type stackSuite struct {
	testing.IsolationSuite
}

var _ = gc.Suite(&stackSuite{})

func (s *stackSuite) TestNew(c *gc.C) {
	st := stack.New(1, 2, 3)
	c.Assert(st.Len(), gc.Equals, 3)
	c.Assert(st.IsEmpty(), jc.IsFalse)

	// The last item pushed is on top.
	top, ok := st.Peek()
	c.Assert(ok, jc.IsTrue)
	c.Assert(top, gc.Equals, 3)
	c.Assert(st.Values(), jc.DeepEquals, []int{3, 2, 1})
}

func (s *stackSuite) TestNewEmpty(c *gc.C) {
	st := stack.New[string]()
	c.Assert(st.Len(), gc.Equals, 0)
	c.Assert(st.IsEmpty(), jc.IsTrue)
}

func (s *stackSuite) TestNewWithCapacity(c *gc.C) {
	st, err := stack.NewWithCapacity(10, "a", "b")
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(st.Values(), jc.DeepEquals, []string{"b", "a"})
}

func (s *stackSuite) TestNewWithCapacityNegative(c *gc.C) {
	_, err := stack.NewWithCapacity[int](-1)
	c.Assert(err, jc.ErrorIs, errors.NotValid)
	c.Assert(err, gc.ErrorMatches, "capacity -1 not valid")
}

func (s *stackSuite) TestPushPop(c *gc.C) {
	st := stack.New[int]()
	st.Push(1)
	st.Push(2, 3)
	for _, want := range []int{3, 2, 1} {
		got, ok := st.Pop()
		c.Assert(ok, jc.IsTrue)
		c.Assert(got, gc.Equals, want)
	}
	_, ok := st.Pop()
	c.Assert(ok, jc.IsFalse)
}

func (s *stackSuite) TestPopEmpty(c *gc.C) {
	st := stack.New[int]()
	got, ok := st.Pop()
	c.Assert(ok, jc.IsFalse)
	c.Assert(got, gc.Equals, 0)
}

func (s *stackSuite) TestPeekDoesNotRemove(c *gc.C) {
	st := stack.New(1, 2)
	for i := 0; i < 3; i++ {
		top, ok := st.Peek()
		c.Assert(ok, jc.IsTrue)
		c.Assert(top, gc.Equals, 2)
	}
	c.Assert(st.Len(), gc.Equals, 2)
}

func (s *stackSuite) TestPeekEmpty(c *gc.C) {
	st := stack.New[int]()
	_, ok := st.Peek()
	c.Assert(ok, jc.IsFalse)
}

func (s *stackSuite) TestValuesIsACopy(c *gc.C) {
	st := stack.New(1, 2, 3)
	values := st.Values()
	values[0] = 99
	c.Assert(st.Values(), jc.DeepEquals, []int{3, 2, 1})
}

func (s *stackSuite) TestClear(c *gc.C) {
	st := stack.New(1, 2, 3)
	st.Clear()
	c.Assert(st.IsEmpty(), jc.IsTrue)
	_, ok := st.Pop()
	c.Assert(ok, jc.IsFalse)
}

func (s *stackSuite) TestClone(c *gc.C) {
	st := stack.New(1, 2, 3)
	clone := st.Clone()
	c.Assert(clone.Values(), jc.DeepEquals, []int{3, 2, 1})

	clone.Push(4)
	st.Pop()
	c.Assert(st.Values(), jc.DeepEquals, []int{2, 1})
	c.Assert(clone.Values(), jc.DeepEquals, []int{4, 3, 2, 1})
}

func (s *stackSuite) TestOrderAcrossGrowth(c *gc.C) {
	st := stack.New[int]()
	for i := 0; i < 100; i++ {
		st.Push(i)
	}
	for want := 99; want >= 0; want-- {
		got, ok := st.Pop()
		c.Assert(ok, jc.IsTrue)
		c.Assert(got, gc.Equals, want)
	}
	c.Assert(st.IsEmpty(), jc.IsTrue)
}
