package pq_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/thalweg/pq"
)

// QueueSuite exercises PriorityQueue semantics.
type QueueSuite struct {
	suite.Suite
	q *pq.PriorityQueue[string]
}

func (s *QueueSuite) SetupTest() {
	s.q = pq.New[string](4)
}

func (s *QueueSuite) popAll() []string {
	var out []string
	for !s.q.Empty() {
		v, ok := s.q.Pop()
		s.Require().True(ok)
		out = append(out, v)
	}

	return out
}

// TestAscendingOrder checks that Pop yields ascending priorities.
func (s *QueueSuite) TestAscendingOrder() {
	s.q.Push("c", 30)
	s.q.Push("a", 10)
	s.q.Push("b", 20)
	s.Require().Equal([]string{"a", "b", "c"}, s.popAll())
}

// TestDuplicatePushIsIgnored checks that a second Push keeps the original priority.
func (s *QueueSuite) TestDuplicatePushIsIgnored() {
	s.q.Push("x", 50)
	s.q.Push("y", 40)
	s.q.Push("x", 1)

	s.Require().Equal(2, s.q.Len())
	p, ok := s.q.Priority("x")
	s.Require().True(ok)
	s.Require().Equal(int64(50), p)
	s.Require().Equal([]string{"y", "x"}, s.popAll())
}

// TestDecreasePriorityReorders checks that decrease-key changes pop order.
func (s *QueueSuite) TestDecreasePriorityReorders() {
	s.q.Push("a", 10)
	s.q.Push("b", 20)
	s.q.Push("c", 30)
	s.q.Push("d", 40)

	s.q.DecreasePriority("d", 5)
	s.q.DecreasePriority("c", 15)

	s.Require().Equal([]string{"d", "a", "c", "b"}, s.popAll())
}

// TestDecreasePriorityIgnoresIncrease keeps the lower recorded priority.
func (s *QueueSuite) TestDecreasePriorityIgnoresIncrease() {
	s.q.Push("a", 10)
	s.q.Push("b", 20)
	s.q.DecreasePriority("a", 25)

	p, _ := s.q.Priority("a")
	s.Require().Equal(int64(10), p)
	s.Require().Equal([]string{"a", "b"}, s.popAll())
}

// TestDecreasePriorityAbsentIsNoop checks that unknown values are ignored.
func (s *QueueSuite) TestDecreasePriorityAbsentIsNoop() {
	s.q.Push("a", 10)
	s.q.DecreasePriority("zzz", 1)
	s.Require().Equal(1, s.q.Len())
	s.Require().False(s.q.Contains("zzz"))
}

// TestPopEmpty checks the empty signal.
func (s *QueueSuite) TestPopEmpty() {
	_, ok := s.q.Pop()
	s.Require().False(ok)
	_, ok = s.q.PopEntry()
	s.Require().False(ok)
}

// TestPopEntryReportsPriority checks that the queued priority is returned.
func (s *QueueSuite) TestPopEntryReportsPriority() {
	s.q.Push("a", 7)
	e, ok := s.q.PopEntry()
	s.Require().True(ok)
	s.Require().Equal(pq.Entry[string]{Value: "a", Priority: 7}, e)
}

// TestValueReusableAfterPop checks that a popped value may be queued again.
func (s *QueueSuite) TestValueReusableAfterPop() {
	s.q.Push("a", 7)
	_, _ = s.q.Pop()
	s.q.Push("a", 3)
	p, ok := s.q.Priority("a")
	s.Require().True(ok)
	s.Require().Equal(int64(3), p)
}

func TestQueueSuite(t *testing.T) {
	suite.Run(t, new(QueueSuite))
}

// TestQueue_StructValues checks equality-based lookup for composite values.
func TestQueue_StructValues(t *testing.T) {
	type point struct{ x, y float64 }
	q := pq.New[point](0)
	q.Push(point{1, 1}, 100)
	q.Push(point{2, 2}, 50)
	q.DecreasePriority(point{1, 1}, 10)

	v, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, point{1, 1}, v)
}
