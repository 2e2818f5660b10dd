package pipeline

import (
	"strings"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	gc "gopkg.in/check.v1"

	"github.com/brandonshearin/graphqueryd/graph"
	"github.com/brandonshearin/graphqueryd/request"
	"github.com/brandonshearin/graphqueryd/request/mocks"
)

type ActiveObjectTestSuite struct{}

var _ = gc.Suite(new(ActiveObjectTestSuite))

func fourCycle(c *gc.C) *graph.Graph {
	g, err := graph.New(4)
	c.Assert(err, gc.IsNil)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		c.Assert(g.AddEdge(e[0], e[1], 1), gc.Equals, true)
	}
	return g
}

func (s *ActiveObjectTestSuite) TestProcessEnqueuesSendTask(c *gc.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()
	client := mocks.NewMockConnectionHandle(ctrl)

	sender := NewSenderActiveObject(zerolog.Nop())
	ao := NewAlgorithmActiveObject("EULER", sender.Mailbox(), zerolog.Nop())

	ao.process(&request.Request{Algorithm: "EULER", Graph: fourCycle(c), Client: client})

	task, ok := sender.Mailbox().Dequeue()
	c.Assert(ok, gc.Equals, true)
	c.Assert(strings.Contains(task.Text, "Euler circuit exists."), gc.Equals, true)
	c.Assert(task.Client, gc.Equals, client)
}

func (s *ActiveObjectTestSuite) TestProcessPrependsAdjacencyWhenRequested(c *gc.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()
	client := mocks.NewMockConnectionHandle(ctrl)

	sender := NewSenderActiveObject(zerolog.Nop())
	ao := NewAlgorithmActiveObject("EULER", sender.Mailbox(), zerolog.Nop())

	g := fourCycle(c)
	ao.process(&request.Request{Algorithm: "EULER", WantPrint: true, Graph: g, Client: client})

	task, ok := sender.Mailbox().Dequeue()
	c.Assert(ok, gc.Equals, true)
	c.Assert(strings.HasPrefix(task.Text, "Graph: V=4, E=4\nAdjacency matrix:\n"), gc.Equals, true)
}

// Testable Property 9: two requests enqueued into the same AO mailbox
// produce sender tasks in the same order.
func (s *ActiveObjectTestSuite) TestRunPreservesFIFOOrder(c *gc.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()
	clientA := mocks.NewMockConnectionHandle(ctrl)
	clientB := mocks.NewMockConnectionHandle(ctrl)

	sender := NewSenderActiveObject(zerolog.Nop())
	ao := NewAlgorithmActiveObject("MST", sender.Mailbox(), zerolog.Nop())
	go ao.Run()

	gA := fourCycle(c)
	gB := fourCycle(c)
	ao.Mailbox().Enqueue(&request.Request{Algorithm: "MST", Graph: gA, Client: clientA})
	ao.Mailbox().Enqueue(&request.Request{Algorithm: "MST", Graph: gB, Client: clientB})

	first, ok := sender.Mailbox().Dequeue()
	c.Assert(ok, gc.Equals, true)
	second, ok := sender.Mailbox().Dequeue()
	c.Assert(ok, gc.Equals, true)

	c.Assert(first.Client, gc.Equals, clientA)
	c.Assert(second.Client, gc.Equals, clientB)

	ao.Mailbox().Close()
	time.Sleep(time.Millisecond)
}
