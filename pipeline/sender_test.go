package pipeline

import (
	"errors"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	gc "gopkg.in/check.v1"

	"github.com/brandonshearin/graphqueryd/request"
	"github.com/brandonshearin/graphqueryd/request/mocks"
)

type SenderTestSuite struct{}

var _ = gc.Suite(new(SenderTestSuite))

func (s *SenderTestSuite) TestDeliverWritesFullTextThenCloses(c *gc.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	client := mocks.NewMockConnectionHandle(ctrl)
	gomock.InOrder(
		client.EXPECT().Write([]byte("hello")).Return(5, nil),
		client.EXPECT().Close().Return(nil),
	)

	sender := NewSenderActiveObject(zerolog.Nop())
	sender.deliver(&request.SendTask{Client: client, Text: "hello"})
}

func (s *SenderTestSuite) TestDeliverLoopsOnShortWrite(c *gc.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	client := mocks.NewMockConnectionHandle(ctrl)
	gomock.InOrder(
		client.EXPECT().Write([]byte("hello")).Return(2, nil),
		client.EXPECT().Write([]byte("llo")).Return(3, nil),
		client.EXPECT().Close().Return(nil),
	)

	sender := NewSenderActiveObject(zerolog.Nop())
	sender.deliver(&request.SendTask{Client: client, Text: "hello"})
}

func (s *SenderTestSuite) TestDeliverClosesEvenOnWriteError(c *gc.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	client := mocks.NewMockConnectionHandle(ctrl)
	gomock.InOrder(
		client.EXPECT().Write([]byte("hello")).Return(0, errors.New("broken pipe")),
		client.EXPECT().Close().Return(nil),
	)

	sender := NewSenderActiveObject(zerolog.Nop())
	sender.deliver(&request.SendTask{Client: client, Text: "hello"})
}

// Testable Property 9 at the stage level: tasks enqueued in order are
// delivered in order.
func (s *SenderTestSuite) TestRunDeliversInFIFOOrder(c *gc.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	var order []string
	clientA := mocks.NewMockConnectionHandle(ctrl)
	clientA.EXPECT().Write(gomock.Any()).Do(func([]byte) { order = append(order, "a") }).Return(1, nil)
	clientA.EXPECT().Close().Return(nil)

	clientB := mocks.NewMockConnectionHandle(ctrl)
	clientB.EXPECT().Write(gomock.Any()).Do(func([]byte) { order = append(order, "b") }).Return(1, nil)
	clientB.EXPECT().Close().Return(nil)

	sender := NewSenderActiveObject(zerolog.Nop())
	go sender.Run()

	sender.Mailbox().Enqueue(&request.SendTask{Client: clientA, Text: "a"})
	sender.Mailbox().Enqueue(&request.SendTask{Client: clientB, Text: "b"})

	deadline := time.After(time.Second)
	for len(order) < 2 {
		select {
		case <-deadline:
			c.Fatal("sender did not deliver both tasks in time")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	sender.Mailbox().Close()

	c.Assert(order, gc.DeepEquals, []string{"a", "b"})
}
