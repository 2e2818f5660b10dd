package pipeline

import (
	"github.com/rs/zerolog"

	"github.com/brandonshearin/graphqueryd/request"
)

// SenderActiveObject is SENDER_AO (§4.10): the only stage that writes to
// or closes a client connection. Concentrating all socket writes here
// keeps I/O ordering and failure handling in one place and keeps the
// CPU-bound algorithm stages from blocking on slow clients.
type SenderActiveObject struct {
	mailbox *Mailbox[*request.SendTask]
	log     zerolog.Logger
}

// NewSenderActiveObject returns an unstarted sender stage.
func NewSenderActiveObject(log zerolog.Logger) *SenderActiveObject {
	return &SenderActiveObject{
		mailbox: NewMailbox[*request.SendTask](),
		log:     log.With().Str("stage", "SENDER_AO").Logger(),
	}
}

// Mailbox returns the stage's inbox.
func (s *SenderActiveObject) Mailbox() *Mailbox[*request.SendTask] { return s.mailbox }

// Run blocks dequeueing SendTasks until the mailbox closes.
func (s *SenderActiveObject) Run() {
	for {
		task, ok := s.mailbox.Dequeue()
		if !ok {
			return
		}
		s.deliver(task)
	}
}

// deliver writes the full response and closes the connection exactly
// once, regardless of outcome. Writes are best-effort: a short write
// loops until complete or an unrecoverable error occurs (§4.11); write
// errors are never retried and never surfaced to the client. Go's
// runtime already retries EINTR beneath Write, so TransientIO never
// reaches this code.
func (s *SenderActiveObject) deliver(task *request.SendTask) {
	defer func() {
		if err := task.Client.Close(); err != nil {
			s.log.Debug().Str("id", task.ID.String()).Err(err).Msg("close after send")
		}
	}()

	remaining := []byte(task.Text)
	for len(remaining) > 0 {
		n, err := task.Client.Write(remaining)
		if err != nil {
			s.log.Warn().Str("id", task.ID.String()).Err(err).Msg("write failed mid-response")
			return
		}
		if n == 0 {
			s.log.Warn().Str("id", task.ID.String()).Msg("write made no progress")
			return
		}
		remaining = remaining[n:]
	}
	s.log.Info().Str("id", task.ID.String()).Msg("response sent")
}
