package notifications

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"testplatform/api/internal/models"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

func sampleNotice() CompletionNotice {
	return CompletionNotice{
		CreatorEmail:    "creator@example.com",
		TestTitle:       "Know me",
		RespondentEmail: "friend@example.com",
		Response: models.TestResponse{
			ID:          "r1",
			TestID:      "ct1",
			TestType:    models.TestTypeCustom,
			Answers:     map[string]any{"q2": float64(7), "q1": "Blue", "q3": []any{"a", "b"}},
			CompletedAt: time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC),
		},
	}
}

func TestRender(t *testing.T) {
	msg, err := Render(sampleNotice())
	require.NoError(t, err)

	assert.Equal(t, "creator@example.com", msg.To)
	assert.Equal(t, "Новый ответ на ваш тест: Know me", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "Know me")
	assert.Contains(t, msg.HTMLBody, "friend@example.com")
	assert.Contains(t, msg.HTMLBody, "2025-05-06T07:08:09Z")
	assert.Contains(t, msg.HTMLBody, "q3: a, b")
	assert.Contains(t, msg.HTMLBody, "Создайте свой тест на нашей платформе!")

	// answers are listed in question id order
	assert.Less(t, strings.Index(msg.HTMLBody, "q1: Blue"), strings.Index(msg.HTMLBody, "q2: 7"))
}

func TestRenderEscapesUserInput(t *testing.T) {
	n := sampleNotice()
	n.TestTitle = `<script>alert("x")</script>`
	n.Response.Answers = map[string]any{"q1": "<b>bold</b>"}

	msg, err := Render(n)
	require.NoError(t, err)
	assert.NotContains(t, msg.HTMLBody, "<script>")
	assert.NotContains(t, msg.HTMLBody, "<b>bold</b>")
	assert.Contains(t, msg.HTMLBody, "&lt;b&gt;bold&lt;/b&gt;")
	// subject is a plain header, not HTML
	assert.Equal(t, `Новый ответ на ваш тест: <script>alert("x")</script>`, msg.Subject)
}

func TestSendGridSender(t *testing.T) {
	var sent *mail.SGMailV3
	s := &SendGridSender{
		from: mail.NewEmail("", "noreply@example.com"),
		send: func(m *mail.SGMailV3) (*rest.Response, error) {
			sent = m
			return &rest.Response{StatusCode: 202}, nil
		},
	}

	err := s.Send(context.Background(), Message{To: "creator@example.com", Subject: "S", HTMLBody: "<p>hi</p>"})
	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, "S", sent.Subject)
	assert.Equal(t, "noreply@example.com", sent.From.Address)
	require.Len(t, sent.Personalizations, 1)
	assert.Equal(t, "creator@example.com", sent.Personalizations[0].To[0].Address)
	require.NotEmpty(t, sent.Content)
	assert.Equal(t, "<p>hi</p>", sent.Content[len(sent.Content)-1].Value)
}

func TestSendGridSenderErrors(t *testing.T) {
	tests := []struct {
		name string
		resp *rest.Response
		err  error
	}{
		{name: "transport error", err: errors.New("dial tcp: timeout")},
		{name: "rejected", resp: &rest.Response{StatusCode: 401, Body: `{"errors":[]}`}},
		{name: "no response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &SendGridSender{
				from: mail.NewEmail("", "noreply@example.com"),
				send: func(*mail.SGMailV3) (*rest.Response, error) { return tt.resp, tt.err },
			}
			err := s.Send(context.Background(), Message{To: "a@b.com"})
			require.Error(t, err)

			var de *DeliveryError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, "sendgrid", de.Provider)
		})
	}
}

func TestNewSendGridSenderRequiresConfig(t *testing.T) {
	_, err := NewSendGridSender("", "noreply@example.com")
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = NewSendGridSender("key", "")
	assert.ErrorIs(t, err, ErrNotConfigured)

	s, err := NewSendGridSender("key", "noreply@example.com")
	require.NoError(t, err)
	assert.NotNil(t, s.send)
}

func TestSMTPSender(t *testing.T) {
	var sent []*gomail.Message
	s := &SMTPSender{
		from: "noreply@example.com",
		send: func(msgs ...*gomail.Message) error {
			sent = append(sent, msgs...)
			return nil
		},
	}

	require.NoError(t, s.Send(context.Background(), Message{To: "creator@example.com", Subject: "S", HTMLBody: "<p>hi</p>"}))
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"noreply@example.com"}, sent[0].GetHeader("From"))
	assert.Equal(t, []string{"creator@example.com"}, sent[0].GetHeader("To"))
	assert.Equal(t, []string{"S"}, sent[0].GetHeader("Subject"))
}

func TestSMTPSenderWrapsErrors(t *testing.T) {
	s := &SMTPSender{from: "x@example.com", send: func(...*gomail.Message) error { return errors.New("535 auth failed") }}

	err := s.Send(context.Background(), Message{To: "a@b.com"})
	var de *DeliveryError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "smtp", de.Provider)
	assert.Contains(t, err.Error(), "535 auth failed")
}

func TestNewSMTPSender(t *testing.T) {
	_, err := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: "587"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: "abc", User: "u@example.com", Pass: "p"})
	assert.Error(t, err)

	s, err := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: "465", User: "u@example.com", Pass: "p"})
	require.NoError(t, err)
	assert.Equal(t, "u@example.com", s.from)
}

func TestLogSender(t *testing.T) {
	assert.NoError(t, NewLogSender(zap.NewNop()).Send(context.Background(), Message{To: "a@b.com"}))
}

type recordingSender struct {
	mu   sync.Mutex
	msgs []Message
	err  error
}

func (r *recordingSender) Send(_ context.Context, msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
	return r.err
}

func TestDispatcherDelivers(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, zap.NewNop())

	d.Dispatch(sampleNotice())
	d.Dispatch(sampleNotice())
	d.Wait()

	require.Len(t, sender.msgs, 2)
	assert.Equal(t, "creator@example.com", sender.msgs[0].To)
}

func TestDispatcherSwallowsFailures(t *testing.T) {
	sender := &recordingSender{err: errors.New("provider down")}
	d := NewDispatcher(sender, zap.NewNop())

	d.Dispatch(sampleNotice())
	d.Wait()

	assert.Len(t, sender.msgs, 1)
}

type panickingSender struct{}

func (panickingSender) Send(context.Context, Message) error { panic("boom") }

func TestDispatcherRecoversFromPanics(t *testing.T) {
	d := NewDispatcher(panickingSender{}, zap.NewNop())
	d.Dispatch(sampleNotice())
	d.Wait()
}
