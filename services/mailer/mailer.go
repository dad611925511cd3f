package mailer

import (
	"context"
	"errors"
	"time"

	"randevuapi/model"
)

var ErrNoRecipient = errors.New("mailer: no recipient configured")

const (
	subjectPrefix = "Yeni Randevu/İletişim Talebi - "
	// maxSubjectName keeps the Subject header well under the 998 octet line
	// limit even when every rune needs encoding.
	maxSubjectName = 120
)

// Sender delivers a single message. There is no retry: one failed attempt
// is final.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Notifier turns submissions into notification emails for the configured
// recipient.
type Notifier struct {
	sender Sender
	cfg    model.EmailConfig
	now    func() time.Time
}

func NewNotifier(sender Sender, cfg model.EmailConfig) *Notifier {
	return &Notifier{sender: sender, cfg: cfg, now: time.Now}
}

func (n *Notifier) Notify(ctx context.Context, sub model.Submission) error {
	if n.cfg.Recipient == "" {
		return ErrNoRecipient
	}

	html, text, err := Render(sub, n.cfg.Title, n.cfg.Site, n.now())
	if err != nil {
		return err
	}

	return n.sender.Send(ctx, Message{
		FromName: n.cfg.FromName,
		From:     n.cfg.Username,
		To:       n.cfg.Recipient,
		ReplyTo:  sub.Email,
		Subject:  subjectPrefix + truncate(sub.FullName, maxSubjectName),
		HTML:     html,
		Text:     text,
	})
}

// truncate cuts s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
