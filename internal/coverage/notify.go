// internal/coverage/notify.go
package coverage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/smtp"
	"strconv"
	"strings"
)

// Alert is raised when a sample has autosomes without variant calls.
type Alert struct {
	Sample  string
	Missing []int
}

func (a Alert) Subject() string {
	return "Missing Variant Calls Alert - Sample " + a.Sample
}

func (a Alert) Body() string {
	ms := make([]string, len(a.Missing))
	for i, n := range a.Missing {
		ms[i] = strconv.Itoa(n)
	}
	return fmt.Sprintf(`WARNING: Sample %s is missing variant calls on the following chromosomes: %s
This may indicate an issue with:
- Sequencing coverage
- Variant calling
- Sample quality
- Pipeline processing
Please review the sample and check %s.chromosome_distribution.txt for detailed variant distribution.`,
		a.Sample, strings.Join(ms, ","), a.Sample)
}

// Notifier delivers an Alert. Delivery is best effort; callers log failures.
type Notifier interface {
	Notify(ctx context.Context, a Alert) error
}

// ErrNoRecipients is returned by SMTPNotifier when To is empty.
var ErrNoRecipients = errors.New("no alert recipients configured")

// SMTPNotifier sends plain-text mail through an unauthenticated relay.
type SMTPNotifier struct {
	Addr string
	From string
	To   []string

	// send is smtp.SendMail; swapped in tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPNotifier(cfg MailConfig) *SMTPNotifier {
	return &SMTPNotifier{Addr: cfg.Addr, From: cfg.From, To: cfg.To, send: smtp.SendMail}
}

func (n *SMTPNotifier) Notify(ctx context.Context, a Alert) error {
	if len(n.To) == 0 {
		return ErrNoRecipients
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := "From: " + n.From + "\r\n" +
		"To: " + strings.Join(n.To, ", ") + "\r\n" +
		"Subject: " + a.Subject() + "\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" +
		strings.ReplaceAll(a.Body(), "\n", "\r\n") + "\r\n"
	if err := n.send(n.Addr, nil, n.From, n.To, []byte(msg)); err != nil {
		return fmt.Errorf("send alert via %s: %w", n.Addr, err)
	}
	return nil
}

// WriterNotifier prints the alert instead of mailing it (--dry-run).
type WriterNotifier struct{ W io.Writer }

func (n WriterNotifier) Notify(_ context.Context, a Alert) error {
	_, err := fmt.Fprintf(n.W, "Subject: %s\n\n%s\n", a.Subject(), a.Body())
	return err
}
