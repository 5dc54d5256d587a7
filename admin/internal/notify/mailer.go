package notify

import (
	"context"

	"github.com/pkg/errors"
	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type Mailer struct {
	cfg SMTPConfig
	log *zap.Logger
}

func NewMailer(cfg SMTPConfig, log *zap.Logger) *Mailer {
	return &Mailer{cfg: cfg, log: log.Named("mailer")}
}

// Send delivers a plain-text email. Without a configured host it only logs.
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	if m.cfg.Host == "" {
		m.log.Info("smtp disabled, email not sent", zap.String("to", to), zap.String("subject", subject))
		return nil
	}
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return errors.Wrap(err, "from")
	}
	if err := msg.To(to); err != nil {
		return errors.Wrap(err, "to")
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.User),
			mail.WithPassword(m.cfg.Password))
	}
	c, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return errors.Wrap(err, "smtp client")
	}
	if err := c.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "smtp send")
	}
	return nil
}
