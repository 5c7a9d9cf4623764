// Package mailer sends the outbound account emails over SMTP. When no
// mail host is configured the client runs disabled and sends become
// logged no-ops, which keeps local development working without an SMTP
// account.
package mailer

import (
	"crypto/tls"
	"fmt"
	"net/mail"
	"net/url"

	"github.com/dajohi/goemail"
	"github.com/rs/zerolog"
)

// Mailer dispatches account emails.
type Mailer interface {
	IsEnabled() bool
	SendPasswordReset(toEmail, toName, resetURL string) error
}

type client struct {
	smtp        *goemail.SMTP
	mailName    string
	mailAddress string
	disabled    bool
	log         zerolog.Logger
}

// New builds an SMTP mailer. host is "host:port"; an empty host, user
// or password disables sending.
func New(host, user, password, fromAddress string, skipVerify bool, log zerolog.Logger) (Mailer, error) {
	if host == "" || user == "" || password == "" {
		log.Warn().Msg("smtp not configured, outbound email disabled")
		return &client{disabled: true, log: log}, nil
	}

	u, err := url.Parse(fmt.Sprintf("smtps://%v:%v@%v", user, password, host))
	if err != nil {
		return nil, fmt.Errorf("parse smtp host: %w", err)
	}

	addr, err := mail.ParseAddress(fromAddress)
	if err != nil {
		return nil, fmt.Errorf("parse from address: %w", err)
	}

	smtp, err := goemail.NewSMTP(u.String(), &tls.Config{InsecureSkipVerify: skipVerify})
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &client{
		smtp:        smtp,
		mailName:    addr.Name,
		mailAddress: addr.Address,
		log:         log,
	}, nil
}

func (c *client) IsEnabled() bool {
	return !c.disabled
}

// SendPasswordReset emails the time-limited reset link. The token in
// the URL expires in one hour; the copy says so.
func (c *client) SendPasswordReset(toEmail, toName, resetURL string) error {
	if c.disabled {
		c.log.Info().Str("to", toEmail).Msg("email disabled, skipping password reset send")
		return nil
	}

	body := fmt.Sprintf(`
<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto;">
  <h2 style="color: #22C278;">Reset your password</h2>
  <p>Hi %s,</p>
  <p>We received a request to reset your EcoBill password. Click the button below to create a new password. This link expires in 1 hour.</p>
  <a href="%s" style="display: inline-block; margin: 16px 0; padding: 12px 24px; background: #22C278; color: #fff; text-decoration: none; border-radius: 8px; font-weight: 600;">Reset Password</a>
  <p>If you didn't request this, you can safely ignore this email.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 24px 0;" />
  <p style="color: #999; font-size: 12px;">EcoBill — Professional Invoice Generator for Sri Lankan Businesses</p>
</div>`, toName, resetURL)

	msg := goemail.NewHTMLMessage(c.mailAddress, "Reset your EcoBill password", body)
	msg.SetName(c.mailName)
	msg.AddTo(toEmail)

	return c.smtp.Send(msg)
}
