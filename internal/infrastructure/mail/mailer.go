// Package mail implémente la passerelle SMTP sortante des notifications de commande.
package mail

import (
	"bytes"
	"fmt"
	"net/smtp"
	"time"

	"github.com/jordan-wright/email"

	"github.com/hygimar/catalogue-api/pkg/config"
)

// sendTimeout borne chaque envoi SMTP : un serveur mail injoignable ne doit
// jamais bloquer le dispatcher indéfiniment.
const sendTimeout = 15 * time.Second

// Mailer enveloppe la configuration SMTP pour l'envoi des notifications,
// avec pièce jointe PDF optionnelle.
type Mailer struct {
	cfg  config.SMTPConfig
	auth smtp.Auth
}

// NewMailer construit la passerelle depuis la configuration.
func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		cfg:  cfg,
		auth: smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host),
	}
}

// Attachment pièce jointe en mémoire (bon de commande PDF).
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// Send envoie un mail HTML. L'envoi passe par un pool à une connexion pour
// bénéficier d'un timeout borné.
func (m *Mailer) Send(to, subject, htmlBody string, attachment *Attachment) error {
	e := email.NewEmail()
	e.From = m.cfg.Sender()
	e.To = []string{to}
	e.Subject = subject
	e.HTML = []byte(htmlBody)
	if attachment != nil {
		if _, err := e.Attach(bytes.NewReader(attachment.Data), attachment.Name, attachment.ContentType); err != nil {
			return fmt.Errorf("mailer: attacher %s: %w", attachment.Name, err)
		}
	}

	pool, err := email.NewPool(m.cfg.Addr(), 1, m.auth)
	if err != nil {
		return fmt.Errorf("mailer: connexion SMTP: %w", err)
	}
	defer pool.Close()
	if err := pool.Send(e, sendTimeout); err != nil {
		return fmt.Errorf("mailer: envoi à %s: %w", to, err)
	}
	return nil
}
