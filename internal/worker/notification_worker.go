// Package worker héberge le dispatcher d'outbox : les intentions de
// notification écrites avec les commandes sont envoyées ici, en arrière-plan,
// avec retries. Un SMTP en panne ne touche jamais au chemin de création.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hygimar/catalogue-api/internal/domain/entity"
	"github.com/hygimar/catalogue-api/internal/domain/repository"
	"github.com/hygimar/catalogue-api/internal/infrastructure/mail"
	"github.com/hygimar/catalogue-api/pkg/config"
)

// retryBase premier délai de retry, doublé à chaque tentative.
const retryBase = time.Minute

// Sender port d'envoi de mail du dispatcher.
type Sender interface {
	Send(to, subject, htmlBody string, attachment *mail.Attachment) error
}

// PDFGenerator port de génération du bon de commande joint aux mails internes.
type PDFGenerator interface {
	Generate(order *entity.Order, client *entity.Client) ([]byte, error)
}

// NotificationWorker parcourt périodiquement l'outbox et envoie les
// notifications échues.
type NotificationWorker struct {
	notifRepo  repository.NotificationRepository
	orderRepo  repository.OrderRepository
	clientRepo repository.ClientRepository
	sender     Sender
	pdf        PDFGenerator
	cfg        config.NotifConfig
}

// NewNotificationWorker construit le dispatcher.
func NewNotificationWorker(
	notifRepo repository.NotificationRepository,
	orderRepo repository.OrderRepository,
	clientRepo repository.ClientRepository,
	sender Sender,
	pdf PDFGenerator,
	cfg config.NotifConfig,
) *NotificationWorker {
	return &NotificationWorker{
		notifRepo:  notifRepo,
		orderRepo:  orderRepo,
		clientRepo: clientRepo,
		sender:     sender,
		pdf:        pdf,
		cfg:        cfg,
	}
}

// Start lance la boucle du dispatcher ; elle s'arrête avec le contexte.
func (w *NotificationWorker) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(time.Duration(w.cfg.TickSeconds) * time.Second)
		defer ticker.Stop()
		log.Info().Int("tick_seconds", w.cfg.TickSeconds).Msg("dispatcher de notifications démarré")
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("dispatcher de notifications arrêté")
				return
			case <-ticker.C:
				w.DispatchDue(ctx)
			}
		}
	}()
}

// DispatchDue traite un lot de notifications échues. Exposé pour les tests et
// appelable à la demande.
func (w *NotificationWorker) DispatchDue(ctx context.Context) {
	due, err := w.notifRepo.ListDue(ctx, time.Now(), w.cfg.BatchSize)
	if err != nil {
		log.Error().Err(err).Msg("lecture de l'outbox impossible")
		return
	}
	for _, n := range due {
		if ctx.Err() != nil {
			return
		}
		w.process(ctx, n)
	}
}

// process tente l'envoi d'une notification et met à jour son statut.
func (w *NotificationWorker) process(ctx context.Context, n *entity.Notification) {
	if err := w.deliver(ctx, n); err != nil {
		w.markFailure(ctx, n, err)
		return
	}
	now := time.Now()
	n.Status = entity.NotifSent
	n.SentAt = &now
	n.LastError = ""
	n.NextRetryAt = nil
	if err := w.notifRepo.Update(ctx, n); err != nil {
		log.Error().Err(err).Str("notification_id", n.ID).Msg("marquage sent impossible")
		return
	}
	log.Info().
		Str("notification_id", n.ID).
		Str("order_id", n.OrderID).
		Str("kind", n.Kind).
		Msg("notification envoyée")
}

// deliver recompose le mail depuis la commande et l'envoie.
func (w *NotificationWorker) deliver(ctx context.Context, n *entity.Notification) error {
	order, err := w.orderRepo.GetByID(ctx, n.OrderID)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("commande %s introuvable", n.OrderID)
	}
	client, err := w.clientRepo.GetByID(ctx, order.ClientID)
	if err != nil {
		return err
	}
	if client == nil {
		return fmt.Errorf("client %s introuvable", order.ClientID)
	}

	lines := make([]mail.OrderEmailLine, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, mail.OrderEmailLine{Name: l.Name, Quantity: l.Quantity})
	}
	data := mail.OrderEmailData{
		ClientName:    client.Fullname,
		OrderID:       order.ID,
		Products:      lines,
		TotalQuantity: order.TotalQuantity,
		Notes:         order.Notes,
	}

	switch n.Kind {
	case entity.NotifKindAdmin:
		body, err := mail.RenderAdmin(data)
		if err != nil {
			return err
		}
		pdfBytes, err := w.pdf.Generate(order, client)
		if err != nil {
			return err
		}
		attachment := &mail.Attachment{
			Name:        fmt.Sprintf("bon-de-commande-%s.pdf", order.ID),
			ContentType: "application/pdf",
			Data:        pdfBytes,
		}
		return w.sender.Send(n.Recipient, "Nouvelle commande "+order.ID, body, attachment)
	case entity.NotifKindClient:
		body, err := mail.RenderClient(data)
		if err != nil {
			return err
		}
		return w.sender.Send(n.Recipient, "Confirmation de votre commande "+order.ID, body, nil)
	default:
		return fmt.Errorf("type de notification inconnu: %s", n.Kind)
	}
}

// markFailure incrémente le compteur et planifie un retry avec backoff
// exponentiel ; au-delà du plafond, la notification passe failed.
func (w *NotificationWorker) markFailure(ctx context.Context, n *entity.Notification, cause error) {
	n.Attempts++
	n.LastError = cause.Error()
	if n.Attempts >= w.cfg.MaxRetries {
		n.Status = entity.NotifFailed
		n.NextRetryAt = nil
		log.Error().Err(cause).
			Str("notification_id", n.ID).
			Int("attempts", n.Attempts).
			Msg("notification abandonnée")
	} else {
		next := time.Now().Add(retryBase * time.Duration(1<<(n.Attempts-1)))
		n.NextRetryAt = &next
		log.Warn().Err(cause).
			Str("notification_id", n.ID).
			Int("attempts", n.Attempts).
			Time("next_retry_at", next).
			Msg("envoi en échec, retry planifié")
	}
	if err := w.notifRepo.Update(ctx, n); err != nil {
		log.Error().Err(err).Str("notification_id", n.ID).Msg("mise à jour de l'outbox impossible")
	}
}
