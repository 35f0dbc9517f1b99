package entity

import "time"

// Statuts d'une notification dans l'outbox.
const (
	NotifPending = "pending"
	NotifSent    = "sent"
	NotifFailed  = "failed"
)

// Destinataires types d'une notification de commande.
const (
	NotifKindAdmin  = "admin"
	NotifKindClient = "client"
)

// Notification intention d'envoi de mail persistée dans la même transaction
// que la commande (outbox). Le dispatcher la traite en arrière-plan ; un échec
// d'envoi ne remet jamais en cause la commande déjà écrite.
type Notification struct {
	ID          string
	OrderID     string
	Kind        string // admin | client
	Recipient   string
	Status      string // pending | sent | failed
	Attempts    int
	LastError   string
	NextRetryAt *time.Time
	SentAt      *time.Time
	CreatedAt   time.Time
}
