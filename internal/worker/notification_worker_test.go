package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hygimar/catalogue-api/internal/domain/entity"
	"github.com/hygimar/catalogue-api/internal/infrastructure/mail"
	"github.com/hygimar/catalogue-api/internal/worker"
	"github.com/hygimar/catalogue-api/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Doubles du dispatcher
// ──────────────────────────────────────────────────────────────────────────────

type memNotifRepo struct {
	byID map[string]*entity.Notification
}

func (m *memNotifRepo) Create(_ context.Context, n *entity.Notification) error {
	m.byID[n.ID] = n
	return nil
}

func (m *memNotifRepo) ListDue(_ context.Context, now time.Time, limit int) ([]*entity.Notification, error) {
	var due []*entity.Notification
	for _, n := range m.byID {
		if n.Status != entity.NotifPending {
			continue
		}
		if n.NextRetryAt != nil && n.NextRetryAt.After(now) {
			continue
		}
		if len(due) >= limit {
			break
		}
		due = append(due, n)
	}
	return due, nil
}

func (m *memNotifRepo) Update(_ context.Context, n *entity.Notification) error {
	m.byID[n.ID] = n
	return nil
}

func (m *memNotifRepo) ListByOrder(_ context.Context, orderID string) ([]*entity.Notification, error) {
	var list []*entity.Notification
	for _, n := range m.byID {
		if n.OrderID == orderID {
			list = append(list, n)
		}
	}
	return list, nil
}

type stubOrderRepo struct {
	order *entity.Order
}

func (s *stubOrderRepo) Create(_ context.Context, _ *entity.Order) error { return nil }

func (s *stubOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	if s.order != nil && s.order.ID == id {
		return s.order, nil
	}
	return nil, nil
}

func (s *stubOrderRepo) List(_ context.Context) ([]*entity.Order, error) { return nil, nil }
func (s *stubOrderRepo) Delete(_ context.Context, _ string) error        { return nil }

type stubClientRepo struct {
	client *entity.Client
}

func (s *stubClientRepo) Create(_ context.Context, _ *entity.Client) error { return nil }

func (s *stubClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	if s.client != nil && s.client.ID == id {
		return s.client, nil
	}
	return nil, nil
}

func (s *stubClientRepo) List(_ context.Context) ([]*entity.Client, error) { return nil, nil }

// sentMail capture un envoi.
type sentMail struct {
	to         string
	subject    string
	body       string
	attachment *mail.Attachment
}

// fakeSender échoue failuresLeft fois avant de réussir.
type fakeSender struct {
	failuresLeft int
	sent         []sentMail
}

func (f *fakeSender) Send(to, subject, htmlBody string, attachment *mail.Attachment) error {
	if f.failuresLeft > 0 {
		f.failuresLeft--
		return errors.New("smtp injoignable")
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: htmlBody, attachment: attachment})
	return nil
}

type fakePDF struct {
	calls int
}

func (f *fakePDF) Generate(_ *entity.Order, _ *entity.Client) ([]byte, error) {
	f.calls++
	return []byte("%PDF-1.4 test"), nil
}

type fixture struct {
	w      *worker.NotificationWorker
	notifs *memNotifRepo
	sender *fakeSender
	pdf    *fakePDF
}

func newFixture(kind string) (*fixture, *entity.Notification) {
	order := &entity.Order{
		ID:       "order-1",
		ClientID: "client-1",
		Date:     time.Now(),
		Lines: []entity.OrderLine{
			{ProductID: "p-1", Name: "Gel hydroalcoolique", Quantity: 3},
		},
		TotalQuantity: 3,
	}
	client := &entity.Client{ID: "client-1", Fullname: "Société Atlas", Email: "atlas@exemple.ma"}

	recipient := "admin@exemple.ma"
	if kind == entity.NotifKindClient {
		recipient = client.Email
	}
	notif := &entity.Notification{
		ID:        "notif-1",
		OrderID:   order.ID,
		Kind:      kind,
		Recipient: recipient,
		Status:    entity.NotifPending,
		CreatedAt: time.Now(),
	}

	notifs := &memNotifRepo{byID: map[string]*entity.Notification{notif.ID: notif}}
	sender := &fakeSender{}
	pdf := &fakePDF{}
	w := worker.NewNotificationWorker(
		notifs,
		&stubOrderRepo{order: order},
		&stubClientRepo{client: client},
		sender,
		pdf,
		config.NotifConfig{TickSeconds: 1, MaxRetries: 3, BatchSize: 10},
	)
	return &fixture{w: w, notifs: notifs, sender: sender, pdf: pdf}, notif
}

// ──────────────────────────────────────────────────────────────────────────────
// Cycle de vie d'une notification
// ──────────────────────────────────────────────────────────────────────────────

// La notification interne part avec le bon de commande PDF en pièce jointe.
func TestDispatch_AdminAvecPieceJointe(t *testing.T) {
	f, notif := newFixture(entity.NotifKindAdmin)

	f.w.DispatchDue(context.Background())

	require.Len(t, f.sender.sent, 1)
	m := f.sender.sent[0]
	assert.Equal(t, "admin@exemple.ma", m.to)
	assert.Contains(t, m.subject, "order-1")
	assert.Contains(t, m.body, "Gel hydroalcoolique")
	require.NotNil(t, m.attachment)
	assert.Equal(t, "bon-de-commande-order-1.pdf", m.attachment.Name)
	assert.Equal(t, 1, f.pdf.calls)

	stored := f.notifs.byID[notif.ID]
	assert.Equal(t, entity.NotifSent, stored.Status)
	assert.NotNil(t, stored.SentAt)
}

// La confirmation client part sans pièce jointe.
func TestDispatch_ClientSansPieceJointe(t *testing.T) {
	f, _ := newFixture(entity.NotifKindClient)

	f.w.DispatchDue(context.Background())

	require.Len(t, f.sender.sent, 1)
	m := f.sender.sent[0]
	assert.Equal(t, "atlas@exemple.ma", m.to)
	assert.Contains(t, m.body, "Société Atlas")
	assert.Nil(t, m.attachment)
	assert.Zero(t, f.pdf.calls)
}

// Un échec d'envoi planifie un retry et incrémente le compteur.
func TestDispatch_EchecPlanifieRetry(t *testing.T) {
	f, notif := newFixture(entity.NotifKindClient)
	f.sender.failuresLeft = 1

	f.w.DispatchDue(context.Background())

	stored := f.notifs.byID[notif.ID]
	assert.Equal(t, entity.NotifPending, stored.Status)
	assert.Equal(t, 1, stored.Attempts)
	assert.NotEmpty(t, stored.LastError)
	require.NotNil(t, stored.NextRetryAt)
	assert.True(t, stored.NextRetryAt.After(time.Now()))

	// Tant que l'échéance n'est pas passée, le prochain tick ne retente pas.
	f.w.DispatchDue(context.Background())
	assert.Equal(t, 1, f.notifs.byID[notif.ID].Attempts)
}

// Après l'échéance, le retry réussit et la notification passe sent.
func TestDispatch_RetryApresEcheance(t *testing.T) {
	f, notif := newFixture(entity.NotifKindClient)
	f.sender.failuresLeft = 1

	f.w.DispatchDue(context.Background())
	past := time.Now().Add(-time.Second)
	f.notifs.byID[notif.ID].NextRetryAt = &past

	f.w.DispatchDue(context.Background())

	stored := f.notifs.byID[notif.ID]
	assert.Equal(t, entity.NotifSent, stored.Status)
	require.Len(t, f.sender.sent, 1)
}

// Au plafond de tentatives, la notification passe failed et n'est plus reprise.
func TestDispatch_AbandonApresMaxRetries(t *testing.T) {
	f, notif := newFixture(entity.NotifKindClient)
	f.sender.failuresLeft = 10

	for i := 0; i < 3; i++ {
		past := time.Now().Add(-time.Second)
		f.notifs.byID[notif.ID].NextRetryAt = &past
		f.w.DispatchDue(context.Background())
	}

	stored := f.notifs.byID[notif.ID]
	assert.Equal(t, entity.NotifFailed, stored.Status)
	assert.Equal(t, 3, stored.Attempts)
	assert.Nil(t, stored.NextRetryAt)

	f.w.DispatchDue(context.Background())
	assert.Equal(t, 3, f.notifs.byID[notif.ID].Attempts)
	assert.Empty(t, f.sender.sent)
}
