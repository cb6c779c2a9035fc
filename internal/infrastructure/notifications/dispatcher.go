package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"imobiliaria_xpto/internal/usecase/interfaces"
)

const (
	queueCapacity  = 256
	deliverTimeout = 5 * time.Second
)

type notification struct {
	BuyerID   string         `json:"buyer_id"`
	EventKind string         `json:"event_kind"`
	Payload   map[string]any `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
}

// WebhookDispatcher delivers buyer notifications to an external webhook endpoint,
// best-effort. Enqueue never blocks the financial operation that produced the
// event: a full queue drops the notification with a log line, and delivery
// failures are logged, never retried into the caller.
//
// Without a configured URL the dispatcher runs in log-only mode, which is what
// local development uses.

type WebhookDispatcher struct {
	url    string
	client *http.Client
	queue  chan notification
}

var _ interfaces.INotificationDispatcher = (*WebhookDispatcher)(nil)

func NewWebhookDispatcher(url string) *WebhookDispatcher {
	d := &WebhookDispatcher{
		url:    url,
		client: &http.Client{Timeout: deliverTimeout},
		queue:  make(chan notification, queueCapacity),
	}
	go d.deliverLoop()
	if url == "" {
		log.Printf("[notify][dispatcher] no NOTIFICATIONS_WEBHOOK_URL set, running in log-only mode")
	}
	return d
}

func (d *WebhookDispatcher) Enqueue(buyerID string, eventKind string, payload map[string]any) {
	n := notification{BuyerID: buyerID, EventKind: eventKind, Payload: payload, CreatedAt: time.Now().UTC()}
	select {
	case d.queue <- n:
	default:
		log.Printf("[notify][dispatcher] queue full, dropping event buyer_id=%s event=%s", buyerID, eventKind)
	}
}

func (d *WebhookDispatcher) deliverLoop() {
	for n := range d.queue {
		if d.url == "" {
			log.Printf("[notify][dispatcher] buyer_id=%s event=%s payload=%v", n.BuyerID, n.EventKind, n.Payload)
			continue
		}
		if err := d.deliver(n); err != nil {
			log.Printf("[notify][dispatcher] delivery failed buyer_id=%s event=%s err=%v", n.BuyerID, n.EventKind, err)
		}
	}
}

func (d *WebhookDispatcher) deliver(n notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, d.url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
