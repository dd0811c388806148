package mail

import (
	"log"

	domain "github.com/africamarket/africa-market-api/internal/domain/order"
	"github.com/africamarket/africa-market-api/internal/models"
)

// Notifier is what the order usecases depend on. Both methods are
// fire-and-forget: a mail problem must never surface into the request
// that triggered it.
type Notifier interface {
	EnqueueInvoice(o *models.Order, u *models.User, items []domain.ItemDetail)
	EnqueueDelivery(o *models.Order, u *models.User, items []domain.ItemDetail)
}

type jobKind int

const (
	jobInvoice jobKind = iota
	jobDelivery
)

type job struct {
	kind  jobKind
	order *models.Order
	user  *models.User
	items []domain.ItemDetail
}

type Dispatcher struct {
	mailer *Mailer
	queue  chan job
}

func NewDispatcher(mailer *Mailer) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		queue:  make(chan job, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for j := range d.queue {
		var subject, body string
		var err error

		switch j.kind {
		case jobInvoice:
			subject, body, err = renderInvoice(j.order, j.user, j.items)
		case jobDelivery:
			subject, body, err = renderDelivery(j.order, j.user, j.items)
		}
		if err != nil {
			log.Println("mail: render error:", err)
			continue
		}

		if res := d.mailer.Send(j.user.Email, subject, body); !res.OK {
			log.Printf("mail: send failed for order #%d: %s", j.order.ID, res.Err)
		}
	}
}

func (d *Dispatcher) enqueue(j job) {
	select {
	case d.queue <- j:
	default:
		// Queue full: drop the mail rather than block the request.
		log.Printf("mail: queue full, dropping notification for order #%d", j.order.ID)
	}
}

func (d *Dispatcher) EnqueueInvoice(o *models.Order, u *models.User, items []domain.ItemDetail) {
	d.enqueue(job{kind: jobInvoice, order: o, user: u, items: items})
}

func (d *Dispatcher) EnqueueDelivery(o *models.Order, u *models.User, items []domain.ItemDetail) {
	d.enqueue(job{kind: jobDelivery, order: o, user: u, items: items})
}

var _ Notifier = (*Dispatcher)(nil)
