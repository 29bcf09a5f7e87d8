package delivery

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/logging"
)

// Dispatcher sends messages in the background so callers answer without
// waiting on the transport.
type Dispatcher struct {
	t       Transport
	timeout time.Duration
	log     logging.Logger
	wg      sync.WaitGroup
}

func NewDispatcher(t Transport, timeout time.Duration, log logging.Logger) *Dispatcher {
	return &Dispatcher{t: t, timeout: timeout, log: log.With("module", "delivery")}
}

// Dispatch queues msg for ch. The request context only contributes values;
// its cancellation does not stop the delivery.
func (d *Dispatcher) Dispatch(ctx context.Context, ch Channel, msg Message) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()

		if err := d.t.Send(sendCtx, ch, msg); err != nil {
			d.log.Warn(ctx, "delivery failed", "kind", ch.Kind, "to", logging.Mask(ch.Address), "error", err)
			return
		}
		d.log.Info(ctx, "delivered", "kind", ch.Kind, "to", logging.Mask(ch.Address))
	}()
}

// Wait blocks until every dispatched message has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
