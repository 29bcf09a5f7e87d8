package delivery

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/gatekeeper/internal/logging"
)

// Console writes messages to w instead of sending them. It is meant for
// development, where the operator copies the link by hand.
type Console struct {
	mu  sync.Mutex
	w   io.Writer
	log logging.Logger
}

func NewConsole(w io.Writer, log logging.Logger) *Console {
	return &Console{w: w, log: log.With("transport", "console")}
}

func (c *Console) Send(ctx context.Context, ch Channel, msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := fmt.Fprintf(c.w, "=== %s ===\nTo: %s\nSubject: %s\n\n%s\n%s\n\n", ch.Kind, ch.Address, msg.Subject, msg.Body, msg.Link)
	if err != nil {
		return err
	}
	c.log.Debug(ctx, "message written to console", "to", logging.Mask(ch.Address))
	return nil
}
