package workers

import (
	"context"
	"fmt"
	"time"

	"skyward/aerodesk/internal/common"
	"skyward/aerodesk/internal/constants"
	"skyward/aerodesk/internal/logging"
	"skyward/aerodesk/internal/metrics"

	"golang.org/x/sync/errgroup"
	"gopkg.in/gomail.v2"
)

// MailWorker drains the outbound mail stream and hands messages to the
// SMTP relay. Delivery is at-least-once per consumer group semantics;
// failures are logged, counted and acked so one bad address cannot
// wedge the stream.
type MailWorker struct {
	workerID   string
	queue      *common.MailQueueService
	dialer     *gomail.Dialer
	from       string
	metricsReg *metrics.MetricsRegistry
}

// NewMailWorker creates a new mail worker. A nil dialer puts the
// worker in log-only mode for local development.
func NewMailWorker(workerID string, queue *common.MailQueueService, dialer *gomail.Dialer, from string, metricsReg *metrics.MetricsRegistry) *MailWorker {
	return &MailWorker{
		workerID:   workerID,
		queue:      queue,
		dialer:     dialer,
		from:       from,
		metricsReg: metricsReg,
	}
}

// Start runs numWorkers consumers until the context is cancelled.
func (w *MailWorker) Start(ctx context.Context, numWorkers int) error {
	logging.Info("Mail worker starting", "workers", numWorkers, "stream", constants.MailStream)

	if err := w.queue.CreateConsumerGroup(ctx, constants.MailStream, constants.MailConsumerGroup); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < numWorkers; i++ {
		consumerName := fmt.Sprintf("%s-consumer-%d", w.workerID, i)
		g.Go(func() error {
			w.consume(ctx, consumerName)
			return nil
		})
	}

	err := g.Wait()
	logging.Info("Mail worker stopped")
	return err
}

func (w *MailWorker) consume(ctx context.Context, consumerName string) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		item, messageID, err := w.queue.Dequeue(ctx, constants.MailStream, constants.MailConsumerGroup, consumerName, 5*time.Second)
		if err != nil {
			logging.Error("Mail dequeue failed", "consumer", consumerName, "error", err.Error())
			if messageID != "" {
				// Malformed entry; ack it away so the stream keeps moving.
				_ = w.queue.Ack(ctx, constants.MailStream, constants.MailConsumerGroup, messageID)
			}
			time.Sleep(time.Second)
			continue
		}
		if item == nil {
			continue
		}

		if err := w.deliver(item); err != nil {
			logging.Error("Mail delivery failed",
				"consumer", consumerName,
				"kind", item.Kind,
				"recipient", item.Recipient,
				"error", err.Error(),
			)
			if w.metricsReg != nil {
				w.metricsReg.MailFailedTotal.Inc()
			}
		} else {
			logging.Info("Mail delivered", "kind", item.Kind, "recipient", item.Recipient)
			if w.metricsReg != nil {
				w.metricsReg.MailDeliveredTotal.Inc()
			}
		}

		if err := w.queue.Ack(ctx, constants.MailStream, constants.MailConsumerGroup, messageID); err != nil {
			logging.Error("Mail ack failed", "message_id", messageID, "error", err.Error())
		}
	}
}

func (w *MailWorker) deliver(item *common.MailQueueItem) error {
	if w.dialer == nil {
		logging.Info("SMTP not configured, dropping mail", "kind", item.Kind, "recipient", item.Recipient, "subject", item.Subject)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", w.from)
	msg.SetHeader("To", item.Recipient)
	msg.SetHeader("Subject", item.Subject)
	msg.SetBody("text/plain", item.Body)

	if err := w.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}
