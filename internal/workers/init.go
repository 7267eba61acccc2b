package workers

import (
	"context"
	"os"
	"strconv"

	"skyward/aerodesk/internal/common"
	"skyward/aerodesk/internal/logging"
	"skyward/aerodesk/internal/metrics"

	"gopkg.in/gomail.v2"
)

type WorkersContainer struct {
	Mail *MailWorker
}

// InitWorkers starts the background mail consumers. SMTP settings come
// from the environment; with no SMTP_HOST the worker runs in log-only
// mode.
func InitWorkers(queue *common.MailQueueService, metricsReg *metrics.MetricsRegistry) *WorkersContainer {
	var dialer *gomail.Dialer

	host := os.Getenv("SMTP_HOST")
	if host != "" {
		port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
		if err != nil {
			port = 587
		}
		dialer = gomail.NewDialer(host, port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASSWORD"))
	} else {
		logging.Warn("SMTP_HOST not set, mail worker running in log-only mode")
	}

	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = "noreply@aerodesk.local"
	}

	mailWorker := NewMailWorker("mail", queue, dialer, from, metricsReg)

	go func() {
		if err := mailWorker.Start(context.Background(), 2); err != nil {
			logging.Error("Mail worker exited", "error", err.Error())
		}
	}()

	return &WorkersContainer{
		Mail: mailWorker,
	}
}
