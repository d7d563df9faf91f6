//go:generate mockgen -source=report.go -destination=report_mock.go -package=report
package report

import (
	"time"

	"github.com/getsentry/sentry-go"

	"logex/internal/config"
	"logex/internal/config/logger"
)

const flushTimeout = 2 * time.Second

// Reporter forwards unexpected failures to an error tracker
type Reporter interface {
	Capture(err error, tags map[string]string)
	Flush()
}

type reporter struct {
	hub *sentry.Hub
	log logger.Logger
}

type noopReporter struct{}

// NewReporter creates a Reporter for the configured DSN. Without a DSN nothing is reported.
func NewReporter(cfg *config.Config, log logger.Logger) Reporter {
	log = log.WithComponent("REPORT")

	if cfg.Report.DSN == "" {
		return noopReporter{}
	}

	r, err := newReporter(sentry.ClientOptions{
		Dsn:         cfg.Report.DSN,
		Environment: cfg.Report.Environment,
		Release:     config.AppName + "@" + config.Version,
	}, log)
	if err != nil {
		log.Warn().Err(err).Msg("Error reporting disabled")
		return noopReporter{}
	}

	return r
}

func newReporter(opts sentry.ClientOptions, log logger.Logger) (*reporter, error) {
	client, err := sentry.NewClient(opts)
	if err != nil {
		return nil, err
	}

	return &reporter{
		hub: sentry.NewHub(client, sentry.NewScope()),
		log: log,
	}, nil
}

func (r *reporter) Capture(err error, tags map[string]string) {
	if err == nil {
		return
	}

	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		r.hub.CaptureException(err)
	})

	r.log.Debug().Err(err).Msg("Reported error")
}

func (r *reporter) Flush() {
	if !r.hub.Flush(flushTimeout) {
		r.log.Warn().Msg("Timed out flushing error reports")
	}
}

func (noopReporter) Capture(error, map[string]string) {}

func (noopReporter) Flush() {}
