package newrelic

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/jetcab/dispatch/internal/pkg/logger"
	"github.com/jetcab/dispatch/internal/pkg/models"
)

// InitNewRelic initializes the New Relic application based on configuration.
// Returns nil when APM is disabled; all helpers in this package tolerate a
// nil application/transaction.
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(configs.NewRelic.AppName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic, continuing without New Relic",
			logger.Err(err))
		return nil
	}

	logger.Info("New Relic enabled",
		logger.String("app_name", configs.NewRelic.AppName))
	return nrApp
}
