package alert

import (
	log "github.com/sirupsen/logrus"

	"github.com/openaquifer/groundwater-api/external/resend"
	"github.com/openaquifer/groundwater-api/store"
)

const alertLogPrefix = "alert"

// WQI levels that trip subscriber notifications.
const (
	WarningThreshold  = 100.0 // Very Poor
	CriticalThreshold = 150.0 // Unsuitable
)

// Engine walks all alert subscriptions and mails subscribers whose location
// currently averages a WQI at or above the warning threshold. Failures on a
// single subscription are logged and skipped, never fatal.
type Engine struct {
	subscriptions store.GroundwaterCore
	mongo         store.MongoStore
	mailer        resend.Mailer
}

func NewEngine(subscriptions store.GroundwaterCore, mongo store.MongoStore, mailer resend.Mailer) *Engine {
	return &Engine{
		subscriptions: subscriptions,
		mongo:         mongo,
		mailer:        mailer,
	}
}

// Run performs one full check over all subscriptions and returns the number
// of alert emails sent.
func (e *Engine) Run() int {
	log.WithField("prefix", alertLogPrefix).Info("running predictive alert check")

	subscriptions, err := e.subscriptions.ListSubscriptions()
	if err != nil {
		log.WithField("prefix", alertLogPrefix).WithError(err).Error("list subscriptions")
		return 0
	}
	if len(subscriptions) == 0 {
		log.WithField("prefix", alertLogPrefix).Info("no subscribers found")
		return 0
	}

	sent := 0
	for _, s := range subscriptions {
		avgWQI, count, err := e.mongo.AvgWQIForLocation(s.Location, s.Type)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix":   alertLogPrefix,
				"location": s.Location,
				"error":    err,
			}).Error("average wqi lookup")
			continue
		}
		if count == 0 || avgWQI < WarningThreshold {
			continue
		}

		log.WithFields(log.Fields{
			"prefix":   alertLogPrefix,
			"location": s.Location,
			"type":     s.Type,
			"avg_wqi":  avgWQI,
			"critical": avgWQI >= CriticalThreshold,
		}).Warn("alert triggered")

		if err := e.mailer.SendAlert(s.Email, s.Location, avgWQI); err != nil {
			log.WithFields(log.Fields{
				"prefix": alertLogPrefix,
				"email":  s.Email,
				"error":  err,
			}).Error("send alert email")
			continue
		}
		sent++
	}

	log.WithFields(log.Fields{
		"prefix": alertLogPrefix,
		"sent":   sent,
	}).Info("alert check complete")
	return sent
}

// Trigger mails every subscriber of one location regardless of thresholds,
// used by the manual trigger endpoint. Returns subscriber and sent counts.
func (e *Engine) Trigger(location, locationType string, wqiValue float64) (int, int) {
	subscribers, err := e.subscriptions.SubscribersFor(location, locationType)
	if err != nil {
		log.WithField("prefix", alertLogPrefix).WithError(err).Error("list subscribers")
		return 0, 0
	}

	sent := 0
	for _, s := range subscribers {
		if err := e.mailer.SendAlert(s.Email, s.Location, wqiValue); err != nil {
			log.WithFields(log.Fields{
				"prefix": alertLogPrefix,
				"email":  s.Email,
				"error":  err,
			}).Error("send alert email")
			continue
		}
		sent++
	}
	return len(subscribers), sent
}
