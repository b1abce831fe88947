package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/SherClockHolmes/webpush-go"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"brewer-backend/internal/model"
)

// NotificationSender defines the interface for sending a web push notification.
type NotificationSender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender is a real implementation of NotificationSender using the webpush library.
type WebPushSender struct{}

// Send sends a notification using the webpush library.
func (s *WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// Payload is the JSON body of a brew notification.
type Payload struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	BrewID string `json:"brewId"`
}

// WorkerPool manages a pool of workers for sending notifications.
type WorkerPool struct {
	size    int
	jobs    chan string
	db      *gorm.DB
	webpush *webpush.Options
	sender  NotificationSender
	log     *zap.Logger
	wg      sync.WaitGroup
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(size int, db *gorm.DB, webpushOptions *webpush.Options, log *zap.Logger) *WorkerPool {
	return &WorkerPool{
		size:    size,
		jobs:    make(chan string, size),
		db:      db,
		webpush: webpushOptions,
		sender:  &WebPushSender{},
		log:     log.Named("notification"),
	}
}

// Start launches the worker goroutines. They stop when ctx is cancelled.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx, i)
	}
}

// Wait blocks until every worker has stopped.
func (wp *WorkerPool) Wait() { wp.wg.Wait() }

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	defer wp.wg.Done()
	log := wp.log.With(zap.Int("worker", id))
	log.Debug("worker started")
	for {
		select {
		case brewID := <-wp.jobs:
			log.Debug("processing brew", zap.String("brew_id", brewID))
			wp.sendNotificationsForBrew(ctx, brewID)
		case <-ctx.Done():
			log.Debug("worker shutting down")
			return
		}
	}
}

// BrewFinished queues a notification for brewID. It gives up when ctx ends
// before a worker has room for the job.
func (wp *WorkerPool) BrewFinished(ctx context.Context, brewID string) {
	select {
	case wp.jobs <- brewID:
	case <-ctx.Done():
		wp.log.Warn("dropped brew notification", zap.String("brew_id", brewID), zap.Error(ctx.Err()))
	}
}

// SetSender replaces the push transport.
func (wp *WorkerPool) SetSender(s NotificationSender) { wp.sender = s }

// Jobs returns the jobs channel for testing.
func (wp *WorkerPool) Jobs() chan string {
	return wp.jobs
}

func (wp *WorkerPool) lookupName(ctx context.Context, dest any, id *string) string {
	if id == nil {
		return ""
	}
	if err := wp.db.WithContext(ctx).Select("name").First(dest, "id = ?", *id).Error; err != nil {
		wp.log.Warn("name lookup failed", zap.String("id", *id), zap.Error(err))
		return ""
	}
	switch v := dest.(type) {
	case *model.Coffee:
		return v.Name
	case *model.CoffeeMachine:
		return v.Name
	}
	return ""
}

func describe(coffee, machine string) string {
	switch {
	case coffee != "" && machine != "":
		return fmt.Sprintf("New brew: %s on %s", coffee, machine)
	case coffee != "":
		return "New brew: " + coffee
	case machine != "":
		return "New brew on " + machine
	}
	return "A new brew was logged"
}

// sendNotificationsForBrew notifies the subscriptions interested in the brew's coffee machine.
func (wp *WorkerPool) sendNotificationsForBrew(ctx context.Context, brewID string) {
	var brew model.Brew
	if err := wp.db.WithContext(ctx).First(&brew, "id = ?", brewID).Error; err != nil {
		wp.log.Error("failed to fetch brew", zap.String("brew_id", brewID), zap.Error(err))
		return
	}

	machineID := ""
	if brew.CoffeeMachineID != nil {
		machineID = *brew.CoffeeMachineID
	}
	var subscriptions []model.PushSubscription
	err := wp.db.WithContext(ctx).
		Where("NOT EXISTS (SELECT 1 FROM subscription_coffee_machines scm WHERE scm.push_subscription_endpoint = push_subscriptions.endpoint)").
		Or("EXISTS (SELECT 1 FROM subscription_coffee_machines scm WHERE scm.push_subscription_endpoint = push_subscriptions.endpoint AND scm.coffee_machine_id = ?)", machineID).
		Find(&subscriptions).Error
	if err != nil {
		wp.log.Error("failed to fetch subscriptions", zap.String("brew_id", brewID), zap.Error(err))
		return
	}
	if len(subscriptions) == 0 {
		return
	}

	payload, err := json.Marshal(Payload{
		Title:  "Brewer",
		Body:   describe(wp.lookupName(ctx, &model.Coffee{}, brew.CoffeeID), wp.lookupName(ctx, &model.CoffeeMachine{}, brew.CoffeeMachineID)),
		BrewID: brewID,
	})
	if err != nil {
		wp.log.Error("failed to encode payload", zap.Error(err))
		return
	}

	wp.log.Info("sending notifications", zap.String("brew_id", brewID), zap.Int("count", len(subscriptions)))
	for _, sub := range subscriptions {
		wp.sendNotification(ctx, sub, payload)
	}
}

// DeleteSubscription removes a subscription together with its coffee machine
// filter rows, which reference it.
func DeleteSubscription(ctx context.Context, db *gorm.DB, endpoint string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM subscription_coffee_machines WHERE push_subscription_endpoint = ?", endpoint).Error; err != nil {
			return err
		}
		return tx.Delete(&model.PushSubscription{Endpoint: endpoint}).Error
	})
}

// sendNotification sends a single web push notification.
func (wp *WorkerPool) sendNotification(ctx context.Context, sub model.PushSubscription, payload []byte) {
	wpSub := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}

	resp, err := wp.sender.Send(payload, wpSub, wp.webpush)
	if err != nil {
		wp.log.Warn("failed to send notification", zap.String("endpoint", sub.Endpoint), zap.Error(err))
		return
	}
	defer resp.Body.Close()

	// Handle expired subscriptions
	if resp.StatusCode == http.StatusGone {
		wp.log.Info("subscription expired, deleting", zap.String("endpoint", sub.Endpoint))
		if err := DeleteSubscription(ctx, wp.db, sub.Endpoint); err != nil {
			wp.log.Error("failed to delete expired subscription", zap.String("endpoint", sub.Endpoint), zap.Error(err))
		}
	}
}
