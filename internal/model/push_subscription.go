package model

import "time"

// PushSubscription holds the information for a browser push subscription.
// A subscription without coffee machines is notified about every brew.
type PushSubscription struct {
	Endpoint       string          `gorm:"primaryKey"`
	P256DH         string          `gorm:"column:p256dh;not null"`
	Auth           string          `gorm:"not null"`
	CreatedAt      time.Time       `gorm:"not null"`
	CoffeeMachines []CoffeeMachine `gorm:"many2many:subscription_coffee_machines;"`
}

func (PushSubscription) EntityName() string  { return "push_subscriptions" }
func (s PushSubscription) TableName() string { return s.EntityName() }
