package model

import "time"

// CoffeeMachine is a selectable espresso machine.
type CoffeeMachine struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:128;not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (CoffeeMachine) EntityName() string  { return "coffee_machines" }
func (m CoffeeMachine) TableName() string { return m.EntityName() }

func (m *CoffeeMachine) PrimaryKey() string     { return m.ID }
func (m *CoffeeMachine) SetPrimaryKey(k string) { m.ID = k }

func (m *CoffeeMachine) DisplayName() string     { return m.Name }
func (m *CoffeeMachine) SetDisplayName(n string) { m.Name = n }
