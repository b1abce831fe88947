package model

import "time"

// Coffee is a selectable coffee (bean / roast) a brew is made with.
type Coffee struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:128;not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (Coffee) EntityName() string  { return "coffees" }
func (c Coffee) TableName() string { return c.EntityName() }

func (c *Coffee) PrimaryKey() string     { return c.ID }
func (c *Coffee) SetPrimaryKey(k string) { c.ID = k }

func (c *Coffee) DisplayName() string     { return c.Name }
func (c *Coffee) SetDisplayName(n string) { c.Name = n }
