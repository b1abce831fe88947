package model

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ScoreCategory is one axis of the brew score sheet.
type ScoreCategory string

const (
	ScoreAcidity    ScoreCategory = "acidity"
	ScoreAftertaste ScoreCategory = "aftertaste"
	ScoreAroma      ScoreCategory = "aroma"
	ScoreBitterness ScoreCategory = "bitterness"
	ScoreBody       ScoreCategory = "body"
	ScoreSweetness  ScoreCategory = "sweetness"
)

// ScoreCategories lists the score sheet in display order.
var ScoreCategories = []ScoreCategory{
	ScoreAcidity, ScoreAftertaste, ScoreAroma, ScoreBitterness, ScoreBody, ScoreSweetness,
}

const MaxScore = 10.0

// Brew is a single logged espresso-making session.
type Brew struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Temporary bool      `gorm:"not null;default:false;index" json:"temporary"`

	CoffeeID        *string        `gorm:"size:36;index" json:"coffeeId,omitempty"`
	Coffee          *Coffee        `gorm:"constraint:OnDelete:SET NULL" json:"coffee,omitempty"`
	CoffeeMachineID *string        `gorm:"size:36;index" json:"coffeeMachineId,omitempty"`
	CoffeeMachine   *CoffeeMachine `gorm:"constraint:OnDelete:SET NULL" json:"coffeeMachine,omitempty"`

	GrindSize        *float64 `json:"grindSize,omitempty" validate:"omitempty,gte=0,lte=100"`
	TampingStrength  *float64 `json:"tamping,omitempty" validate:"omitempty,gte=0,lte=1"`
	CoffeeWeight     *float64 `json:"coffeeWeight,omitempty" validate:"omitempty,gte=0"`
	WaterWeight      *float64 `json:"waterWeight,omitempty" validate:"omitempty,gte=0"`
	WaterTemperature *float64 `json:"waterTemperature,omitempty" validate:"omitempty,gte=0"`
	PreInfusionTime  *float64 `json:"preInfusionTime,omitempty" validate:"omitempty,gte=0"`
	Time             *float64 `json:"time,omitempty" validate:"omitempty,gte=0"`

	Notes  string                    `gorm:"type:text" json:"notes"`
	Scores map[ScoreCategory]float64 `gorm:"serializer:json" json:"scores" validate:"dive,gte=0,lte=10"`
}

func (Brew) EntityName() string  { return "brews" }
func (b Brew) TableName() string { return b.EntityName() }

func (b *Brew) PrimaryKey() string     { return b.ID }
func (b *Brew) SetPrimaryKey(k string) { b.ID = k }

func (b *Brew) attributeField(a AttributeType) **float64 {
	switch a {
	case AttributeGrindSize:
		return &b.GrindSize
	case AttributeTamping:
		return &b.TampingStrength
	case AttributeCoffeeWeight:
		return &b.CoffeeWeight
	case AttributeWaterWeight:
		return &b.WaterWeight
	case AttributeWaterTemperature:
		return &b.WaterTemperature
	case AttributePreInfusionTime:
		return &b.PreInfusionTime
	case AttributeTime:
		return &b.Time
	default:
		return nil
	}
}

// Attribute returns the stored value of an attribute in canonical units
// (grams, degrees Celsius, seconds).
func (b *Brew) Attribute(a AttributeType) (float64, bool) {
	field := b.attributeField(a)
	if field == nil || *field == nil {
		return 0, false
	}
	return **field, true
}

// SetAttribute stores a value in canonical units.
func (b *Brew) SetAttribute(a AttributeType, value float64) error {
	field := b.attributeField(a)
	if field == nil {
		return fmt.Errorf("unknown brew attribute %s", a)
	}
	*field = &value
	return nil
}

// ClearAttribute removes a stored value.
func (b *Brew) ClearAttribute(a AttributeType) {
	if field := b.attributeField(a); field != nil {
		*field = nil
	}
}

// SetScore records a value for one score category.
func (b *Brew) SetScore(category ScoreCategory, value float64) {
	if b.Scores == nil {
		b.Scores = make(map[ScoreCategory]float64)
	}
	b.Scores[category] = value
}

// Score is the mean of the filled score categories.
func (b *Brew) Score() (float64, bool) {
	if len(b.Scores) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range b.Scores {
		sum += v
	}
	return sum / float64(len(b.Scores)), true
}

// Ratio is water weight divided by coffee weight.
func (b *Brew) Ratio() (float64, bool) {
	coffee, ok := b.Attribute(AttributeCoffeeWeight)
	if !ok || coffee == 0 {
		return 0, false
	}
	water, ok := b.Attribute(AttributeWaterWeight)
	if !ok {
		return 0, false
	}
	return water / coffee, true
}

var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}()

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Validate is called by the persistence context before a brew is written.
func (b *Brew) Validate() error {
	var errs []error
	for _, a := range Attributes {
		if v, ok := b.Attribute(a); ok && !finite(v) {
			errs = append(errs, fmt.Errorf("%s must be a finite number", a))
		}
	}
	categories := make([]string, 0, len(b.Scores))
	for c := range b.Scores {
		categories = append(categories, string(c))
	}
	sort.Strings(categories)
	for _, c := range categories {
		if !finite(b.Scores[ScoreCategory(c)]) {
			errs = append(errs, fmt.Errorf("score %s must be a finite number", c))
		}
	}

	if err := validate.Struct(b); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return errors.Join(append(errs, err)...)
		}
		for _, fe := range fieldErrs {
			errs = append(errs, fmt.Errorf("%s must be %s %s", fe.Field(), fe.Tag(), fe.Param()))
		}
	}
	return errors.Join(errs...)
}
