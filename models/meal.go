package models

import (
	"time"

	"gorm.io/gorm"
)

// MealType is the fixed set of meal-time categories. The pt-BR labels are
// the stored values.
type MealType string

const (
	Breakfast MealType = "Café da manhã"
	Lunch     MealType = "Almoço"
	Snack     MealType = "Lanche da tarde"
	Dinner    MealType = "Janta"
)

// MealTypes returns every category, in day order.
func MealTypes() []MealType {
	return []MealType{Breakfast, Lunch, Snack, Dinner}
}

func (t MealType) Valid() bool {
	switch t {
	case Breakfast, Lunch, Snack, Dinner:
		return true
	}
	return false
}

// TypeColors maps each category to its badge color. Must cover every
// MealType; there is no fallback.
var TypeColors = map[MealType]string{
	Breakfast: "amber",
	Lunch:     "green",
	Snack:     "purple",
	Dinner:    "blue",
}

// Meal is one logged food entry.
type Meal struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	Calories    float64   `json:"calories"`
	Carbs       float64   `json:"carbs"`
	Fats        float64   `json:"fats"`
	Proteins    float64   `json:"proteins"`
	Price       float64   `json:"price"`
	DateTime    time.Time `gorm:"index;not null" json:"dateTime"`
	Type        MealType  `gorm:"type:varchar(32);not null" json:"type"`
	Daily       bool      `gorm:"default:false" json:"daily"` // stored, read by nothing yet
	Check       bool      `gorm:"default:false" json:"check"` // counts toward today's totals
}
