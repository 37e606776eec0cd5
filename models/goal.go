package models

import (
	"gorm.io/gorm"
)

// Default daily targets, used when a user reads their goal before ever
// setting one.
const (
	DefaultCalorieGoal = 2000
	DefaultCarbGoal    = 250
	DefaultFatGoal     = 65
	DefaultProteinGoal = 150
)

// Goal holds a user's daily nutrition targets. One row per user.
type Goal struct {
	gorm.Model
	UserID   uint    `gorm:"uniqueIndex;not null" json:"userId"`
	Calories float64 `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Proteins float64 `json:"proteins"`
}

func DefaultGoal(userID uint) Goal {
	return Goal{
		UserID:   userID,
		Calories: DefaultCalorieGoal,
		Carbs:    DefaultCarbGoal,
		Fats:     DefaultFatGoal,
		Proteins: DefaultProteinGoal,
	}
}
