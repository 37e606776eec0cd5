package services

import (
	"math"

	"github.com/Jc007zZ/mealtracker/models"
)

// DailyTotals is the sum of everything currently marked as eaten.
type DailyTotals struct {
	Calories float64 `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Proteins float64 `json:"proteins"`
}

// ComputeDailyTotals sums the meals with Check set. Unchecked meals
// contribute nothing. Order of the input does not matter.
func ComputeDailyTotals(meals []models.Meal) DailyTotals {
	var t DailyTotals
	for _, m := range meals {
		if !m.Check {
			continue
		}
		t.Calories += m.Calories
		t.Carbs += m.Carbs
		t.Fats += m.Fats
		t.Proteins += m.Proteins
	}
	return t
}

// ComputeCategoryTotals sums calories per category over all given meals,
// checked or not, and reports how many meals were seen. Categories with
// no meals are absent from the map.
func ComputeCategoryTotals(meals []models.Meal) (map[models.MealType]float64, int) {
	byType := make(map[models.MealType]float64)
	for _, m := range meals {
		byType[m.Type] += m.Calories
	}
	return byType, len(meals)
}

// GoalProgress presents one consumed-vs-target pair.
type GoalProgress struct {
	Percentage int  `json:"percentage"`
	OverGoal   bool `json:"overGoal"`
}

// ComputeGoalProgress reports the filled share of a goal, clamped to
// [0, 100]. A zero target reports 0% rather than dividing by zero.
// OverGoal comes from the raw values, independent of the clamp.
func ComputeGoalProgress(actual, goal float64) GoalProgress {
	p := GoalProgress{OverGoal: actual > goal}
	if goal <= 0 {
		return p
	}
	ratio := actual / goal
	if ratio > 1 {
		ratio = 1
	}
	p.Percentage = int(math.Round(ratio * 100))
	if p.Percentage < 0 {
		p.Percentage = 0
	}
	return p
}
