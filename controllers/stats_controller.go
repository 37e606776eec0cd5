package controllers

import (
	"net/http"
	"time"

	"github.com/Jc007zZ/mealtracker/services"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	Meals *services.MealService
	Goals *services.GoalService
}

func NewStatsController(meals *services.MealService, goals *services.GoalService) *StatsController {
	return &StatsController{Meals: meals, Goals: goals}
}

// CaloriesByType reports each category's calorie total for one day,
// plus the number of meals seen. ?date= defaults to today.
func (sc *StatsController) CaloriesByType(c *gin.Context) {
	userID := c.GetUint("userID")

	day, dateStr, ok := statsDay(c)
	if !ok {
		return
	}

	meals, err := sc.Meals.ListMeals(userID, services.MealFilters{Date: day})
	if err != nil {
		respondError(c, err)
		return
	}

	byType, count := services.ComputeCategoryTotals(meals)
	c.JSON(http.StatusOK, gin.H{
		"date":           dateStr,
		"caloriesByType": byType,
		"mealCount":      count,
	})
}

// Summary reports the checked-meal totals of one day next to the
// caller's goal targets and the clamped progress of each.
func (sc *StatsController) Summary(c *gin.Context) {
	userID := c.GetUint("userID")

	day, dateStr, ok := statsDay(c)
	if !ok {
		return
	}

	meals, err := sc.Meals.ListMeals(userID, services.MealFilters{Date: day})
	if err != nil {
		respondError(c, err)
		return
	}

	goal, err := sc.Goals.GetGoal(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	totals := services.ComputeDailyTotals(meals)
	c.JSON(http.StatusOK, gin.H{
		"date":   dateStr,
		"totals": totals,
		"goal":   goal,
		"progress": gin.H{
			"calories": progressEntry(totals.Calories, goal.Calories),
			"carbs":    progressEntry(totals.Carbs, goal.Carbs),
			"fats":     progressEntry(totals.Fats, goal.Fats),
			"proteins": progressEntry(totals.Proteins, goal.Proteins),
		},
	})
}

func progressEntry(consumed, target float64) gin.H {
	p := services.ComputeGoalProgress(consumed, target)
	return gin.H{
		"consumed":   consumed,
		"goal":       target,
		"percentage": p.Percentage,
		"overGoal":   p.OverGoal,
	}
}

func statsDay(c *gin.Context) (time.Time, string, bool) {
	if d := c.Query("date"); d != "" {
		day, err := parseDay(d)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return time.Time{}, "", false
		}
		return day, day.Format("2006-01-02"), true
	}
	now := time.Now().UTC()
	return now, now.Format("2006-01-02"), true
}
