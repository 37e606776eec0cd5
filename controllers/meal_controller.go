package controllers

import (
	"net/http"

	"github.com/Jc007zZ/mealtracker/models"
	"github.com/Jc007zZ/mealtracker/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{Meals: meals}
}

// ListMeals returns the caller's meals, optionally narrowed by ?type=
// and ?date= (a UTC day).
func (mc *MealController) ListMeals(c *gin.Context) {
	userID := c.GetUint("userID")

	var filters services.MealFilters
	if t := c.Query("type"); t != "" {
		mt := models.MealType(t)
		if !mt.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type is not a known meal type"})
			return
		}
		filters.Type = mt
	}
	if d := c.Query("date"); d != "" {
		day, err := parseDay(d)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		filters.Date = day
	}

	meals, err := mc.Meals.ListMeals(userID, filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (mc *MealController) CreateMeal(c *gin.Context) {
	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := mc.Meals.AddMeal(c.GetUint("userID"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (mc *MealController) GetMeal(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	meal, err := mc.Meals.GetMeal(c.GetUint("userID"), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (mc *MealController) UpdateMeal(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := mc.Meals.UpdateMeal(c.GetUint("userID"), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (mc *MealController) DeleteMeal(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	if err := mc.Meals.DeleteMeal(c.GetUint("userID"), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CheckMeal marks a meal as counted toward today's totals.
func (mc *MealController) CheckMeal(c *gin.Context) {
	mc.setChecked(c, true)
}

// UncheckMeal removes a meal from today's totals.
func (mc *MealController) UncheckMeal(c *gin.Context) {
	mc.setChecked(c, false)
}

func (mc *MealController) setChecked(c *gin.Context, value bool) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	meal, err := mc.Meals.SetChecked(c.GetUint("userID"), id, value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}
