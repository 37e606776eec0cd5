package controllers

import (
	"net/http"

	"github.com/Jc007zZ/mealtracker/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{Goals: goals}
}

// GetGoals returns the caller's daily targets, creating them with
// defaults on first read.
func (gc *GoalController) GetGoals(c *gin.Context) {
	goal, err := gc.Goals.GetGoal(c.GetUint("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (gc *GoalController) UpdateGoals(c *gin.Context) {
	var input services.GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := gc.Goals.UpsertGoal(c.GetUint("userID"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}
