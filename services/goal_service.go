// services/goal_service.go
package services

import (
	"errors"

	"github.com/Jc007zZ/mealtracker/models"
	"github.com/Jc007zZ/mealtracker/types"

	"gorm.io/gorm"
)

type GoalService struct {
	db      *gorm.DB
	refresh Refresher
}

func NewGoalService(db *gorm.DB, refresh Refresher) *GoalService {
	return &GoalService{db: db, refresh: refresh}
}

// GetGoal returns the user's goal, creating it with the default targets
// on first read.
func (s *GoalService) GetGoal(userID uint) (*models.Goal, error) {
	var goal models.Goal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DefaultGoal(userID)
		if err := s.db.Create(&goal).Error; err != nil {
			return nil, &types.UpstreamError{Op: "create goal", Err: err}
		}
		return &goal, nil
	}
	if err != nil {
		return nil, &types.UpstreamError{Op: "get goal", Err: err}
	}
	return &goal, nil
}

// GoalInput is a full replacement of the four targets. Omitted fields
// land as 0, matching the goals form.
type GoalInput struct {
	Calories float64 `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Proteins float64 `json:"proteins"`
}

func (in *GoalInput) validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"calories", in.Calories},
		{"carbs", in.Carbs},
		{"fats", in.Fats},
		{"proteins", in.Proteins},
	} {
		if f.value < 0 {
			return &types.ValidationError{Field: f.name, Message: "must not be negative"}
		}
	}
	return nil
}

// UpsertGoal replaces the four targets, creating the row if the user has
// none yet.
func (s *GoalService) UpsertGoal(userID uint, in GoalInput) (*models.Goal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var goal models.Goal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		goal = models.Goal{
			UserID:   userID,
			Calories: in.Calories,
			Carbs:    in.Carbs,
			Fats:     in.Fats,
			Proteins: in.Proteins,
		}
		if err := s.db.Create(&goal).Error; err != nil {
			return nil, &types.UpstreamError{Op: "create goal", Err: err}
		}
	case err != nil:
		return nil, &types.UpstreamError{Op: "get goal", Err: err}
	default:
		goal.Calories = in.Calories
		goal.Carbs = in.Carbs
		goal.Fats = in.Fats
		goal.Proteins = in.Proteins
		if err := s.db.Save(&goal).Error; err != nil {
			return nil, &types.UpstreamError{Op: "update goal", Err: err}
		}
	}

	if s.refresh != nil {
		s.refresh.NotifyDataChanged(userID, "goals")
	}
	return &goal, nil
}
