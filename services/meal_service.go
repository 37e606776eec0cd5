// services/meal_service.go
package services

import (
	"errors"
	"time"

	"github.com/Jc007zZ/mealtracker/models"
	"github.com/Jc007zZ/mealtracker/types"

	"gorm.io/gorm"
)

type MealService struct {
	db      *gorm.DB
	refresh Refresher
}

func NewMealService(db *gorm.DB, refresh Refresher) *MealService {
	return &MealService{db: db, refresh: refresh}
}

// MealInput carries the client-supplied fields of a meal. The optional
// numeric group defaults to 0 when omitted, like the add-meal form.
type MealInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Calories    float64         `json:"calories"`
	Carbs       float64         `json:"carbs"`
	Fats        float64         `json:"fats"`
	Proteins    float64         `json:"proteins"`
	Price       float64         `json:"price"`
	DateTime    time.Time       `json:"dateTime"`
	Type        models.MealType `json:"type"`
	Daily       bool            `json:"daily"`
	Check       bool            `json:"check"`
}

func (in *MealInput) validate() error {
	if in.Name == "" {
		return &types.ValidationError{Field: "name", Message: "is required"}
	}
	if in.Description == "" {
		return &types.ValidationError{Field: "description", Message: "is required"}
	}
	if in.DateTime.IsZero() {
		return &types.ValidationError{Field: "dateTime", Message: "is required"}
	}
	if !in.Type.Valid() {
		return &types.ValidationError{Field: "type", Message: "is not a known meal type"}
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"calories", in.Calories},
		{"carbs", in.Carbs},
		{"fats", in.Fats},
		{"proteins", in.Proteins},
		{"price", in.Price},
	} {
		if f.value < 0 {
			return &types.ValidationError{Field: f.name, Message: "must not be negative"}
		}
	}
	return nil
}

// MealFilters narrows a listing. Zero values mean no filtering.
type MealFilters struct {
	Type models.MealType
	Date time.Time // any instant inside the wanted UTC day
}

// dayWindowUTC returns the [start, end) window of the UTC day holding t.
func dayWindowUTC(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}

// ListMeals returns the user's meals, newest first.
func (s *MealService) ListMeals(userID uint, f MealFilters) ([]models.Meal, error) {
	q := s.db.Where("user_id = ?", userID)
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if !f.Date.IsZero() {
		start, end := dayWindowUTC(f.Date)
		q = q.Where("date_time >= ? AND date_time < ?", start, end)
	}

	var meals []models.Meal
	if err := q.Order("date_time desc").Find(&meals).Error; err != nil {
		return nil, &types.UpstreamError{Op: "list meals", Err: err}
	}
	return meals, nil
}

func (s *MealService) GetMeal(userID, id uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &types.NotFoundError{Resource: "meal"}
	}
	if err != nil {
		return nil, &types.UpstreamError{Op: "get meal", Err: err}
	}
	return &meal, nil
}

func (s *MealService) AddMeal(userID uint, in MealInput) (*models.Meal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	meal := models.Meal{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		Calories:    in.Calories,
		Carbs:       in.Carbs,
		Fats:        in.Fats,
		Proteins:    in.Proteins,
		Price:       in.Price,
		DateTime:    in.DateTime.UTC(),
		Type:        in.Type,
		Daily:       in.Daily,
		Check:       in.Check,
	}
	if err := s.db.Create(&meal).Error; err != nil {
		return nil, &types.UpstreamError{Op: "create meal", Err: err}
	}

	s.notify(userID)
	return &meal, nil
}

// UpdateMeal replaces every client-editable field of the meal.
func (s *MealService) UpdateMeal(userID, id uint, in MealInput) (*models.Meal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	meal, err := s.GetMeal(userID, id)
	if err != nil {
		return nil, err
	}

	meal.Name = in.Name
	meal.Description = in.Description
	meal.Calories = in.Calories
	meal.Carbs = in.Carbs
	meal.Fats = in.Fats
	meal.Proteins = in.Proteins
	meal.Price = in.Price
	meal.DateTime = in.DateTime.UTC()
	meal.Type = in.Type
	meal.Daily = in.Daily
	meal.Check = in.Check

	if err := s.db.Save(meal).Error; err != nil {
		return nil, &types.UpstreamError{Op: "update meal", Err: err}
	}

	s.notify(userID)
	return meal, nil
}

func (s *MealService) DeleteMeal(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Meal{})
	if res.Error != nil {
		return &types.UpstreamError{Op: "delete meal", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &types.NotFoundError{Resource: "meal"}
	}

	s.notify(userID)
	return nil
}

// SetChecked flips the inclusion flag and touches nothing else.
// Re-applying the current value is a successful no-op that still returns
// the record.
func (s *MealService) SetChecked(userID, id uint, value bool) (*models.Meal, error) {
	meal, err := s.GetMeal(userID, id)
	if err != nil {
		return nil, err
	}

	if meal.Check != value {
		if err := s.db.Model(meal).Update("check", value).Error; err != nil {
			return nil, &types.UpstreamError{Op: "update meal", Err: err}
		}
		meal.Check = value
	}

	s.notify(userID)
	return meal, nil
}

func (s *MealService) notify(userID uint) {
	if s.refresh != nil {
		s.refresh.NotifyDataChanged(userID, "meals")
	}
}
