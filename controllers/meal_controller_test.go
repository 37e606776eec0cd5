package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Jc007zZ/mealtracker/models"
	"github.com/Jc007zZ/mealtracker/routes"
	"github.com/Jc007zZ/mealtracker/services"
	"github.com/Jc007zZ/mealtracker/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testSecret = []byte("test-secret")

// setupTestApp builds the full router on an in-memory SQLite database.
func setupTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Meal{}, &models.Goal{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return routes.SetupRouter(db, services.NewRefreshHub(), testSecret), db
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any, userID uint) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		token, err := utils.GenerateJWT(userID, testSecret)
		if err != nil {
			t.Fatalf("GenerateJWT: %v", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doRequestWithToken(t *testing.T, r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mealBody(name string, mt models.MealType, at time.Time) map[string]any {
	return map[string]any{
		"name":        name,
		"description": "test meal",
		"calories":    500,
		"carbs":       40,
		"fats":        15,
		"proteins":    30,
		"price":       25.5,
		"dateTime":    at.Format(time.RFC3339),
		"type":        string(mt),
	}
}

func TestMealsRequireAuth(t *testing.T) {
	r, _ := setupTestApp(t)

	w := doRequest(t, r, "GET", "/api/meals", nil, 0)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestCreateAndListMeals(t *testing.T) {
	r, _ := setupTestApp(t)
	at := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	w := doRequest(t, r, "POST", "/api/meals", mealBody("almoço", models.Lunch, at), 1)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created models.Meal
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created meal: %v", err)
	}
	if created.ID == 0 || created.UserID != 1 || created.Check {
		t.Fatalf("unexpected created meal: %+v", created)
	}

	w = doRequest(t, r, "GET", "/api/meals", nil, 1)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var meals []models.Meal
	if err := json.Unmarshal(w.Body.Bytes(), &meals); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(meals) != 1 || meals[0].Name != "almoço" {
		t.Fatalf("unexpected listing: %+v", meals)
	}

	// another user sees nothing
	w = doRequest(t, r, "GET", "/api/meals", nil, 2)
	if err := json.Unmarshal(w.Body.Bytes(), &meals); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(meals) != 0 {
		t.Fatalf("foreign user sees %d meals", len(meals))
	}
}

func TestCreateMealValidation(t *testing.T) {
	r, _ := setupTestApp(t)
	at := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	body := mealBody("", models.Lunch, at)
	w := doRequest(t, r, "POST", "/api/meals", body, 1)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing name: expected 400, got %d", w.Code)
	}

	body = mealBody("almoço", "Brunch", at)
	w = doRequest(t, r, "POST", "/api/meals", body, 1)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad type: expected 400, got %d", w.Code)
	}

	body = mealBody("almoço", models.Lunch, at)
	body["calories"] = -5
	w = doRequest(t, r, "POST", "/api/meals", body, 1)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("negative calories: expected 400, got %d", w.Code)
	}
}

func TestCheckUncheckEndpoints(t *testing.T) {
	r, db := setupTestApp(t)

	meal := models.Meal{
		UserID: 1, Name: "almoço", Description: "d", Calories: 500,
		DateTime: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC), Type: models.Lunch,
	}
	if err := db.Create(&meal).Error; err != nil {
		t.Fatalf("seed meal: %v", err)
	}

	check := func(path string, want bool) models.Meal {
		w := doRequest(t, r, "PUT", path, nil, 1)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d: %s", path, w.Code, w.Body.String())
		}
		var m models.Meal
		if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if m.Check != want {
			t.Fatalf("%s: check = %v, want %v", path, m.Check, want)
		}
		return m
	}

	check("/api/meals/check/1", true)
	check("/api/meals/check/1", true) // idempotent
	check("/api/meals/uncheck/1", false)
	check("/api/meals/uncheck/1", false)

	// foreign user gets a 404, not someone else's meal
	w := doRequest(t, r, "PUT", "/api/meals/check/1", nil, 2)
	if w.Code != http.StatusNotFound {
		t.Fatalf("foreign toggle: expected 404, got %d", w.Code)
	}

	w = doRequest(t, r, "PUT", "/api/meals/check/9999", nil, 1)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing id: expected 404, got %d", w.Code)
	}
}

func TestUpdateAndDeleteMeal(t *testing.T) {
	r, db := setupTestApp(t)
	at := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	w := doRequest(t, r, "POST", "/api/meals", mealBody("almoço", models.Lunch, at), 1)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: got %d", w.Code)
	}

	update := mealBody("janta", models.Dinner, at.Add(8*time.Hour))
	w = doRequest(t, r, "PUT", "/api/meals/1", update, 1)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var updated models.Meal
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Name != "janta" || updated.Type != models.Dinner {
		t.Fatalf("update not applied: %+v", updated)
	}

	w = doRequest(t, r, "DELETE", "/api/meals/1", nil, 2)
	if w.Code != http.StatusNotFound {
		t.Fatalf("foreign delete: expected 404, got %d", w.Code)
	}

	w = doRequest(t, r, "DELETE", "/api/meals/1", nil, 1)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}

	var count int64
	db.Model(&models.Meal{}).Count(&count)
	if count != 0 {
		t.Fatalf("meal not deleted, %d rows left", count)
	}
}
