package models

import (
	"testing"
)

// The color table has no fallback, so it must cover every category.
func TestTypeColorsCoversEveryMealType(t *testing.T) {
	for _, mt := range MealTypes() {
		if _, ok := TypeColors[mt]; !ok {
			t.Fatalf("TypeColors missing entry for %q", mt)
		}
	}
	if len(TypeColors) != len(MealTypes()) {
		t.Fatalf("TypeColors has %d entries for %d categories", len(TypeColors), len(MealTypes()))
	}
}

func TestMealTypeValid(t *testing.T) {
	for _, mt := range MealTypes() {
		if !mt.Valid() {
			t.Fatalf("%q should be valid", mt)
		}
	}
	for _, bad := range []MealType{"", "Brunch", "almoço", "Ceia"} {
		if bad.Valid() {
			t.Fatalf("%q should be invalid", bad)
		}
	}
}
