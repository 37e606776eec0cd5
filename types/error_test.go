package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorTaxonomy(t *testing.T) {
	nf := &NotFoundError{Resource: "meal"}
	if nf.Error() != "meal not found" {
		t.Fatalf("unexpected message %q", nf.Error())
	}
	if !IsNotFound(nf) || IsValidation(nf) {
		t.Fatal("classification wrong for NotFoundError")
	}

	ve := &ValidationError{Field: "calories", Message: "must not be negative"}
	if !IsValidation(ve) || IsNotFound(ve) {
		t.Fatal("classification wrong for ValidationError")
	}

	// classification survives wrapping
	wrapped := fmt.Errorf("list meals: %w", nf)
	if !IsNotFound(wrapped) {
		t.Fatal("IsNotFound failed on wrapped error")
	}

	cause := errors.New("connection refused")
	ue := &UpstreamError{Op: "get goal", Err: cause}
	if !errors.Is(ue, cause) {
		t.Fatal("UpstreamError does not unwrap to its cause")
	}
	if IsNotFound(ue) || IsValidation(ue) {
		t.Fatal("UpstreamError misclassified")
	}
}
