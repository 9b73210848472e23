package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/pizzeria/pkg/validate"
)

type registration struct {
	Name     string  `json:"name"     validate:"required,max=255"`
	Email    string  `json:"email"    validate:"required,email"`
	Password string  `json:"password" validate:"required,min=4"`
	Website  string  `json:"website"  validate:"nullable,min=8"`
	Price    float64 `json:"price"    validate:"gte=0"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(registration{
		Name:     "pizza diner",
		Email:    "d@jwt.com",
		Password: "diner",
		Website:  "", // nullable, allowed to be empty
		Price:    0.05,
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(registration{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	for _, field := range []string{"name", "email", "password"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be required", field)
		}
	}
	if _, ok := errs["website"]; ok {
		t.Error("nullable website must not error when empty")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	if errs := validate.Struct(in{Email: "not-an-email"}); !validate.HasErrors(errs) {
		t.Error("expected email validation error")
	}
	if errs := validate.Struct(in{Email: "f@jwt.com"}); validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestGteRule(t *testing.T) {
	type in struct {
		Price float64 `json:"price" validate:"gte=0"`
	}
	if errs := validate.Struct(in{Price: -1}); !validate.HasErrors(errs) {
		t.Error("expected negative price to fail")
	}
	if errs := validate.Struct(in{Price: 0}); validate.HasErrors(errs) {
		t.Errorf("expected zero price to pass, got: %v", errs)
	}
}

func TestMaxLengthRule(t *testing.T) {
	type in struct {
		Name string `json:"name" validate:"required,max=5"`
	}
	if errs := validate.Struct(in{Name: "toolongname"}); !validate.HasErrors(errs) {
		t.Error("expected over-length name to fail")
	}
	if errs := validate.Struct(in{Name: "ok"}); validate.HasErrors(errs) {
		t.Errorf("expected short name to pass, got: %v", errs)
	}
}

func TestPointerInput(t *testing.T) {
	type in struct {
		Name string `json:"name" validate:"required"`
	}
	if errs := validate.Struct(&in{Name: "x"}); validate.HasErrors(errs) {
		t.Errorf("expected pointer input to validate, got: %v", errs)
	}
}

func TestWhitespaceIsEmpty(t *testing.T) {
	type in struct {
		Name string `json:"name" validate:"required"`
	}
	if errs := validate.Struct(in{Name: "   "}); !validate.HasErrors(errs) {
		t.Error("expected whitespace-only name to count as empty")
	}
}
