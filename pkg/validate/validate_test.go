package validate_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/ordermanager/pkg/validate"
)

type productInput struct {
	Slug      string           `json:"slug"      validate:"required,alpha_dash,max=20"`
	Name      string           `json:"name"      validate:"required"`
	Price     *decimal.Decimal `json:"price"     validate:"required,gt=0"`
	VAT       *decimal.Decimal `json:"vat"       validate:"required,gt=0,lte=100"`
	Quantity  int              `json:"quantity"  validate:"gte=0"`
	Role      string           `json:"role"      validate:"nullable,in=USER,ADMIN,MANAGER"`
	Score     float64          `json:"score"     validate:"between=0,100"`
	Email     string           `json:"email"     validate:"nullable,email"`
	Stockable bool             `json:"stockable"`
}

type day struct{ t time.Time }

func (d day) IsZero() bool { return d.t.IsZero() }

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(productInput{
		Slug:     "blue-mug",
		Name:     "Blue mug",
		Price:    dec("12.50"),
		VAT:      dec("20"),
		Quantity: 0,
		Role:     "ADMIN",
		Score:    55,
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFailsOnNilPointerAndBlankString(t *testing.T) {
	errs := validate.Struct(productInput{Name: "   "})
	for _, field := range []string{"slug", "name", "price", "vat"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be required, got %v", field, errs)
		}
	}
}

func TestDecimalComparison(t *testing.T) {
	errs := validate.Struct(productInput{
		Slug: "x", Name: "x", Price: dec("0"), VAT: dec("120"),
	})
	if errs["price"] != "The price must be greater than 0." {
		t.Errorf("unexpected price error: %q", errs["price"])
	}
	if errs["vat"] != "The vat must be less than or equal to 100." {
		t.Errorf("unexpected vat error: %q", errs["vat"])
	}
}

func TestNegativeIntegerRejected(t *testing.T) {
	errs := validate.Struct(productInput{
		Slug: "x", Name: "x", Price: dec("1"), VAT: dec("1"), Quantity: -1,
	})
	if _, ok := errs["quantity"]; !ok {
		t.Error("expected quantity error for -1")
	}
}

func TestInRuleKeepsListTogether(t *testing.T) {
	errs := validate.Struct(productInput{
		Slug: "x", Name: "x", Price: dec("1"), VAT: dec("1"), Role: "ROOT",
	})
	if errs["role"] != "The selected role is invalid." {
		t.Errorf("unexpected role error: %q", errs["role"])
	}
}

func TestBetweenAndNullableEmail(t *testing.T) {
	errs := validate.Struct(productInput{
		Slug: "x", Name: "x", Price: dec("1"), VAT: dec("1"), Score: 101, Email: "nope",
	})
	if _, ok := errs["score"]; !ok {
		t.Error("expected score between error")
	}
	if _, ok := errs["email"]; !ok {
		t.Error("expected email error")
	}
}

func TestAlphaDashAndMax(t *testing.T) {
	errs := validate.Struct(productInput{
		Slug: "has space", Name: "x", Price: dec("1"), VAT: dec("1"),
	})
	if _, ok := errs["slug"]; !ok {
		t.Error("expected alpha_dash error")
	}

	errs = validate.Struct(productInput{
		Slug: "a-very-long-slug-value-here", Name: "x", Price: dec("1"), VAT: dec("1"),
	})
	if errs["slug"] != "The slug must not exceed 20 characters." {
		t.Errorf("unexpected slug error: %q", errs["slug"])
	}
}

func TestRequiredUsesIsZero(t *testing.T) {
	type in struct {
		BornAt day `json:"bornAt" validate:"required"`
	}
	if errs := validate.Struct(in{}); errs["bornAt"] == "" {
		t.Error("expected zero date to fail required")
	}
	if errs := validate.Struct(in{BornAt: day{time.Now()}}); validate.HasErrors(errs) {
		t.Errorf("unexpected errors: %v", errs)
	}
}

func TestNonStructReturnsEmpty(t *testing.T) {
	if errs := validate.Struct("hello"); validate.HasErrors(errs) {
		t.Error("expected no errors for non-struct input")
	}
}

type Credentials struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestEmbeddedStructFieldsAreValidated(t *testing.T) {
	type register struct {
		Credentials
		FirstName string `json:"firstName" validate:"required"`
	}

	errs := validate.Struct(register{Credentials: Credentials{Email: "nope"}})
	for _, field := range []string{"email", "password", "firstName"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected an error for %s, got %v", field, errs)
		}
	}

	ok := register{Credentials: Credentials{Email: "a@example.com", Password: "long-enough"}, FirstName: "Ann"}
	if errs := validate.Struct(ok); validate.HasErrors(errs) {
		t.Errorf("unexpected errors: %v", errs)
	}
}
