package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/ordertrack/pkg/validate"
)

type orderInput struct {
	CustomerName   string  `json:"customer_name"   validate:"required,min=1,max=50"`
	Email          string  `json:"email"           validate:"nullable,email"`
	Website        string  `json:"website"         validate:"nullable,url"`
	OrderDate      string  `json:"order_date"      validate:"nullable,date"`
	Status         string  `json:"status"          validate:"nullable,in=pending,processing,shipped,delivered,cancelled"`
	DeliveryMethod string  `json:"delivery_method" validate:"required,in=jnt,walkin"`
	PaidProduct    float64 `json:"paid_product"    validate:"gte=0"`
	Quantity       int     `json:"quantity"        validate:"gte=1,lte=999"`
}

func valid() orderInput {
	return orderInput{
		CustomerName:   "Maria Santos",
		Email:          "maria@example.com",
		Website:        "https://fb.com/maria",
		OrderDate:      "2026-03-01",
		Status:         "pending",
		DeliveryMethod: "jnt",
		PaidProduct:    450,
		Quantity:       2,
	}
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(valid())
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	in := valid()
	in.CustomerName = ""
	in.DeliveryMethod = ""

	errs := validate.Struct(in)
	if _, ok := errs["customer_name"]; !ok {
		t.Error("expected customer_name to be required")
	}
	if _, ok := errs["delivery_method"]; !ok {
		t.Error("expected delivery_method to be required")
	}
}

func TestNullableSkipsEmpty(t *testing.T) {
	in := valid()
	in.Email = ""
	in.Website = ""
	in.OrderDate = ""
	in.Status = ""

	errs := validate.Struct(in)
	if validate.HasErrors(errs) {
		t.Errorf("nullable empty fields should pass, got: %v", errs)
	}
}

func TestEmailAndURL(t *testing.T) {
	in := valid()
	in.Email = "not-an-email"
	in.Website = "://broken"

	errs := validate.Struct(in)
	if _, ok := errs["email"]; !ok {
		t.Error("expected email error")
	}
	if _, ok := errs["website"]; !ok {
		t.Error("expected website error")
	}
}

func TestDateFormat(t *testing.T) {
	in := valid()
	in.OrderDate = "01/03/2026"

	errs := validate.Struct(in)
	if _, ok := errs["order_date"]; !ok {
		t.Error("expected order_date error for non ISO format")
	}
}

func TestInRule(t *testing.T) {
	in := valid()
	in.Status = "unknown"

	errs := validate.Struct(in)
	if _, ok := errs["status"]; !ok {
		t.Error("expected status error for value outside the set")
	}
}

func TestNumericBounds(t *testing.T) {
	in := valid()
	in.PaidProduct = -1
	in.Quantity = 1000

	errs := validate.Struct(in)
	if _, ok := errs["paid_product"]; !ok {
		t.Error("expected paid_product gte error")
	}
	if _, ok := errs["quantity"]; !ok {
		t.Error("expected quantity lte error")
	}
}

func TestMaxLength(t *testing.T) {
	in := valid()
	for len(in.CustomerName) <= 50 {
		in.CustomerName += in.CustomerName
	}

	errs := validate.Struct(in)
	if _, ok := errs["customer_name"]; !ok {
		t.Error("expected customer_name max error")
	}
}
