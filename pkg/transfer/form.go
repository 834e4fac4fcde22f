package transfer

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/chainsafe/bridge-console/pkg/address"
	"github.com/chainsafe/bridge-console/pkg/location"
	"github.com/chainsafe/bridge-console/pkg/route"
)

// DefaultAmount is the amount a new form starts with
const DefaultAmount = "0"

var amountExpr = regexp.MustCompile(`^[1-9][0-9]{0,37}$`)

// FormValues is the user-editable field set of the transfer form.
// Amount is a base-unit decimal integer string.
type FormValues struct {
	Source      string `json:"source" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	Token       string `json:"token" validate:"required"`
	Amount      string `json:"amount" validate:"amount"`
	Beneficiary string `json:"beneficiary" validate:"required"`
}

// FieldError is a syntax problem with one form field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldErrors is the list of syntax problems found in a form
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "no field errors"
	}
	return fmt.Sprintf("invalid form: %s (and %d more)", e[0].Error(), len(e)-1)
}

// Messages returns the message of every field error, in order
func (e FieldErrors) Messages() []string {
	out := make([]string, 0, len(e))
	for _, fe := range e {
		out = append(out, fe.Message)
	}
	return out
}

var fieldMessages = map[string]string{
	"source":      "Select source.",
	"destination": "Select destination.",
	"token":       "Select token.",
	"amount":      "Invalid amount",
	"beneficiary": "Select beneficiary.",
}

const invalidAddressMessage = "Invalid address format."

var (
	formValidator     *validator.Validate
	formValidatorOnce sync.Once
)

func getValidator() *validator.Validate {
	formValidatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			return jsonName(f)
		})
		_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
			return amountExpr.MatchString(fl.Field().String())
		})
		formValidator = v
	})
	return formValidator
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// DefaultValues returns the form values for a fresh form on r
func DefaultValues(r route.Route) FormValues {
	return FormValues{
		Source:      r.SourceID(),
		Destination: r.DestinationID(),
		Token:       r.Token,
		Amount:      DefaultAmount,
	}
}

// Validate checks field syntax. The beneficiary must be an address format
// destination can receive to. A nil result means the form is well formed.
func (v FormValues) Validate(destination *location.Location) FieldErrors {
	var out FieldErrors

	if err := getValidator().Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return FieldErrors{{Field: "form", Message: err.Error()}}
		}
		for _, fe := range verrs {
			out = append(out, FieldError{Field: fe.Field(), Message: fieldMessages[fe.Field()]})
		}
	}

	if v.Beneficiary != "" && !address.ValidBeneficiary(destination, v.Beneficiary) {
		out = append(out, FieldError{Field: "beneficiary", Message: invalidAddressMessage})
	}

	return out
}

// ParseAmount converts a validated amount string into base units
func ParseAmount(s string) (*big.Int, error) {
	if !amountExpr.MatchString(s) {
		return nil, FieldError{Field: "amount", Message: fieldMessages["amount"]}
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, FieldError{Field: "amount", Message: fieldMessages["amount"]}
	}
	return n, nil
}
