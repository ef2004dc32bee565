package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// candidate is the normalized input checked by the validator. Field order
// decides which failure is reported first.
type candidate struct {
	Type        string           `json:"type" validate:"required,oneof=income expense"`
	Amount      *decimal.Decimal `json:"amount" validate:"required,gte=0"`
	Description string           `json:"description" validate:"required,max=100"`
	Date        *time.Time       `json:"date" validate:"omitempty,notfuture"`
}

// Validator enforces record invariants before anything reaches storage.
type Validator struct {
	validate *validator.Validate
	location *time.Location
	now      func() time.Time
}

// NewValidator builds a Validator. Date-only inputs are read in loc, and now
// is the clock used for defaulting and for rejecting future dates.
func NewValidator(loc *time.Location, now func() time.Time) *Validator {
	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		location: loc,
		now:      now,
	}

	v.validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		return name
	})
	// Amounts are checked by sign so no precision is lost on the way to gte.
	v.validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if amount, ok := field.Interface().(decimal.Decimal); ok {
			return amount.Sign()
		}
		return nil
	}, decimal.Decimal{})
	if err := v.validate.RegisterValidation("notfuture", v.notFuture); err != nil {
		panic(err)
	}

	return v
}

// Validate returns the normalized record (trimmed description, defaulted
// date) or a *ValidationError naming the first offending field.
func (v *Validator) Validate(input TransactionInput) (Transaction, error) {
	c := candidate{
		Type:        input.Type,
		Amount:      input.Amount,
		Description: strings.TrimSpace(input.Description),
	}

	var dateErr error
	if input.Date != "" {
		date, _, err := parseDate(input.Date, v.location)
		if err != nil {
			dateErr = &ValidationError{Field: "date", Reason: "must be YYYY-MM-DD or RFC 3339"}
		} else {
			c.Date = &date
		}
	}

	if err := v.validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return Transaction{}, &ValidationError{
				Field:  fieldErrs[0].Field(),
				Reason: validationReason(fieldErrs[0]),
			}
		}
		return Transaction{}, err
	}
	if dateErr != nil {
		return Transaction{}, dateErr
	}

	date := v.now()
	if c.Date != nil {
		date = *c.Date
	}

	return Transaction{
		Type:        TransactionType(c.Type),
		Amount:      *c.Amount,
		Description: c.Description,
		Date:        date,
	}, nil
}

func (v *Validator) notFuture(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(time.Time)
	return ok && !date.After(v.now())
}

func validationReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gte":
		return "must not be negative"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "notfuture":
		return "must not be in the future"
	default:
		return "failed " + fe.Tag()
	}
}
