package services

import (
	"errors"
	"fmt"
	"math"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidateEntryInput checks the ranges the form widgets enforce. The
// returned error, when not nil, is a validation.Errors keyed by form field
// name.
func ValidateEntryInput(in EntryInput) error {
	labels := make([]interface{}, len(CutSizeOptions))
	for i, c := range CutSizeOptions {
		labels[i] = c.Label
	}

	return validation.ValidateStruct(&in,
		validation.Field(&in.GSM,
			validation.Min(0).Error("GSM cannot be negative"),
			validation.Max(MaxCount).Error(fmt.Sprintf("GSM must be at most %d", MaxCount)),
		),
		validation.Field(&in.PaperRate, validation.Min(0.0).Error("Paper rate cannot be negative")),
		validation.Field(&in.CutSize,
			validation.Required.Error("Cut size is required"),
			validation.In(labels...).Error("Unknown cut size"),
		),
		validation.Field(&in.RimSize,
			validation.Required.Error("Rim size must be at least 1"),
			validation.Min(1).Error("Rim size must be at least 1"),
			validation.Max(MaxCount).Error(fmt.Sprintf("Rim size must be at most %d", MaxCount)),
		),
		validation.Field(&in.TotalPaper,
			validation.Min(0).Error("Total paper cannot be negative"),
			validation.Max(MaxCount).Error(fmt.Sprintf("Total paper must be at most %d", MaxCount)),
		),
		validation.Field(&in.Printing, validation.Min(0.0).Error("Printing cannot be negative")),
		validation.Field(&in.Binding, validation.Min(0.0).Error("Binding cannot be negative")),
	)
}

// MaxCount bounds the whole-number inputs. Input beyond the int32 range is
// clamped by CoerceInt and then rejected here.
const MaxCount = 1_000_000_000

// MaxAmount is the largest derived money value an entry may carry.
const MaxAmount = 1e15

// validateDerived rejects calculated amounts that overflowed or exceed
// MaxAmount, attributing them to the input that drove them.
func validateDerived(res CalcResult) error {
	errs := validation.Errors{}
	switch {
	case !withinAmount(res.TotalAmount):
		errs["paper_rate"] = validation.NewError("validation_amount_too_large", "Paper rate is too large for this quantity")
	case !withinAmount(res.FinalTotal):
		errs["printing"] = validation.NewError("validation_amount_too_large", "Printing and binding are too large")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func withinAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && math.Abs(v) <= MaxAmount
}

// FieldErrors flattens a validation error into a field -> message map for
// re-rendering a form. Errors that are not field-level land under "_form".
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)
	if err == nil {
		return out
	}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		for field, ferr := range verrs {
			out[field] = ferr.Error()
		}
		return out
	}
	out["_form"] = err.Error()
	return out
}
