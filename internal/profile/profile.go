// Package profile builds the normalized user query matched against the
// catalog.
package profile

import (
	"net/url"

	"skincare-recommender/internal/normalize"
)

// Input holds raw profile values as submitted. Any field may be nil, an
// empty string, a number or (for SkinProblems) a []string.
type Input struct {
	Gender       any
	Age          any
	SkinType     any
	SkinProblems any
	Budget       any
	Location     any
}

// Profile is one normalized query. It is a value type and never changes
// after New returns.
type Profile struct {
	// Gender is "" or "any" when unrestricted.
	Gender string
	Age    int
	// SkinType is "" when the user has no preference.
	SkinType     string
	SkinProblems normalize.TokenSet
	Budget       float64
	// BudgetSet is false when the budget field was left blank.
	BudgetSet bool
	// Location is echoed back to the caller and not used for matching.
	Location string
}

// New normalizes in. It never fails; malformed values take their defaults.
func New(in Input) Profile {
	age := normalize.Int(in.Age, 0)
	if age < 0 {
		age = 0
	}

	budgetSet := !normalize.IsBlank(in.Budget)
	budget := 0.0
	if budgetSet {
		budget = normalize.Number(in.Budget, 0)
		if budget < 0 {
			budget = 0
		}
	}

	return Profile{
		Gender:       genderPreference(in.Gender),
		Age:          age,
		SkinType:     normalize.Scalar(in.SkinType),
		SkinProblems: normalize.MultiValue(in.SkinProblems),
		Budget:       budget,
		BudgetSet:    budgetSet,
		Location:     normalize.Text(in.Location),
	}
}

// FromForm reads the profile fields of a submitted form. skin_problems may
// be repeated (multi-select) or comma separated.
func FromForm(form url.Values) Profile {
	return New(Input{
		Gender:       formValue(form, "gender"),
		Age:          formValue(form, "age"),
		SkinType:     formValue(form, "skin_type"),
		SkinProblems: form["skin_problems"],
		Budget:       formValue(form, "budget"),
		Location:     formValue(form, "location"),
	})
}

// Unrestricted reports whether the profile accepts services of any gender.
func (p Profile) Unrestricted() bool {
	return p.Gender == "" || p.Gender == normalize.GenderAny
}

func genderPreference(raw any) string {
	if normalize.IsBlank(raw) {
		return ""
	}
	return normalize.Gender(raw)
}

func formValue(form url.Values, key string) any {
	vals, ok := form[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	return vals[0]
}
