package profile

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNormalizesValues(t *testing.T) {
	p := New(Input{
		Gender:       " Female ",
		Age:          "25",
		SkinType:     "Oily",
		SkinProblems: []string{"Acne", "Pigmentation"},
		Budget:       "2,000",
		Location:     " Makati ",
	})

	assert.Equal(t, "female", p.Gender)
	assert.Equal(t, 25, p.Age)
	assert.Equal(t, "oily", p.SkinType)
	assert.Equal(t, []string{"acne", "pigmentation"}, p.SkinProblems.Values())
	assert.Equal(t, 2000.0, p.Budget)
	assert.True(t, p.BudgetSet)
	assert.Equal(t, "Makati", p.Location)
	assert.False(t, p.Unrestricted())
}

func TestNewToleratesMissingValues(t *testing.T) {
	p := New(Input{})

	assert.Equal(t, "", p.Gender)
	assert.True(t, p.Unrestricted())
	assert.Equal(t, 0, p.Age)
	assert.Equal(t, "", p.SkinType)
	assert.True(t, p.SkinProblems.Empty())
	assert.False(t, p.BudgetSet)
	assert.Equal(t, 0.0, p.Budget)
}

func TestNewBudgetSemantics(t *testing.T) {
	cases := []struct {
		name    string
		raw     any
		wantSet bool
		want    float64
	}{
		{name: "blank string", raw: "  ", wantSet: false, want: 0},
		{name: "zero means free only", raw: "0", wantSet: true, want: 0},
		{name: "number", raw: 1500, wantSet: true, want: 1500},
		{name: "garbage", raw: "lots", wantSet: true, want: 0},
		{name: "negative", raw: "-5", wantSet: true, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := New(Input{Budget: tc.raw})
			assert.Equal(t, tc.wantSet, p.BudgetSet)
			assert.Equal(t, tc.want, p.Budget)
		})
	}
}

func TestNewAgeDefaults(t *testing.T) {
	assert.Equal(t, 0, New(Input{Age: "old"}).Age)
	assert.Equal(t, 0, New(Input{Age: "-4"}).Age)
	assert.Equal(t, 31, New(Input{Age: 31.7}).Age)
}

func TestFromForm(t *testing.T) {
	form := url.Values{
		"gender":        {"Any"},
		"age":           {"40"},
		"skin_type":     {""},
		"skin_problems": {"Wrinkles", "dryness, Wrinkles"},
		"budget":        {""},
	}
	p := FromForm(form)

	assert.True(t, p.Unrestricted())
	assert.Equal(t, 40, p.Age)
	assert.Equal(t, "", p.SkinType)
	assert.Equal(t, []string{"wrinkles", "dryness"}, p.SkinProblems.Values())
	assert.False(t, p.BudgetSet)
}
