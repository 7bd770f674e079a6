package recommendations

import (
	"skincare-recommender/internal/catalog"
	"skincare-recommender/internal/normalize"
	"skincare-recommender/internal/profile"
)

const criterionPoints = 1.0

// Evaluate scores svc for p. Each satisfied criterion adds one point and the
// service's base score is added on top. A failed hard criterion disqualifies
// the service and forces the score to 0. A hard budget only gates; it earns a
// point when the policy makes it soft.
func Evaluate(p profile.Profile, svc catalog.Service, pol Policy) Verdict {
	var v Verdict

	checks := [criterionCount]struct {
		key       string
		satisfied bool
		hard      bool
	}{
		{CriterionGender, genderMatches(p, svc), false},
		{CriterionAge, svc.MinAge <= p.Age && p.Age <= svc.MaxAge, pol.AgeHard},
		{CriterionSkinType, p.SkinType == "" || svc.SkinTypes.Has(p.SkinType), false},
		{CriterionSkinProblems, problemsMatch(p, svc, pol.Problems), false},
		{CriterionBudget, withinBudget(p, svc, pol), pol.BudgetHard},
	}

	score := 0.0
	for i, c := range checks {
		points := 0.0
		switch {
		case !c.satisfied && c.hard:
			v.Disqualified = true
		case c.satisfied && !(c.key == CriterionBudget && c.hard):
			points = criterionPoints
		}
		score += points
		v.Criteria[i] = Criterion{Key: c.key, Satisfied: c.satisfied, Hard: c.hard, Points: points}
	}

	if v.Disqualified {
		v.Score = 0
		return v
	}
	v.Score = score + svc.BaseScore
	if v.Score < 0 {
		v.Score = 0
	}
	return v
}

// genderMatches gives an unrestricted profile the point only from rules open
// to everyone.
func genderMatches(p profile.Profile, svc catalog.Service) bool {
	if svc.GenderRule == normalize.GenderAny {
		return true
	}
	return !p.Unrestricted() && svc.GenderRule == p.Gender
}

func problemsMatch(p profile.Profile, svc catalog.Service, mode ProblemMatch) bool {
	if p.SkinProblems.Empty() {
		return true
	}
	if mode == MatchAll {
		return svc.SkinProblems.All(p.SkinProblems)
	}
	return svc.SkinProblems.Any(p.SkinProblems)
}

func withinBudget(p profile.Profile, svc catalog.Service, pol Policy) bool {
	if !p.BudgetSet && pol.BlankBudgetUnlimited {
		return true
	}
	return svc.Price <= p.Budget
}
