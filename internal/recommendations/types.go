package recommendations

import (
	"strings"

	"skincare-recommender/internal/catalog"
)

// Criterion keys, in evaluation order.
const (
	CriterionGender       = "gender"
	CriterionAge          = "age"
	CriterionSkinType     = "skinType"
	CriterionSkinProblems = "skinProblems"
	CriterionBudget       = "budget"
)

const criterionCount = 5

// Criterion is the outcome of one matching rule for one service.
type Criterion struct {
	Key       string  `json:"key"`
	Satisfied bool    `json:"satisfied"`
	Hard      bool    `json:"hard"`
	Points    float64 `json:"points"`
}

// Verdict is the evaluation of one profile against one service.
type Verdict struct {
	Disqualified bool
	Score        float64
	Criteria     [criterionCount]Criterion
}

// Match is a ranked, qualifying service.
type Match struct {
	Service  catalog.Service
	Score    float64
	Criteria []Criterion
}

// ProblemMatch selects how profile skin problems are compared.
type ProblemMatch string

const (
	// MatchAny is satisfied when any selected problem is treated.
	MatchAny ProblemMatch = "any"
	// MatchAll requires every selected problem to be treated.
	MatchAll ProblemMatch = "all"
)

// ParseProblemMatch returns MatchAll for "all" and MatchAny otherwise.
func ParseProblemMatch(raw string) ProblemMatch {
	if strings.EqualFold(strings.TrimSpace(raw), string(MatchAll)) {
		return MatchAll
	}
	return MatchAny
}

// Policy switches individual rules between hard and soft behavior. A soft
// rule only withholds its point when it fails; a hard rule disqualifies.
type Policy struct {
	AgeHard              bool
	BudgetHard           bool
	Problems             ProblemMatch
	BlankBudgetUnlimited bool
}

// DefaultPolicy disqualifies on age and budget, matches any problem and
// treats a blank budget as unlimited.
func DefaultPolicy() Policy {
	return Policy{
		AgeHard:              true,
		BudgetHard:           true,
		Problems:             MatchAny,
		BlankBudgetUnlimited: true,
	}
}
