package matches

import (
	"math"
	"strconv"

	"skincare-recommender/internal/profile"
	"skincare-recommender/internal/recommendations"
)

// recommendRequest is the JSON body of a recommendation request. Every
// field is optional and may be a string or a number; skinProblems may also
// be a list.
type recommendRequest struct {
	Gender       any `json:"gender"`
	Age          any `json:"age"`
	SkinType     any `json:"skinType"`
	SkinProblems any `json:"skinProblems"`
	Budget       any `json:"budget"`
	Location     any `json:"location"`
}

func (r recommendRequest) input() profile.Input {
	return profile.Input{
		Gender:       r.Gender,
		Age:          r.Age,
		SkinType:     r.SkinType,
		SkinProblems: r.SkinProblems,
		Budget:       r.Budget,
		Location:     r.Location,
	}
}

// ProfileResponse echoes the normalized profile.
type ProfileResponse struct {
	Gender       string   `json:"gender"`
	Age          int      `json:"age"`
	SkinType     string   `json:"skinType"`
	SkinProblems []string `json:"skinProblems"`
	Budget       *float64 `json:"budget"`
	Location     string   `json:"location,omitempty"`
}

// MatchResponse is one ranked service.
type MatchResponse struct {
	Rank        int                         `json:"rank"`
	ServiceName string                      `json:"serviceName"`
	Score       float64                     `json:"score"`
	Price       float64                     `json:"price"`
	Gender      string                      `json:"gender"`
	AgeRange    string                      `json:"ageRange"`
	SkinType    string                      `json:"skinType"`
	SkinProblem string                      `json:"skinProblem"`
	Notes       string                      `json:"notes"`
	Criteria    []recommendations.Criterion `json:"criteria"`
}

// RecommendResponse is the body returned for a recommendation request.
type RecommendResponse struct {
	CatalogVersion string          `json:"catalogVersion"`
	Profile        ProfileResponse `json:"profile"`
	Count          int             `json:"count"`
	Total          int             `json:"total"`
	Results        []MatchResponse `json:"results"`
}

// NewResponse renders res for clients.
func NewResponse(res Result) RecommendResponse {
	out := RecommendResponse{
		CatalogVersion: res.CatalogVersion,
		Profile:        toProfileResponse(res.Profile),
		Count:          len(res.Matches),
		Total:          res.Total,
		Results:        make([]MatchResponse, 0, len(res.Matches)),
	}
	for i, m := range res.Matches {
		out.Results = append(out.Results, toMatchResponse(i+1, m))
	}
	return out
}

func toProfileResponse(p profile.Profile) ProfileResponse {
	resp := ProfileResponse{
		Gender:       p.Gender,
		Age:          p.Age,
		SkinType:     p.SkinType,
		SkinProblems: p.SkinProblems.Values(),
		Location:     p.Location,
	}
	if p.BudgetSet {
		budget := p.Budget
		resp.Budget = &budget
	}
	return resp
}

func toMatchResponse(rank int, m recommendations.Match) MatchResponse {
	svc := m.Service
	criteria := m.Criteria
	if criteria == nil {
		criteria = []recommendations.Criterion{}
	}
	return MatchResponse{
		Rank:        rank,
		ServiceName: svc.Name,
		Score:       roundScore(m.Score),
		Price:       svc.Price,
		Gender:      svc.RawGender,
		AgeRange:    strconv.Itoa(svc.MinAge) + "-" + strconv.Itoa(svc.MaxAge),
		SkinType:    svc.RawSkinType,
		SkinProblem: svc.RawSkinProblem,
		Notes:       svc.Notes,
		Criteria:    criteria,
	}
}

func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
