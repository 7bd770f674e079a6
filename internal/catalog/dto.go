package catalog

// ServiceResponse is the outward-facing representation of a catalog service.
type ServiceResponse struct {
	Position     int      `json:"position"`
	Name         string   `json:"name"`
	Gender       string   `json:"gender"`
	MinAge       int      `json:"minAge"`
	MaxAge       int      `json:"maxAge"`
	SkinTypes    []string `json:"skinTypes"`
	SkinProblems []string `json:"skinProblems"`
	Price        float64  `json:"price"`
	BaseScore    float64  `json:"baseScore"`
	Notes        string   `json:"notes"`
}

// ServicesResponse lists the whole catalog in load order.
type ServicesResponse struct {
	Version  string            `json:"version"`
	Count    int               `json:"count"`
	Services []ServiceResponse `json:"services"`
}

// OptionsResponse carries the profile form choices.
type OptionsResponse struct {
	Version string `json:"version"`
	Options
}

func toServiceResponse(svc Service) ServiceResponse {
	return ServiceResponse{
		Position:     svc.Position,
		Name:         svc.Name,
		Gender:       svc.GenderRule,
		MinAge:       svc.MinAge,
		MaxAge:       svc.MaxAge,
		SkinTypes:    svc.SkinTypes.Values(),
		SkinProblems: svc.SkinProblems.Values(),
		Price:        svc.Price,
		BaseScore:    svc.BaseScore,
		Notes:        svc.Notes,
	}
}
