package response_models

type BriefingResponse struct {
	ID      string `json:"id"`
	Summary string `json:"summary"`
	Risk    string `json:"risk"`
}
