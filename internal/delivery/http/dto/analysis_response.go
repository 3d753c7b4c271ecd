package dto

type JobMatchResponse struct {
	Role           string   `json:"role"`
	MatchScore     float64  `json:"match_score"`
	MatchingSkills []string `json:"matching_skills"`
	MissingSkills  []string `json:"missing_skills"`
}

type AnalysisResponse struct {
	ID        string             `json:"id,omitempty"`
	Filename  string             `json:"filename,omitempty"`
	Score     int                `json:"score"`
	Skills    []string           `json:"skills"`
	Jobs      []JobMatchResponse `json:"jobs"`
	Feedback  []string           `json:"feedback"`
	Cached    bool               `json:"cached,omitempty"`
	CreatedAt string             `json:"created_at,omitempty"`
}

type BatchItemResponse struct {
	Index  int               `json:"index"`
	Result *AnalysisResponse `json:"result,omitempty"`
	Error  string            `json:"error,omitempty"`
}
