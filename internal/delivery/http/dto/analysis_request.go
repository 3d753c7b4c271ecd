package dto

type AnalyzeTextRequest struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

type AnalyzeBatchRequest struct {
	Texts []string `json:"texts"`
}
