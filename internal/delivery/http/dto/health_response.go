package dto

type HealthResponse struct {
	Status      string `json:"status"`
	JobProfiles int    `json:"job_profiles"`
	Skills      int    `json:"skills"`
	History     string `json:"history"`
	Cache       string `json:"cache"`
}
