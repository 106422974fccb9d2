package dto

type DecisionRequest struct {
	Decision string `json:"decision"`
}

// StatsResponse keys follow the dashboard contract, not the DB columns.
type StatsResponse struct {
	Total     int `json:"total"`
	Approved  int `json:"approved"`
	Pending   int `json:"pending"`
	Rejected  int `json:"rejected"`
	WithMedia int `json:"withMedia"`
	Countries int `json:"countries"`
}
