package dto

type CreateMessageRequest struct {
	Name            string `json:"name"`
	Content         string `json:"content"`
	LocationCountry string `json:"location_country,omitempty"`
	LocationCity    string `json:"location_city,omitempty"`
}

type AddMediaRequest struct {
	Kind      string `json:"kind"`
	URL       string `json:"url"`
	SizeBytes int64  `json:"size_bytes"`
}
