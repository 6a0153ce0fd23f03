package domain

type ImageRequest struct {
	ImagePrompt string `json:"image_prompt"`
	Location    string `json:"location"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type GeneratedImage struct {
	URL         string `json:"image_url"`
	ContentType string `json:"content_type"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// IPLocation is the coarse position of a caller derived from its address.
type IPLocation struct {
	IP         string      `json:"ip,omitempty"`
	City       string      `json:"city"`
	Country    string      `json:"country,omitempty"`
	Coordinate *Coordinate `json:"coordinate,omitempty"`
}
