package fortune

type DrawRequest struct {
	Question string `json:"question"`
}

type DrawResponse struct {
	Card     string `json:"card"`
	Reversed bool   `json:"reversed"`
	Reading  string `json:"reading"`
}
