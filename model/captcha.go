package model

// ResponseData is the body returned by the reCAPTCHA siteverify endpoint.
type ResponseData struct {
	Success     bool     `json:"success"`
	Score       *float32 `json:"score,omitempty"`
	Action      string   `json:"action,omitempty"`
	ChallengeTS string   `json:"challenge_ts,omitempty"`
	Hostname    string   `json:"hostname,omitempty"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
}
