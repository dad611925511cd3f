package dto

// AssessmentResult is the outcome of a bot-score check.
// Score and Action are kept for logging; Reasons carries provider
// error codes or risk reasons.
type AssessmentResult struct {
	Success bool
	Score   float32
	Action  string
	Reasons []string
}
