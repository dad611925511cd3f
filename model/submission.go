package model

// Submission is a resolved appointment/contact request.
type Submission struct {
	FullName string `validate:"required"`
	Phone    string `validate:"required"`
	Email    string
	Subject  string
	Date     string
	Message  string
}
