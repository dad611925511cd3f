package dto

// Envelope is the body of every /api/randevu response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

func OK(message string) Envelope {
	return Envelope{Success: true, Message: message}
}
