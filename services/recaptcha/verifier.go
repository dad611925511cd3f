package recaptcha

import (
	"context"
	"slices"

	"randevuapi/dto"
)

// DefaultActions are the action labels the appointment forms send.
var DefaultActions = []string{"randevu_form", "contact_form"}

const DefaultMinScore float32 = 0.5

// Verifier checks a client token. Implementations never fail loudly:
// transport and decoding problems yield an unsuccessful result.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) dto.AssessmentResult
}

// ActionAccepted reports whether action is one of accepted. An empty action
// is accepted since older widgets do not send one.
func ActionAccepted(action string, accepted []string) bool {
	return action == "" || slices.Contains(accepted, action)
}

func passes(score, threshold float32) bool {
	return score >= threshold
}
