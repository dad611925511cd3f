package dto

import (
	"strconv"
	"strings"

	"randevuapi/model"
)

// Accepted input names per logical field, highest priority first.
var (
	FullNameFields = []string{"adSoyad", "name"}
	PhoneFields    = []string{"telefon", "phone"}
	EmailFields    = []string{"email"}
	SubjectFields  = []string{"konu", "subject", "hizmetSecin"}
	DateFields     = []string{"tarih", "date"}
	MessageFields  = []string{"mesaj", "message", "sikayet"}
	CaptchaFields  = []string{"captcha"}
)

// RandevuRequest is the raw JSON object posted by the appointment form.
type RandevuRequest map[string]any

// Lookup returns the first non-empty value among names.
func (r RandevuRequest) Lookup(names ...string) string {
	for _, name := range names {
		if v := stringValue(r[name]); v != "" {
			return v
		}
	}
	return ""
}

func (r RandevuRequest) Captcha() string {
	return r.Lookup(CaptchaFields...)
}

func (r RandevuRequest) Submission() model.Submission {
	return model.Submission{
		FullName: r.Lookup(FullNameFields...),
		Phone:    r.Lookup(PhoneFields...),
		Email:    r.Lookup(EmailFields...),
		Subject:  r.Lookup(SubjectFields...),
		Date:     r.Lookup(DateFields...),
		Message:  r.Lookup(MessageFields...),
	}
}

// stringValue keeps strings and numbers; anything else counts as absent.
func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
