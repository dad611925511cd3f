package mailer

import (
	"strings"
	"testing"
	"time"

	"randevuapi/model"
)

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestRender_RequiredOnly(t *testing.T) {
	html, text, err := Render(model.Submission{FullName: "Ali Veli", Phone: "05551234567"}, "Klinik", "example.com", fixedNow)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(html, "Ali Veli") || !strings.Contains(text, "Ad Soyad: Ali Veli") {
		t.Fatalf("expected name in both bodies")
	}
	if n := strings.Count(html, `href="tel:05551234567"`); n != 2 {
		t.Fatalf("expected 2 tel links, got %d", n)
	}
	for _, label := range []string{"E-posta", "Konu / Hizmet", "Tarih", "Mesaj"} {
		if strings.Contains(html, label) {
			t.Fatalf("expected no %q row in html", label)
		}
	}
	for _, label := range []string{"E-posta:", "Konu:", "Tarih:", "Mesaj:"} {
		if strings.Contains(text, label) {
			t.Fatalf("expected no %q line in text", label)
		}
	}
	if strings.Contains(text, "\n\n\n") {
		t.Fatalf("expected no blank placeholders in text:\n%s", text)
	}
	if !strings.Contains(html, "© 2026 Klinik") {
		t.Fatalf("expected footer with year and title")
	}
}

func TestRender_AllFields(t *testing.T) {
	sub := model.Submission{
		FullName: "Ali Veli",
		Phone:    "05551234567",
		Email:    "ali@example.com",
		Subject:  "Muayene",
		Date:     "2026-03-05",
		Message:  "Randevu almak istiyorum",
	}
	html, text, err := Render(sub, "Klinik", "", fixedNow)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(html, `href="mailto:ali@example.com"`) {
		t.Fatalf("expected mailto link")
	}
	for _, want := range []string{"Muayene", "2026-03-05", "Randevu almak istiyorum"} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in html", want)
		}
	}
	for _, want := range []string{"E-posta: ali@example.com", "Konu: Muayene", "Tarih: 2026-03-05", "Mesaj: Randevu almak istiyorum"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in text", want)
		}
	}
}

func TestRender_EscapesHTML(t *testing.T) {
	sub := model.Submission{
		FullName: `<script>alert(1)</script>`,
		Phone:    "0555",
		Message:  `<b>bold</b> & "quotes"`,
	}
	html, text, err := Render(sub, "Klinik", "", fixedNow)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if strings.Contains(html, "<script>alert(1)</script>") || strings.Contains(html, "<b>bold</b>") {
		t.Fatalf("expected user values to be escaped in html")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Fatalf("expected escaped script tag")
	}
	if !strings.Contains(text, "<b>bold</b>") {
		t.Fatalf("expected plain text to keep the raw value")
	}
}
