package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"randevuapi/dto"
	"randevuapi/model"
)

const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// SiteVerifyClient talks to the reCAPTCHA v3 siteverify endpoint.
type SiteVerifyClient struct {
	secret   string
	endpoint string
	minScore float32
	http     *http.Client
}

func NewSiteVerifyClient(cfg model.RecaptchaConfig, hc *http.Client) *SiteVerifyClient {
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	endpoint := cfg.VerifyURL
	if endpoint == "" {
		endpoint = DefaultVerifyURL
	}
	return &SiteVerifyClient{
		secret:   cfg.SecretKey,
		endpoint: endpoint,
		minScore: cfg.MinScore,
		http:     hc,
	}
}

func (c *SiteVerifyClient) Verify(ctx context.Context, token, remoteIP string) dto.AssessmentResult {
	data, err := c.siteVerify(ctx, token, remoteIP)
	if err != nil {
		log.Printf("recaptcha: siteverify failed: %v", err)
		return dto.AssessmentResult{}
	}

	if !data.Success || data.Score == nil {
		return dto.AssessmentResult{Action: data.Action, Reasons: data.ErrorCodes}
	}

	score := *data.Score
	log.Printf("recaptcha: score=%.2f action=%q", score, data.Action)
	return dto.AssessmentResult{
		Success: passes(score, c.minScore),
		Score:   score,
		Action:  data.Action,
		Reasons: data.ErrorCodes,
	}
}

func (c *SiteVerifyClient) siteVerify(ctx context.Context, token, remoteIP string) (*model.ResponseData, error) {
	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var data model.ResponseData
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &data, nil
}
