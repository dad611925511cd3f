package recaptcha

import (
	"context"
	"fmt"
	"log"
	"time"

	recaptchaenterprise "cloud.google.com/go/recaptchaenterprise/v2/apiv1"
	"cloud.google.com/go/recaptchaenterprise/v2/apiv1/recaptchaenterprisepb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"
	"google.golang.org/grpc/status"

	"randevuapi/dto"
	"randevuapi/model"
)

type assessmentClient interface {
	CreateAssessment(ctx context.Context, req *recaptchaenterprisepb.CreateAssessmentRequest, opts ...gax.CallOption) (*recaptchaenterprisepb.Assessment, error)
	Close() error
}

// EnterpriseClient scores tokens through reCAPTCHA Enterprise assessments.
// Credentials come from cfg.CredentialsFile, or the environment
// (GOOGLE_APPLICATION_CREDENTIALS) when it is empty.
type EnterpriseClient struct {
	client    assessmentClient
	projectID string
	siteKey   string
	minScore  float32
	timeout   time.Duration
}

func NewEnterpriseClient(ctx context.Context, cfg model.RecaptchaConfig) (*EnterpriseClient, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	client, err := recaptchaenterprise.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("recaptcha enterprise client: %w", err)
	}
	return newEnterpriseClient(client, cfg), nil
}

func newEnterpriseClient(client assessmentClient, cfg model.RecaptchaConfig) *EnterpriseClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &EnterpriseClient{
		client:    client,
		projectID: cfg.ProjectID,
		siteKey:   cfg.SiteKey,
		minScore:  cfg.MinScore,
		timeout:   timeout,
	}
}

func (c *EnterpriseClient) Verify(ctx context.Context, token, remoteIP string) dto.AssessmentResult {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := &recaptchaenterprisepb.CreateAssessmentRequest{
		Parent: "projects/" + c.projectID,
		Assessment: &recaptchaenterprisepb.Assessment{
			Event: &recaptchaenterprisepb.Event{
				Token:         token,
				SiteKey:       c.siteKey,
				UserIpAddress: remoteIP,
			},
		},
	}

	resp, err := c.client.CreateAssessment(ctx, req)
	if err != nil {
		log.Printf("recaptcha: create assessment failed (%s): %v", status.Code(err), err)
		return dto.AssessmentResult{}
	}

	props := resp.GetTokenProperties()
	if !props.GetValid() {
		return dto.AssessmentResult{
			Action:  props.GetAction(),
			Reasons: []string{props.GetInvalidReason().String()},
		}
	}

	risk := resp.GetRiskAnalysis()
	reasons := make([]string, 0, len(risk.GetReasons()))
	for _, r := range risk.GetReasons() {
		reasons = append(reasons, r.String())
	}

	score := risk.GetScore()
	log.Printf("recaptcha: enterprise score=%.2f action=%q", score, props.GetAction())
	return dto.AssessmentResult{
		Success: passes(score, c.minScore),
		Score:   score,
		Action:  props.GetAction(),
		Reasons: reasons,
	}
}

func (c *EnterpriseClient) Close() error {
	return c.client.Close()
}
