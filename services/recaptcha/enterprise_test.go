package recaptcha

import (
	"context"
	"testing"

	"cloud.google.com/go/recaptchaenterprise/v2/apiv1/recaptchaenterprisepb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"randevuapi/model"
)

type fakeAssessments struct {
	resp *recaptchaenterprisepb.Assessment
	err  error
	req  *recaptchaenterprisepb.CreateAssessmentRequest
}

func (f *fakeAssessments) CreateAssessment(_ context.Context, req *recaptchaenterprisepb.CreateAssessmentRequest, _ ...gax.CallOption) (*recaptchaenterprisepb.Assessment, error) {
	f.req = req
	return f.resp, f.err
}

func (f *fakeAssessments) Close() error { return nil }

func enterpriseCfg() model.RecaptchaConfig {
	return model.RecaptchaConfig{ProjectID: "proj", SiteKey: "site", MinScore: DefaultMinScore}
}

func assessment(valid bool, score float32) *recaptchaenterprisepb.Assessment {
	return &recaptchaenterprisepb.Assessment{
		TokenProperties: &recaptchaenterprisepb.TokenProperties{Valid: valid, Action: "randevu_form"},
		RiskAnalysis:    &recaptchaenterprisepb.RiskAnalysis{Score: score},
	}
}

func TestEnterprise_PassesAboveThreshold(t *testing.T) {
	fake := &fakeAssessments{resp: assessment(true, 0.9)}
	c := newEnterpriseClient(fake, enterpriseCfg())

	res := c.Verify(context.Background(), "tok", "1.2.3.4")
	if !res.Success {
		t.Fatalf("expected success")
	}
	if fake.req.GetParent() != "projects/proj" {
		t.Fatalf("unexpected parent %q", fake.req.GetParent())
	}
	ev := fake.req.GetAssessment().GetEvent()
	if ev.GetToken() != "tok" || ev.GetSiteKey() != "site" || ev.GetUserIpAddress() != "1.2.3.4" {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestEnterprise_LowScoreFails(t *testing.T) {
	c := newEnterpriseClient(&fakeAssessments{resp: assessment(true, 0.1)}, enterpriseCfg())
	if c.Verify(context.Background(), "tok", "").Success {
		t.Fatalf("expected failure for low score")
	}
}

func TestEnterprise_InvalidTokenFails(t *testing.T) {
	c := newEnterpriseClient(&fakeAssessments{resp: assessment(false, 0.9)}, enterpriseCfg())
	if c.Verify(context.Background(), "tok", "").Success {
		t.Fatalf("expected failure for invalid token")
	}
}

func TestEnterprise_RPCErrorFailsClosed(t *testing.T) {
	c := newEnterpriseClient(&fakeAssessments{err: status.Error(codes.Unavailable, "backend down")}, enterpriseCfg())
	if c.Verify(context.Background(), "tok", "").Success {
		t.Fatalf("expected failure on rpc error")
	}
}
