package connection

import (
	"context"
	"io"

	"randevuapi/model"
	"randevuapi/services/recaptcha"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// RecaptchaConnection builds the configured verifier. The returned closer
// releases the Enterprise gRPC client, if any.
func RecaptchaConnection(ctx context.Context, cfg model.RecaptchaConfig) (recaptcha.Verifier, io.Closer, error) {
	if cfg.Provider == model.RecaptchaEnterprise {
		client, err := recaptcha.NewEnterpriseClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return client, client, nil
	}
	return recaptcha.NewSiteVerifyClient(cfg, nil), nopCloser{}, nil
}
