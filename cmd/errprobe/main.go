// Command errprobe sends a single GET request to a configured WeChat
// endpoint and logs how the response classifies against the apierror
// taxonomy. Useful for checking credentials and endpoint health from a
// shell.
//
// Configuration is taken from the environment: PROBE_URL (required),
// PROBE_TIMEOUT (default 15s) and PROBE_STRICT (default false).
package main

import (
	"context"
	"errors"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/gosocial/wechat-connect/apierror"
	"github.com/gosocial/wechat-connect/internal/config"
	"github.com/gosocial/wechat-connect/internal/logger"
	"github.com/gosocial/wechat-connect/wechat"
)

func main() {
	log := logger.New("errprobe")

	cfg, err := config.GetProbeConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	opts := []wechat.Option{wechat.WithLogger(log.Logger)}
	if cfg.Strict {
		opts = append(opts, wechat.WithStrictCheck())
	}
	handler := wechat.NewErrorHandler(opts...)

	client := wechat.Attach(resty.New().SetTimeout(cfg.RequestTimeout), handler)

	requestID := uuid.NewString()
	resp, err := client.R().
		SetContext(context.Background()).
		SetHeader("X-Request-Id", requestID).
		Get(cfg.URL)

	probeLog := log.With().Str("request_id", requestID).Str("url", cfg.URL).Logger()

	if err != nil {
		var apiErr *apierror.Error
		if errors.As(err, &apiErr) {
			probeLog.Error().
				Str("provider", apiErr.Provider).
				Str("category", apiErr.Kind().Error()).
				Str("details", apiErr.Message).
				Msg("endpoint reported an application error")
			return
		}
		probeLog.Fatal().Err(err).Msg("probe request failed")
	}

	probeLog.Info().
		Int("status", resp.StatusCode()).
		Int("body_bytes", len(resp.Body())).
		Msg("endpoint healthy, no application error detected")
}
