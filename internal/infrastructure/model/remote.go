package model

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"hsc_predictor/internal/domain"
	"hsc_predictor/internal/domain/entity"
	"hsc_predictor/pkg/errcodes"
)

const maxResponseSize = 1 << 16

var errBadResponse = errors.New("unexpected inference response")

type remoteRequest struct {
	Instances []entity.FeatureRecord `json:"instances"`
}

type remoteResponse struct {
	Predictions []*float64 `json:"predictions"`
}

// Remote asks an HTTP inference endpoint for predictions. The endpoint takes
// {"instances":[record]} and answers {"predictions":[value]}.
type Remote struct {
	url    string
	client *http.Client
}

func NewRemote(url string, client *http.Client) *Remote {
	if client == nil {
		client = http.DefaultClient
	}

	return &Remote{
		url:    url,
		client: client,
	}
}

func (r *Remote) Predict(ctx context.Context, record entity.FeatureRecord) (float64, error) {
	payload, err := json.Marshal(remoteRequest{Instances: []entity.FeatureRecord{record}})
	if err != nil {
		return 0, fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, domain.WrapError(err, errcodes.ModelUnavailable, "model unavailable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return 0, domain.WrapError(err, errcodes.ModelUnavailable, "model unavailable")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return 0, domain.WrapError(
			fmt.Errorf("status code %d: %w", resp.StatusCode, errBadResponse),
			errcodes.ModelUnavailable,
			"model unavailable",
		)
	}

	var result remoteResponse
	if err = json.Unmarshal(body, &result); err != nil {
		return 0, domain.WrapError(err, errcodes.ModelBadResponse, "malformed model response")
	}

	if len(result.Predictions) != 1 {
		return 0, domain.WrapError(
			fmt.Errorf("%d predictions instead of one: %w", len(result.Predictions), errBadResponse),
			errcodes.ModelBadResponse,
			"malformed model response",
		)
	}

	if result.Predictions[0] == nil {
		return 0, domain.WrapError(
			fmt.Errorf("null prediction: %w", errBadResponse),
			errcodes.ModelBadResponse,
			"malformed model response",
		)
	}

	return *result.Predictions[0], nil
}

func (r *Remote) Describe() string {
	return r.url
}
