package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type GenerateResultKind string

const (
	GenerateOK           GenerateResultKind = "ok"
	GenerateEmpty        GenerateResultKind = "empty"
	GenerateServerError  GenerateResultKind = "server_error"
	GenerateNetworkError GenerateResultKind = "network_error"
)

// GenerateResult is the tagged outcome of one generation request. Every
// request resolves to exactly one result; the client never panics or leaks
// transport errors past its boundary.
type GenerateResult struct {
	Kind       GenerateResultKind
	Text       string
	ErrMessage string
	StatusCode int
}

type GenerateClient interface {
	Generate(ctx context.Context, message, contextInfo string) GenerateResult
}

type generateRequest struct {
	Message string `json:"message"`
	Context string `json:"context"`
}

type generateSuccessBody struct {
	Text string `json:"text"`
}

type generateErrorBody struct {
	Error string `json:"error"`
}

type generateHTTPClient struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

func NewGenerateHTTPClient(url string, timeout time.Duration, logger *logrus.Logger) GenerateClient {
	return &generateHTTPClient{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
		log: logger,
	}
}

func (c *generateHTTPClient) Generate(ctx context.Context, message, contextInfo string) GenerateResult {
	body, err := json.Marshal(generateRequest{Message: message, Context: contextInfo})
	if err != nil {
		c.log.Errorf("GenerateClient: failed to marshal request: %v", err)
		return GenerateResult{Kind: GenerateNetworkError}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(body))
	if err != nil {
		c.log.Errorf("GenerateClient: failed to create request: %v", err)
		return GenerateResult{Kind: GenerateNetworkError}
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Infof("GenerateClient: sending generation request to %s (%d chars of context)", c.url, len(contextInfo))
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Errorf("GenerateClient: request failed: %v", err)
		return GenerateResult{Kind: GenerateNetworkError}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errBody generateErrorBody
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Error != "" {
			c.log.Warnf("GenerateClient: generation endpoint returned status %d: %s", resp.StatusCode, errBody.Error)
			return GenerateResult{Kind: GenerateServerError, ErrMessage: errBody.Error, StatusCode: resp.StatusCode}
		}
		c.log.Warnf("GenerateClient: generation endpoint returned status %d with no error body", resp.StatusCode)
		return GenerateResult{Kind: GenerateServerError, StatusCode: resp.StatusCode}
	}

	var okBody generateSuccessBody
	if err := json.NewDecoder(resp.Body).Decode(&okBody); err != nil {
		c.log.Errorf("GenerateClient: failed to decode success response: %v", err)
		return GenerateResult{Kind: GenerateNetworkError}
	}

	if okBody.Text == "" {
		c.log.Warn("GenerateClient: generation endpoint returned an empty text")
		return GenerateResult{Kind: GenerateEmpty, StatusCode: resp.StatusCode}
	}

	c.log.Infof("GenerateClient: received %d chars of generated text", len(okBody.Text))
	return GenerateResult{Kind: GenerateOK, Text: okBody.Text, StatusCode: resp.StatusCode}
}
