package lemmatizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"textcompare/internal/tokenizer"
)

// DefaultTimeout bounds a single lemmatization exchange.
const DefaultTimeout = 30 * time.Second

// Client talks to a remote lemmatization service.
type Client struct {
	BaseURL string
	client  *http.Client
}

// NewClient creates a new lemmatizer client. A non-positive timeout means DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// wireToken is the token shape the service reads and returns.
// Highlight state is never sent.
type wireToken struct {
	Chunk     string `json:"chunk"`
	Core      string `json:"core"`
	EndOfLine bool   `json:"endOfLine"`
}

// Request is the payload posted to the lemmatize endpoint.
type Request struct {
	Text1 []wireToken `json:"text1"`
	Text2 []wireToken `json:"text2"`
}

// Response is the payload returned by the lemmatize endpoint.
type Response struct {
	Text1 []wireToken `json:"text1"`
	Text2 []wireToken `json:"text2"`
}

// Lemmatize sends both token sequences to the service and returns them with
// lemmatized cores. Returned tokens never carry highlight or bright state.
func (c *Client) Lemmatize(ctx context.Context, a, b []tokenizer.Token) ([]tokenizer.Token, []tokenizer.Token, error) {
	url := fmt.Sprintf("%s/lemmatize", c.BaseURL)

	payload := Request{
		Text1: toWire(a),
		Text2: toWire(b),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, nil, fmt.Errorf("bad status %d: %s", resp.StatusCode, string(raw))
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(out.Text1) != len(a) || len(out.Text2) != len(b) {
		return nil, nil, fmt.Errorf("token count mismatch: sent %d/%d, got %d/%d",
			len(a), len(b), len(out.Text1), len(out.Text2))
	}

	return fromWire(out.Text1), fromWire(out.Text2), nil
}

func toWire(tokens []tokenizer.Token) []wireToken {
	out := make([]wireToken, len(tokens))
	for i, tok := range tokens {
		out[i] = wireToken{Chunk: tok.Chunk, Core: tok.Core, EndOfLine: tok.EndOfLine}
	}
	return out
}

func fromWire(tokens []wireToken) []tokenizer.Token {
	out := make([]tokenizer.Token, len(tokens))
	for i, tok := range tokens {
		out[i] = tokenizer.Token{Chunk: tok.Chunk, Core: tok.Core, EndOfLine: tok.EndOfLine}
	}
	return out
}
