// Package translate wraps the Papago NMT REST API for the bilingual
// extraction pass. Translation is optional: without credentials the client
// reports itself disabled and the caller falls back to a single-language run.
package translate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"
)

const defaultEndpoint = "https://naveropenapi.apigw.ntruss.com/nmt/v1/translation"

var hangulRE = regexp.MustCompile(`[가-힣]`)

// Client calls the Papago NMT endpoint with NCP API-key headers.
type Client struct {
	ClientID     string
	ClientSecret string
	Endpoint     string
	HTTP         *http.Client
}

// NewFromEnv builds a client from PAPAGO_CLIENT_ID / PAPAGO_CLIENT_SECRET.
// Either variable missing leaves the client disabled.
func NewFromEnv() *Client {
	return &Client{
		ClientID:     os.Getenv("PAPAGO_CLIENT_ID"),
		ClientSecret: os.Getenv("PAPAGO_CLIENT_SECRET"),
		Endpoint:     defaultEndpoint,
		HTTP:         &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether credentials are configured.
func (c *Client) Enabled() bool {
	return c != nil && c.ClientID != "" && c.ClientSecret != ""
}

// guessLangPair picks ko→en when the text contains hangul, en→ko otherwise.
func guessLangPair(text string) (source, target string) {
	if hangulRE.MatchString(text) {
		return "ko", "en"
	}
	return "en", "ko"
}

type nmtRequest struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Text   string `json:"text"`
}

type nmtResponse struct {
	Message struct {
		Result struct {
			TranslatedText string `json:"translatedText"`
		} `json:"result"`
	} `json:"message"`
}

// Translate sends text through Papago. A disabled client or blank input
// yields ("", nil); transport and API failures come back as errors so the
// caller can log and degrade to a single-language pass.
func (c *Client) Translate(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" || !c.Enabled() {
		return "", nil
	}
	source, target := guessLangPair(text)
	body, err := json.Marshal(nmtRequest{Source: source, Target: target, Text: text})
	if err != nil {
		return "", fmt.Errorf("papago request: %w", err)
	}
	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("papago request: %w", err)
	}
	req.Header.Set("X-NCP-APIGW-API-KEY-ID", c.ClientID)
	req.Header.Set("X-NCP-APIGW-API-KEY", c.ClientSecret)
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("papago call: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("papago status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	var out nmtResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("papago response: %w", err)
	}
	return out.Message.Result.TranslatedText, nil
}
