package chatbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"quotechat/internal/usecase/interfaces"
)

var ErrMissingChatBackendURL = errors.New("missing CHAT_BACKEND_URL")

const defaultRequestTimeout = 30 * time.Second

type chatRequestBody struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type chatResponseBody struct {
	Response  string `json:"response"`
	Quotation string `json:"quotation,omitempty"`
}

type resetRequestBody struct {
	SessionID string `json:"session_id"`
}

// Client talks to the remote chat backend that performs the natural-language
// reasoning. It degrades to a canned mock mode (CHAT_BACKEND_MOCK) so the
// service can run without the backend during local development.

type Client struct {
	httpClient *http.Client
	baseURL    string
	mockMode   bool
}

var _ interfaces.IChatGateway = (*Client)(nil)

func NewClient(baseURL string) (*Client, error) {
	if isChatBackendMockEnabled() {
		log.Printf("[chat][gateway] mock mode enabled")
		return &Client{mockMode: true}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[chat][gateway] missing CHAT_BACKEND_URL")
		return nil, ErrMissingChatBackendURL
	}

	log.Printf("[chat][gateway] chat backend client initialized url=%s", baseURL)
	return &Client{
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		baseURL:    baseURL,
	}, nil
}

func (c *Client) SendMessage(ctx context.Context, message, sessionID string) (interfaces.ChatReply, error) {
	if c.mockMode {
		return mockReply(message), nil
	}

	body, err := json.Marshal(chatRequestBody{Message: message, SessionID: sessionID})
	if err != nil {
		return interfaces.ChatReply{}, err
	}

	var parsed chatResponseBody
	if err := c.postJSON(ctx, "/api/chat", body, &parsed); err != nil {
		log.Printf("[chat][gateway] send failed session_id=%s err=%v", sessionID, err)
		return interfaces.ChatReply{}, err
	}

	return interfaces.ChatReply{
		ResponseText:  parsed.Response,
		QuotationText: parsed.Quotation,
	}, nil
}

func (c *Client) ResetSession(ctx context.Context, sessionID string) error {
	if c.mockMode {
		return nil
	}

	body, err := json.Marshal(resetRequestBody{SessionID: sessionID})
	if err != nil {
		return err
	}
	if err := c.postJSON(ctx, "/api/chat/reset", body, nil); err != nil {
		log.Printf("[chat][gateway] reset failed session_id=%s err=%v", sessionID, err)
		return err
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("chat backend returned %d: %s", resp.StatusCode, string(payload))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// mockReply mimics the backend well enough for end-to-end smoke testing:
// messages mentioning a quotation produce a canned quotation payload.
func mockReply(message string) interfaces.ChatReply {
	if strings.Contains(strings.ToLower(message), "quot") {
		quotation := "SERVICE QUOTATION\n" +
			"------------------\n" +
			"Service Description: General service visit\n" +
			"Quantity: 1\n" +
			"Unit Price (RM): 100.00\n" +
			"Subtotal: 100.00\n" +
			"Tax (8%): 8.00\n" +
			"Total: 108.00\n"
		return interfaces.ChatReply{
			ResponseText:  quotation + "\nIf you would like to proceed with this quotation, please confirm by saying 'Yes' or 'Confirm'.",
			QuotationText: quotation,
		}
	}
	return interfaces.ChatReply{ResponseText: "I can prepare a service quotation for you. What service do you need?"}
}

func isChatBackendMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("CHAT_BACKEND_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
