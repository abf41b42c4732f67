package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"exclusion-diagnostic/internal/alerts"
	"exclusion-diagnostic/internal/casefile"
)

// Client talks to the Telegram Bot API. It is used to push urgent
// compound-risk alerts (and finished PDF reports) to the team's
// supervision chat.
type Client struct {
	Token      string
	ChatID     int64
	httpClient *http.Client
}

func NewClient(token string, chatID int64) *Client {
	return &Client{
		Token:  token,
		ChatID: chatID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type sendMessageReq struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

func (c *Client) SendMessage(ctx context.Context, text string) error {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", c.Token)

	jsonBody, err := json.Marshal(sendMessageReq{ChatID: c.ChatID, Text: text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var bodyBytes []byte
		if resp.Body != nil {
			bodyBytes, _ = io.ReadAll(resp.Body)
		}
		return fmt.Errorf("telegram api returned status: %s, body: %s", resp.Status, string(bodyBytes))
	}
	return nil
}

// SendDocument uploads a file (the rendered PDF report) to the chat.
func (c *Client) SendDocument(ctx context.Context, fileData []byte, fileName string) error {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendDocument", c.Token)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("chat_id", fmt.Sprintf("%d", c.ChatID)); err != nil {
		return err
	}
	part, err := writer.CreateFormFile("document", fileName)
	if err != nil {
		return err
	}
	if _, err := part.Write(fileData); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send telegram document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var bodyBytes []byte
		if resp.Body != nil {
			bodyBytes, _ = io.ReadAll(resp.Body)
		}
		return fmt.Errorf("telegram api returned status: %s, body: %s", resp.Status, string(bodyBytes))
	}
	return nil
}

// NotifyAlert implements casefile.Notifier.
func (c *Client) NotifyAlert(ctx context.Context, cs casefile.Case, a alerts.Alert) error {
	text := fmt.Sprintf(
		"[%s] %s\nCase: %s (%s)\n%s\nRecommended action: %s",
		a.Severity, a.Title, cs.Title, cs.ID, a.Description, a.RecommendedAction,
	)
	return c.SendMessage(ctx, text)
}
