package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultAPIBase = "https://api.telegram.org"
	defaultTimeout = 30 * time.Second

	// SecretTokenHeader carries the secret registered with SetWebhook.
	SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

	// MaxDownloadSize is the Bot API limit for getFile downloads.
	MaxDownloadSize = 20 << 20
)

// ErrFileTooBig is returned when a file exceeds MaxDownloadSize.
var ErrFileTooBig = errors.New("telegram: file exceeds download limit")

// Bot is the Telegram Bot API client.
type Bot struct {
	token  string
	base   string
	client *resty.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:  token,
		base:   defaultAPIBase,
		client: resty.New().SetTimeout(defaultTimeout),
	}
}

// SetAPIBase overrides the Bot API host, e.g. a local Bot API server or a test server.
func (b *Bot) SetAPIBase(base string) {
	b.base = strings.TrimRight(base, "/")
}

func (b *Bot) methodURL(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", b.base, b.token, method)
}

// SetWebhook registers the webhook URL with Telegram. A non-empty secret is
// echoed back by Telegram in SecretTokenHeader on every update.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL, secret string) error {
	var apiResp APIResponse
	_, err := b.client.R().
		SetContext(ctx).
		SetBody(SetWebhookRequest{URL: webhookURL, SecretToken: secret, AllowedUpdates: []string{"message"}}).
		SetResult(&apiResp).
		SetError(&apiResp).
		Post(b.methodURL("setWebhook"))
	if err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram setWebhook failed: %s", apiResp.Description)
	}
	return nil
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown").
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	resp, err := b.client.R().
		SetContext(ctx).
		SetBody(SendMessageRequest{ChatID: chatID, Text: text, ParseMode: parseMode}).
		Post(b.methodURL("sendMessage"))
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("telegram sendMessage API error %d: %s", resp.StatusCode(), describe(resp.Body()))
	}
	return nil
}

// GetFile resolves a file id to a downloadable path.
func (b *Bot) GetFile(ctx context.Context, fileID string) (File, error) {
	var out getFileResponse
	resp, err := b.client.R().
		SetContext(ctx).
		SetQueryParam("file_id", fileID).
		SetResult(&out).
		SetError(&out).
		Get(b.methodURL("getFile"))
	if err != nil {
		return File{}, fmt.Errorf("failed to get file: %w", err)
	}
	if !out.OK {
		return File{}, fmt.Errorf("telegram getFile API error %d: %s", resp.StatusCode(), out.Description)
	}
	if out.Result.FilePath == "" {
		return File{}, fmt.Errorf("telegram getFile: no file path for %s", fileID)
	}
	return out.Result, nil
}

// DownloadFile fetches the content of a file returned by GetFile.
func (b *Bot) DownloadFile(ctx context.Context, f File) ([]byte, error) {
	if f.FileSize > MaxDownloadSize {
		return nil, ErrFileTooBig
	}
	resp, err := b.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("%s/file/bot%s/%s", b.base, b.token, f.FilePath))
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("telegram file download error %d", resp.StatusCode())
	}
	return resp.Body(), nil
}

func describe(body []byte) string {
	var r APIResponse
	if json.Unmarshal(body, &r) == nil && r.Description != "" {
		return r.Description
	}
	return string(body)
}
