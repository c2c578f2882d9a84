package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"memory-mob/pkg/telegram"
)

func TestBot(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		w.Header().Set("Content-Type", "application/json")

		switch {
		case strings.HasSuffix(path, "/setWebhook"):
			var req telegram.SetWebhookRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req.URL == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"ok": false, "description": "invalid url"}`))
				return
			}
			if req.SecretToken != "s3cret" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"ok": false, "description": "missing secret"}`))
				return
			}
			_, _ = w.Write([]byte(`{"ok": true, "description": "webhook set"}`))

		case strings.HasSuffix(path, "/sendMessage"):
			var req map[string]interface{}
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req["text"] == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"ok": false, "description": "invalid text"}`))
				return
			}
			_, _ = w.Write([]byte(`{"ok": true}`))

		case strings.HasSuffix(path, "/getFile"):
			if r.URL.Query().Get("file_id") == "missing" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"ok": false, "error_code": 400, "description": "file not found"}`))
				return
			}
			_, _ = w.Write([]byte(`{"ok": true, "result": {"file_id": "f1", "file_size": 4, "file_path": "voice/file_1.oga"}}`))

		case path == "/file/bottest-token/voice/file_1.oga":
			w.Header().Set("Content-Type", "audio/ogg")
			_, _ = w.Write([]byte("OggS"))

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	ctx := context.Background()
	bot := telegram.NewBot("test-token")
	bot.SetAPIBase(ts.URL)

	t.Run("SetWebhook Success", func(t *testing.T) {
		if err := bot.SetWebhook(ctx, "https://example.com/webhook", "s3cret"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SetWebhook API Failed", func(t *testing.T) {
		err := bot.SetWebhook(ctx, "cause_error", "s3cret")
		if err == nil || !strings.Contains(err.Error(), "invalid url") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SendMessage Success", func(t *testing.T) {
		if err := bot.SendMessage(ctx, 12345, "Hello"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SendMessage API Failed", func(t *testing.T) {
		err := bot.SendMessage(ctx, 12345, "cause_error")
		if err == nil || !strings.Contains(err.Error(), "invalid text") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("GetFile and DownloadFile", func(t *testing.T) {
		f, err := bot.GetFile(ctx, "f1")
		if err != nil {
			t.Fatalf("GetFile: %v", err)
		}
		if f.FilePath != "voice/file_1.oga" {
			t.Fatalf("file path = %q", f.FilePath)
		}
		data, err := bot.DownloadFile(ctx, f)
		if err != nil {
			t.Fatalf("DownloadFile: %v", err)
		}
		if string(data) != "OggS" {
			t.Errorf("data = %q", data)
		}
	})

	t.Run("GetFile API Failed", func(t *testing.T) {
		_, err := bot.GetFile(ctx, "missing")
		if err == nil || !strings.Contains(err.Error(), "file not found") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("DownloadFile too big", func(t *testing.T) {
		_, err := bot.DownloadFile(ctx, telegram.File{FilePath: "x", FileSize: telegram.MaxDownloadSize + 1})
		if err != telegram.ErrFileTooBig {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("Invalid API URL logic", func(t *testing.T) {
		badBot := telegram.NewBot("test")
		badBot.SetAPIBase("http://invalid-url.local:1234")
		if err := badBot.SendMessage(ctx, 12345, "fail"); err == nil {
			t.Errorf("expected network failure on invalid domain")
		}
	})
}
