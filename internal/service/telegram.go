package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/user/kinohub/internal/config"
)

// TelegramService Telegram Bot API 客户端，实现 Notifier
type TelegramService struct {
	cfg        config.TelegramConfig
	httpClient *http.Client
}

func NewTelegramService(cfg config.TelegramConfig) *TelegramService {
	return &TelegramService{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

// SendPhoto 发送图片消息
func (s *TelegramService) SendPhoto(photoURL string) error {
	return s.call("sendPhoto", map[string]interface{}{
		"chat_id": s.cfg.ChatID,
		"photo":   photoURL,
	})
}

// SendMessage 发送 HTML 格式文本消息，可附带单个跳转按钮
func (s *TelegramService) SendMessage(text string, opts MessageOptions) error {
	payload := map[string]interface{}{
		"chat_id":    s.cfg.ChatID,
		"text":       text,
		"parse_mode": "HTML",
	}
	if opts.Button != nil {
		payload["reply_markup"] = map[string]interface{}{
			"inline_keyboard": [][]map[string]string{
				{
					{
						"text": opts.Button.Label,
						"url":  opts.Button.URL,
					},
				},
			},
		}
	}
	return s.call("sendMessage", payload)
}

// call 调用 Bot API 方法
func (s *TelegramService) call(method string, payload map[string]interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("序列化请求失败: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", s.cfg.APIBase, s.cfg.BotToken, method)
	resp, err := s.httpClient.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	defer resp.Body.Close()

	var result telegramResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("解析响应失败: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("telegram %s failed: %d %s", method, result.ErrorCode, result.Description)
	}
	return nil
}
