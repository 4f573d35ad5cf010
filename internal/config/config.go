package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	Env         string
	AppSecret   string
	DatabaseURL string
	JWTExpiry   time.Duration
	Port        string
	SiteName    string
	SiteUrl     string
	Telegram    TelegramConfig
}

// TelegramConfig Telegram 通知网关配置
// DisableMediaSend 取代了旧实现里对运行环境的隐式判断，行为可显式覆盖
type TelegramConfig struct {
	BotToken         string
	ChatID           string
	APIBase          string
	DisableMediaSend bool
	FallbackPoster   string
	ButtonLabel      string
	ButtonURL        string
}

// Load 加载配置
func Load() *Config {
	expiryHours, _ := strconv.Atoi(getEnv("JWT_EXPIRY_HOURS", "72"))

	dbUser := getEnv("DB_USER", "postgres")
	dbPass := getEnv("DB_PASSWORD", "postgres")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbName := getEnv("DB_NAME", "kinohub")
	dbSSL := getEnv("DB_SSLMODE", "disable")

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		dbUser, dbPass, dbHost, dbPort, dbName, dbSSL)

	appSecret := getEnv("APP_SECRET", getEnv("JWT_SECRET", "your-secret-key-change-in-production"))

	env := getEnv("APP_ENV", "development")
	if env == "production" && appSecret == "your-secret-key-change-in-production" {
		fmt.Println("【严重警告】生产环境正在使用默认密钥！请立即设置 APP_SECRET 环境变量。")
	}

	// 开发环境默认不发送电影海报，避免本地调试刷屏
	disableMedia, _ := strconv.ParseBool(getEnv("TELEGRAM_DISABLE_MEDIA", strconv.FormatBool(env == "development")))

	// 通知按钮默认指回本站电影列表，可用 TELEGRAM_BUTTON_URL 单独覆盖
	siteURL := getEnv("SITE_URL", "http://localhost:5005")

	return &Config{
		Env:         env,
		AppSecret:   appSecret,
		DatabaseURL: dbURL,
		JWTExpiry:   time.Duration(expiryHours) * time.Hour,
		Port:        getEnv("PORT", "5005"),
		SiteName:    getEnv("SITE_NAME", "KinoHub"),
		SiteUrl:     siteURL,
		Telegram: TelegramConfig{
			BotToken:         getEnv("TELEGRAM_BOT_TOKEN", ""),
			ChatID:           getEnv("TELEGRAM_CHAT_ID", ""),
			APIBase:          getEnv("TELEGRAM_API_BASE", "https://api.telegram.org"),
			DisableMediaSend: disableMedia,
			FallbackPoster:   getEnv("TELEGRAM_FALLBACK_POSTER", "https://telegra.ph/file/02ea53b58e4ba1cfea64c.jpg"),
			ButtonLabel:      getEnv("TELEGRAM_BUTTON_LABEL", "🍿 Go to watch"),
			ButtonURL:        getEnv("TELEGRAM_BUTTON_URL", siteURL+"/movies"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
