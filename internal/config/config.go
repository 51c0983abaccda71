package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	AdminKey        string
	TelegramAPIURL  string
	TelegramToken   string
	TelegramChatIDs []string
	SendTimeout     time.Duration
	DispatchTimeout time.Duration
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultAdminKey        = "ZENDO_ADMIN_2026"
	defaultTelegramAPIURL  = "https://api.telegram.org"
	defaultSendTimeout     = 800 * time.Millisecond
	defaultDispatchTimeout = time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	// TG_CHAT_ID is the legacy single-recipient variable kept for
	// compatibility with existing deployments.
	chatIDs := getString(lookup, "TG_CHAT_IDS", getString(lookup, "TG_CHAT_ID", ""))

	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		AdminKey:        getString(lookup, "ADMIN_KEY", defaultAdminKey),
		TelegramAPIURL:  getString(lookup, "TELEGRAM_API_URL", defaultTelegramAPIURL),
		TelegramToken:   getString(lookup, "TG_TOKEN", ""),
		SendTimeout:     getDuration(lookup, "SEND_TIMEOUT", defaultSendTimeout),
		DispatchTimeout: getDuration(lookup, "DISPATCH_TIMEOUT", defaultDispatchTimeout),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("zendo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sendTimeoutStr     = cfg.SendTimeout.String()
		dispatchTimeoutStr = cfg.DispatchTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.AdminKey, "admin-key", cfg.AdminKey, "Shared secret for admin routes")
	fs.StringVar(&cfg.TelegramToken, "tg-token", cfg.TelegramToken, "Telegram bot token")
	fs.StringVar(&chatIDs, "tg-chats", chatIDs, "Comma-separated Telegram chat IDs")
	fs.StringVar(&sendTimeoutStr, "send-timeout", sendTimeoutStr, "Per-recipient notification timeout")
	fs.StringVar(&dispatchTimeoutStr, "dispatch-timeout", dispatchTimeoutStr, "Overall notification dispatch timeout")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SendTimeout, err = time.ParseDuration(sendTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid send timeout: %w", err)
	}
	if cfg.DispatchTimeout, err = time.ParseDuration(dispatchTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid dispatch timeout: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	cfg.TelegramChatIDs = splitChatIDs(chatIDs)

	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = defaultSendTimeout
	}
	if cfg.DispatchTimeout <= 0 {
		cfg.DispatchTimeout = defaultDispatchTimeout
	}
	if cfg.DispatchTimeout < cfg.SendTimeout {
		cfg.DispatchTimeout = cfg.SendTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func splitChatIDs(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
