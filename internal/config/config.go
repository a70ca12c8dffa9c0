package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Totarae/FaleProxy/internal/model"
)

// Config хранит конфигурацию сервера
type Config struct {
	ServerAddress   string        `json:"server_address"`
	GRPCAddress     string        `json:"grpc_address"`
	Replacements    string        `json:"replacements"`
	SkipTags        []string      `json:"-"`
	Rules           []model.Rule  `json:"-"`
	FetchTimeout    time.Duration `json:"fetch_timeout"`
	MaxBodyBytes    int64         `json:"max_body_bytes"`
	UserAgent       string        `json:"user_agent"`
	EnableHTTPS     bool          `json:"enable_https"`
	TLSCertPath     string        `json:"tls_cert_path"`
	TLSKeyPath      string        `json:"tls_key_path"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

// NewConfig собирает конфигурацию. Приоритет: флаги, переменные окружения,
// JSON-файл конфигурации, .env, значения по умолчанию.
func NewConfig(args []string) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_ADDRESS", "localhost:3001")
	v.SetDefault("GRPC_ADDRESS", "")
	v.SetDefault("REPLACEMENTS", "Yale:Fale")
	v.SetDefault("SKIP_TAGS", "script,style,noscript,template")
	v.SetDefault("FETCH_TIMEOUT", time.Duration(0))
	v.SetDefault("MAX_BODY_BYTES", 0)
	v.SetDefault("USER_AGENT", "faleproxy/1.0")
	v.SetDefault("ENABLE_HTTPS", false)
	v.SetDefault("TLS_CERT_PATH", "cert.pem")
	v.SetDefault("TLS_KEY_PATH", "key.pem")
	v.SetDefault("SHUTDOWN_TIMEOUT", 5*time.Second)

	v.AutomaticEnv()

	// .env не переопределяет переменные окружения
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig()

	fs := flag.NewFlagSet("faleproxy", flag.ContinueOnError)
	serverAddress := fs.String("a", "", "server address")
	grpcAddress := fs.String("g", "", "gRPC server address")
	replacements := fs.String("r", "", "comma separated from:to replacements")
	skipTags := fs.String("skip", "", "comma separated tags whose text is left untouched")
	fetchTimeout := fs.Duration("timeout", 0, "upstream fetch timeout")
	enableHTTPS := fs.Bool("s", false, "enable HTTPS")
	tlsCertPath := fs.String("cert", "", "path to TLS certificate")
	tlsKeyPath := fs.String("key", "", "path to TLS key")
	configPath := fs.String("c", "", "path to JSON config file")
	fs.StringVar(configPath, "config", "", "path to JSON config file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *configPath == "" {
		*configPath = os.Getenv("CONFIG")
	}
	if *configPath != "" {
		v.SetConfigFile(*configPath)
		v.SetConfigType("json")
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %q: %w", *configPath, err)
		}
	}

	cfg := &Config{
		ServerAddress:   v.GetString("SERVER_ADDRESS"),
		GRPCAddress:     v.GetString("GRPC_ADDRESS"),
		Replacements:    v.GetString("REPLACEMENTS"),
		SkipTags:        splitList(v.GetString("SKIP_TAGS")),
		FetchTimeout:    v.GetDuration("FETCH_TIMEOUT"),
		MaxBodyBytes:    v.GetInt64("MAX_BODY_BYTES"),
		UserAgent:       v.GetString("USER_AGENT"),
		EnableHTTPS:     v.GetBool("ENABLE_HTTPS"),
		TLSCertPath:     v.GetString("TLS_CERT_PATH"),
		TLSKeyPath:      v.GetString("TLS_KEY_PATH"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}

	// Если флаг передан — он важнее всего остального
	if *serverAddress != "" {
		cfg.ServerAddress = *serverAddress
	}
	if *grpcAddress != "" {
		cfg.GRPCAddress = *grpcAddress
	}
	if *replacements != "" {
		cfg.Replacements = *replacements
	}
	if *skipTags != "" {
		cfg.SkipTags = splitList(*skipTags)
	}
	if *fetchTimeout != 0 {
		cfg.FetchTimeout = *fetchTimeout
	}
	if *enableHTTPS {
		cfg.EnableHTTPS = true
	}
	if *tlsCertPath != "" {
		cfg.TLSCertPath = *tlsCertPath
	}
	if *tlsKeyPath != "" {
		cfg.TLSKeyPath = *tlsKeyPath
	}

	rules, err := model.ParseRules(cfg.Replacements)
	if err != nil {
		return nil, err
	}
	cfg.Rules = rules

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет корректность конфигурации
func (cfg *Config) Validate() error {
	if cfg.ServerAddress == "" {
		return errors.New("server address must not be empty")
	}
	if len(cfg.Rules) == 0 {
		return errors.New("at least one replacement is required")
	}
	if cfg.FetchTimeout < 0 {
		return fmt.Errorf("fetch timeout must not be negative, got %s", cfg.FetchTimeout)
	}
	if cfg.MaxBodyBytes < 0 {
		return fmt.Errorf("max body bytes must not be negative, got %d", cfg.MaxBodyBytes)
	}
	if cfg.EnableHTTPS && (cfg.TLSCertPath == "" || cfg.TLSKeyPath == "") {
		return errors.New("HTTPS requires both TLS certificate and key paths")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
