package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Media     MediaConfig     `mapstructure:"media"`
	Player    PlayerConfig    `mapstructure:"player"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type StorageConfig struct {
	// DataDir 持久化文档所在目录（courses.json、settings.json）
	// 留空时使用系统用户配置目录下的 CourseTrack
	DataDir string `mapstructure:"data_dir"`
	LogDir  string `mapstructure:"log_dir"`
	// StaticDir 可选的前端静态资源目录，挂载到 /app
	StaticDir string `mapstructure:"static_dir"`
}

type MediaConfig struct {
	// Extensions 识别为视频的扩展名（不带点，小写）
	Extensions []string `mapstructure:"extensions"`
}

type PlayerConfig struct {
	// Command 播放器命令，留空时使用系统默认打开方式
	Command string `mapstructure:"command"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

// Window 限流窗口时长
func (r RateLimitConfig) Window() time.Duration {
	m := r.WindowMinutes
	if m <= 0 {
		m = 1
	}
	return time.Duration(m) * time.Minute
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("COURSE_TRACK")
	v.AutomaticEnv()

	// Server
	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.mode", "SERVER_MODE")

	// Storage
	v.BindEnv("storage.data_dir", "DATA_DIR")
	v.BindEnv("storage.log_dir", "LOG_DIR")

	// Player
	v.BindEnv("player.command", "PLAYER_COMMAND")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	v.SetDefault("server.port", "8321")
	v.SetDefault("server.mode", "release")
	v.SetDefault("storage.log_dir", "logs")
	v.SetDefault("media.extensions", []string{"mp4", "mkv", "avi", "mov", "wmv", "webm"})
	v.SetDefault("rate_limit.max_requests", 100000)
	v.SetDefault("rate_limit.window_minutes", 1)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:8321"})

	if err := v.ReadInConfig(); err != nil {
		// 配置文件缺失时全部走默认值，本地工具不应因此拒绝启动
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Storage.DataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base, _ = os.UserHomeDir()
		}
		cfg.Storage.DataDir = filepath.Join(base, "CourseTrack")
	}

	// 数据目录不可创建时直接启动失败，而不是等到第一次保存才报错
	if err := os.MkdirAll(cfg.Storage.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", cfg.Storage.DataDir, err)
	}

	return &cfg, nil
}
