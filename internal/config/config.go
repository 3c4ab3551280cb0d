package config

import (
	"fmt"
	"os"
	"time"

	"github.com/DanRulev/h5pboard.git/internal/render"
	"github.com/DanRulev/h5pboard.git/pkg/validator"
	"github.com/goodsign/monday"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig         `mapstructure:"app" validate:"required"`
	HTTP        HTTPConfig        `mapstructure:"http" validate:"required"`
	BotToken    string            `mapstructure:"bot_token"`
	DB          DBConfig          `mapstructure:"db" validate:"required"`
	Leaderboard LeaderboardConfig `mapstructure:"leaderboard"`
	Env         string            `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr" validate:"required"`
}

type DBConfig struct {
	Driver      string `mapstructure:"driver" validate:"oneof=postgres mysql"`
	TablePrefix string `mapstructure:"table_prefix" validate:"tableprefix"`
	Conn        DBConn `mapstructure:"conn"`
	Cfg         DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name" validate:"required"`
	SSL      string `mapstructure:"ssl" validate:"omitempty,oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

// LeaderboardConfig holds the site date settings used when formatting
// completion times. DateLayout is a Go time layout.
type LeaderboardConfig struct {
	Locale     string `mapstructure:"locale"`
	Timezone   string `mapstructure:"timezone"`
	DateLayout string `mapstructure:"date_layout"`
}

// RenderOptions resolves the configured locale and timezone.
func (l LeaderboardConfig) RenderOptions() (render.Options, error) {
	opts := render.Options{DateLayout: l.DateLayout}

	if l.Locale != "" {
		locale, ok := findLocale(l.Locale)
		if !ok {
			return render.Options{}, fmt.Errorf("unsupported locale: %s", l.Locale)
		}
		opts.Locale = locale
	}

	if l.Timezone != "" {
		loc, err := time.LoadLocation(l.Timezone)
		if err != nil {
			return render.Options{}, fmt.Errorf("failed to load timezone %s: %w", l.Timezone, err)
		}
		opts.Location = loc
	}

	return opts, nil
}

func findLocale(name string) (monday.Locale, bool) {
	for _, locale := range monday.ListLocales() {
		if string(locale) == name {
			return locale, true
		}
	}
	return "", false
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("app.timeout", 5*time.Second)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.table_prefix", "wp_")
	v.SetDefault("db.cfg.max_open_conns", 10)
	v.SetDefault("db.cfg.max_idle_conns", 5)
	v.SetDefault("leaderboard.locale", string(render.DefaultLocale))
	v.SetDefault("leaderboard.timezone", "UTC")
	v.SetDefault("leaderboard.date_layout", render.DefaultDateLayout)
}

var envBindings = map[string]string{
	"env":                     "ENV",
	"bot_token":               "BOT_TOKEN",
	"http.addr":               "HTTP_ADDR",
	"db.driver":               "DB_DRIVER",
	"db.table_prefix":         "DB_TABLE_PREFIX",
	"db.conn.host":            "DB_HOST",
	"db.conn.port":            "DB_PORT",
	"db.conn.user":            "DB_USER",
	"db.conn.password":        "DB_PASSWORD",
	"db.conn.name":            "DB_NAME",
	"db.conn.ssl":             "DB_SSL",
	"leaderboard.locale":      "LEADERBOARD_LOCALE",
	"leaderboard.timezone":    "LEADERBOARD_TIMEZONE",
	"leaderboard.date_layout": "LEADERBOARD_DATE_LAYOUT",
}

func Init() (*Config, error) {
	// a missing .env is fine, real environment still applies
	_ = godotenv.Load()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	return Load("configs", configName)
}

// Load reads <path>/<name>.* and applies environment overrides.
func Load(path, name string) (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName(name)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	if _, err := cfg.Leaderboard.RenderOptions(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
