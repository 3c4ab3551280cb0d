package db

import (
	"context"
	"fmt"
	"time"

	"github.com/DanRulev/h5pboard.git/internal/config"
	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"

	"github.com/jmoiron/sqlx"
)

func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	return db, nil
}

// DSN builds the driver specific connection string.
func DSN(cfg config.DBConfig) (string, error) {
	switch cfg.Driver {
	case "postgres":
		ssl := cfg.Conn.SSL
		if ssl == "" {
			ssl = "disable"
		}
		return fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
			cfg.Conn.Host, cfg.Conn.Port, cfg.Conn.Name, cfg.Conn.User, cfg.Conn.Password, ssl), nil
	case "mysql":
		mc := mysql.NewConfig()
		mc.Net = "tcp"
		mc.Addr = cfg.Conn.Host + ":" + cfg.Conn.Port
		mc.User = cfg.Conn.User
		mc.Passwd = cfg.Conn.Password
		mc.DBName = cfg.Conn.Name
		if cfg.Conn.SSL != "" && cfg.Conn.SSL != "disable" {
			mc.TLSConfig = "true"
		}
		return mc.FormatDSN(), nil
	default:
		return "", fmt.Errorf("unsupported db driver: %q", cfg.Driver)
	}
}
