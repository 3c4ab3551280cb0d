package db

import (
	"testing"

	"github.com/DanRulev/h5pboard.git/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	t.Parallel()

	conn := config.DBConn{
		Host:     "localhost",
		Port:     "5432",
		User:     "wp",
		Password: "secret",
		Name:     "wordpress",
	}

	tests := []struct {
		name    string
		cfg     config.DBConfig
		want    string
		wantErr bool
	}{
		{
			name: "postgres defaults sslmode",
			cfg:  config.DBConfig{Driver: "postgres", Conn: conn},
			want: "host=localhost port=5432 dbname=wordpress user=wp password=secret sslmode=disable",
		},
		{
			name: "mysql",
			cfg:  config.DBConfig{Driver: "mysql", Conn: config.DBConn{Host: "db", Port: "3306", User: "wp", Password: "secret", Name: "wordpress"}},
			want: "wp:secret@tcp(db:3306)/wordpress",
		},
		{
			name:    "unknown driver",
			cfg:     config.DBConfig{Driver: "oracle", Conn: conn},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DSN(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
