package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "no host", cfg: Config{Port: 6379}, wantErr: ErrHostRequired},
		{name: "port out of range", cfg: Config{Host: "localhost", Port: 70000}, wantErr: ErrInvalidPort},
		{name: "zero port", cfg: Config{Host: "localhost"}, wantErr: ErrInvalidPort},
		{name: "ipv6 host", cfg: Config{Host: "::1", Port: 6379, UseTLS: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			impl := client.(*redisImpl)
			assert.Equal(t, "[::1]:6379", impl.client.Options().Addr)
			assert.NotNil(t, impl.client.Options().TLSConfig)
			assert.NoError(t, client.Close())
		})
	}
}
