package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		in       string
		wantAddr string
		wantPass string
		wantDB   int
		wantTLS  bool
	}{
		{"redis://:mypassword@redis:6379/1", "redis:6379", "mypassword", 1, false},
		{"rediss://:s3cret@redis.example.com:6380/2", "redis.example.com:6380", "s3cret", 2, true},
		{"redis:6379", "redis:6379", "", 0, false},
		{" localhost:6379 ", "localhost:6379", "", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			opts, err := ParseOptions(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.wantAddr, opts.Addr)
			assert.Equal(t, tc.wantPass, opts.Password)
			assert.Equal(t, tc.wantDB, opts.DB)
			assert.Equal(t, tc.wantTLS, opts.TLSConfig != nil)
			assert.NotNil(t, opts.MaintNotificationsConfig)
		})
	}
}

func TestParseOptionsRejectsBadURL(t *testing.T) {
	_, err := ParseOptions("redis://host:6379/not-a-db")
	assert.Error(t, err)
}
