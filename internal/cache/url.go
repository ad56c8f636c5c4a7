package cache

import (
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
)

// ParseOptions builds redis options from a REDIS_URL-like string. Accepts either
// a plain `host:port` or a `redis://`/`rediss://` URL. Maintenance notifications
// are disabled so servers without that subcommand do not log handshake errors.
func ParseOptions(raw string) (*redis.Options, error) {
	raw = strings.TrimSpace(raw)

	var opts *redis.Options
	if strings.Contains(raw, "://") {
		parsed, err := redis.ParseURL(raw)
		if err != nil {
			return nil, err
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: raw}
	}

	opts.MaintNotificationsConfig = &maintnotifications.Config{Mode: maintnotifications.ModeDisabled}
	return opts, nil
}
