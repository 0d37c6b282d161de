package commands

import (
	"github.com/dyluth/cinereviews/internal/config"
	"github.com/dyluth/cinereviews/internal/printer"
)

// loadConfig reads the config file, or returns defaults when path is empty.
// A non-empty redisURL overrides journal.redis_url.
func loadConfig(p *printer.Printer, path, redisURL string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return nil, p.ErrorWithContext(
				"invalid configuration",
				err.Error(),
				map[string]string{"Config file": path},
				[]string{"Check the file against the documented cinereviews.yml sections: version, instance, log, output, journal"},
			)
		}
	}
	if redisURL != "" {
		cfg.Journal.RedisURL = redisURL
	}
	return cfg, nil
}
