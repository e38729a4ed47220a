package config

import "fmt"

func validateConfig(config *Config) error {
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Database.MaxConnections < 1 {
		return fmt.Errorf("invalid database max connections: %d", config.Database.MaxConnections)
	}

	if config.Redis.URL == "" {
		return fmt.Errorf("redis url must not be empty")
	}

	if config.Fetch.ClientTimeout <= 0 {
		return fmt.Errorf("fetch client timeout must be positive: %s", config.Fetch.ClientTimeout)
	}

	if config.Scheduler.RunTimeout <= 0 {
		return fmt.Errorf("scheduler run timeout must be positive: %s", config.Scheduler.RunTimeout)
	}

	if config.Scheduler.DailyFireHour < 0 || config.Scheduler.DailyFireHour > 23 {
		return fmt.Errorf("invalid daily fire hour: %d", config.Scheduler.DailyFireHour)
	}

	switch config.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	return nil
}
