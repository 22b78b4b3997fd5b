// Package config resolves the notifier's two required settings from the
// process environment, optionally seeded from a key=value .env file.
//
// Resolution order (highest wins): process environment, then the .env
// file. Presence is enforced at load time; token prefix validation is a
// separate check (Config.CheckToken) so the CLI can warn where the core
// sender fails hard.
//
// Example usage:
//
//	cfg, err := config.Load(config.WithEnvFile(".env"))
//	if err != nil {
//	    // missing SLACK_BOT_TOKEN / SLACK_CHANNEL, with remediation text
//	}
package config
