package config

import "strings"

const (
	EnvMasterKey  = "GATEKEEPER_MASTER_KEY"
	EnvMasterSalt = "GATEKEEPER_MASTER_SALT"
	EnvSigningKey = "GATEKEEPER_SIGNING_KEY"
	EnvSMTPPass   = "SMTP_PASS"
	EnvDevMode    = "GATEKEEPER_DEV_MODE"
)

// parseEnv overlays secrets and the dev-mode switch. Only these are read from
// the environment so secrets stay out of JSON files and process listings.
func parseEnv(config *Config, getenv func(string) string) {
	if getenv == nil {
		return
	}
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&config.MasterKey, EnvMasterKey)
	set(&config.MasterSalt, EnvMasterSalt)
	set(&config.SigningKey, EnvSigningKey)
	set(&config.SMTPPass, EnvSMTPPass)

	switch strings.ToLower(strings.TrimSpace(getenv(EnvDevMode))) {
	case "1", "true", "yes":
		config.DevMode = true
	}
}
