package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gatekeeper/internal/flagx"
	"github.com/dmitrijs2005/gatekeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "30m" and integer nanoseconds are accepted. Keys
// missing from the file keep their current values.
type JsonConfig struct {
	EndpointAddrGRPC string `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP string `json:"endpoint_addr_http"`
	DatabaseDSN      string `json:"database_dsn"`
	LogLevel         string `json:"log_level"`

	MasterSalt string `json:"master_salt"`

	RPID          string   `json:"rp_id"`
	RPDisplayName string   `json:"rp_display_name"`
	RPOrigins     []string `json:"rp_origins"`
	TOTPIssuer    string   `json:"totp_issuer"`

	PendingTokenTTL     timex.Duration `json:"pending_token_ttl"`
	ChallengeTTL        timex.Duration `json:"challenge_ttl"`
	ContinuationTTL     timex.Duration `json:"continuation_ttl"`
	SessionGrace        timex.Duration `json:"session_grace"`
	ActiveWindow        timex.Duration `json:"active_window"`
	HeartbeatInterval   timex.Duration `json:"heartbeat_interval"`
	SessionHardLifetime timex.Duration `json:"session_hard_lifetime"`
	SweepInterval       timex.Duration `json:"sweep_interval"`
	TerminatedRetention timex.Duration `json:"terminated_retention"`
	FailureFloor        timex.Duration `json:"failure_floor"`
	DeliveryTimeout     timex.Duration `json:"delivery_timeout"`

	PublicBaseURL string `json:"public_base_url"`
	CookieName    string `json:"cookie_name"`
	CookieSecure  bool   `json:"cookie_secure"`

	SMTPHost      string `json:"smtp_host"`
	SMTPPort      int    `json:"smtp_port"`
	SMTPUser      string `json:"smtp_user"`
	SMTPFrom      string `json:"smtp_from"`
	SMSWebhookURL string `json:"sms_webhook_url"`

	DevMode bool `json:"dev_mode"`
}

func fromConfig(c *Config) *JsonConfig {
	return &JsonConfig{
		EndpointAddrGRPC:    c.EndpointAddrGRPC,
		EndpointAddrHTTP:    c.EndpointAddrHTTP,
		DatabaseDSN:         c.DatabaseDSN,
		LogLevel:            c.LogLevel,
		MasterSalt:          c.MasterSalt,
		RPID:                c.RPID,
		RPDisplayName:       c.RPDisplayName,
		RPOrigins:           c.RPOrigins,
		TOTPIssuer:          c.TOTPIssuer,
		PendingTokenTTL:     timex.Duration{Duration: c.PendingTokenTTL},
		ChallengeTTL:        timex.Duration{Duration: c.ChallengeTTL},
		ContinuationTTL:     timex.Duration{Duration: c.ContinuationTTL},
		SessionGrace:        timex.Duration{Duration: c.SessionGrace},
		ActiveWindow:        timex.Duration{Duration: c.ActiveWindow},
		HeartbeatInterval:   timex.Duration{Duration: c.HeartbeatInterval},
		SessionHardLifetime: timex.Duration{Duration: c.SessionHardLifetime},
		SweepInterval:       timex.Duration{Duration: c.SweepInterval},
		TerminatedRetention: timex.Duration{Duration: c.TerminatedRetention},
		FailureFloor:        timex.Duration{Duration: c.FailureFloor},
		DeliveryTimeout:     timex.Duration{Duration: c.DeliveryTimeout},
		PublicBaseURL:       c.PublicBaseURL,
		CookieName:          c.CookieName,
		CookieSecure:        c.CookieSecure,
		SMTPHost:            c.SMTPHost,
		SMTPPort:            c.SMTPPort,
		SMTPUser:            c.SMTPUser,
		SMTPFrom:            c.SMTPFrom,
		SMSWebhookURL:       c.SMSWebhookURL,
		DevMode:             c.DevMode,
	}
}

func (j *JsonConfig) apply(c *Config) {
	c.EndpointAddrGRPC = j.EndpointAddrGRPC
	c.EndpointAddrHTTP = j.EndpointAddrHTTP
	c.DatabaseDSN = j.DatabaseDSN
	c.LogLevel = j.LogLevel
	c.MasterSalt = j.MasterSalt
	c.RPID = j.RPID
	c.RPDisplayName = j.RPDisplayName
	c.RPOrigins = j.RPOrigins
	c.TOTPIssuer = j.TOTPIssuer
	c.PendingTokenTTL = j.PendingTokenTTL.Duration
	c.ChallengeTTL = j.ChallengeTTL.Duration
	c.ContinuationTTL = j.ContinuationTTL.Duration
	c.SessionGrace = j.SessionGrace.Duration
	c.ActiveWindow = j.ActiveWindow.Duration
	c.HeartbeatInterval = j.HeartbeatInterval.Duration
	c.SessionHardLifetime = j.SessionHardLifetime.Duration
	c.SweepInterval = j.SweepInterval.Duration
	c.TerminatedRetention = j.TerminatedRetention.Duration
	c.FailureFloor = j.FailureFloor.Duration
	c.DeliveryTimeout = j.DeliveryTimeout.Duration
	c.PublicBaseURL = j.PublicBaseURL
	c.CookieName = j.CookieName
	c.CookieSecure = j.CookieSecure
	c.SMTPHost = j.SMTPHost
	c.SMTPPort = j.SMTPPort
	c.SMTPUser = j.SMTPUser
	c.SMTPFrom = j.SMTPFrom
	c.SMSWebhookURL = j.SMSWebhookURL
	c.DevMode = j.DevMode
}

// parseJson overlays the file named by -c/-config onto config. No flag means
// nothing to load.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	j := fromConfig(config)
	if err := json.Unmarshal(file, j); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	j.apply(config)
	return nil
}
