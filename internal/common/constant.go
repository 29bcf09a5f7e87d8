package common

import "time"

// SessionTokenHeaderName is the gRPC metadata key carrying the session token.
const SessionTokenHeaderName = "session_token"

// SessionCookieName is the default cookie used by the HTTP surface.
const SessionCookieName = "gk_session"

const (
	HandleMinLength = 5
	HandleMaxLength = 16

	// BackupCodeBatchSize is the number of codes in every issued batch.
	BackupCodeBatchSize = 8

	PendingTokenTTL = 15 * time.Minute
	ChallengeTTL    = 5 * time.Minute
	SessionGrace    = 30 * time.Minute
)
