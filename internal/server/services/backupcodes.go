package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/cryptox"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/repomanager"
)

// BackupCodeCount is the size of every batch.
const BackupCodeCount = 8

// backupAlphabet leaves out 0, O, 1 and I. Its length divides 256, so a
// byte modulo it is uniform.
const backupAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	backupGroups     = 4
	backupGroupWidth = 4
)

// GenerateBackupCodes returns n codes formatted as XXXX-XXXX-XXXX-XXXX.
func GenerateBackupCodes(n int) []string {
	codes := make([]string, n)
	for i := range codes {
		raw := common.GenerateRandByteArray(backupGroups * backupGroupWidth)

		var sb strings.Builder
		for j, r := range raw {
			if j > 0 && j%backupGroupWidth == 0 {
				sb.WriteByte('-')
			}
			sb.WriteByte(backupAlphabet[int(r)%len(backupAlphabet)])
		}
		codes[i] = sb.String()
	}
	return codes
}

// NormalizeBackupCode upper-cases and drops dashes and spaces.
func NormalizeBackupCode(code string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(strings.ToUpper(code))
}

func hashBackupCode(userID, code string) string {
	return cryptox.HashScoped(userID, NormalizeBackupCode(code))
}

// issueBackupCodes replaces the user's batch and returns the plaintext codes.
func (b *base) issueBackupCodes(ctx context.Context, repos repomanager.Repositories, userID string) ([]string, error) {
	codes := GenerateBackupCodes(BackupCodeCount)
	hashes := make([]string, len(codes))
	for i, c := range codes {
		hashes[i] = hashBackupCode(userID, c)
	}
	if err := repos.BackupCodes.Replace(ctx, userID, hashes, b.Clock.Now()); err != nil {
		return nil, err
	}
	return codes, nil
}
