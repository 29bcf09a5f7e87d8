package verifiers

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base32"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/jonboulle/clockwork"
	"github.com/skip2/go-qrcode"
)

const totpSecretBytes = 20

var b32 = base32.StdEncoding.WithPadding(base32.NoPadding)

type TOTPConfig struct {
	Issuer string
	Digits int
	Period int
	// Skew is the number of neighbouring steps accepted on either side.
	Skew   int
	QRSize int
}

func DefaultTOTPConfig(issuer string) TOTPConfig {
	return TOTPConfig{Issuer: issuer, Digits: 6, Period: 30, Skew: 1, QRSize: 256}
}

// TOTP verifies RFC 6238 codes (HMAC-SHA1). The replay mark is the matched
// time step, so a code is accepted at most once per step.
type TOTP struct {
	cfg   TOTPConfig
	clock clockwork.Clock
}

func NewTOTP(cfg TOTPConfig, clock clockwork.Clock) *TOTP {
	return &TOTP{cfg: cfg, clock: clock}
}

func (t *TOTP) Method() models.AuthMethod { return models.MethodTOTP }

// TOTPRegistration is what an authenticator app needs to enroll.
type TOTPRegistration struct {
	Secret string `json:"secret"`
	URI    string `json:"uri"`
	QRCode []byte `json:"qr_png"`
	Digits int    `json:"digits"`
	Period int    `json:"period"`
}

type totpPrompt struct {
	Digits int `json:"digits"`
	Period int `json:"period"`
}

// TOTPResponse is the client's answer to either ceremony.
type TOTPResponse struct {
	Code string `json:"code"`
}

func (t *TOTP) RegisterChallenge(_ context.Context, subject Subject) (Challenge, error) {
	secret := common.GenerateRandByteArray(totpSecretBytes)
	encoded := b32.EncodeToString(secret)
	uri := t.ProvisionURI(encoded, subject.Handle)

	qr, err := qrcode.New(uri, qrcode.Medium)
	if err != nil {
		return Challenge{}, fmt.Errorf("qr code: %w", err)
	}
	png, err := qr.PNG(t.cfg.QRSize)
	if err != nil {
		return Challenge{}, fmt.Errorf("qr code: %w", err)
	}

	opts, err := json.Marshal(TOTPRegistration{
		Secret: encoded, URI: uri, QRCode: png, Digits: t.cfg.Digits, Period: t.cfg.Period,
	})
	if err != nil {
		return Challenge{}, err
	}
	return Challenge{Options: opts, State: secret}, nil
}

func (t *TOTP) RegisterComplete(_ context.Context, _ Subject, state, response []byte) (NewCredential, error) {
	step, err := t.match(state, response)
	if err != nil {
		return NewCredential{}, err
	}
	// the enrolment code is spent; the first login needs a later step
	return NewCredential{Payload: state, ReplayCounter: step}, nil
}

func (t *TOTP) AuthChallenge(context.Context, Subject, Stored) (Challenge, error) {
	opts, err := json.Marshal(totpPrompt{Digits: t.cfg.Digits, Period: t.cfg.Period})
	if err != nil {
		return Challenge{}, err
	}
	return Challenge{Options: opts}, nil
}

func (t *TOTP) DecoyChallenge(ctx context.Context, _ []byte) (Challenge, error) {
	return t.AuthChallenge(ctx, Subject{}, Stored{})
}

func (t *TOTP) AuthComplete(_ context.Context, _ Subject, stored Stored, _, response []byte) (ReplayMark, error) {
	step, err := t.match(stored.Payload, response)
	if err != nil {
		return ReplayMark{}, err
	}
	if step <= stored.ReplayCounter {
		return ReplayMark{}, common.ErrCodeReplay
	}
	return ReplayMark{Value: step}, nil
}

// match returns the time step whose code equals the response.
func (t *TOTP) match(secret, response []byte) (int64, error) {
	var r TOTPResponse
	if err := json.Unmarshal(response, &r); err != nil {
		return 0, common.ErrMalformedResponse
	}
	code := strings.ReplaceAll(strings.TrimSpace(r.Code), " ", "")
	if len(code) != t.cfg.Digits || !isDigits(code) {
		return 0, common.ErrCodeMismatch
	}
	if len(secret) == 0 {
		return 0, common.ErrCredentialNotFound
	}

	base := t.clock.Now().Unix() / int64(t.cfg.Period)
	for d := -t.cfg.Skew; d <= t.cfg.Skew; d++ {
		step := base + int64(d)
		if step < 0 {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(hotp(secret, step, t.cfg.Digits)), []byte(code)) == 1 {
			return step, nil
		}
	}
	return 0, common.ErrCodeWindowMismatch
}

// ProvisionURI builds the otpauth:// URI encoded in the QR code.
func (t *TOTP) ProvisionURI(secretBase32, account string) string {
	label := url.PathEscape(t.cfg.Issuer + ":" + account)

	v := url.Values{}
	v.Set("secret", secretBase32)
	v.Set("issuer", t.cfg.Issuer)
	v.Set("period", strconv.Itoa(t.cfg.Period))
	v.Set("digits", strconv.Itoa(t.cfg.Digits))
	v.Set("algorithm", "SHA1")

	return "otpauth://totp/" + label + "?" + v.Encode()
}

// CodeAt returns the code for secret at the step containing unix seconds ts.
func (t *TOTP) CodeAt(secret []byte, ts int64) string {
	return hotp(secret, ts/int64(t.cfg.Period), t.cfg.Digits)
}

func hotp(secret []byte, counter int64, digits int) string {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], uint64(counter))

	mac := hmac.New(sha1.New, secret)
	_, _ = mac.Write(msg[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	bin := (int(sum[offset])&0x7f)<<24 |
		(int(sum[offset+1])&0xff)<<16 |
		(int(sum[offset+2])&0xff)<<8 |
		(int(sum[offset+3]) & 0xff)

	mod := 1
	for i := 0; i < digits; i++ {
		mod *= 10
	}
	return fmt.Sprintf("%0*d", digits, bin%mod)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// DecodeSecret parses a base32 secret with or without padding.
func DecodeSecret(s string) ([]byte, error) {
	return b32.DecodeString(strings.TrimRight(strings.ToUpper(strings.TrimSpace(s)), "="))
}
