// Package models defines server-side data models persisted in the credential store.
package models

// AuthMethod is the closed set of registration methods a user can hold.
type AuthMethod string

const (
	// MethodPasskey is a platform authenticator (Touch ID, Windows Hello, Android).
	MethodPasskey AuthMethod = "passkey"
	// MethodFIDO2 is a roaming hardware key.
	MethodFIDO2 AuthMethod = "fido2"
	// MethodTOTP is an authenticator app producing time-based codes.
	MethodTOTP AuthMethod = "totp"
)

// Methods lists every supported method in a stable order.
var Methods = []AuthMethod{MethodPasskey, MethodFIDO2, MethodTOTP}

func (m AuthMethod) Valid() bool {
	switch m {
	case MethodPasskey, MethodFIDO2, MethodTOTP:
		return true
	}
	return false
}

func (m AuthMethod) String() string { return string(m) }
