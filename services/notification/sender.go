// Package notification fans booking updates out to the FCM tokens of the
// affected party and reports back which tokens are dead.
package notification

import "context"

// Failure codes a Sender may attach to an outcome. The two registration
// codes are permanent: the token will never work again and should be removed
// from the owner's record. Everything else is treated as transient.
const (
	CodeUnregistered = "registration-token-not-registered"
	CodeInvalidToken = "invalid-registration-token"
	CodeInternal     = "internal-error"
)

// PushMessage is one notification payload.
type PushMessage struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// SendOutcome is the per-token result of a batch send.
type SendOutcome struct {
	Token     string `json:"token"`
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	ErrCode   string `json:"errCode,omitempty"`
}

// Sender delivers one message to a batch of device tokens. Provider API
// variance (multicast endpoint vs per-device calls) lives behind this single
// method; adapters are chosen at construction, not per call.
type Sender interface {
	SendBatch(ctx context.Context, tokens []string, msg PushMessage) ([]SendOutcome, error)
}

// Permanent reports whether an outcome's failure code means the token is
// dead and should be pruned.
func (o SendOutcome) Permanent() bool {
	return o.ErrCode == CodeUnregistered || o.ErrCode == CodeInvalidToken
}
