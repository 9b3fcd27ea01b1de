package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SessionRecordKey is the single slot under which the persisted session lives.
// Identity snapshot and token are written together as one composite value so a
// half-written pair can never be observed.
const SessionRecordKey = "club_session"

// Session is a point-in-time view of the process-wide session state.
// Invariant: IsAuthenticated == (CurrentIdentity != nil).
type Session struct {
	CurrentIdentity *Identity `json:"current_identity"`
	IsAuthenticated bool      `json:"is_authenticated"`
	IsLoading       bool      `json:"is_loading"`
}

// SessionRecord is the durable shape written on login and profile updates
// and read back once at process start.
type SessionRecord struct {
	Identity *Identity `json:"identity"`
	Token    string    `json:"token"`
	SavedAt  time.Time `json:"saved_at"`
}

// NewSessionRecord builds a record for the given identity and token
func NewSessionRecord(identity *Identity, token string) (*SessionRecord, error) {
	if identity == nil {
		return nil, fmt.Errorf("identity is required")
	}
	if token == "" {
		return nil, fmt.Errorf("session token is required")
	}

	return &SessionRecord{
		Identity: identity,
		Token:    token,
		SavedAt:  time.Now(),
	}, nil
}

// Encode serializes the record for the key-value store
func (r *SessionRecord) Encode() (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to encode session record: %w", err)
	}
	return string(data), nil
}

// DecodeSessionRecord parses a persisted record. A record that parses but
// carries no usable identity or token is treated as corrupt.
func DecodeSessionRecord(value string) (*SessionRecord, error) {
	var record SessionRecord
	if err := json.Unmarshal([]byte(value), &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRestoreCorrupted, err)
	}

	if record.Identity == nil || record.Token == "" {
		return nil, fmt.Errorf("%w: incomplete record", ErrRestoreCorrupted)
	}
	if record.Identity.Email == "" || !record.Identity.Role.IsValid() {
		return nil, fmt.Errorf("%w: malformed identity", ErrRestoreCorrupted)
	}

	return &record, nil
}

// NewSessionToken mints an opaque session token. The token only needs to be
// unique; it carries no meaning and is never parsed.
func NewSessionToken() string {
	return fmt.Sprintf("sess_%s", uuid.NewString())
}
