package domain

import (
	"errors"
	"strings"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidPIN   = errors.New("invalid pin")
	ErrEmailTaken   = errors.New("email already registered")
)

// Location is the one-shot position captured at registration time. It is
// never refreshed afterwards.
type Location struct {
	Latitude  float64 `json:"latitude" firestore:"latitude"`
	Longitude float64 `json:"longitude" firestore:"longitude"`
}

// UserRecord is the profile/emergency-contact document stored in the "users"
// collection, keyed by a generated ID. Email is lower-cased before storage
// and lookup; the PIN is a plaintext 4-digit string compared byte-for-byte.
type UserRecord struct {
	ID           string    `json:"id" firestore:"id"`
	Email        string    `json:"email" firestore:"email"`
	PIN          string    `json:"pin" firestore:"pin"`
	Name         string    `json:"name" firestore:"name"`
	DateOfBirth  string    `json:"dateOfBirth" firestore:"dateOfBirth"`
	FatherName   string    `json:"fatherName" firestore:"fatherName"`
	FatherMobile string    `json:"fatherMobile" firestore:"fatherMobile"`
	Address      string    `json:"address" firestore:"address"`
	FriendName   string    `json:"friendName" firestore:"friendName"`
	FriendMobile string    `json:"friendMobile" firestore:"friendMobile"`
	BloodGroup   string    `json:"bloodGroup" firestore:"bloodGroup"`
	Location     *Location `json:"location,omitempty" firestore:"location,omitempty"`
	RegisteredAt string    `json:"registeredAt,omitempty" firestore:"registeredAt,omitempty"`
}

// BloodGroups lists the accepted values, in form order.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

func ValidBloodGroup(v string) bool {
	for _, g := range BloodGroups {
		if g == v {
			return true
		}
	}
	return false
}

// AlertType is one of the three tiers a user can trigger. Alerts are purely
// local cues (sound, torch, toast); nothing is transmitted anywhere.
type AlertType string

const (
	AlertLow    AlertType = "ALERT"
	AlertMedium AlertType = "DANGER"
	AlertHigh   AlertType = "EMERGENCY"
)

func (a AlertType) Valid() bool {
	return a == AlertLow || a == AlertMedium || a == AlertHigh
}

// Description mirrors the labels shown under each alert button.
func (a AlertType) Description() string {
	switch a {
	case AlertLow:
		return "Low-priority alert"
	case AlertMedium:
		return "Medium-priority alert"
	case AlertHigh:
		return "High-priority alert"
	}
	return ""
}

// SanitizePIN strips non-digit characters and truncates to 4, matching the
// as-you-type constraint on the PIN inputs.
func SanitizePIN(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
		if b.Len() == 4 {
			break
		}
	}
	return b.String()
}

// NormalizeEmail lower-cases the login key the same way on every path that
// touches the store.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
