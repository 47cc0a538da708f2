// Package leaderboard implements the shared high-score service: an HTTP JSON
// contract, a non-blocking client polled once per frame, and a SQLite-backed
// server.
package leaderboard

import (
	"errors"
	"strings"
	"unicode"
)

const (
	// MaxNameLen is the longest nickname kept, in characters.
	MaxNameLen = 16
	// MinNameLen is the shortest nickname accepted for submission.
	MinNameLen = 2
	// TopLimit is how many entries the server returns.
	TopLimit = 20
)

var (
	// ErrNameTooShort is returned when a nickname has fewer than MinNameLen characters.
	ErrNameTooShort = errors.New("leaderboard: name must be at least 2 characters")
	// ErrBusy is returned when a submission is already in flight.
	ErrBusy = errors.New("leaderboard: request already in flight")
)

// State is the lifecycle of a leaderboard request as seen by the UI.
type State uint8

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Entry is one leaderboard row.
type Entry struct {
	Name  string `json:"name"`
	Score uint32 `json:"score"`
}

// TopResponse is the body of GET ?action=top.
type TopResponse struct {
	OK    bool    `json:"ok"`
	Top   []Entry `json:"top"`
	Error string  `json:"error,omitempty"`
}

// SubmitRequest is the body of a score submission.
type SubmitRequest struct {
	Name  string `json:"name"`
	Score uint32 `json:"score"`
}

// SubmitResponse is the body returned for a submission.
type SubmitResponse struct {
	OK       bool    `json:"ok"`
	Name     string  `json:"name,omitempty"`
	Score    uint32  `json:"score"`
	Updated  bool    `json:"updated"`
	Previous *uint32 `json:"previous"`
	Error    string  `json:"error,omitempty"`
}

// SanitizeName applies the client nickname rules: only ASCII letters,
// underscore and space survive, and the result is cut to MaxNameLen.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == ' ' {
			b.WriteRune(r)
			if b.Len() == MaxNameLen {
				break
			}
		}
	}
	return b.String()
}

// ValidName reports whether a sanitized nickname may be submitted.
func ValidName(name string) bool {
	return len(name) >= MinNameLen
}

// NormalizeName applies the server rules, which are looser than the client's:
// surrounding space is trimmed, inner whitespace runs collapse to one space,
// ':' becomes '_', and any letter, digit, underscore or space is kept.
// The result is cut to MaxNameLen runes.
func NormalizeName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	name = strings.ReplaceAll(name, ":", "_")

	out := make([]rune, 0, MaxNameLen)
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == ' ' {
			out = append(out, r)
			if len(out) == MaxNameLen {
				break
			}
		}
	}
	return string(out)
}
