package entities

import "strings"

// JobID is the opaque handle of one analysis run
type JobID string

// Speaker is an opaque diarization identifier such as "SPEAKER_01"
type Speaker string

// DisplayName is the user-chosen name bound to one Speaker
type DisplayName string

// NameKey is the normalized lookup form of a DisplayName
type NameKey string

// Key returns the case-insensitive, whitespace-trimmed lookup key
func (n DisplayName) Key() NameKey {
	return NormalizeName(string(n))
}

// NormalizeName lowercases and trims a free-text name for lookup
func NormalizeName(name string) NameKey {
	return NameKey(strings.ToLower(strings.TrimSpace(name)))
}

// Upload is the backend's answer to a media upload
type Upload struct {
	JobID    JobID              `json:"job_id" validate:"required"`
	Speakers []Speaker          `json:"speakers"`
	Samples  map[Speaker]string `json:"samples"`
}
