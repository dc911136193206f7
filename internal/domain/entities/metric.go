package entities

import (
	"bytes"
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// MetricEntry is one speaker's value in a SpeakerMetric
type MetricEntry struct {
	Speaker Speaker
	Value   float64
}

// SpeakerMetric is a per-speaker metric map that remembers insertion order.
// The backend emits these as JSON objects whose key order is first-appearance
// order, and layout decisions depend on that order, so it must survive decoding.
// The zero value is an empty metric.
type SpeakerMetric struct {
	m *orderedmap.OrderedMap[Speaker, float64]
}

// NewSpeakerMetric builds a metric from entries in order
func NewSpeakerMetric(entries ...MetricEntry) SpeakerMetric {
	var m SpeakerMetric
	for _, e := range entries {
		m.Set(e.Speaker, e.Value)
	}
	return m
}

// Set stores v for s. Overwriting keeps the original position.
func (m *SpeakerMetric) Set(s Speaker, v float64) {
	if m.m == nil {
		m.m = orderedmap.New[Speaker, float64]()
	}
	m.m.Set(s, v)
}

// Get returns the value for s
func (m SpeakerMetric) Get(s Speaker) (float64, bool) {
	if m.m == nil {
		return 0, false
	}
	return m.m.Get(s)
}

// IndexOf returns the position of s in key order, or -1
func (m SpeakerMetric) IndexOf(s Speaker) int {
	if m.m == nil {
		return -1
	}
	i := 0
	for p := m.m.Oldest(); p != nil; p = p.Next() {
		if p.Key == s {
			return i
		}
		i++
	}
	return -1
}

// Len returns the number of speakers reporting a value
func (m SpeakerMetric) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

// Entries returns the entries in key order
func (m SpeakerMetric) Entries() []MetricEntry {
	out := make([]MetricEntry, 0, m.Len())
	if m.m == nil {
		return out
	}
	for p := m.m.Oldest(); p != nil; p = p.Next() {
		out = append(out, MetricEntry{Speaker: p.Key, Value: p.Value})
	}
	return out
}

// Speakers returns the keys in order
func (m SpeakerMetric) Speakers() []Speaker {
	out := make([]Speaker, 0, m.Len())
	if m.m == nil {
		return out
	}
	for p := m.m.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}

// UnmarshalJSON decodes an object while preserving key order. Null values
// are dropped so the speaker counts as not reporting.
func (m *SpeakerMetric) UnmarshalJSON(data []byte) error {
	*m = SpeakerMetric{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	raw := orderedmap.New[Speaker, *float64]()
	if err := json.Unmarshal(data, raw); err != nil {
		return err
	}
	for p := raw.Oldest(); p != nil; p = p.Next() {
		if p.Value != nil {
			m.Set(p.Key, *p.Value)
		}
	}
	return nil
}

// MarshalJSON encodes the metric as an object in key order
func (m SpeakerMetric) MarshalJSON() ([]byte, error) {
	if m.m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m.m)
}
