package entities

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSpeakerMetric_UnmarshalPreservesKeyOrder(t *testing.T) {
	var m SpeakerMetric
	if err := json.Unmarshal([]byte(`{"Zoe": 40.5, "Adam": 59.5, "Mia": 0}`), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []Speaker{"Zoe", "Adam", "Mia"}
	if got := m.Speakers(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Speakers() = %v, want %v", got, want)
	}
	if v, ok := m.Get("Adam"); !ok || v != 59.5 {
		t.Fatalf("Get(Adam) = %v, %v", v, ok)
	}
	if i := m.IndexOf("Mia"); i != 2 {
		t.Fatalf("IndexOf(Mia) = %d, want 2", i)
	}
	if i := m.IndexOf("Nobody"); i != -1 {
		t.Fatalf("IndexOf(Nobody) = %d, want -1", i)
	}
}

func TestSpeakerMetric_NullValuesAreAbsent(t *testing.T) {
	var m SpeakerMetric
	if err := json.Unmarshal([]byte(`{"A": 1, "B": null}`), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}
	if _, ok := m.Get("B"); ok {
		t.Fatalf("expected B to be absent")
	}
}

func TestSpeakerMetric_DuplicateKeyKeepsFirstPosition(t *testing.T) {
	var m SpeakerMetric
	if err := json.Unmarshal([]byte(`{"A": 1, "B": 2, "A": 3}`), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := m.Speakers(); !reflect.DeepEqual(got, []Speaker{"A", "B"}) {
		t.Fatalf("Speakers() = %v", got)
	}
	if v, _ := m.Get("A"); v != 3 {
		t.Fatalf("Get(A) = %v, want 3", v)
	}
}

func TestSpeakerMetric_RejectsNonObject(t *testing.T) {
	var m SpeakerMetric
	if err := json.Unmarshal([]byte(`[1,2]`), &m); err == nil {
		t.Fatalf("expected error for array input")
	}
	if err := json.Unmarshal([]byte(`{"A": "x"}`), &m); err == nil {
		t.Fatalf("expected error for string value")
	}
}

func TestSpeakerMetric_NullAndMarshal(t *testing.T) {
	var m SpeakerMetric
	if err := json.Unmarshal([]byte(`null`), &m); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("expected empty metric")
	}

	m = NewSpeakerMetric(MetricEntry{"Bob", 2}, MetricEntry{"Alice", 1.5})
	out, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"Bob":2,"Alice":1.5}` {
		t.Fatalf("marshal = %s", out)
	}
}

func TestSpeakerMetric_NullBetweenKeysKeepsOrder(t *testing.T) {
	var m SpeakerMetric
	if err := json.Unmarshal([]byte(`{"C": 3, "B": null, "A": 1}`), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := []MetricEntry{{"C", 3}, {"A", 1}}
	if got := m.Entries(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Entries() = %v, want %v", got, want)
	}
	if i := m.IndexOf("A"); i != 1 {
		t.Fatalf("IndexOf(A) = %d, want 1", i)
	}

	out, err := json.Marshal(SpeakerMetric{})
	if err != nil || string(out) != `{}` {
		t.Fatalf("marshal zero = %s, %v", out, err)
	}
}
