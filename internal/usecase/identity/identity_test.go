package identity

import (
	"testing"

	"github.com/johnquangdev/convo-coach/errors"
	"github.com/johnquangdev/convo-coach/internal/domain/entities"
)

var twoSpeakers = []entities.Speaker{"SPEAKER_00", "SPEAKER_01"}

func TestResolve_DefaultsToSpeakerID(t *testing.T) {
	id, err := Resolve(twoSpeakers, map[entities.Speaker]string{"SPEAKER_01": "   "}, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	for _, s := range twoSpeakers {
		name, ok := id.NameOf(s)
		if !ok || string(name) != string(s) {
			t.Fatalf("NameOf(%s) = %q, %v", s, name, ok)
		}
	}
	if id.MainUser() != "SPEAKER_00" || id.MainSpeaker() != "SPEAKER_00" {
		t.Fatalf("default main user = %q", id.MainUser())
	}
}

func TestResolve_ExactlyOneMainUser(t *testing.T) {
	inputs := map[entities.Speaker]string{"SPEAKER_00": "Alice", "SPEAKER_01": "Bob", "SPEAKER_02": "Cleo"}
	speakers := []entities.Speaker{"SPEAKER_00", "SPEAKER_01", "SPEAKER_02"}
	for i, sel := range speakers {
		id, err := Resolve(speakers, inputs, sel)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", sel, err)
		}
		if string(id.MainUser()) != inputs[speakers[i]] {
			t.Fatalf("MainUser() = %q, want %q", id.MainUser(), inputs[speakers[i]])
		}
	}
}

func TestResolve_TrimsInput(t *testing.T) {
	id, err := Resolve(twoSpeakers, map[entities.Speaker]string{"SPEAKER_00": "  Alice "}, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if id.MainUser() != "Alice" {
		t.Fatalf("MainUser() = %q", id.MainUser())
	}
}

func TestLookup_CaseAndWhitespaceInsensitive(t *testing.T) {
	id, err := Resolve(twoSpeakers, map[entities.Speaker]string{"SPEAKER_00": "Alice", "SPEAKER_01": "Bob"}, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	for _, q := range []string{" Bob ", "bob", "BOB"} {
		s, ok := id.Lookup(q)
		if !ok || s != "SPEAKER_01" {
			t.Fatalf("Lookup(%q) = %q, %v", q, s, ok)
		}
	}
	if _, ok := id.Lookup("  "); ok {
		t.Fatalf("blank lookup should not resolve")
	}
	if _, ok := id.Lookup("Carol"); ok {
		t.Fatalf("unknown name should not resolve")
	}
}

func TestLookup_CollisionResolvesToLast(t *testing.T) {
	id, err := Resolve(twoSpeakers, map[entities.Speaker]string{"SPEAKER_00": "Sam", "SPEAKER_01": "sam "}, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if s, _ := id.Lookup("SAM"); s != "SPEAKER_01" {
		t.Fatalf("Lookup(SAM) = %q, want SPEAKER_01", s)
	}
	// both names are still submitted
	m := id.SpeakerMap()
	if m["SPEAKER_00"] != "Sam" || m["SPEAKER_01"] != "sam" {
		t.Fatalf("SpeakerMap() = %v", m)
	}
}

func TestResolve_UnknownSelection(t *testing.T) {
	_, err := Resolve(twoSpeakers, nil, "SPEAKER_09")
	if !errors.HasCode(err, errors.ErrorCode_INVALID_ARGUMENT) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestResolve_NoSpeakers(t *testing.T) {
	id, err := Resolve(nil, nil, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if id.Len() != 0 || id.MainUser() != "" {
		t.Fatalf("expected empty identities, got %d speakers, main %q", id.Len(), id.MainUser())
	}
}

func TestAnalyzeRequest(t *testing.T) {
	id, err := Resolve(twoSpeakers, map[entities.Speaker]string{"SPEAKER_00": "Alice", "SPEAKER_01": "Bob"}, "SPEAKER_00")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	req := id.AnalyzeRequest("J1")
	if req.JobID != "J1" || req.MainUserName != "Alice" {
		t.Fatalf("unexpected request: %+v", req)
	}
	if len(req.SpeakerMap) != 2 || req.SpeakerMap["SPEAKER_01"] != "Bob" {
		t.Fatalf("SpeakerMap = %v", req.SpeakerMap)
	}
}
