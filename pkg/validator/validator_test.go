package validator

import "testing"

func TestIsClipRef(t *testing.T) {
	cases := map[string]bool{
		"/static/samples/coach_J1_SPEAKER_00_ab12cd34.wav": true,
		"https://cdn.example.com/clip.wav":                 true,
		"http://":                                          false,
		"s3://coach-clips/J1/trigger.wav":                  true,
		"s3://coach-clips":                                 false,
		"s3:///key.wav":                                    false,
		"":                                                 false,
		"   ":                                              false,
		"static/relative.wav":                              false,
	}
	for ref, want := range cases {
		if got := IsClipRef(ref); got != want {
			t.Fatalf("IsClipRef(%q) = %v, want %v", ref, got, want)
		}
	}
}

func TestValidate_ClipRefTag(t *testing.T) {
	type playlist struct {
		Clips []string `validate:"required,min=1,dive,clipref"`
	}

	v := New()
	if err := v.Validate(&playlist{Clips: []string{"/static/a.wav", "s3://b/c.wav"}}); err != nil {
		t.Fatalf("expected valid playlist, got %v", err)
	}
	if err := v.Validate(&playlist{Clips: []string{"/static/a.wav", ""}}); err == nil {
		t.Fatalf("expected empty clip reference to fail")
	}
	if err := v.Validate(&playlist{}); err == nil {
		t.Fatalf("expected missing playlist to fail")
	}
}
