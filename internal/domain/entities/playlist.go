package entities

// PlaylistItem references one synthesized clip. Position carries meaning:
// trigger clip first when present, response clip last.
type PlaylistItem string

// Playlist is the ordered synthesis result for one replay
type Playlist []PlaylistItem

// SynthesisRequest carries both speaker/text pairs of one replay
type SynthesisRequest struct {
	JobID           JobID   `validate:"required"`
	TriggerSpeaker  Speaker
	TriggerText     string
	ResponseSpeaker Speaker `validate:"required"`
	ResponseText    string
}

// AnalyzeRequest is the identity submission for one job
type AnalyzeRequest struct {
	JobID        JobID                   `validate:"required"`
	SpeakerMap   map[Speaker]DisplayName `validate:"required"`
	MainUserName DisplayName
}
