package errors

// ErrorCode identifies an application error class
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = 0

	ErrorCode_HTTP_OK ErrorCode = 200

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003
	ErrorCode_CONFLICT         ErrorCode = 1004

	// Backend collaborators
	ErrorCode_BACKEND_TRANSPORT ErrorCode = 2000
	ErrorCode_BACKEND_REJECTED  ErrorCode = 2001

	// Session / report
	ErrorCode_SESSION_NOT_READY ErrorCode = 3000
	ErrorCode_NO_SPEAKERS       ErrorCode = 3001

	// Replay
	ErrorCode_MAIN_USER_UNRESOLVED ErrorCode = 4000
	ErrorCode_EMPTY_PLAYLIST       ErrorCode = 4001
	ErrorCode_REPLAY_UNAVAILABLE   ErrorCode = 4002
	ErrorCode_REPLAY_IN_PROGRESS   ErrorCode = 4003
	ErrorCode_PLAYBACK_FAILED      ErrorCode = 4004

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 5000
	ErrorCode_INTEGRATION_AUDIO_FAILED   ErrorCode = 5001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:                "UNSPECIFIED",
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_CONFLICT:                   "CONFLICT",
	ErrorCode_BACKEND_TRANSPORT:          "BACKEND_TRANSPORT",
	ErrorCode_BACKEND_REJECTED:           "BACKEND_REJECTED",
	ErrorCode_SESSION_NOT_READY:          "SESSION_NOT_READY",
	ErrorCode_NO_SPEAKERS:                "NO_SPEAKERS",
	ErrorCode_MAIN_USER_UNRESOLVED:       "MAIN_USER_UNRESOLVED",
	ErrorCode_EMPTY_PLAYLIST:             "EMPTY_PLAYLIST",
	ErrorCode_REPLAY_UNAVAILABLE:         "REPLAY_UNAVAILABLE",
	ErrorCode_REPLAY_IN_PROGRESS:         "REPLAY_IN_PROGRESS",
	ErrorCode_PLAYBACK_FAILED:            "PLAYBACK_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_AUDIO_FAILED:   "INTEGRATION_AUDIO_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// MarshalText renders the code by name in JSON bodies
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
