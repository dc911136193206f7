package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"time"
)

// AppError is the application error type surfaced to users and HTTP clients
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

// HasCode reports whether err is an AppError carrying code
func HasCode(err error, code ErrorCode) bool {
	var appErr AppError
	if stdErrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// UserMessage returns the human-readable part of err
func UserMessage(err error) string {
	var appErr AppError
	if stdErrors.As(err, &appErr) {
		if appErr.Code == ErrorCode_BACKEND_REJECTED && appErr.Details["reason"] != "" {
			return appErr.Details["reason"]
		}
		return appErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

// Backend Errors

// ErrBackendTransport covers network and decoding failures of a backend call
func ErrBackendTransport(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_BACKEND_TRANSPORT,
		Message:  fmt.Sprintf("Backend call failed: %s", operation),
	}.WithDetail("operation", operation)
}

// ErrBackendRejected covers a response body carrying an error field
func ErrBackendRejected(operation, reason string) AppError {
	return AppError{
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_BACKEND_REJECTED,
		Message:  fmt.Sprintf("Backend rejected %s", operation),
	}.WithDetail("operation", operation).
		WithDetail("reason", reason)
}

// Session Errors
func ErrSessionNotReady() AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_SESSION_NOT_READY,
		Message:  "No analyzed report in this session",
	}
}

func ErrNoSpeakers(jobID string) AppError {
	return AppError{
		HTTPCode: http.StatusUnprocessableEntity,
		Code:     ErrorCode_NO_SPEAKERS,
		Message:  "No speakers were detected in the recording",
	}.WithDetail("job_id", jobID)
}

// Replay Errors
func ErrMainUserUnresolved() AppError {
	return AppError{
		HTTPCode: http.StatusUnprocessableEntity,
		Code:     ErrorCode_MAIN_USER_UNRESOLVED,
		Message:  "Could not identify your voice for this replay",
	}
}

func ErrEmptyPlaylist() AppError {
	return AppError{
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_EMPTY_PLAYLIST,
		Message:  "No audio was generated for this replay",
	}
}

func ErrReplayUnavailable(index int) AppError {
	return AppError{
		HTTPCode: http.StatusUnprocessableEntity,
		Code:     ErrorCode_REPLAY_UNAVAILABLE,
		Message:  "Replay is not available for this action",
	}.WithDetail("index", fmt.Sprintf("%d", index))
}

func ErrReplayInProgress() AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_REPLAY_IN_PROGRESS,
		Message:  "A replay is already running for this action",
	}
}

func ErrPlaybackFailed(clip string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_PLAYBACK_FAILED,
		Message:  "Clip playback failed",
	}.WithDetail("clip", clip)
}

// Integration Errors
func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_STORAGE_FAILED,
		Message:  fmt.Sprintf("Storage operation failed: %s", operation),
	}
}

func ErrAudioFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_AUDIO_FAILED,
		Message:  fmt.Sprintf("Audio device operation failed: %s", operation),
	}
}
