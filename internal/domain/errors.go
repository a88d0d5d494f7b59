package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateVerb   = errors.New("command verb already registered")
	ErrInternal        = errors.New("internal dispatch error")
	ErrInvalidCommand  = errors.New("invalid command definition")
	ErrInvalidSetting  = errors.New("invalid setting")
	ErrSettingNotFound = errors.New("setting not found")
	ErrSlotExists      = errors.New("watchdog slot already registered")
	ErrSlotNotFound    = errors.New("watchdog slot not found")
)

// UpdateError is returned by an update channel when a check or download
// fails. Code is reported to the OTA metrics session as the result code.
type UpdateError struct {
	Code int
	Err  error
}

func (e *UpdateError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("update failed, rv=%d", e.Code)
	}
	return fmt.Sprintf("update failed, rv=%d: %v", e.Code, e.Err)
}

func (e *UpdateError) Unwrap() error { return e.Err }

// DefaultUpdateErrorCode is used for update failures that carry no code.
const DefaultUpdateErrorCode = -1

// UpdateErrorCode extracts the result code from an update failure.
func UpdateErrorCode(err error) int {
	var updateErr *UpdateError
	if errors.As(err, &updateErr) {
		return updateErr.Code
	}
	return DefaultUpdateErrorCode
}
