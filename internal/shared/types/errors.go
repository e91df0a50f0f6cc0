package types

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDestination signals that no notification channel is configured.
	// It is reported as a warning, not a failure.
	ErrNoDestination = errors.New("no destination to post message; set EMAIL_TOPIC_ARN, SLACK_SECRET_NAME or LINE_SECRET_NAME")

	// ErrDirectoryAccessDenied is returned when the account directory refuses
	// the listing call. Callers fall back to raw account ids.
	ErrDirectoryAccessDenied = errors.New("access denied listing organization accounts")
)

// DataShapeError reports a cost report payload that violates the query
// contract. It is fatal: no partial summary is produced from a malformed
// report.
type DataShapeError struct {
	Field string
	Err   error
}

func (e *DataShapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed cost report: %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("malformed cost report: %s", e.Field)
}

func (e *DataShapeError) Unwrap() error { return e.Err }

// TransportError wraps a failed outbound notification call. The failing
// channel aborts the remaining dispatch sequence.
type TransportError struct {
	Channel string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s notification failed: %v", e.Channel, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
