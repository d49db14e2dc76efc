package ingest

import (
	"errors"
	"fmt"
)

// ErrInvalidURL is returned for URLs that do not parse or use an
// unsupported scheme.
var ErrInvalidURL = errors.New("invalid url")

// ErrNoData is returned when a fetch succeeds but the body is empty.
var ErrNoData = errors.New("no data received")

// ErrNotImplemented marks declared source types without an
// implementation (csv_file, rest).
var ErrNotImplemented = errors.New("source type not implemented")

// DownloadFailedError reports a failed remote fetch with its reason.
// A fetch is a single attempt; it is never retried automatically.
type DownloadFailedError struct {
	Reason string
}

func (e *DownloadFailedError) Error() string {
	return fmt.Sprintf("download failed: %s", e.Reason)
}
