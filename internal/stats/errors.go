package stats

import "fmt"

// ErrInvalidResult indicates SaveGameResult rejected its input. Nothing
// was read or written.
type ErrInvalidResult struct {
	Reason string
}

func (e *ErrInvalidResult) Error() string {
	return fmt.Sprintf("invalid game result: %s", e.Reason)
}

// ErrStorage indicates the key-value backend failed during Op. The
// persisted document is unchanged.
type ErrStorage struct {
	Op  string
	Err error
}

func (e *ErrStorage) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *ErrStorage) Unwrap() error { return e.Err }
