package diskquery

import "errors"

// Op names the storage-stack operation that failed.
type Op string

const (
	OpOpenVolume    Op = "open volume"
	OpQueryExtents  Op = "query volume disk extents"
	OpOpenDisk      Op = "open disk"
	OpQueryProperty Op = "query storage property"
	OpQueryGeometry Op = "query drive geometry"
)

// QueryError wraps the OS error behind a failed volume or disk query.
type QueryError struct {
	Op   Op
	Path string
	Err  error
}

func (e *QueryError) Error() string {
	return string(e.Op) + " " + e.Path + ": " + e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

var errShortDescriptor = errors.New("device descriptor shorter than header")
