//go:build !windows

package diskquery

import (
	"errors"
	"fmt"
)

var errUnsupported = errors.New("disk queries require Windows")

type sysResolver struct{}

func (sysResolver) ResolveDisks(volumePath string) ([]uint32, error) {
	return nil, &QueryError{Op: OpOpenVolume, Path: volumePath, Err: errUnsupported}
}

type sysReader struct{}

func (sysReader) ReadProperties(index uint32) (DiskProperties, error) {
	return DiskProperties{}, &QueryError{Op: OpOpenDisk, Path: fmt.Sprintf(`\\.\PhysicalDrive%d`, index), Err: errUnsupported}
}

// NewFetcher returns a Fetcher whose queries all report that the platform
// is unsupported, so callers still get the best-effort zero result.
func NewFetcher() *Fetcher {
	return &Fetcher{
		Resolver: sysResolver{},
		Reader:   sysReader{},
	}
}
