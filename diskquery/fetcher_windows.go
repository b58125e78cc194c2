//go:build windows

package diskquery

type sysResolver struct{}

func (sysResolver) ResolveDisks(volumePath string) ([]uint32, error) {
	return ResolveDisks(volumePath)
}

type sysReader struct{}

func (sysReader) ReadProperties(index uint32) (DiskProperties, error) {
	return ReadProperties(index)
}

// NewFetcher returns a Fetcher wired to the live storage stack, with WMI as
// the fallback identity source.
func NewFetcher() *Fetcher {
	return &Fetcher{
		Resolver: sysResolver{},
		Reader:   sysReader{},
		Fallback: queryDiskDriveWMI,
	}
}
