// Package diskquery reports a physical disk's serial number, model and
// capacity starting from a logical volume path, by asking the Windows
// storage stack which disk(s) back the volume and then querying the disk
// device directly.
package diskquery

import "log"

// VolumeResolver maps a volume path to the physical disk numbers backing it.
type VolumeResolver interface {
	ResolveDisks(volumePath string) ([]uint32, error)
}

// PropertyReader reads one physical disk's identity and capacity.
type PropertyReader interface {
	ReadProperties(index uint32) (DiskProperties, error)
}

// Fetcher resolves a volume and tries each backing disk in order until one
// yields properties. It is best-effort: every failure is logged and the
// worst outcome is a zero DiskProperties, never an error.
//
// A Fetcher holds no state between calls; independent Fetchers are safe to
// use concurrently with each other.
type Fetcher struct {
	Resolver VolumeResolver
	Reader   PropertyReader

	// Fallback, when set, is consulted per disk number after every Reader
	// attempt has failed.
	Fallback func(index uint32) (DiskProperties, error)

	// Logf receives diagnostics; defaults to log.Printf.
	Logf func(format string, args ...any)
}

func (f *Fetcher) logf(format string, args ...any) {
	if f.Logf != nil {
		f.Logf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// Fetch returns the properties of the first backing disk of volumePath that
// answers, or a zero DiskProperties when nothing could be determined.
func (f *Fetcher) Fetch(volumePath string) DiskProperties {
	disks, err := f.Resolver.ResolveDisks(volumePath)
	if err != nil {
		f.logf("diskquery: %v", err)
		return DiskProperties{}
	}

	for _, n := range disks {
		props, err := f.Reader.ReadProperties(n)
		if err != nil {
			f.logf("diskquery: %v", err)
			continue
		}
		return props
	}

	if f.Fallback != nil {
		for _, n := range disks {
			props, err := f.Fallback(n)
			if err != nil {
				f.logf("diskquery: PhysicalDrive%d fallback: %v", n, err)
				continue
			}
			return props
		}
	}

	return DiskProperties{}
}
