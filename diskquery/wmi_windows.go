//go:build windows

package diskquery

import (
	"fmt"

	"github.com/yusufpapurcu/wmi"
)

// Win32_DiskDrive maps to the WMI class. The fields tell the library which
// WMI properties to load.
type Win32_DiskDrive struct {
	Index        uint32
	Model        string
	SerialNumber string
	Size         uint64
}

// queryDiskDriveWMI asks WMI for the same identity the IOCTL path reads.
// Some filter drivers block IOCTL_STORAGE_QUERY_PROPERTY while the WMI
// provider still answers, so the fetcher uses this as a last resort.
func queryDiskDriveWMI(index uint32) (DiskProperties, error) {
	var dst []Win32_DiskDrive

	q := wmi.CreateQuery(&dst, fmt.Sprintf("WHERE Index = %d", index))
	if err := wmi.Query(q, &dst); err != nil {
		return DiskProperties{}, err
	}
	if len(dst) == 0 {
		return DiskProperties{}, fmt.Errorf("no Win32_DiskDrive instance with Index = %d", index)
	}

	d := dst[0]
	return DiskProperties{
		Serial:    d.SerialNumber,
		Model:     d.Model,
		SizeBytes: d.Size,
	}, nil
}
