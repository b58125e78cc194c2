//go:build windows

package diskquery

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// openShared opens an existing device path with no access rights beyond
// querying, sharing read and write with whoever holds the device.
func openShared(path string) (windows.Handle, error) {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return windows.InvalidHandle, err
	}

	return windows.CreateFile(
		pathPtr,
		0,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0,
	)
}

// ResolveDisks maps a volume device path (e.g. `\\.\C:`) to the physical
// disk numbers backing it, in the order the volume driver reports its
// extents. A spanned volume yields one number per extent, duplicates
// included.
func ResolveDisks(volumePath string) ([]uint32, error) {
	handle, err := openShared(volumePath)
	if err != nil {
		return nil, &QueryError{Op: OpOpenVolume, Path: volumePath, Err: err}
	}
	defer windows.CloseHandle(handle)

	// Room for a handful of extents up front; spanned volumes needing more
	// fail with ERROR_MORE_DATA and a count to retry with.
	buf := make([]byte, extentsBufSize(8))

	for {
		var bytesReturned uint32

		err = windows.DeviceIoControl(
			handle,
			ioctlVolumeGetVolumeDiskExtents,
			nil,
			0,
			&buf[0],
			uint32(len(buf)),
			&bytesReturned,
			nil,
		)
		if err == nil {
			break
		}

		if err == windows.ERROR_MORE_DATA {
			count := (*volumeDiskExtents)(unsafe.Pointer(&buf[0])).NumberOfDiskExtents
			if need := extentsBufSize(count); need > len(buf) {
				buf = make([]byte, need)
				continue
			}
		}

		return nil, &QueryError{Op: OpQueryExtents, Path: volumePath, Err: err}
	}

	return parseDiskExtents(buf), nil
}
