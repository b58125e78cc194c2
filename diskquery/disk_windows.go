//go:build windows

package diskquery

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// devicePath builds the raw device path for a physical disk number,
// e.g. 0 -> `\\.\PhysicalDrive0`.
func devicePath(index uint32) string {
	return fmt.Sprintf(`\\.\PhysicalDrive%d`, index)
}

// ReadProperties opens PhysicalDrive<index> and reads its vendor identity
// (serial, model, bus) from the storage property descriptor plus its raw
// capacity from the drive geometry.
func ReadProperties(index uint32) (DiskProperties, error) {
	path := devicePath(index)

	handle, err := openShared(path)
	if err != nil {
		return DiskProperties{}, &QueryError{Op: OpOpenDisk, Path: path, Err: err}
	}
	defer windows.CloseHandle(handle)

	var query storagePropertyQuery
	query.PropertyId = storageDeviceProperty
	query.QueryType = propertyStandardQuery

	buf := make([]byte, descriptorBufSize)
	var bytesReturned uint32

	err = windows.DeviceIoControl(
		handle,
		ioctlStorageQueryProperty,
		(*byte)(unsafe.Pointer(&query)),
		uint32(unsafe.Sizeof(query)),
		&buf[0],
		uint32(len(buf)),
		&bytesReturned,
		nil,
	)
	if err != nil {
		return DiskProperties{}, &QueryError{Op: OpQueryProperty, Path: path, Err: err}
	}

	props, err := parseDeviceDescriptor(buf, bytesReturned)
	if err != nil {
		return DiskProperties{}, &QueryError{Op: OpQueryProperty, Path: path, Err: err}
	}

	var geo diskGeometry

	err = windows.DeviceIoControl(
		handle,
		ioctlDiskGetDriveGeometry,
		nil,
		0,
		(*byte)(unsafe.Pointer(&geo)),
		uint32(unsafe.Sizeof(geo)),
		&bytesReturned,
		nil,
	)
	if err != nil {
		return DiskProperties{}, &QueryError{Op: OpQueryGeometry, Path: path, Err: err}
	}

	props.SizeBytes = geo.sizeBytes()

	return props, nil
}
