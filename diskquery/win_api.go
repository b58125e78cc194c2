package diskquery

import (
	"bytes"
	"unsafe"
)

const (
	// IOCTL Codes

	ioctlStorageQueryProperty       = 0x2D1400
	ioctlVolumeGetVolumeDiskExtents = 0x560000
	ioctlDiskGetDriveGeometry       = 0x70000

	// STORAGE_PROPERTY_QUERY fields

	storageDeviceProperty = 0 // PropertyId
	propertyStandardQuery = 0 // QueryType

	// Descriptor buffer, large enough for the fixed header plus the
	// vendor strings the offsets point into.
	descriptorBufSize = 1024
)

// --- Struct Definitions ---

// STORAGE_PROPERTY_QUERY
type storagePropertyQuery struct {
	PropertyId           uint32
	QueryType            uint32
	AdditionalParameters [1]byte
}

// STORAGE_DEVICE_DESCRIPTOR header. The serial and product strings live
// further inside the same output buffer, located by the offset fields.
type storageDeviceDescriptor struct {
	Version               uint32
	Size                  uint32
	DeviceType            byte
	DeviceTypeModifier    byte
	RemovableMedia        bool
	CommandQueueing       bool
	VendorIdOffset        uint32
	ProductIdOffset       uint32
	ProductRevisionOffset uint32
	SerialNumberOffset    uint32
	BusType               uint32
	RawPropertiesLength   uint32
}

// DISK_EXTENT
type diskExtent struct {
	DiskNumber     uint32
	StartingOffset int64
	ExtentLength   int64
}

// VOLUME_DISK_EXTENTS header; Extents is variable length on the wire.
type volumeDiskExtents struct {
	NumberOfDiskExtents uint32
	Extents             [1]diskExtent
}

// DISK_GEOMETRY
type diskGeometry struct {
	Cylinders         int64
	MediaType         uint32
	TracksPerCylinder uint32
	SectorsPerTrack   uint32
	BytesPerSector    uint32
}

const (
	diskExtentSize        = int(unsafe.Sizeof(diskExtent{}))
	volumeDiskExtentsBase = int(unsafe.Offsetof(volumeDiskExtents{}.Extents))
)

// sizeBytes is the raw capacity implied by the geometry. The product is
// carried in uint64 so no realistic geometry can overflow it.
func (g diskGeometry) sizeBytes() uint64 {
	return uint64(g.Cylinders) *
		uint64(g.TracksPerCylinder) *
		uint64(g.SectorsPerTrack) *
		uint64(g.BytesPerSector)
}

// extentsBufSize returns the output buffer size needed for count extents.
func extentsBufSize(count uint32) int {
	return volumeDiskExtentsBase + int(count)*diskExtentSize
}

// parseDiskExtents reads the disk numbers out of a VOLUME_DISK_EXTENTS
// buffer, in driver order, without deduplicating. Extents beyond the end
// of the buffer are ignored.
func parseDiskExtents(buf []byte) []uint32 {
	if len(buf) < volumeDiskExtentsBase {
		return nil
	}

	header := (*volumeDiskExtents)(unsafe.Pointer(&buf[0]))
	count := header.NumberOfDiskExtents

	if limit := uint32((len(buf) - volumeDiskExtentsBase) / diskExtentSize); count > limit {
		count = limit
	}

	disks := make([]uint32, 0, count)
	for i := uint32(0); i < count; i++ {
		e := (*diskExtent)(unsafe.Pointer(&buf[volumeDiskExtentsBase+int(i)*diskExtentSize]))
		disks = append(disks, e.DiskNumber)
	}

	return disks
}

// parseDeviceDescriptor interprets a STORAGE_DEVICE_DESCRIPTOR output
// buffer. n is the byte count the driver reported. Offset fields of zero
// mean the string is absent and yield "".
func parseDeviceDescriptor(buf []byte, n uint32) (DiskProperties, error) {
	if int(n) < int(unsafe.Sizeof(storageDeviceDescriptor{})) || len(buf) < int(unsafe.Sizeof(storageDeviceDescriptor{})) {
		return DiskProperties{}, errShortDescriptor
	}

	header := (*storageDeviceDescriptor)(unsafe.Pointer(&buf[0]))

	props := DiskProperties{
		Bus:       BusType(header.BusType),
		Removable: header.RemovableMedia,
	}

	if header.SerialNumberOffset != 0 {
		props.Serial = extractString(buf, header.SerialNumberOffset)
	}
	if header.ProductIdOffset != 0 {
		props.Model = extractString(buf, header.ProductIdOffset)
	}

	return props, nil
}

// extractString reads a null-terminated string from a raw buffer at offset,
// never reading past the end of the buffer.
func extractString(buf []byte, offset uint32) string {
	if offset >= uint32(len(buf)) {
		return ""
	}

	end := bytes.IndexByte(buf[offset:], 0)
	if end == -1 {
		return string(buf[offset:])
	}

	return string(buf[offset : offset+uint32(end)])
}
