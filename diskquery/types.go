package diskquery

import "fmt"

// BusType represents the hardware interface (USB, SATA, NVMe, etc.)
type BusType uint32

const (
	BusTypeUnknown           BusType = 0x00
	BusTypeScsi              BusType = 0x01
	BusTypeAtapi             BusType = 0x02
	BusTypeAta               BusType = 0x03
	BusType1394              BusType = 0x04
	BusTypeSsa               BusType = 0x05
	BusTypeFibre             BusType = 0x06
	BusTypeUsb               BusType = 0x07
	BusTypeRAID              BusType = 0x08
	BusTypeiScsi             BusType = 0x09
	BusTypeSas               BusType = 0x0A
	BusTypeSata              BusType = 0x0B
	BusTypeSd                BusType = 0x0C
	BusTypeMmc               BusType = 0x0D
	BusTypeVirtual           BusType = 0x0E
	BusTypeFileBackedVirtual BusType = 0x0F
	BusTypeNvme              BusType = 0x11
)

var busTypeNames = map[BusType]string{
	BusTypeUnknown:           "Unknown",
	BusTypeScsi:              "SCSI",
	BusTypeAtapi:             "ATAPI",
	BusTypeAta:               "ATA",
	BusType1394:              "1394",
	BusTypeSsa:               "SSA",
	BusTypeFibre:             "Fibre",
	BusTypeUsb:               "USB",
	BusTypeRAID:              "RAID",
	BusTypeiScsi:             "iSCSI",
	BusTypeSas:               "SAS",
	BusTypeSata:              "SATA",
	BusTypeSd:                "SD",
	BusTypeMmc:               "MMC",
	BusTypeVirtual:           "Virtual",
	BusTypeFileBackedVirtual: "FileBackedVirtual",
	BusTypeNvme:              "NVMe",
}

func (b BusType) String() string {
	if name, ok := busTypeNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BusType(%d)", uint32(b))
}

// DiskProperties describes one physical disk. The zero value means the
// properties could not be determined; an empty Serial or a SizeBytes of 0
// is indistinguishable from a device that genuinely reports them that way.
type DiskProperties struct {
	Serial    string
	Model     string
	SizeBytes uint64
	Bus       BusType
	Removable bool
}

// SizeGB returns the capacity in whole gibibytes, truncating. Disks smaller
// than 1 GiB report 0.
func (p DiskProperties) SizeGB() uint64 {
	return gib(p.SizeBytes)
}
