//go:build windows

package diskquery

import (
	"strconv"

	"golang.org/x/sys/windows/registry"
)

// DeviceInstanceID returns the PnP device instance ID the disk class driver
// recorded for PhysicalDrive<index>, e.g.
// `SCSI\Disk&Ven_NVMe&Prod_Samsung_SSD_970\4&...`. The disk\Enum key indexes
// its values by disk number.
func DeviceInstanceID(index uint32) (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE,
		`SYSTEM\CurrentControlSet\Services\disk\Enum`, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer k.Close()

	id, _, err := k.GetStringValue(strconv.FormatUint(uint64(index), 10))
	if err != nil {
		return "", err
	}

	return id, nil
}
