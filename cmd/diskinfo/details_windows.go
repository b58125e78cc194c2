//go:build windows

package main

import (
	"fmt"
	"log"

	"github.com/dwep1337/diskutils/diskquery"
)

// printDiskDetails lists the backing disks and their PnP instance IDs.
func printDiskDetails(volume string) {
	disks, err := diskquery.ResolveDisks(volume)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	for _, n := range disks {
		id, err := diskquery.DeviceInstanceID(n)
		if err != nil {
			log.Printf("PhysicalDrive%d: no instance ID: %v", n, err)
			continue
		}
		fmt.Printf("Disk %d:    %s\n", n, id)
	}
}
