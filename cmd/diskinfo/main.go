package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dwep1337/diskutils/diskquery"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("diskinfo: ")

	volume := `\\.\C:`
	if len(os.Args) > 1 {
		volume = os.Args[1]
	}

	f := diskquery.NewFetcher()
	props := f.Fetch(volume)

	fmt.Printf("Volume:    %s\n", volume)
	fmt.Printf("Serial:    %s\n", props.Serial)
	fmt.Printf("Model:     %s\n", props.Model)
	fmt.Printf("Size:      %d GB\n", props.SizeGB())
	fmt.Printf("Bus:       %s\n", props.Bus)
	fmt.Printf("Removable: %t\n", props.Removable)

	printDiskDetails(volume)
}
