//go:build !windows

package main

// printDiskDetails is a no-op off Windows.
func printDiskDetails(volume string) {}
