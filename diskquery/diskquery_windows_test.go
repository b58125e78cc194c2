//go:build windows

package diskquery

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveDisks_Integration(t *testing.T) {
	disks, err := ResolveDisks(`\\.\C:`)
	if err != nil {
		t.Fatalf("ResolveDisks failed: %v", err)
	}

	if len(disks) == 0 {
		t.Fatal("C: resolved to no physical disks")
	}

	t.Logf("C: is backed by disks %v", disks)
}

func TestResolveDisks_MissingVolume(t *testing.T) {
	// A raw volume path that should not exist.
	_, err := ResolveDisks(`\\.\NoSuchVolume123`)
	if err == nil {
		t.Fatal("expected an error for a nonexistent volume")
	}

	var qe *QueryError
	if !errors.As(err, &qe) {
		t.Fatalf("expected *QueryError, got %T", err)
	}
	if qe.Op != OpOpenVolume {
		t.Errorf("Op = %q, want %q", qe.Op, OpOpenVolume)
	}
}

func TestReadProperties_Integration(t *testing.T) {
	disks, err := ResolveDisks(`\\.\C:`)
	if err != nil {
		t.Fatalf("ResolveDisks failed: %v", err)
	}

	props, err := ReadProperties(disks[0])
	if err != nil {
		t.Fatalf("ReadProperties(%d) failed: %v", disks[0], err)
	}

	t.Logf("PhysicalDrive%d: Serial=%q Model=%q Size=%dGB Bus=%v",
		disks[0], props.Serial, props.Model, props.SizeGB(), props.Bus)

	if props.Model == "" {
		t.Error("system disk reported an empty model")
	}
	if props.SizeBytes == 0 {
		t.Error("system disk reported zero capacity")
	}
}

func TestReadProperties_MissingDisk(t *testing.T) {
	// Disk 63 is unlikely to exist.
	_, err := ReadProperties(63)
	if err == nil {
		t.Skip("PhysicalDrive63 exists on this machine")
	}

	var qe *QueryError
	if !errors.As(err, &qe) {
		t.Fatalf("expected *QueryError, got %T", err)
	}
	if qe.Op != OpOpenDisk {
		t.Errorf("Op = %q, want %q", qe.Op, OpOpenDisk)
	}
}

func TestNewFetcher_Integration(t *testing.T) {
	f := NewFetcher()
	props := f.Fetch(`\\.\C:`)

	t.Logf("C: Serial=%q Model=%q Size=%dGB", props.Serial, props.Model, props.SizeGB())

	if props.Model == "" && props.Serial == "" {
		t.Error("fetch of the system volume yielded nothing")
	}
}

func TestDeviceInstanceID_Integration(t *testing.T) {
	disks, err := ResolveDisks(`\\.\C:`)
	if err != nil {
		t.Fatalf("ResolveDisks failed: %v", err)
	}

	id, err := DeviceInstanceID(disks[0])
	if err != nil {
		t.Skipf("disk\\Enum not readable: %v", err)
	}

	t.Logf("PhysicalDrive%d instance ID: %s", disks[0], id)

	if !strings.Contains(id, `\`) {
		t.Errorf("instance ID %q does not look like a PnP path", id)
	}
}

func TestQueryDiskDriveWMI_Integration(t *testing.T) {
	props, err := queryDiskDriveWMI(0)
	if err != nil {
		t.Skipf("WMI unavailable: %v", err)
	}

	t.Logf("WMI PhysicalDrive0: Serial=%q Model=%q Size=%dGB",
		props.Serial, props.Model, props.SizeGB())

	if props.Model == "" {
		t.Error("WMI reported an empty model for disk 0")
	}
}

func BenchmarkResolveDisks(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = ResolveDisks(`\\.\C:`)
	}
}

func BenchmarkReadProperties(b *testing.B) {
	disks, err := ResolveDisks(`\\.\C:`)
	if err != nil {
		b.Fatalf("ResolveDisks failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ReadProperties(disks[0])
	}
}
