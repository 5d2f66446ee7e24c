// Package udev integrates with the kernel's device-event subsystem.
package udev

//go:generate go tool counterfeiter -generate

//counterfeiter:generate . Manager

// Manager is the device-event subsystem boundary. Settle blocks until
// pending kernel device events have been processed; the remaining methods
// query or poke individual device nodes.
type Manager interface {
	Settle() error

	// SysfsPath resolves a device node path to its sysfs path. A missing
	// sysfs entry yields an error classified as not-found.
	SysfsPath(devPath string) (string, error)

	// NotifyChange sends a "change" uevent for the device at the given
	// sysfs path.
	NotifyChange(sysfsPath string) error

	// Writable reports whether the device node is accessible for writing.
	Writable(devPath string) bool
}
