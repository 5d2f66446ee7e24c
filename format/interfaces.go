package format

import (
	"devtree/size"
)

//go:generate go tool counterfeiter -generate

//counterfeiter:generate . Format

// Format describes what is written on a device: a filesystem, a disklabel,
// or nothing at all. Absence of formatting is represented by the none
// format (empty Type), never by a nil Format.
type Format interface {
	// Type is the format's kind tag; empty for the none format.
	Type() string

	// Exists reports whether the format is present on-disk.
	Exists() bool

	// Status reports whether the format is active (mounted, open, etc).
	Status() bool

	Resizable() bool

	// Hidden formats are container or pseudo formats that do not count
	// as disk-level media.
	Hidden() bool

	// Mountable reports whether the format carries mount options.
	Mountable() bool

	// MinSize and MaxSize bound the size of a device carrying this
	// format. A zero Size means no bound.
	MinSize() size.Size
	MaxSize() size.Size

	// Options is the comma-joined mount option string.
	Options() string
	SetOptions(options string)

	// Device is the path of the device node this format is bound to.
	Device() string
	SetDevice(path string)

	UUID() string
	Label() string

	// Packages lists external packages required to manage this format.
	Packages() []string

	Setup() error
	Teardown() error

	// Clone returns a deep, independent copy.
	Clone() Format

	PopulateKSData(data *KSData)
}

// KSData is a kickstart-style record a format serializes itself into.
type KSData struct {
	Device     string
	FSType     string
	Label      string
	Mountpoint string
	MountOpts  string
}
