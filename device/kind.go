package device

import (
	"devtree/avail"
	"devtree/size"
)

// Profile captures the per-kind constants of a device type.
type Profile struct {
	// Type is the device type tag, e.g. "disk" or "partition".
	Type string

	// DevDir is the directory holding the device node. Empty means /dev.
	DevDir string

	// Resizable marks device types that can be resized in place at all;
	// a concrete device must additionally exist and carry a resizable
	// (or absent, or not-yet-created) format.
	Resizable bool

	// FormatImmutable blocks format actions regardless of protection.
	FormatImmutable bool

	Partitionable bool
	IsDisk        bool

	// Encrypted marks intrinsically encrypted device types; the
	// effective property also propagates from parents.
	Encrypted bool

	// Network marks network-backed storage; descendants' mountable
	// formats get the _netdev mount option.
	Network bool

	// Packages lists external packages needed to manage this kind.
	Packages []string

	// Dependencies lists external tools this kind requires.
	Dependencies []*avail.ExternalResource
}

// Kind is the capability interface a device type implements: the four
// lifecycle primitives plus the alignment and resize hooks. The shared
// state machine on StorageDevice drives these; primitives never run the
// pre/post-condition bookkeeping themselves.
type Kind interface {
	Profile() Profile

	Create(dev *StorageDevice) error
	Setup(dev *StorageDevice, orig bool) error
	Teardown(dev *StorageDevice, recursive bool) error
	Destroy(dev *StorageDevice) error
	Resize(dev *StorageDevice) error

	// AlignTargetSize adjusts a proposed target size for device
	// specifics (sector, stripe, extent). It is a pure function.
	AlignTargetSize(proposed size.Size) size.Size
}

// Base is a Kind with no-op primitives and no alignment constraint.
// Concrete kinds embed it and override what they specialize.
type Base struct {
	profile Profile
}

func NewKind(profile Profile) *Base {
	return &Base{profile: profile}
}

var _ Kind = &Base{}

func (k *Base) Profile() Profile { return k.profile }

func (k *Base) Create(dev *StorageDevice) error { return nil }

func (k *Base) Setup(dev *StorageDevice, orig bool) error { return nil }

func (k *Base) Teardown(dev *StorageDevice, recursive bool) error { return nil }

func (k *Base) Destroy(dev *StorageDevice) error { return nil }

func (k *Base) Resize(dev *StorageDevice) error {
	return newDeviceError(dev.Name(), ErrNotResizable)
}

func (k *Base) AlignTargetSize(proposed size.Size) size.Size {
	return proposed
}

// Generic is the base storage kind: not a disk, not resizable, no
// external dependencies.
func Generic() Kind {
	return NewKind(Profile{Type: "storage"})
}

// Disk is the physical disk kind.
func Disk(deps ...*avail.ExternalResource) Kind {
	return NewKind(Profile{
		Type:          "disk",
		IsDisk:        true,
		Partitionable: true,
		Dependencies:  deps,
	})
}

// NetworkStorage marks a kind as network-backed, e.g. iscsi or fcoe.
func NetworkStorage(typ string, deps ...*avail.ExternalResource) Kind {
	return NewKind(Profile{
		Type:         typ,
		IsDisk:       true,
		Network:      true,
		Dependencies: deps,
	})
}
