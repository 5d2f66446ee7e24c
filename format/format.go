package format

import (
	"errors"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	"github.com/dustin/go-humanize"

	"devtree/size"
)

// ErrUnknownType is returned by New for a type tag that is not registered.
var ErrUnknownType = errors.New("unknown format type")

// typeProfile captures the per-type constants of a format kind.
type typeProfile struct {
	mountable bool
	hidden    bool
	resizable bool
	minSize   size.Size
	maxSize   size.Size
	packages  []string
}

var typeProfiles = map[string]typeProfile{
	// none format
	"": {},

	"ext4": {
		mountable: true,
		resizable: true,
		minSize:   size.New(10 * humanize.MiByte),
		maxSize:   size.New(16 * humanize.TiByte),
		packages:  []string{"e2fsprogs"},
	},
	"xfs": {
		mountable: true,
		minSize:   size.New(16 * humanize.MiByte),
		maxSize:   size.New(8 * humanize.EiByte),
		packages:  []string{"xfsprogs"},
	},
	"btrfs": {
		mountable: true,
		resizable: true,
		minSize:   size.New(256 * humanize.MiByte),
		packages:  []string{"btrfs-progs"},
	},
	"swap": {
		minSize:  size.New(40 * humanize.KiByte),
		packages: []string{"util-linux"},
	},
	"disklabel": {
		packages: []string{"parted"},
	},
	"lvmpv": {
		hidden:   true,
		packages: []string{"lvm2"},
	},
	"mdmember": {
		hidden:   true,
		packages: []string{"mdadm"},
	},
	"nfs": {
		mountable: true,
		packages:  []string{"nfs-utils"},
	},
}

// Spec describes a format to construct via New.
type Spec struct {
	// Type is the format's kind tag; empty produces the none format.
	Type string

	// Device is the path of the device node the format is bound to.
	Device string

	UUID  string
	Label string

	// Exists indicates the format is already present on-disk.
	Exists bool

	// Options is the comma-joined mount option string.
	Options string

	Mountpoint string
}

// New is the format factory. An empty Type yields the canonical none
// format. Unregistered type tags are rejected.
func New(spec Spec) (Format, error) {
	profile, found := typeProfiles[spec.Type]
	if !found {
		return nil, bosherr.WrapErrorf(ErrUnknownType, "Constructing format '%s'", spec.Type)
	}

	return &DeviceFormat{
		typ:        spec.Type,
		device:     spec.Device,
		uuid:       spec.UUID,
		label:      spec.Label,
		exists:     spec.Exists,
		options:    spec.Options,
		mountpoint: spec.Mountpoint,
		profile:    profile,
	}, nil
}

// None returns the canonical empty format bound to the given device path.
func None(device string, exists bool) Format {
	return &DeviceFormat{device: device, exists: exists}
}

// DeviceFormat is the concrete Format implementation backing every
// registered type tag.
type DeviceFormat struct {
	typ        string
	device     string
	uuid       string
	label      string
	exists     bool
	active     bool
	options    string
	mountpoint string
	profile    typeProfile
}

var _ Format = &DeviceFormat{}

func (f *DeviceFormat) Type() string { return f.typ }

func (f *DeviceFormat) Exists() bool { return f.exists }

func (f *DeviceFormat) Status() bool { return f.active }

func (f *DeviceFormat) Resizable() bool { return f.profile.resizable }

func (f *DeviceFormat) Hidden() bool { return f.profile.hidden }

func (f *DeviceFormat) Mountable() bool { return f.profile.mountable }

func (f *DeviceFormat) MinSize() size.Size { return f.profile.minSize }

func (f *DeviceFormat) MaxSize() size.Size { return f.profile.maxSize }

func (f *DeviceFormat) Options() string { return f.options }

func (f *DeviceFormat) SetOptions(options string) { f.options = options }

func (f *DeviceFormat) Device() string { return f.device }

func (f *DeviceFormat) SetDevice(path string) { f.device = path }

func (f *DeviceFormat) UUID() string { return f.uuid }

func (f *DeviceFormat) Label() string { return f.label }

func (f *DeviceFormat) Packages() []string {
	return append([]string(nil), f.profile.packages...)
}

// Setup activates the format. Only an on-disk format can be activated.
func (f *DeviceFormat) Setup() error {
	if !f.exists {
		return bosherr.Errorf("Setting up format '%s': format has not been created", f.typ)
	}

	f.active = true
	return nil
}

func (f *DeviceFormat) Teardown() error {
	f.active = false
	return nil
}

func (f *DeviceFormat) Clone() Format {
	clone := *f
	clone.profile.packages = append([]string(nil), f.profile.packages...)
	return &clone
}

func (f *DeviceFormat) PopulateKSData(data *KSData) {
	data.Device = f.device
	data.FSType = f.typ
	data.Label = f.label
	data.Mountpoint = f.mountpoint
	data.MountOpts = f.options
}
