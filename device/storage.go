package device

import (
	"fmt"
	gopath "path"
	"strconv"
	"strings"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/containerd/errdefs"

	"devtree/avail"
	"devtree/format"
	"devtree/size"
	"devtree/udev"
)

// linuxSectorSize is the kernel's fixed logical sector unit for the
// sysfs size attribute.
const linuxSectorSize = 512

// Deps are the collaborators a StorageDevice needs. They are injected at
// construction; the core keeps no ambient globals.
type Deps struct {
	FS     boshsys.FileSystem
	Udev   udev.Manager
	Logger boshlog.Logger

	// Testing disables all state-changing operations (devices are
	// constructed non-controllable).
	Testing bool
}

// Options describe a StorageDevice to construct.
type Options struct {
	// Kind selects the device type behavior. Nil means the generic
	// storage kind.
	Kind Kind

	// Format is this device's formatting. Nil means no formatting,
	// represented by the none format.
	Format format.Format

	UUID   string
	Serial string
	Vendor string
	Model  string
	Bus    string

	Size size.Size

	// Major and Minor are kernel device numbers; 0 means unset.
	Major int64
	Minor int64

	SysfsPath string
	Parents   []*StorageDevice

	// Exists marks the device as already materialized on the system.
	Exists bool
}

// StorageDevice is a generic storage device: identity, a three-way size
// model, a format binding, and the guarded lifecycle operations every
// device type shares. A fully qualified device node path is available
// via Path, although it is not guaranteed to be present unless Setup
// has run.
type StorageDevice struct {
	Node

	kind Kind
	deps Deps

	exists bool
	uuid   string
	serial string
	vendor string
	model  string
	bus    string

	// size is the persisted size, targetSize the requested future size,
	// currentSize the lazily observed actual size.
	size        size.Size
	targetSize  size.Size
	currentSize size.Size

	major     int64
	minor     int64
	sysfsPath string

	fmt            format.Format
	originalFormat format.Format

	readonly  bool
	protected bool
	growable  bool

	controllable bool

	// DeviceLinks are alternate device node paths, populated by the
	// udev layer.
	DeviceLinks []string

	FstabComment string

	logTag string
	logger boshlog.Logger
}

// New constructs a StorageDevice. For a planned device whose format
// declares a minimum size, the initial size is raised to that minimum.
func New(name string, opts Options, deps Deps) (*StorageDevice, error) {
	if !IsNameValid(name) {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidName, name)
	}

	if opts.Kind == nil {
		opts.Kind = Generic()
	}

	if deps.Logger == nil {
		deps.Logger = boshlog.NewLogger(boshlog.LevelNone)
	}

	d := &StorageDevice{
		Node: Node{
			name:    name,
			id:      allocateNodeID(),
			parents: append([]*StorageDevice(nil), opts.Parents...),
		},

		kind: opts.Kind,
		deps: deps,

		exists: opts.Exists,
		uuid:   opts.UUID,
		serial: opts.Serial,
		vendor: opts.Vendor,
		model:  opts.Model,
		bus:    opts.Bus,

		major:     opts.Major,
		minor:     opts.Minor,
		sysfsPath: opts.SysfsPath,

		controllable: !deps.Testing,

		logTag: "device.StorageDevice",
		logger: deps.Logger,
	}

	for _, parent := range d.parents {
		parent.AddChild()
	}

	// Size and resizability queries consult the format, so bind the
	// none format before the real one is assigned below.
	d.fmt = format.None("", false)

	initialSize := opts.Size

	// Make sure a planned device starts out large enough for its
	// format's metadata.
	if !d.exists && opts.Format != nil {
		minSize := opts.Format.MinSize()
		if !minSize.IsZero() && minSize.Gt(initialSize) {
			d.logger.Info(d.logTag, "%s: using size %s instead of %s to accommodate format minimum size",
				name, minSize, initialSize)
			initialSize = minSize
		}
	}

	d.size = initialSize
	d.targetSize = initialSize
	if d.exists {
		d.currentSize = initialSize
	}

	err := d.SetFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	d.originalFormat = d.fmt.Clone()

	// Observation overrides the requested size for live devices.
	if d.exists && d.Status() {
		d.UpdateSize()
	}

	return d, nil
}

func (d *StorageDevice) String() string {
	exist := "existing"
	if !d.exists {
		exist = "non-existent"
	}

	s := fmt.Sprintf("%s %s %s %s", exist, d.Size(), d.Type(), d.Name())
	if d.fmt.Type() != "" {
		s += fmt.Sprintf(" with %s", d.fmt.Type())
	}

	return s
}

// Type is the device type tag of this device's kind.
func (d *StorageDevice) Type() string { return d.kind.Profile().Type }

// Path is the device node representing this device.
func (d *StorageDevice) Path() string {
	devDir := d.kind.Profile().DevDir
	if devDir == "" {
		devDir = "/dev"
	}
	return devDir + "/" + d.Name()
}

// SetName renames the device and re-binds its format's device path.
func (d *StorageDevice) SetName(value string) {
	if value == d.name {
		return
	}

	d.name = value

	if d.fmt != nil && d.fmt.Device() != "" {
		d.fmt.SetDevice(d.Path())
	}
}

func (d *StorageDevice) Exists() bool { return d.exists }

func (d *StorageDevice) UUID() string { return d.uuid }

func (d *StorageDevice) Serial() string { return d.serial }

func (d *StorageDevice) Vendor() string { return d.vendor }

func (d *StorageDevice) Model() string { return d.model }

func (d *StorageDevice) Bus() string { return d.bus }

// Major and Minor are kernel device numbers; 0 means unset.
func (d *StorageDevice) Major() int64 { return d.major }
func (d *StorageDevice) Minor() int64 { return d.minor }

func (d *StorageDevice) SysfsPath() string { return d.sysfsPath }

func (d *StorageDevice) Controllable() bool { return d.controllable }

func (d *StorageDevice) SetControllable(value bool) { d.controllable = value }

//
// size model
//

// TargetSize is the size requested for a future resize.
func (d *StorageDevice) TargetSize() size.Size { return d.targetSize }

// SetTargetSize validates a resize request: the proposal must fall
// within MinSize/MaxSize and must already satisfy the kind's alignment.
// An unaligned proposal is rejected, never silently adjusted.
func (d *StorageDevice) SetTargetSize(newsize size.Size) error {
	maxSize := d.MaxSize()
	if !maxSize.IsZero() && newsize.Gt(maxSize) {
		d.logger.Error(d.logTag, "Requested size %s is larger than maximum %s", newsize, maxSize)
		return newDeviceError(d.Name(), ErrTooLarge)
	}

	minSize := d.MinSize()
	if !minSize.IsZero() && newsize.Lt(minSize) {
		d.logger.Error(d.logTag, "Requested size %s is smaller than minimum %s", newsize, minSize)
		return newDeviceError(d.Name(), ErrTooSmall)
	}

	if !d.kind.AlignTargetSize(newsize).Eq(newsize) {
		return newDeviceError(d.Name(), ErrUnaligned)
	}

	d.targetSize = newsize
	return nil
}

// Size is the device's effective size, accounting for pending changes.
func (d *StorageDevice) Size() size.Size {
	if d.exists && d.Resizable() && !d.targetSize.IsZero() {
		return d.targetSize
	}
	return d.size
}

// SetSize records an observed size. It is not adequate to set up a
// resize as it does not set a new target size. Limits are only checked
// for planned devices; for an existing device any call reflects
// discovered state and must not be rejected.
func (d *StorageDevice) SetSize(newsize size.Size) error {
	if !d.exists {
		maxSize := d.fmt.MaxSize()
		if !maxSize.IsZero() && newsize.Gt(maxSize) {
			return newDeviceError(d.Name(), ErrTooLarge)
		}

		minSize := d.fmt.MinSize()
		if !minSize.IsZero() && newsize.Lt(minSize) {
			return newDeviceError(d.Name(), ErrTooSmall)
		}
	}

	d.size = newsize
	return nil
}

// ReadCurrentSize probes sysfs for the device's actual size.
func (d *StorageDevice) ReadCurrentSize() size.Size {
	if !d.exists || d.sysfsPath == "" || !d.deps.FS.FileExists(d.Path()) {
		return size.Size{}
	}

	attr, err := d.deps.FS.ReadFileString(gopath.Join(d.sysfsPath, "size"))
	if err != nil {
		d.logger.Debug(d.logTag, "Failed to read size attribute for '%s': %s", d.Name(), err.Error())
		return size.Size{}
	}

	blocks, err := strconv.ParseUint(strings.TrimSpace(attr), 10, 64)
	if err != nil {
		d.logger.Debug(d.logTag, "Failed to parse size attribute for '%s': %s", d.Name(), err.Error())
		return size.Size{}
	}

	return size.New(blocks * linuxSectorSize)
}

// CurrentSize is the device's observed actual size. It may use a cached
// value; a non-existent device is always 0.
func (d *StorageDevice) CurrentSize() size.Size {
	if d.currentSize.IsZero() {
		d.currentSize = d.ReadCurrentSize()
	}
	return d.currentSize
}

// UpdateSize forces a fresh observation and overwrites size and target
// size with it, bypassing the bounds-checked setters: this reflects
// discovered reality, which may legitimately fall outside declared
// bounds.
func (d *StorageDevice) UpdateSize() {
	d.currentSize = size.Size{}
	newSize := d.CurrentSize()
	d.size = newSize
	d.targetSize = newSize
	d.logger.Debug(d.logTag, "Updated %s size to %s", d.Name(), newSize)
}

// MinSize is the minimum size this device can be.
func (d *StorageDevice) MinSize() size.Size {
	if d.Resizable() {
		return d.kind.AlignTargetSize(d.fmt.MinSize())
	}
	return d.CurrentSize()
}

// MaxSize is the maximum size this device can be.
func (d *StorageDevice) MaxSize() size.Size {
	if d.Resizable() {
		return d.kind.AlignTargetSize(d.fmt.MaxSize())
	}
	return d.CurrentSize()
}

// SizeCheck is the verdict of CheckSize.
type SizeCheck int

const (
	SizeOK SizeCheck = iota
	SizeTooLarge
	SizeTooSmall
)

// CheckSize compares the effective size against the format's bounds.
// It is a pure query; nothing enforces it on mutation.
func (d *StorageDevice) CheckSize() SizeCheck {
	maxSize := d.fmt.MaxSize()
	if !maxSize.IsZero() && d.Size().Gt(maxSize) {
		return SizeTooLarge
	}

	minSize := d.fmt.MinSize()
	if !minSize.IsZero() && d.Size().Lt(minSize) {
		return SizeTooSmall
	}

	return SizeOK
}

// Resizable reports whether this device can be resized: the kind must
// support it, the device must exist, and the format must not forbid it.
func (d *StorageDevice) Resizable() bool {
	return d.kind.Profile().Resizable && d.exists &&
		(d.fmt.Type() == "" || d.fmt.Resizable() || !d.fmt.Exists())
}

// Resize resizes the device to its target size. The base kinds are
// never resizable.
func (d *StorageDevice) Resize() error {
	if !d.kind.Profile().Resizable {
		return newDeviceError(d.Name(), ErrNotResizable)
	}

	if !d.exists {
		return newDeviceError(d.Name(), ErrNotCreated)
	}

	if !d.Resizable() {
		return newDeviceError(d.Name(), ErrNotResizable)
	}

	return d.kind.Resize(d)
}

//
// status
//

// Status is a liveness probe: an existing device is up when its node is
// writable-accessible. The result is never cached.
func (d *StorageDevice) Status() bool {
	if !d.exists {
		return false
	}
	return d.deps.Udev.Writable(d.Path())
}

// MediaPresent reports whether this device contains usable media.
func (d *StorageDevice) MediaPresent() bool { return true }

// Removable reports whether the kernel flags the device as removable.
func (d *StorageDevice) Removable() bool {
	if d.sysfsPath == "" {
		return false
	}

	attr, err := d.deps.FS.ReadFileString(gopath.Join(gopath.Clean(d.sysfsPath), "removable"))
	if err != nil {
		return false
	}

	return strings.TrimSpace(attr) == "1"
}

// Direct reports whether this device is directly accessible, i.e.
// nothing depends on it.
func (d *StorageDevice) Direct() bool { return d.IsLeaf() }

// UpdateSysfsPath refreshes this device's sysfs path. Lookup failure is
// not fatal; the path degrades to unknown.
func (d *StorageDevice) UpdateSysfsPath() error {
	if !d.exists {
		return newDeviceError(d.Name(), ErrNotCreated)
	}

	sysfsPath, err := d.deps.Udev.SysfsPath(d.Path())
	if err != nil {
		if errdefs.IsNotFound(err) {
			d.logger.Debug(d.logTag, "No sysfs entry for '%s'", d.Name())
		} else {
			d.logger.Error(d.logTag, "Failed to update sysfs path for '%s': %s", d.Name(), err.Error())
		}
		d.sysfsPath = ""
		return nil
	}

	d.sysfsPath = sysfsPath
	d.logger.Debug(d.logTag, "%s sysfs path set to %s", d.Name(), sysfsPath)
	return nil
}

// NotifyKernel sends a change uevent for this device. Failures are
// logged, never raised.
func (d *StorageDevice) NotifyKernel() {
	if !d.exists {
		d.logger.Debug(d.logTag, "Not sending change uevent for non-existent device")
		return
	}

	if !d.Status() {
		d.logger.Debug(d.logTag, "Not sending change uevent for inactive device")
		return
	}

	err := d.deps.Udev.NotifyChange(gopath.Clean(d.sysfsPath))
	if err != nil {
		d.logger.Warn(d.logTag, "Failed to notify kernel of change: %s", err.Error())
	}
}

//
// setup
//

func (d *StorageDevice) preSetup(orig bool) (bool, error) {
	if !d.exists {
		return false, newDeviceError(d.Name(), ErrNotCreated)
	}

	if d.Status() || !d.controllable {
		return false, nil
	}

	err := d.SetupParents(orig)
	if err != nil {
		return false, err
	}

	return true, nil
}

// Setup opens, or sets up, a device.
func (d *StorageDevice) Setup(orig bool) error {
	d.logger.Debug(d.logTag, "Setting up device '%s' (status=%t, controllable=%t)",
		d.Name(), d.Status(), d.controllable)

	proceed, err := d.preSetup(orig)
	if err != nil || !proceed {
		return err
	}

	err = d.kind.Setup(d, orig)
	if err != nil {
		return err
	}

	return d.postSetup()
}

func (d *StorageDevice) postSetup() error {
	err := d.deps.Udev.Settle()
	if err != nil {
		d.logger.Warn(d.logTag, "Failed to settle udev queue: %s", err.Error())
	}

	err = d.UpdateSysfsPath()
	if err != nil {
		return err
	}

	// the device may not have been set up when size was first wanted
	if d.size.IsZero() {
		d.UpdateSize()
	}

	return nil
}

// SetupParents runs setup on all parent devices and their on-disk
// formatting.
func (d *StorageDevice) SetupParents(orig bool) error {
	d.logger.Debug(d.logTag, "Setting up parents of '%s' (kids=%d)", d.Name(), d.Kids())

	for _, parent := range d.parents {
		err := parent.Setup(orig)
		if err != nil {
			return err
		}

		parentFmt := parent.Format()
		if orig {
			parentFmt = parent.OriginalFormat()
		}

		if parentFmt.Type() != "" && parentFmt.Exists() {
			err = parentFmt.Setup()
			if err != nil {
				return err
			}
		}
	}

	return nil
}

//
// teardown
//

func (d *StorageDevice) preTeardown(recursive bool) (bool, error) {
	if !d.exists && !recursive {
		return false, newDeviceError(d.Name(), ErrNotCreated)
	}

	if !d.Status() || !d.controllable || d.Protected() {
		return false, nil
	}

	if d.originalFormat.Exists() {
		err := d.originalFormat.Teardown()
		if err != nil {
			return false, err
		}
	}

	if d.fmt.Exists() {
		err := d.fmt.Teardown()
		if err != nil {
			return false, err
		}
	}

	err := d.deps.Udev.Settle()
	if err != nil {
		d.logger.Warn(d.logTag, "Failed to settle udev queue: %s", err.Error())
	}

	return true, nil
}

// Teardown closes, or tears down, a device. With recursive set, parents
// are torn down afterwards.
func (d *StorageDevice) Teardown(recursive bool) error {
	d.logger.Debug(d.logTag, "Tearing down device '%s' (status=%t, controllable=%t)",
		d.Name(), d.Status(), d.controllable)

	proceed, err := d.preTeardown(recursive)
	if err != nil {
		return err
	}

	if !proceed {
		if recursive {
			return d.TeardownParents(recursive)
		}
		return nil
	}

	err = d.kind.Teardown(d, recursive)
	if err != nil {
		return err
	}

	return d.postTeardown(recursive)
}

func (d *StorageDevice) postTeardown(recursive bool) error {
	if recursive {
		return d.TeardownParents(recursive)
	}
	return nil
}

// TeardownParents tears down all parent devices.
func (d *StorageDevice) TeardownParents(recursive bool) error {
	for _, parent := range d.parents {
		err := parent.Teardown(recursive)
		if err != nil {
			return err
		}
	}
	return nil
}

//
// create
//

func (d *StorageDevice) preCreate() error {
	if d.exists {
		return newDeviceError(d.Name(), ErrAlreadyExists)
	}

	return d.SetupParents(false)
}

// Create materializes the device.
func (d *StorageDevice) Create() error {
	d.logger.Debug(d.logTag, "Creating device '%s' (status=%t)", d.Name(), d.Status())

	err := d.preCreate()
	if err != nil {
		return err
	}

	err = d.kind.Create(d)
	if err != nil {
		return err
	}

	return d.postCreate()
}

func (d *StorageDevice) postCreate() error {
	d.exists = true

	err := d.Setup(false)
	if err != nil {
		return err
	}

	err = d.UpdateSysfsPath()
	if err != nil {
		return err
	}

	err = d.deps.Udev.Settle()
	if err != nil {
		d.logger.Warn(d.logTag, "Failed to settle udev queue: %s", err.Error())
	}

	// make sure targetSize reflects the actual size
	d.UpdateSize()

	d.UpdateNetDevMountOption()

	return nil
}

//
// destroy
//

func (d *StorageDevice) preDestroy() error {
	if !d.exists {
		return newDeviceError(d.Name(), ErrNotCreated)
	}

	if !d.IsLeaf() {
		return newDeviceError(d.Name(), ErrNotLeaf)
	}

	return d.Teardown(false)
}

// Destroy unmaterializes the device. A device with dependents can never
// be destroyed directly.
func (d *StorageDevice) Destroy() error {
	d.logger.Debug(d.logTag, "Destroying device '%s' (status=%t)", d.Name(), d.Status())

	err := d.preDestroy()
	if err != nil {
		return err
	}

	err = d.kind.Destroy(d)
	if err != nil {
		return err
	}

	d.exists = false
	return nil
}

//
// devicetree hooks
//

// RemoveHook accounts for this device's removal from the device tree.
// Parent child counts are adjusted regardless of modparent.
func (d *StorageDevice) RemoveHook(modparent bool) {
	for _, parent := range d.parents {
		parent.RemoveChild()
	}
}

// AddHook accounts for this device's addition to the device tree. The
// only intended use of new=false is unhiding a device, in which case
// the parent bookkeeping normally done at construction is repeated.
func (d *StorageDevice) AddHook(new bool) {
	if !new {
		for _, parent := range d.parents {
			parent.AddChild()
		}
	}
}

//
// format binding
//

// Format is this device's formatting. It is never nil.
func (d *StorageDevice) Format() format.Format { return d.fmt }

// OriginalFormat is the formatting the device carried when it became
// known, torn down alongside the current format.
func (d *StorageDevice) OriginalFormat() format.Format { return d.originalFormat }

// SetFormat replaces the device's formatting. Nil marks the device as
// unformatted via the none format. Replacement is rejected while the
// current format is active, or when a not-yet-created format's bounds
// are incompatible with the device's size.
func (d *StorageDevice) SetFormat(fmt format.Format) error {
	if fmt == nil {
		fmt = format.None(d.Path(), d.exists)
	}

	if d.fmt != nil && d.fmt.Status() {
		return newDeviceError(d.Name(), ErrActiveFormat)
	}

	if !fmt.Exists() {
		maxSize := fmt.MaxSize()
		if !maxSize.IsZero() && maxSize.Lt(d.Size()) {
			return newDeviceError(d.Name(), ErrTooLarge)
		}

		minSize := fmt.MinSize()
		if !minSize.IsZero() && minSize.Gt(d.Size()) {
			return newDeviceError(d.Name(), ErrTooSmall)
		}
	}

	d.fmt = fmt
	d.fmt.SetDevice(d.Path())
	d.UpdateNetDevMountOption()

	return nil
}

// FormatImmutable reports whether format actions on this device are
// disallowed.
func (d *StorageDevice) FormatImmutable() bool {
	return d.kind.Profile().FormatImmutable || d.Protected()
}

// UpdateNetDevMountOption reconciles the _netdev mount option with the
// device's ancestry: present iff some true ancestor is network-backed.
func (d *StorageDevice) UpdateNetDevMountOption() {
	if !d.fmt.Mountable() {
		return
	}

	const netdevOption = "_netdev"

	var options []string
	if d.fmt.Options() != "" {
		options = strings.Split(d.fmt.Options(), ",")
	}

	isNetDev := false
	for _, parent := range d.parents {
		if parent.networkBacked() {
			isNetDev = true
			break
		}
	}

	hasOption := false
	for _, option := range options {
		if option == netdevOption {
			hasOption = true
			break
		}
	}

	switch {
	case isNetDev && !hasOption:
		options = append(options, netdevOption)
		d.fmt.SetOptions(strings.Join(options, ","))
	case !isNetDev && hasOption:
		kept := make([]string, 0, len(options)-1)
		for _, option := range options {
			if option != netdevOption {
				kept = append(kept, option)
			}
		}
		d.fmt.SetOptions(strings.Join(kept, ","))
	}
}

// networkBacked reports whether this device or any ancestor is
// network-backed storage.
func (d *StorageDevice) networkBacked() bool {
	if d.kind.Profile().Network {
		return true
	}
	for _, parent := range d.parents {
		if parent.networkBacked() {
			return true
		}
	}
	return false
}

// FstabSpec is the specifier used to reference this device in fstab.
func (d *StorageDevice) FstabSpec() string {
	if d.fmt.UUID() != "" {
		return "UUID=" + d.fmt.UUID()
	}
	return d.Path()
}

// PopulateKSData serializes this device into a kickstart-style record.
// Container member devices that need aliases get the device id appended
// to a trailing-dot mountpoint.
func (d *StorageDevice) PopulateKSData(data *format.KSData) {
	d.fmt.PopulateKSData(data)

	if d.fmt.Type() == "btrfs" && !strings.HasPrefix(d.Type(), "btrfs") {
		data.Mountpoint = "btrfs."
	}

	if strings.HasSuffix(data.Mountpoint, ".") {
		data.Mountpoint += strconv.Itoa(d.ID())
	}
}

//
// ancestry-derived properties
//

// IsDisk reports whether this device is a physical disk.
func (d *StorageDevice) IsDisk() bool { return d.kind.Profile().IsDisk }

func (d *StorageDevice) Partitionable() bool { return d.kind.Profile().Partitionable }

func (d *StorageDevice) Partitioned() bool {
	return d.fmt.Type() == "disklabel" && d.Partitionable()
}

// Disks lists all disks this device depends on, including itself when
// it is a disk not hidden behind a container format.
func (d *StorageDevice) Disks() []*StorageDevice {
	var disks []*StorageDevice
	seen := map[int]bool{}

	for _, parent := range d.parents {
		for _, disk := range parent.Disks() {
			if !seen[disk.ID()] {
				seen[disk.ID()] = true
				disks = append(disks, disk)
			}
		}
	}

	if d.IsDisk() && !d.fmt.Hidden() && !seen[d.ID()] {
		disks = append(disks, d)
	}

	return disks
}

// Encrypted is true if this device, or any it requires, is encrypted.
func (d *StorageDevice) Encrypted() bool {
	if d.kind.Profile().Encrypted {
		return true
	}
	for _, parent := range d.parents {
		if parent.Encrypted() {
			return true
		}
	}
	return false
}

// Growable is true if this device or any of its component devices is
// marked growable.
func (d *StorageDevice) Growable() bool {
	if d.growable {
		return true
	}
	for _, parent := range d.parents {
		if parent.Growable() {
			return true
		}
	}
	return false
}

func (d *StorageDevice) SetGrowable(value bool) { d.growable = value }

// Readonly is true if this device or any parent is read-only.
func (d *StorageDevice) Readonly() bool {
	if d.readonly {
		return true
	}
	for _, parent := range d.parents {
		if parent.Readonly() {
			return true
		}
	}
	return false
}

func (d *StorageDevice) SetReadonly(value bool) { d.readonly = value }

// Protected devices refuse state-changing operations irrespective of
// controllability. Protection propagates from parents like read-only.
func (d *StorageDevice) Protected() bool {
	if d.Readonly() || d.protected {
		return true
	}
	for _, parent := range d.parents {
		if parent.Protected() {
			return true
		}
	}
	return false
}

func (d *StorageDevice) SetProtected(value bool) { d.protected = value }

// RawDevice is the device itself; encrypted kinds return the backing
// device instead.
func (d *StorageDevice) RawDevice() *StorageDevice { return d }

//
// external dependencies
//

// Packages lists external packages required by this device and its
// formatting.
func (d *StorageDevice) Packages() []string {
	packages := append([]string(nil), d.kind.Profile().Packages...)
	for _, pkg := range d.fmt.Packages() {
		found := false
		for _, existing := range packages {
			if existing == pkg {
				found = true
				break
			}
		}
		if !found {
			packages = append(packages, pkg)
		}
	}
	return packages
}

// ExternalDependencies aggregates the external tools required by this
// device and all its ancestors.
func (d *StorageDevice) ExternalDependencies() []*avail.ExternalResource {
	var deps []*avail.ExternalResource
	seen := map[*avail.ExternalResource]bool{}

	for _, ancestor := range d.Ancestors() {
		for _, dep := range ancestor.kind.Profile().Dependencies {
			if !seen[dep] {
				seen[dep] = true
				deps = append(deps, dep)
			}
		}
	}

	return deps
}

// UnavailableDependencies lists the external dependencies not currently
// present on the running system.
func (d *StorageDevice) UnavailableDependencies() []*avail.ExternalResource {
	var unavailable []*avail.ExternalResource
	for _, dep := range d.ExternalDependencies() {
		if !dep.Available() {
			unavailable = append(unavailable, dep)
		}
	}
	return unavailable
}

//
// name validation
//

// IsNameValid checks a device node name: no NUL, no slash, not "." or
// "..". The cciss family embeds directory components; those names are
// validated component-wise.
func IsNameValid(name string) bool {
	if strings.HasPrefix(name, "cciss/") {
		for _, component := range strings.Split(name, "/") {
			if !IsNameValid(component) {
				return false
			}
		}
		return true
	}

	if name == "" || name == "." || name == ".." {
		return false
	}

	return !strings.ContainsAny(name, "/\x00")
}
