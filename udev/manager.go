package udev

import (
	gopath "path"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/containerd/errdefs"
	"golang.org/x/sys/unix"
)

// LinuxManager talks to udev through udevadm and to the kernel through
// sysfs.
type LinuxManager struct {
	fs      boshsys.FileSystem
	runner  boshsys.CmdRunner
	sysRoot string

	logTag string
	logger boshlog.Logger
}

func NewLinuxManager(
	fs boshsys.FileSystem,
	runner boshsys.CmdRunner,
	sysRoot string,
	logger boshlog.Logger,
) *LinuxManager {
	if sysRoot == "" {
		sysRoot = "/sys"
	}

	return &LinuxManager{
		fs:      fs,
		runner:  runner,
		sysRoot: sysRoot,

		logTag: "udev.LinuxManager",
		logger: logger,
	}
}

var _ Manager = &LinuxManager{}

func (m *LinuxManager) Settle() error {
	m.logger.Debug(m.logTag, "Waiting for udev queue to settle")

	_, _, _, err := m.runner.RunCommand("udevadm", "settle")
	if err != nil {
		return bosherr.WrapError(err, "Settling udev queue")
	}

	return nil
}

func (m *LinuxManager) SysfsPath(devPath string) (string, error) {
	name := gopath.Base(devPath)
	sysfsPath := gopath.Join(m.sysRoot, "class", "block", name)

	if !m.fs.FileExists(sysfsPath) {
		return "", bosherr.WrapErrorf(errdefs.ErrNotFound, "Looking up sysfs entry for '%s'", devPath)
	}

	return sysfsPath, nil
}

func (m *LinuxManager) NotifyChange(sysfsPath string) error {
	ueventPath := gopath.Join(sysfsPath, "uevent")

	err := m.fs.WriteFileString(ueventPath, "change\n")
	if err != nil {
		return bosherr.WrapErrorf(err, "Writing change uevent to '%s'", ueventPath)
	}

	return nil
}

func (m *LinuxManager) Writable(devPath string) bool {
	return unix.Access(devPath, unix.W_OK) == nil
}
