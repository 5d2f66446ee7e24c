package device

import (
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	boshuuid "github.com/cloudfoundry/bosh-utils/uuid"

	"devtree/config"
	"devtree/udev"
)

// Factory constructs StorageDevices with shared, configured
// collaborators. Planned devices without a UUID get one generated.
type Factory struct {
	fs      boshsys.FileSystem
	udev    udev.Manager
	uuidGen boshuuid.Generator
	cfg     config.Config

	logTag string
	logger boshlog.Logger
}

func NewFactory(
	fs boshsys.FileSystem,
	udevMgr udev.Manager,
	uuidGen boshuuid.Generator,
	cfg config.Config,
	logger boshlog.Logger,
) Factory {
	return Factory{
		fs:      fs,
		udev:    udevMgr,
		uuidGen: uuidGen,
		cfg:     cfg,

		logTag: "device.Factory",
		logger: logger,
	}
}

func (f Factory) New(name string, opts Options) (*StorageDevice, error) {
	f.logger.Debug(f.logTag, "Creating device '%s'", name)

	if opts.UUID == "" && !opts.Exists {
		id, err := f.uuidGen.Generate()
		if err != nil {
			return nil, bosherr.WrapError(err, "Generating device UUID")
		}
		opts.UUID = id
	}

	deps := Deps{
		FS:      f.fs,
		Udev:    f.udev,
		Logger:  f.logger,
		Testing: f.cfg.Testing,
	}

	dev, err := New(name, opts, deps)
	if err != nil {
		return nil, bosherr.WrapErrorf(err, "Creating device '%s'", name)
	}

	return dev, nil
}
