package config

import (
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"gopkg.in/yaml.v3"
)

// Config holds runtime settings for the device core
type Config struct {
	// Testing puts the core into a non-mutating mode: devices are not
	// controllable and state-changing operations become no-ops.
	Testing bool `yaml:"testing"`

	// SysfsRoot overrides the kernel sysfs mount point. Empty means /sys.
	SysfsRoot string `yaml:"sysfs_root"`

	// DevDir overrides the device node directory. Empty means /dev.
	DevDir string `yaml:"dev_dir"`
}

// NewConfigFromPath loads configuration from a file path
func NewConfigFromPath(path string, fs boshsys.FileSystem) (Config, error) {
	var config Config

	bytes, err := fs.ReadFile(path)
	if err != nil {
		return config, bosherr.WrapErrorf(err, "Reading config '%s'", path)
	}

	err = yaml.Unmarshal(bytes, &config)
	if err != nil {
		return config, bosherr.WrapError(err, "Unmarshalling config")
	}

	err = config.Validate()
	if err != nil {
		return config, bosherr.WrapError(err, "Validating config")
	}

	return config, nil
}

// Validate checks that the configuration is valid
func (c Config) Validate() error {
	if c.SysfsRoot != "" && !strings.HasPrefix(c.SysfsRoot, "/") {
		return bosherr.Error("Must provide absolute SysfsRoot")
	}

	if c.DevDir != "" && !strings.HasPrefix(c.DevDir, "/") {
		return bosherr.Error("Must provide absolute DevDir")
	}

	return nil
}
