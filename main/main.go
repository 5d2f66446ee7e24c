package main

import (
	"flag"
	"fmt"
	"os"
	gopath "path"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	boshuuid "github.com/cloudfoundry/bosh-utils/uuid"

	"devtree/avail"
	"devtree/config"
	"devtree/device"
	"devtree/udev"
)

var (
	configPathOpt = flag.String("configPath", "", "Path to configuration file")
)

func main() {
	logger, fs, cmdRunner, uuidGen := basicDeps()
	defer logger.HandlePanic("Main")

	flag.Parse()

	var cfg config.Config

	if *configPathOpt != "" {
		var err error
		cfg, err = config.NewConfigFromPath(*configPathOpt, fs)
		if err != nil {
			logger.Error("main", "Loading cfg %s", err.Error())
			os.Exit(1)
		}
	}

	udevMgr := udev.NewLinuxManager(fs, cmdRunner, cfg.SysfsRoot, logger)
	registry := avail.NewRegistry(cmdRunner)
	factory := device.NewFactory(fs, udevMgr, uuidGen, cfg, logger)

	err := listBlockDevices(cfg, factory, fs, registry)
	if err != nil {
		logger.Error("main", "Listing block devices %s", err.Error())
		os.Exit(1)
	}
}

func listBlockDevices(cfg config.Config, factory device.Factory, fs boshsys.FileSystem, registry *avail.Registry) error {
	sysRoot := cfg.SysfsRoot
	if sysRoot == "" {
		sysRoot = "/sys"
	}

	entries, err := fs.Glob(gopath.Join(sysRoot, "class", "block", "*"))
	if err != nil {
		return err
	}

	diskKind := device.NewKind(device.Profile{
		Type:          "disk",
		DevDir:        cfg.DevDir,
		IsDisk:        true,
		Partitionable: true,
		Dependencies:  []*avail.ExternalResource{registry.Command("udevadm")},
	})

	for _, entry := range entries {
		name := gopath.Base(entry)

		dev, err := factory.New(name, device.Options{
			Kind:      diskKind,
			Exists:    true,
			SysfsPath: entry,
		})
		if err != nil {
			return err
		}

		fmt.Printf("%-16s %12s %s\n", dev.Name(), dev.CurrentSize(), entry)
	}

	return nil
}

func basicDeps() (boshlog.Logger, boshsys.FileSystem, boshsys.CmdRunner, boshuuid.Generator) {
	logger := boshlog.NewWriterLogger(boshlog.LevelError, os.Stderr)
	fs := boshsys.NewOsFileSystem(logger)
	cmdRunner := boshsys.NewExecCmdRunner(logger)
	uuidGen := boshuuid.NewGenerator()
	return logger, fs, cmdRunner, uuidGen
}
