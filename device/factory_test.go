package device_test

import (
	"errors"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	fakesys "github.com/cloudfoundry/bosh-utils/system/fakes"
	fakeuuid "github.com/cloudfoundry/bosh-utils/uuid/fakes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"devtree/config"
	"devtree/device"
	"devtree/udev/udevfakes"
)

var _ = Describe("Factory", func() {
	var (
		uuidGen *fakeuuid.FakeGenerator
		cfg     config.Config
	)

	BeforeEach(func() {
		uuidGen = &fakeuuid.FakeGenerator{}
		cfg = config.Config{}
	})

	newFactory := func() device.Factory {
		return device.NewFactory(
			fakesys.NewFakeFileSystem(),
			&udevfakes.FakeManager{},
			uuidGen,
			cfg,
			boshlog.NewLogger(boshlog.LevelNone),
		)
	}

	It("generates a UUID for a planned device without one", func() {
		uuidGen.GeneratedUUID = "fake-uuid"

		dev, err := newFactory().New("sda1", device.Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(dev.UUID()).To(Equal("fake-uuid"))
	})

	It("keeps a caller-provided UUID", func() {
		uuidGen.GeneratedUUID = "fake-uuid"

		dev, err := newFactory().New("sda1", device.Options{UUID: "given-uuid"})
		Expect(err).NotTo(HaveOccurred())
		Expect(dev.UUID()).To(Equal("given-uuid"))
	})

	It("does not invent a UUID for an existing device", func() {
		uuidGen.GeneratedUUID = "fake-uuid"

		dev, err := newFactory().New("sda1", device.Options{Exists: true})
		Expect(err).NotTo(HaveOccurred())
		Expect(dev.UUID()).To(Equal(""))
	})

	It("returns an error when UUID generation fails", func() {
		uuidGen.GenerateError = errors.New("fake-generate-err")

		_, err := newFactory().New("sda1", device.Options{})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("fake-generate-err"))
	})

	It("constructs non-controllable devices in testing mode", func() {
		cfg.Testing = true

		dev, err := newFactory().New("sda1", device.Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(dev.Controllable()).To(BeFalse())
	})

	It("wraps construction failures with the device name", func() {
		_, err := newFactory().New("..", device.Options{})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Creating device '..'"))
		Expect(errors.Is(err, device.ErrInvalidName)).To(BeTrue())
	})
})
