package scene

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Driver", func() {
	var (
		host   *fakeHost
		driver *Driver
	)

	BeforeEach(func() {
		host = newFakeHost(640, 480)
		var err error
		driver, err = NewDriver(host, newRand(), DefaultOptions())
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects a missing host", func() {
		_, err := NewDriver(nil, newRand(), Options{})
		Expect(err).To(MatchError(ErrNoSurface))
	})

	Describe("Start", func() {
		It("fails when the content area is empty", func() {
			host.contentW = 0
			Expect(driver.Start()).To(MatchError(ErrNoSurface))
			Expect(driver.Running()).To(BeFalse())
		})

		It("sizes the surface to the content area", func() {
			host.contentW, host.contentH = 1024, 768
			Expect(driver.Start()).To(Succeed())
			Expect(host.resized).To(BeTrue())
			w, h := host.Size()
			Expect(w).To(Equal(1024.0))
			Expect(h).To(Equal(768.0))
			Expect(driver.Background().Gradient().X1).To(Equal(1024.0))
		})

		It("builds the scene and requests the first frame", func() {
			Expect(driver.Start()).To(Succeed())
			Expect(driver.Running()).To(BeTrue())
			Expect(driver.Background().Color()).To(Equal(DefaultColor))
			Expect(driver.Bubbles().Len()).To(BeZero())
			Expect(host.FramePending()).To(BeTrue())
		})

		It("seeds initial bubbles", func() {
			driver, _ = NewDriver(host, newRand(), Options{InitialBubbles: 5, InitialColor: RGB{1, 2, 3}})
			Expect(driver.Start()).To(Succeed())
			Expect(driver.Bubbles().Len()).To(Equal(5))
			Expect(driver.Background().Color()).To(Equal(RGB{1, 2, 3}))
		})

		It("starts on an explicit black background", func() {
			driver, _ = NewDriver(host, newRand(), Options{InitialColor: RGB{0, 0, 0}})
			Expect(driver.Start()).To(Succeed())
			Expect(driver.Background().Color()).To(Equal(RGB{0, 0, 0}))
			Expect(driver.Background().Converged()).To(BeTrue())
		})

		It("only starts once", func() {
			Expect(driver.Start()).To(Succeed())
			Expect(driver.Start()).To(MatchError(ErrAlreadyRunning))
		})
	})

	Describe("frames", func() {
		BeforeEach(func() {
			Expect(driver.Start()).To(Succeed())
		})

		It("draws the background before the bubbles and reschedules", func() {
			host.Click(100, 100)
			Expect(host.RunFrame()).To(BeTrue())

			Expect(host.calls).To(HaveLen(2))
			Expect(host.calls[0].op).To(Equal("rect"))
			Expect(host.calls[0].mode).To(Equal(CompositeNormal))
			Expect(host.calls[1].op).To(Equal("circle"))
			Expect(host.calls[1].mode).To(Equal(CompositeAdditive))
			Expect(host.FramePending()).To(BeTrue())
			Expect(driver.Frames()).To(Equal(uint64(1)))
		})

		It("ticks before rendering", func() {
			driver.Background().SetTarget(RGB{0, 0, 0})
			host.RunFrame()

			rect := host.calls[0]
			g, ok := rect.style.(*LinearGradient)
			Expect(ok).To(BeTrue())
			Expect(g.Stops[0].Color).To(Equal(RGB{12, 110, 170}))
		})

		It("keeps running frame after frame", func() {
			for i := 0; i < 30; i++ {
				Expect(host.RunFrame()).To(BeTrue())
			}
			Expect(driver.Frames()).To(Equal(uint64(30)))
		})
	})

	Describe("input", func() {
		BeforeEach(func() {
			Expect(driver.Start()).To(Succeed())
		})

		It("spawns a bubble on an empty point and pops it on a second click", func() {
			host.Click(200, 150)
			Expect(driver.Bubbles().Len()).To(Equal(1))

			b := driver.Bubbles().Bubbles()[0]
			Expect(b.Scale).To(Equal(StartingScale))
			Expect(b.Contains(200, 150)).To(BeTrue())

			host.Click(200, 150)
			Expect(driver.Bubbles().Len()).To(BeZero())
		})

		It("spawns when clicking outside the surface", func() {
			host.Click(-500, 9000)
			Expect(driver.Bubbles().Len()).To(Equal(1))
		})

		It("randomizes the background and suppresses the default menu", func() {
			showDefault := host.ContextMenu(10, 10)

			Expect(showDefault).To(BeFalse())
			target := driver.Background().Target()
			for _, v := range target {
				Expect(v).To(BeNumerically(">=", 0))
				Expect(v).To(BeNumerically("<", 256))
			}
			Expect(driver.Bubbles().Len()).To(BeZero())
		})

		It("applies input between frames", func() {
			host.RunFrame()
			host.Click(320, 240)
			host.reset()
			host.RunFrame()

			Expect(host.calls).To(HaveLen(2))
			Expect(host.calls[1].x).To(Equal(320.0))
			Expect(host.calls[1].y).To(Equal(240.0))
		})
	})
})
