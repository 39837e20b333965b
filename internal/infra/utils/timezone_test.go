package utils_test

import (
	"time"

	"entity-config-server/internal/infra/utils"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Timezone", func() {
	ginkgo.DescribeTable("ValidateTimezone",
		func(timezone string, valid bool) {
			err := utils.ValidateTimezone(timezone)
			if valid {
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
			} else {
				gomega.Expect(err).To(gomega.HaveOccurred())
			}
			gomega.Expect(utils.IsValidTimezone(timezone)).To(gomega.Equal(valid))
		},
		ginkgo.Entry("UTC", "UTC", true),
		ginkgo.Entry("Buenos Aires", "America/Argentina/Buenos_Aires", true),
		ginkgo.Entry("Madrid", "Europe/Madrid", true),
		ginkgo.Entry("empty", "", false),
		ginkgo.Entry("unknown", "Mars/Olympus_Mons", false),
	)

	ginkgo.Context("NewClock", func() {
		ginkgo.It("should read time in the configured location", func() {
			clock, err := utils.NewClock("Europe/Madrid")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(clock().Location().String()).To(gomega.Equal("Europe/Madrid"))
		})

		ginkgo.It("should default to UTC", func() {
			clock, err := utils.NewClock("")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(clock().Location()).To(gomega.Equal(time.UTC))
		})

		ginkgo.It("should reject unknown timezones", func() {
			_, err := utils.NewClock("Nowhere/Else")
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.It("should return a fixed instant", func() {
		at := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
		gomega.Expect(utils.FixedClock(at)()).To(gomega.Equal(at))
	})
})

var _ = ginkgo.Describe("Time", func() {
	ginkgo.It("should marshal as UTC with milliseconds", func() {
		loc := time.FixedZone("ART", -3*3600)
		value := utils.Time{Time: time.Date(2024, time.June, 15, 9, 30, 0, 0, loc)}

		data, err := value.MarshalJSON()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(string(data)).To(gomega.Equal(`"2024-06-15T12:30:00.000Z"`))
	})
})
