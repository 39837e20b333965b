package node_test

import (
	"entity-config-server/internal/infra/node"

	"github.com/google/uuid"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Node", func() {
	ginkgo.Context("Current", func() {
		ginkgo.It("should describe the running instance", func() {
			info := node.Current()

			gomega.Expect(info.Hostname).ToNot(gomega.BeEmpty())
			gomega.Expect(info.Version).To(gomega.Equal(node.Version))
			gomega.Expect(info.CommitHash).To(gomega.Equal(node.CommitHash))
			_, err := uuid.Parse(info.InstanceID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should keep the same instance id across calls", func() {
			gomega.Expect(node.Current().InstanceID).To(gomega.Equal(node.Current().InstanceID))
		})
	})
})
