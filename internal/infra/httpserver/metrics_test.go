package httpserver

import (
	"net/http"
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/metric"
)

var _ = ginkgo.Describe("Metrics", func() {
	ginkgo.Context("MetricsMiddleware", func() {
		ginkgo.It("should collect metrics and pass the response through", func() {
			reader := metric.NewManualReader()
			provider := metric.NewMeterProvider(metric.WithReader(reader))
			otel.SetMeterProvider(provider)
			ResetMetricsForTesting()

			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte("test response"))
			})

			handler := MetricsMiddleware()(testHandler)
			req := httptest.NewRequest(http.MethodPost, "/v1/tenants/t1/entity-schemas/usuario/draft", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusCreated))
			gomega.Expect(w.Body.String()).To(gomega.Equal("test response"))
			gomega.Expect(IsMetricsInitialized()).To(gomega.BeTrue())
		})
	})

	ginkgo.DescribeTable("normalizeEndpoint",
		func(path, expected string) {
			gomega.Expect(normalizeEndpoint(path)).To(gomega.Equal(expected))
		},
		ginkgo.Entry("root", "/", "root"),
		ginkgo.Entry("empty", "", "root"),
		ginkgo.Entry("simple", "/healthz", "/healthz"),
		ginkgo.Entry("catalog", "/v1/validation-rules", "/v1/validation-rules"),
		ginkgo.Entry("schema",
			"/v1/tenants/acme/entity-schemas/usuario",
			"/v1/tenants/_tenant/entity-schemas/_entity_type"),
		ginkgo.Entry("schema list",
			"/v1/tenants/acme/entity-schemas",
			"/v1/tenants/_tenant/entity-schemas"),
		ginkgo.Entry("draft option",
			"/v1/tenants/acme/entity-schemas/usuario/draft/fields/2/options/0",
			"/v1/tenants/_tenant/entity-schemas/_entity_type/draft/fields/_index/options/_index"),
		ginkgo.Entry("uuid elsewhere",
			"/v1/things/123e4567-e89b-12d3-a456-426614174000",
			"/v1/things/_id"),
	)

	ginkgo.Context("ResponseWriter", func() {
		ginkgo.It("should record the status code", func() {
			recorder := httptest.NewRecorder()
			wrappedWriter := &responseWriter{ResponseWriter: recorder, statusCode: http.StatusOK}

			wrappedWriter.WriteHeader(http.StatusNotFound)
			_, err := wrappedWriter.Write([]byte("test"))

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(wrappedWriter.statusCode).To(gomega.Equal(http.StatusNotFound))
			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusNotFound))
			gomega.Expect(recorder.Body.String()).To(gomega.Equal("test"))
		})
	})
})
