package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a private registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
				So(manager.extractions, ShouldNotBeNil)
				So(manager.validationFaults, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("testns"),
				WithSubsystem("testsub"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithRegistry(registry),
			)

			Convey("Then the options should be applied", func() {
				So(manager.namespace, ShouldEqual, "testns")
				So(manager.subsystem, ShouldEqual, "testsub")
				So(manager.histogramBuckets, ShouldResemble, []float64{0.1, 0.5, 1.0})
			})
		})

		Convey("When registration is disabled", func() {
			manager := NewManager(WithEnabled(false))

			Convey("Then collectors still exist but register nowhere", func() {
				So(manager, ShouldNotBeNil)
				So(manager.enabled, ShouldBeFalse)
				manager.extractions.Inc()
			})
		})
	})
}

func TestRecordHelpers(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording business events", func() {
			RecordExtraction()
			RecordRecommendation()
			RecordGapAnalysis()
			RecordResumeScored()
			RecordValidationFault("recommend")
			RecordSnapshotReload(0.05)
			RecordSnapshotReloadFailure()
			UpdateSnapshotCounts(12, 51)
			RecordHTTPRequest("extract", "POST", "200")
			RecordHTTPRequestDuration("extract", "POST", 3.2)
			UpdateSystemMemoryUsage(1 << 20)
			UpdateSystemGoroutineCount(10)
			RecordSystemGCPauseTime(0.4)

			Convey("Then the registry gathers without error", func() {
				families, err := GetRegistry().Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
			})
		})
	})
}
