package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)
			refreshIntervalOpt := WithRefreshInterval(5 * time.Second)
			registryOpt := WithPrometheusRegistry(prometheus.NewRegistry())

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
				So(refreshIntervalOpt, ShouldNotBeNil)
				So(registryOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given manager creation", t, func() {
		Convey("When creating with a private registry", func() {
			manager := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithRefreshInterval(10*time.Second),
				WithPrometheusRegistry(prometheus.NewRegistry()),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestPipelineMetricsRecording(t *testing.T) {
	Convey("Given pipeline metrics recording", t, func() {
		Convey("When recording load outcomes", func() {
			So(RecordLoadSuccess, ShouldNotPanic)
			So(RecordLoadFailure, ShouldNotPanic)
			So(RecordLoadStale, ShouldNotPanic)
			So(func() { RecordLoadDuration(42.5) }, ShouldNotPanic)
		})

		Convey("When recording row counts", func() {
			So(func() { RecordRowsParsed("agents", 90) }, ShouldNotPanic)
			So(func() { RecordRowsSkipped("agents", 2) }, ShouldNotPanic)
		})

		Convey("When updating dataset gauges", func() {
			So(func() { UpdateDatasetAgents(90) }, ShouldNotPanic)
			So(func() { UpdateDatasetAgencies(25) }, ShouldNotPanic)
			So(func() { UpdateDatasetInvestments(450) }, ShouldNotPanic)
			So(func() { UpdateDatasetGeneration(3) }, ShouldNotPanic)
			So(func() { UpdateDatasetAge(90 * time.Second) }, ShouldNotPanic)
		})
	})
}

func TestHTTPMetricsRecording(t *testing.T) {
	Convey("Given HTTP metrics recording", t, func() {
		Convey("When recording requests", func() {
			So(func() { RecordHTTPRequest("leaderboard", "GET", "200") }, ShouldNotPanic)
			So(func() { RecordHTTPRequestDuration("leaderboard", "GET", "200", 12.5) }, ShouldNotPanic)
		})

		Convey("When recording errors", func() {
			So(func() { RecordErrorByEndpoint("leaderboard", "GET", "client_error") }, ShouldNotPanic)
			So(func() { RecordErrorByType("bad_request", "warning") }, ShouldNotPanic)
		})
	})
}

func TestSystemMetricsRecording(t *testing.T) {
	Convey("Given system metrics recording", t, func() {
		So(func() { UpdateSystemMemoryUsage(1024 * 1024) }, ShouldNotPanic)
		So(func() { UpdateSystemGoroutineCount(12) }, ShouldNotPanic)
		So(func() { RecordSystemGCPauseTime(0.25) }, ShouldNotPanic)
	})
}

func TestRegistryExposition(t *testing.T) {
	Convey("Given the custom registry", t, func() {
		RecordLoadSuccess()
		UpdateDatasetAgents(90)

		Convey("Then gathering returns the registered families", func() {
			families, err := GetRegistry().Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)

			names := make(map[string]bool, len(families))
			for _, f := range families {
				names[f.GetName()] = true
			}
			So(names["agentdash_pipeline_loads_total"], ShouldBeTrue)
			So(names["agentdash_pipeline_dataset_agents"], ShouldBeTrue)
		})
	})
}

func TestMetricsErrors(t *testing.T) {
	Convey("Given metrics error constants", t, func() {
		So(ErrObserveFailed, ShouldNotBeNil)
		So(ErrObserveFailed.Error(), ShouldEqual, "metrics observe failed")
	})
}
