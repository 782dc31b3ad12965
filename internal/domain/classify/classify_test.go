package classify

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"agentdash/internal/domain/model"
)

func TestValid(t *testing.T) {
	convey.Convey("Given metric names", t, func() {
		convey.So(Valid(MetricDollarIndex), convey.ShouldBeTrue)
		convey.So(Valid(MetricWinRate), convey.ShouldBeTrue)
		convey.So(Valid(MetricContractsTracked), convey.ShouldBeTrue)
		convey.So(Valid(MetricTotalContractValue), convey.ShouldBeTrue)
		convey.So(Valid(Metric("player-value")), convey.ShouldBeFalse)
		convey.So(Valid(Metric("")), convey.ShouldBeFalse)
	})
}

func TestTiers(t *testing.T) {
	convey.Convey("Given a classifiable metric", t, func() {
		tiers := Tiers(MetricDollarIndex)

		convey.Convey("Then five bands come back, best first", func() {
			convey.So(len(tiers), convey.ShouldEqual, 5)
			convey.So(tiers[0].Name, convey.ShouldEqual, TierElite)
			convey.So(tiers[4].Name, convey.ShouldEqual, TierBelowAverage)
		})

		convey.Convey("And mutating the copy leaves the source intact", func() {
			tiers[0].Name = "mutated"
			convey.So(Tiers(MetricDollarIndex)[0].Name, convey.ShouldEqual, TierElite)
		})
	})

	convey.Convey("Given an unknown metric", t, func() {
		convey.Convey("Then tiers fall back to dollar index", func() {
			convey.So(Tiers(Metric("bogus")), convey.ShouldResemble, Tiers(MetricDollarIndex))
		})
	})
}

func TestClassify(t *testing.T) {
	convey.Convey("Given dollar-index values", t, func() {
		convey.Convey("Then bounds are min-inclusive, max-exclusive", func() {
			convey.So(Classify(MetricDollarIndex, 1.5).Name, convey.ShouldEqual, TierElite)
			convey.So(Classify(MetricDollarIndex, 1.49).Name, convey.ShouldEqual, TierGreat)
			convey.So(Classify(MetricDollarIndex, 1.2).Name, convey.ShouldEqual, TierGreat)
			convey.So(Classify(MetricDollarIndex, 1.0).Name, convey.ShouldEqual, TierGood)
			convey.So(Classify(MetricDollarIndex, 0.8).Name, convey.ShouldEqual, TierAverage)
			convey.So(Classify(MetricDollarIndex, 0.5).Name, convey.ShouldEqual, TierBelowAverage)
		})
	})

	convey.Convey("Given contracts-tracked values", t, func() {
		convey.So(Classify(MetricContractsTracked, 30).Name, convey.ShouldEqual, TierElite)
		convey.So(Classify(MetricContractsTracked, 10).Name, convey.ShouldEqual, TierGood)
		convey.So(Classify(MetricContractsTracked, 2).Name, convey.ShouldEqual, TierBelowAverage)
	})
}

func TestGroupByTier(t *testing.T) {
	convey.Convey("Given a small agent population", t, func() {
		agents := []model.RankedAgent{
			{AgentRecord: model.AgentRecord{AgentName: "A", DollarIndex: 1.8}},
			{AgentRecord: model.AgentRecord{AgentName: "B", DollarIndex: 1.3}},
			{AgentRecord: model.AgentRecord{AgentName: "C", DollarIndex: 0.4}},
		}

		groups := GroupByTier(MetricDollarIndex, agents)

		convey.Convey("Then every tier is present, populated or not", func() {
			convey.So(len(groups), convey.ShouldEqual, 5)
			convey.So(groups[TierGood], convey.ShouldBeEmpty)
			convey.So(groups[TierAverage], convey.ShouldBeEmpty)
		})

		convey.Convey("Then agents land in the right bands", func() {
			convey.So(len(groups[TierElite]), convey.ShouldEqual, 1)
			convey.So(groups[TierElite][0].AgentName, convey.ShouldEqual, "A")
			convey.So(len(groups[TierGreat]), convey.ShouldEqual, 1)
			convey.So(len(groups[TierBelowAverage]), convey.ShouldEqual, 1)
		})
	})
}
