package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"agentdash/internal/domain/model"
)

func sampleSnapshot(gen uint64) Snapshot {
	agents := []model.AgentRecord{
		{AgentName: "Marcus Silva", AgencyName: "Apex Sports Group", DollarIndex: 1.25},
		{AgentName: "Elena Petrov", AgencyName: "Meridian Management", DollarIndex: 0.9},
	}
	ranked := []model.RankedAgent{
		{AgentRecord: agents[0], RankSet: model.RankSet{IndexRank: 1}},
		{AgentRecord: agents[1], RankSet: model.RankSet{IndexRank: 2}},
	}
	return Snapshot{
		Agents: agents,
		Ranked: ranked,
		Agencies: []model.AgencyRecord{
			{AgencyName: "Apex Sports Group", DollarIndex: 1.25},
		},
		Investments: []model.PlayerInvestmentRecord{
			{PlayerName: "Jorge Vargas", AgentName: "Marcus Silva", AgencyName: "Apex Sports Group"},
			{PlayerName: "Luca Rossi", AgentName: "Elena Petrov", AgencyName: "Meridian Management"},
		},
		Generation: gen,
		LoadedAt:   time.Now(),
	}
}

func TestMemStoreReplace(t *testing.T) {
	convey.Convey("Given an empty store", t, func() {
		ctx := context.Background()
		store := NewMemStore(ctx)

		convey.Convey("Then it starts at generation zero", func() {
			convey.So(store.Generation(ctx), convey.ShouldEqual, 0)
			convey.So(store.Count(ctx), convey.ShouldEqual, 0)
		})

		convey.Convey("When a snapshot is installed", func() {
			err := store.Replace(ctx, sampleSnapshot(1))
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then reads serve the new snapshot", func() {
				convey.So(store.Count(ctx), convey.ShouldEqual, 2)
				convey.So(store.Generation(ctx), convey.ShouldEqual, 1)
				convey.So(len(store.Ranked(ctx)), convey.ShouldEqual, 2)
				convey.So(len(store.Agencies(ctx)), convey.ShouldEqual, 1)
				convey.So(store.LoadedAt(ctx).IsZero(), convey.ShouldBeFalse)
			})

			convey.Convey("Then name lookups resolve", func() {
				ra, err := store.RankedByName(ctx, "Marcus Silva")
				convey.So(err, convey.ShouldBeNil)
				convey.So(ra.IndexRank, convey.ShouldEqual, 1)

				ag, err := store.AgencyByName(ctx, "Apex Sports Group")
				convey.So(err, convey.ShouldBeNil)
				convey.So(ag.DollarIndex, convey.ShouldEqual, 1.25)
			})

			convey.Convey("Then unknown names report ErrNotFound", func() {
				_, err := store.RankedByName(ctx, "Nobody")
				convey.So(errors.Is(err, ErrNotFound), convey.ShouldBeTrue)

				_, err = store.AgencyByName(ctx, "Nowhere")
				convey.So(errors.Is(err, ErrNotFound), convey.ShouldBeTrue)
			})

			convey.Convey("Then investment indexes are scoped", func() {
				convey.So(len(store.InvestmentsByAgent(ctx, "Marcus Silva")), convey.ShouldEqual, 1)
				convey.So(len(store.InvestmentsByAgency(ctx, "Meridian Management")), convey.ShouldEqual, 1)
				convey.So(len(store.InvestmentsByAgent(ctx, "Nobody")), convey.ShouldEqual, 0)
			})
		})
	})
}

func TestMemStoreStaleLoad(t *testing.T) {
	convey.Convey("Given a store at generation two", t, func() {
		ctx := context.Background()
		store := NewMemStore(ctx)
		convey.So(store.Replace(ctx, sampleSnapshot(2)), convey.ShouldBeNil)

		convey.Convey("When an older load finishes late", func() {
			err := store.Replace(ctx, sampleSnapshot(1))

			convey.Convey("Then it is rejected and the snapshot survives", func() {
				convey.So(errors.Is(err, ErrStaleLoad), convey.ShouldBeTrue)
				convey.So(store.Generation(ctx), convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When a load repeats the current generation", func() {
			err := store.Replace(ctx, sampleSnapshot(2))
			convey.So(errors.Is(err, ErrStaleLoad), convey.ShouldBeTrue)
		})

		convey.Convey("When a newer load arrives", func() {
			err := store.Replace(ctx, sampleSnapshot(3))
			convey.So(err, convey.ShouldBeNil)
			convey.So(store.Generation(ctx), convey.ShouldEqual, 3)
		})
	})
}

func TestMemStoreConcurrentReads(t *testing.T) {
	convey.Convey("Given a store under concurrent readers and writers", t, func() {
		ctx := context.Background()
		store := NewMemStore(ctx)
		convey.So(store.Replace(ctx, sampleSnapshot(1)), convey.ShouldBeNil)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					_ = store.Ranked(ctx)
					_, _ = store.RankedByName(ctx, "Marcus Silva")
					_ = store.Count(ctx)
				}
			}()
		}
		for gen := uint64(2); gen < 10; gen++ {
			_ = store.Replace(ctx, sampleSnapshot(gen))
		}
		wg.Wait()

		convey.Convey("Then the final generation is the newest install", func() {
			convey.So(store.Generation(ctx), convey.ShouldEqual, 9)
		})
	})
}
