package record

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func agentRow() Row {
	return Row{
		"Agent Name":                          "Marcus Silva",
		"Agency Name":                         "Apex Sports Group",
		"Dollar Index":                        "$1.25",
		"Won%":                                "55.0%",
		"CT":                                  "24",
		"Total Contract Value":                "$120,000,000",
		"Total Player Value":                  "$140,000,000",
		"Dollars Captured Above/ Below Value": "$20,000,000",
		"Market Value Capture %":              "16.7%",
		"Discount Rate":                       "5.0%",
	}
}

func TestRowGet(t *testing.T) {
	convey.Convey("Given rows with padded and unpadded headers", t, func() {
		padded := Row{" Agency Name ": "Apex Sports Group"}
		plain := Row{"Agency Name": "Apex Sports Group"}

		convey.Convey("Then both variants resolve the same cell", func() {
			convey.So(padded.Key("Agency Name"), convey.ShouldEqual, "Apex Sports Group")
			convey.So(plain.Key("Agency Name"), convey.ShouldEqual, "Apex Sports Group")
		})

		convey.Convey("And a missing column reads as empty", func() {
			convey.So(plain.Key("Dollar Index"), convey.ShouldEqual, "")
		})
	})
}

func TestValidRows(t *testing.T) {
	convey.Convey("Given export rows", t, func() {
		convey.Convey("Then rows keyed by a real name validate", func() {
			convey.So(ValidAgentRow(agentRow()), convey.ShouldBeTrue)
			convey.So(ValidAgencyRow(Row{"Agency Name": "Apex Sports Group"}), convey.ShouldBeTrue)
			convey.So(ValidPlayerRow(Row{"Combined Names": "Jorge Vargas"}), convey.ShouldBeTrue)
		})

		convey.Convey("And footer rows do not", func() {
			convey.So(ValidAgentRow(Row{"Agent Name": "(blank)"}), convey.ShouldBeFalse)
			convey.So(ValidAgentRow(Row{"Agent Name": "Grand Total"}), convey.ShouldBeFalse)
			convey.So(ValidAgentRow(Row{}), convey.ShouldBeFalse)
		})
	})
}

func TestMapAgentRow(t *testing.T) {
	convey.Convey("Given a well-formed agents-export row", t, func() {
		rec := MapAgentRow(agentRow())

		convey.Convey("Then every field maps and parses", func() {
			convey.So(rec.AgentName, convey.ShouldEqual, "Marcus Silva")
			convey.So(rec.AgencyName, convey.ShouldEqual, "Apex Sports Group")
			convey.So(rec.DollarIndex, convey.ShouldEqual, 1.25)
			convey.So(rec.WinRate, convey.ShouldEqual, 0.55)
			convey.So(rec.ContractsTracked, convey.ShouldEqual, 24)
			convey.So(rec.TotalContractValue, convey.ShouldEqual, 120000000)
			convey.So(rec.TotalPlayerValue, convey.ShouldEqual, 140000000)
			convey.So(rec.DollarsCaptured, convey.ShouldEqual, 20000000)
			convey.So(rec.MarketValueCapture, convey.ShouldEqual, "16.7%")
			convey.So(rec.DiscountRate, convey.ShouldEqual, "5.0%")
		})

		convey.Convey("And a row with empty numeric cells maps to zeros", func() {
			sparse := MapAgentRow(Row{"Agent Name": "Elena Petrov"})
			convey.So(sparse.AgentName, convey.ShouldEqual, "Elena Petrov")
			convey.So(sparse.DollarIndex, convey.ShouldEqual, 0)
			convey.So(sparse.ContractsTracked, convey.ShouldEqual, 0)
		})
	})
}

func TestMapAgencyRow(t *testing.T) {
	convey.Convey("Given an agencies-export row with shipped ranks", t, func() {
		rec := MapAgencyRow(Row{
			"Agency Name":  "Apex Sports Group",
			"Dollar Index": "$1.10",
			"Won%":         "48%",
			"CT":           "60",
			"Index R":      "3",
			"WinR":         "7",
			"CTR":          "1",
			"TCV R":        "2",
			"TPV R":        "4",
		})

		convey.Convey("Then ranks come from the export, not derivation", func() {
			convey.So(rec.IndexRank, convey.ShouldEqual, 3)
			convey.So(rec.WinRateRank, convey.ShouldEqual, 7)
			convey.So(rec.ContractRank, convey.ShouldEqual, 1)
			convey.So(rec.ContractValueRank, convey.ShouldEqual, 2)
			convey.So(rec.PlayerValueRank, convey.ShouldEqual, 4)
		})

		convey.Convey("And the aggregate fields parse", func() {
			convey.So(rec.AgencyName, convey.ShouldEqual, "Apex Sports Group")
			convey.So(rec.DollarIndex, convey.ShouldEqual, 1.10)
			convey.So(rec.WinRate, convey.ShouldEqual, 0.48)
			convey.So(rec.ContractsTracked, convey.ShouldEqual, 60)
		})
	})
}

func TestMapPlayerInvestmentRow(t *testing.T) {
	convey.Convey("Given a player-investment row", t, func() {
		row := Row{
			"Combined Names": "Jorge Vargas",
			"Agent Name":     "Marcus Silva",
			" Agency Name ":  "Apex Sports Group",
			"Total Cost":     "$12,000,000",
			"Total PC":       "$15,000,000",
			"COST 18-19":     "$1,000,000",
			"PC 18-19":       "$1,500,000",
			"COST 23-24":     "($2,000,000)",
			"PC 23-24":       "$3,000,000",
			"Value Capture %": "80.0%",
		}
		rec := MapPlayerInvestmentRow(row)

		convey.Convey("Then identity and totals map", func() {
			convey.So(rec.PlayerName, convey.ShouldEqual, "Jorge Vargas")
			convey.So(rec.AgentName, convey.ShouldEqual, "Marcus Silva")
			convey.So(rec.AgencyName, convey.ShouldEqual, "Apex Sports Group")
			convey.So(rec.TotalCost, convey.ShouldEqual, 12000000)
			convey.So(rec.TotalContribution, convey.ShouldEqual, 15000000)
			convey.So(rec.ValueCapture, convey.ShouldEqual, "80.0%")
		})

		convey.Convey("Then all six season pairs are present", func() {
			convey.So(len(rec.Seasons), convey.ShouldEqual, 6)
			convey.So(rec.Seasons["2018-19"].Cost, convey.ShouldEqual, 1000000)
			convey.So(rec.Seasons["2018-19"].Contribution, convey.ShouldEqual, 1500000)
			convey.So(rec.Seasons["2023-24"].Cost, convey.ShouldEqual, -2000000)
			convey.So(rec.Seasons["2020-21"].Cost, convey.ShouldEqual, 0)
		})
	})
}

func TestMapRowsFiltering(t *testing.T) {
	convey.Convey("Given exports with footer rows mixed in", t, func() {
		rows := []Row{
			agentRow(),
			{"Agent Name": "(blank)"},
			{"Agent Name": "Grand Total"},
			{"Agent Name": "Elena Petrov"},
		}

		convey.Convey("Then MapAgentRows drops the footers", func() {
			recs := MapAgentRows(rows)
			convey.So(len(recs), convey.ShouldEqual, 2)
			convey.So(recs[0].AgentName, convey.ShouldEqual, "Marcus Silva")
			convey.So(recs[1].AgentName, convey.ShouldEqual, "Elena Petrov")
		})

		convey.Convey("And MapPlayerInvestmentRows filters the same way", func() {
			players := MapPlayerInvestmentRows([]Row{
				{"Combined Names": "Jorge Vargas"},
				{"Combined Names": "Grand Total"},
			})
			convey.So(len(players), convey.ShouldEqual, 1)
		})
	})
}
