package parse

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestNumeric(t *testing.T) {
	convey.Convey("Given currency and numeric cell text", t, func() {
		convey.Convey("When parsing well-formed values", func() {
			convey.So(Numeric("$1,234,567"), convey.ShouldEqual, 1234567)
			convey.So(Numeric("1234.5"), convey.ShouldEqual, 1234.5)
			convey.So(Numeric("$0.85"), convey.ShouldEqual, 0.85)
			convey.So(Numeric(" $42 "), convey.ShouldEqual, 42)
		})

		convey.Convey("When parsing parenthesized values", func() {
			convey.Convey("Then they read as negative", func() {
				convey.So(Numeric("($500)"), convey.ShouldEqual, -500)
				convey.So(Numeric("($1,234,567)"), convey.ShouldEqual, -1234567)
			})
		})

		convey.Convey("When parsing sentinel and malformed values", func() {
			convey.Convey("Then they resolve to zero", func() {
				convey.So(Numeric(""), convey.ShouldEqual, 0)
				convey.So(Numeric(SentinelBlank), convey.ShouldEqual, 0)
				convey.So(Numeric(SentinelGrandTotal), convey.ShouldEqual, 0)
				convey.So(Numeric("n/a"), convey.ShouldEqual, 0)
				convey.So(Numeric("--"), convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When the cell carries a non-breaking space", func() {
			convey.So(Numeric("$ 1,000"), convey.ShouldEqual, 1000)
		})

		convey.Convey("When a negative uses a plain minus sign", func() {
			convey.So(Numeric("-$250"), convey.ShouldEqual, -250)
		})
	})
}

func TestPercentage(t *testing.T) {
	convey.Convey("Given percentage cell text", t, func() {
		convey.Convey("When parsing well-formed percentages", func() {
			convey.Convey("Then the result is a fraction", func() {
				convey.So(Percentage("55.0%"), convey.ShouldEqual, 0.55)
				convey.So(Percentage("100%"), convey.ShouldEqual, 1.0)
				convey.So(Percentage(" 7.5% "), convey.ShouldEqual, 0.075)
			})
		})

		convey.Convey("When parsing out-of-range percentages", func() {
			convey.Convey("Then the fraction is not clamped", func() {
				convey.So(Percentage("250%"), convey.ShouldEqual, 2.5)
				convey.So(Percentage("-10%"), convey.ShouldEqual, -0.1)
			})
		})

		convey.Convey("When parsing empty or malformed text", func() {
			convey.So(Percentage(""), convey.ShouldEqual, 0)
			convey.So(Percentage("abc"), convey.ShouldEqual, 0)
		})
	})
}

func TestValidKey(t *testing.T) {
	convey.Convey("Given key cells from a pivot export", t, func() {
		convey.Convey("Then real names validate", func() {
			convey.So(ValidKey("Marcus Silva"), convey.ShouldBeTrue)
			convey.So(ValidKey("Apex Sports Group"), convey.ShouldBeTrue)
		})

		convey.Convey("And footer sentinels do not", func() {
			convey.So(ValidKey(""), convey.ShouldBeFalse)
			convey.So(ValidKey(SentinelBlank), convey.ShouldBeFalse)
			convey.So(ValidKey(SentinelGrandTotal), convey.ShouldBeFalse)
		})
	})
}
