package patricia_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/patricia/pkg/patricia"
)

func TestGetBit(t *testing.T) {
	Convey("Given a key byte buffer", t, func() {
		key := []byte{0b1010_1010}

		Convey("When reading bit 0", func() {
			So(patricia.GetBit(key, 8, 0), ShouldEqual, byte(0))
		})

		Convey("When reading each stored bit", func() {
			for i, want := range []byte{1, 0, 1, 0, 1, 0, 1, 0} {
				So(patricia.GetBit(key, 8, i+1), ShouldEqual, want)
			}
		})

		Convey("When reading past the end of a non-empty key", func() {
			So(patricia.GetBit(key, 8, 9), ShouldEqual, byte(1))
			So(patricia.GetBit(key, 8, 10), ShouldEqual, byte(1))
		})

		Convey("When reading past the end of an empty key", func() {
			So(patricia.GetBit(nil, 0, 1), ShouldEqual, byte(1))
			So(patricia.GetBit(nil, 0, 100), ShouldEqual, byte(1))
		})
	})
}

func TestBitDiff(t *testing.T) {
	Convey("Given scenario D's alternating-pattern keys", t, func() {
		p := []byte{0xAA, 0xAA, 0xAA, 0xAA}

		Convey("0xAA extended to 8 vs 9 bits differs at bit 10", func() {
			So(patricia.BitDiff(p, 8, p, 9), ShouldEqual, 10)
		})
	})

	Convey("Given 0xAA000000", t, func() {
		p := []byte{0xAA, 0x00, 0x00, 0x00}

		Convey("8 bits vs i bits differs at bit 9, for every i in [9,32]", func() {
			for i := 9; i <= 32; i++ {
				So(patricia.BitDiff(p, 8, p, i), ShouldEqual, 9)
			}
		})
	})

	Convey("Given 0xAAFFFFFF", t, func() {
		p := []byte{0xAA, 0xFF, 0xFF, 0xFF}

		Convey("8 bits vs i bits differs at bit i+1, for every i in [9,32]", func() {
			for i := 9; i <= 32; i++ {
				So(patricia.BitDiff(p, 8, p, i), ShouldEqual, i+1)
			}
		})
	})

	Convey("Given two equal keys", t, func() {
		k := []byte("same")

		So(patricia.BitDiff(k, 32, k, 32), ShouldEqual, 0)
	})

	Convey("Given two distinct keys of equal length", t, func() {
		a := []byte("aaaa")
		b := []byte("aaab")

		So(patricia.BitDiff(a, 32, b, 32), ShouldBeGreaterThan, 0)
	})
}

func TestEquKey(t *testing.T) {
	Convey("Given two equal keys", t, func() {
		a := []byte("alpha")
		b := []byte("alpha")

		So(patricia.EquKey(a, 40, b, 40), ShouldBeTrue)
	})

	Convey("Given keys of different bit length", t, func() {
		a := []byte("a")
		b := []byte("ab")

		So(patricia.EquKey(a, 8, b, 16), ShouldBeFalse)
	})

	Convey("Given keys that differ only outside the counted bits of their partial final byte", t, func() {
		// The top 4 bits agree (0xA_), the bottom 4 differ; only the top
		// 4 bits of the final byte are part of a 4-bit key.
		a := []byte{0xA0}
		b := []byte{0xAF}

		So(patricia.EquKey(a, 4, b, 4), ShouldBeTrue)
		So(patricia.EquKey(a, 8, b, 8), ShouldBeFalse)
	})
}
