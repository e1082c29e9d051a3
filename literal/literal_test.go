package literal

import (
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

const all = Negative | Reals

func TestAccumulate(t *testing.T) {
	type TC struct {
		input  string
		accept Accept
		ok     bool
		n      int
		lit    Literal
		Mark   error
	}

	tcs := []TC{
		{
			input:  "123",
			accept: all,
			ok:     true,
			n:      3,
			lit:    Literal{Mantissa: 123},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "0123",
			accept: all,
			ok:     true,
			n:      4,
			lit:    Literal{Mantissa: 123},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "00.5",
			accept: all,
			ok:     true,
			n:      4,
			lit:    Literal{Mantissa: 5, Twos: -1, Fives: -1, Point: true},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "0.005",
			accept: all,
			ok:     true,
			n:      5,
			lit:    Literal{Mantissa: 5, Twos: -3, Fives: -3, Point: true},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "000",
			accept: all,
			ok:     true,
			n:      3,
			lit:    Literal{},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "0.",
			accept: all,
			ok:     true,
			n:      2,
			lit:    Literal{Point: true},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  ".25",
			accept: all,
			ok:     true,
			n:      3,
			lit:    Literal{Mantissa: 25, Twos: -2, Fives: -2, Point: true},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "12.50",
			accept: all,
			ok:     true,
			n:      5,
			lit:    Literal{Mantissa: 1250, Twos: -2, Fives: -2, Point: true},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  " \t+42",
			accept: all,
			ok:     true,
			n:      5,
			lit:    Literal{Mantissa: 42},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "-5",
			accept: all,
			ok:     true,
			n:      2,
			lit:    Literal{Mantissa: 5, Negative: true},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "-5",
			accept: Reals,
			ok:     false,
			n:      0,
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "1.5e2",
			accept: all,
			ok:     true,
			n:      5,
			lit:    Literal{Mantissa: 15, Twos: 1, Fives: 1, Point: true, Exponent: true},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "1.5E-2",
			accept: all,
			ok:     true,
			n:      6,
			lit:    Literal{Mantissa: 15, Twos: -3, Fives: -3, Point: true, Exponent: true},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "7e+3",
			accept: all,
			ok:     true,
			n:      4,
			lit:    Literal{Mantissa: 7, Twos: 3, Fives: 3, Exponent: true},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "1.5",
			accept: Negative,
			ok:     true,
			n:      1,
			lit:    Literal{Mantissa: 1},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "2e5",
			accept: Negative,
			ok:     true,
			n:      1,
			lit:    Literal{Mantissa: 2},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "1.2.3",
			accept: all,
			ok:     true,
			n:      3,
			lit:    Literal{Mantissa: 12, Twos: -1, Fives: -1, Point: true},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "12,34",
			accept: all,
			ok:     true,
			n:      2,
			lit:    Literal{Mantissa: 12},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "4294967295",
			accept: all,
			ok:     true,
			n:      10,
			lit:    Literal{Mantissa: 4294967295},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "4294967296",
			accept: all,
			ok:     true,
			n:      10,
			lit:    Literal{Mantissa: 2147483648, Twos: 1},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "123456789012345",
			accept: all,
			ok:     true,
			n:      15,
			lit:    Literal{Mantissa: 2469135781, Twos: 4, Fives: 5},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "9999999999",
			accept: all,
			ok:     true,
			n:      10,
			lit:    Literal{Mantissa: 2000000000, Fives: 1},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "0.12345678901234",
			accept: all,
			ok:     true,
			n:      16,
			lit:    Literal{Mantissa: 2469135781, Twos: -11, Fives: -10, Point: true},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "123456789012.5",
			accept: all,
			ok:     true,
			n:      14,
			lit:    Literal{Mantissa: 2469135781, Twos: 1, Fives: 2, Point: true},
			Mark:   oops.New("unexpected"),
		},
		{input: ".", accept: all, ok: false, n: 1, Mark: oops.New("unexpected")},
		{input: "", accept: all, ok: false, n: 0, Mark: oops.New("unexpected")},
		{input: "e5", accept: all, ok: false, n: 0, Mark: oops.New("unexpected")},
		{input: "1e", accept: all, ok: false, n: 2, Mark: oops.New("unexpected")},
		{input: "1e+", accept: all, ok: false, n: 3, Mark: oops.New("unexpected")},
		{input: "+", accept: all, ok: false, n: 1, Mark: oops.New("unexpected")},
		{input: "-.", accept: all, ok: false, n: 2, Mark: oops.New("unexpected")},
		{input: ".5", accept: Negative, ok: false, n: 0, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.input), func(t *testing.T) {
			lit, n, ok := Parse(tc.input, tc.accept)
			require.Equal(t, tc.ok, ok, tc.Mark)
			require.Equal(t, tc.n, n, tc.Mark)

			if !tc.ok {
				return
			}

			require.Equal(t, tc.lit, lit, "%v\n%s", tc.Mark, spew.Sdump(lit))

			diff := lit.Twos - lit.Fives
			require.True(t, diff >= -1 && diff <= 1, spew.Sdump(lit))
		})
	}
}

func TestAccumulateLast(t *testing.T) {
	input := "  -17.25;rest"
	i := 0
	next := func() byte {
		i++
		return input[i]
	}

	var lit Literal
	last, ok := lit.Accumulate(input[0], all, next)
	require.True(t, ok)
	require.Equal(t, byte(';'), last)
	require.Equal(t, 8, i)
	require.Equal(t, float32(-17.25), lit.Float32())
}

func TestAccumulateResets(t *testing.T) {
	lit, _, ok := Parse("-1.5e3", all)
	require.True(t, ok)

	_, ok = lit.Accumulate('7', all, func() byte { return 0 })
	require.True(t, ok)
	require.Equal(t, Literal{Mantissa: 7}, lit, spew.Sdump(lit))
}

func TestAccumulateUnbounded(t *testing.T) {
	// A long run of digits must neither wrap the mantissa nor stop early.
	const digits = 10000

	count := 0
	next := func() byte {
		count++
		if count < digits {
			return '9'
		}

		return 0
	}

	var lit Literal
	_, ok := lit.Accumulate('9', all, next)
	require.True(t, ok)
	require.Equal(t, uint32(2000000000), lit.Mantissa)
	require.Equal(t, digits-10, lit.Twos)
	require.Equal(t, digits-9, lit.Fives)
}

func TestAccumulateAllocs(t *testing.T) {
	var lit Literal

	allocs := testing.AllocsPerRun(100, func() {
		lit, _, _ = Parse("-12345.678e-3", all)
		_ = lit.Float32()
	})
	require.Equal(t, float64(0), allocs)
}

func BenchmarkParse(b *testing.B) {
	inputs := []string{
		"42",
		"-17.25",
		"1.5e-2",
		"123456789012345",
	}

	for n := 0; n < b.N; n++ {
		lit, _, ok := Parse(inputs[n%len(inputs)], all)
		if !ok {
			b.Fatalf("failed: %q", inputs[n%len(inputs)])
		}

		_ = lit.Float32()
	}
}
