//go:build unit

package cart_test

import (
	"fmt"
	"testing"
	"time"

	"rental-cart/internal/domain/cart"
	"rental-cart/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.LineBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewLineBuilder().With(tc.mutate)
			c := cart.NewCart()
			err := c.AddLine(b.BuildInput())
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.True(t, c.IsEmpty(), "rejected line must not be added")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, c.Snapshot().LineCount)
		})
	}
}

func day(d int) cart.Date {
	return cart.NewDate(2024, time.June, d)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertTotalsConsistent(t *testing.T, s cart.State) {
	t.Helper()
	items := 0
	amount := decimal.Zero
	for _, l := range s.Lines {
		items += l.Quantity
		amount = amount.Add(l.Subtotal)
		want := l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity * l.DaysCount)))
		assert.True(t, want.Equal(l.Subtotal), "subtotal of %s: want %s got %s", l.Key(), want, l.Subtotal)
	}
	assert.Equal(t, items, s.TotalItems)
	assert.Equal(t, len(s.Lines), s.LineCount)
	assert.True(t, amount.Equal(s.TotalAmount), "totalAmount: want %s got %s", amount, s.TotalAmount)
}

func TestCart_AddLine(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.AddLine(builder.NewLineBuilder().BuildInput()))

		s := c.Snapshot()
		require.Len(t, s.Lines, 1)
		line := s.Lines[0]
		assert.Equal(t, 3, line.DaysCount)
		assert.True(t, dec("93").Equal(line.Subtotal), "got %s", line.Subtotal)
		assert.Equal(t, 2, s.TotalItems)
		assertTotalsConsistent(t, s)
	})

	t.Run("input validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "quantity 1 is accepted",
				mutate: func(b *builder.LineBuilder) { b.Quantity = 1 },
			},
			{
				name:   "quantity 0 is rejected",
				mutate: func(b *builder.LineBuilder) { b.Quantity = 0 },
				errIs:  cart.ErrInvalidQuantity,
			},
			{
				name:   "negative quantity is rejected",
				mutate: func(b *builder.LineBuilder) { b.Quantity = -3 },
				errIs:  cart.ErrInvalidQuantity,
			},
			{
				name:   "free product is accepted",
				mutate: func(b *builder.LineBuilder) { b.UnitPrice = decimal.Zero },
			},
			{
				name:   "negative price is rejected",
				mutate: func(b *builder.LineBuilder) { b.UnitPrice = dec("-1") },
				errIs:  cart.ErrNegativePrice,
			},
			{
				name:   "single day rental is accepted",
				mutate: func(b *builder.LineBuilder) { b.EndDate = b.StartDate },
			},
			{
				name:   "end before start is rejected",
				mutate: func(b *builder.LineBuilder) { b.EndDate = cart.NewDate(2025, time.March, 9) },
				errIs:  cart.ErrInvalidPeriod,
			},
			{
				name:   "missing start date is rejected",
				mutate: func(b *builder.LineBuilder) { b.StartDate = cart.Date{} },
				errIs:  cart.ErrInvalidDate,
			},
		})
	})

	t.Run("same product and period merges quantities", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.AddLine(builder.NewLineBuilder().With(func(b *builder.LineBuilder) { b.Quantity = 2 }).BuildInput()))
		require.NoError(t, c.AddLine(builder.NewLineBuilder().With(func(b *builder.LineBuilder) { b.Quantity = 3 }).BuildInput()))

		s := c.Snapshot()
		require.Len(t, s.Lines, 1)
		assert.Equal(t, 5, s.Lines[0].Quantity)
		assertTotalsConsistent(t, s)
	})

	t.Run("overlapping but distinct periods stay separate", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.AddLine(builder.NewLineBuilder().BuildInput()))
		require.NoError(t, c.AddLine(builder.NewLineBuilder().With(func(b *builder.LineBuilder) {
			b.EndDate = cart.NewDate(2025, time.March, 13)
		}).BuildInput()))

		s := c.Snapshot()
		assert.Len(t, s.Lines, 2)
		assertTotalsConsistent(t, s)
	})

	t.Run("keys stay unique across many additions", func(t *testing.T) {
		c := cart.NewCart()
		for i := range 30 {
			in := builder.NewLineBuilder().With(func(b *builder.LineBuilder) {
				b.ProductID = int64(i % 4)
				b.EndDate = cart.NewDate(2025, time.March, 10+i%3)
				b.Quantity = 1 + i%2
			}).BuildInput()
			require.NoError(t, c.AddLine(in))
		}

		s := c.Snapshot()
		seen := map[cart.LineKey]bool{}
		for _, l := range s.Lines {
			assert.False(t, seen[l.Key()], "duplicate line %s", l.Key())
			seen[l.Key()] = true
		}
		assert.Len(t, s.Lines, 12)
		assert.Equal(t, 45, s.TotalItems)
		assertTotalsConsistent(t, s)
	})
}

func TestCart_UpdateQuantity(t *testing.T) {
	key := builder.NewLineBuilder().BuildKey()

	for _, q := range []int{0, -1} {
		t.Run(fmt.Sprintf("quantity %d is a no-op", q), func(t *testing.T) {
			c := cart.NewCart()
			require.NoError(t, c.AddLine(builder.NewLineBuilder().BuildInput()))
			before := c.Snapshot()

			changed, err := c.UpdateQuantity(key, q)

			require.ErrorIs(t, err, cart.ErrInvalidQuantity)
			assert.False(t, changed)
			assert.Equal(t, before, c.Snapshot())
		})
	}

	t.Run("recomputes subtotal and totals", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.AddLine(builder.NewLineBuilder().BuildInput()))

		changed, err := c.UpdateQuantity(key, 4)

		require.NoError(t, err)
		assert.True(t, changed)
		s := c.Snapshot()
		assert.Equal(t, 4, s.TotalItems)
		assert.True(t, dec("186").Equal(s.TotalAmount), "got %s", s.TotalAmount)
		assertTotalsConsistent(t, s)
	})

	t.Run("same quantity reports no change", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.AddLine(builder.NewLineBuilder().BuildInput()))

		changed, err := c.UpdateQuantity(key, 2)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("unknown line is ignored", func(t *testing.T) {
		c := cart.NewCart()
		changed, err := c.UpdateQuantity(key, 3)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.True(t, c.IsEmpty())
	})
}

func TestCart_NotesAndClear(t *testing.T) {
	key := builder.NewLineBuilder().BuildKey()

	t.Run("line notes only touch existing lines", func(t *testing.T) {
		c := cart.NewCart()
		assert.False(t, c.UpdateLineNotes(key, "fragile"))

		require.NoError(t, c.AddLine(builder.NewLineBuilder().BuildInput()))
		assert.True(t, c.UpdateLineNotes(key, "fragile"))

		line, ok := c.Line(key)
		require.True(t, ok)
		assert.Equal(t, "fragile", line.Notes)
	})

	t.Run("clear is idempotent and drops customer notes", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.AddLine(builder.NewLineBuilder().BuildInput()))
		c.SetCustomerNotes("deliver before 9am")

		c.Clear()
		once := c.Snapshot()
		c.Clear()
		twice := c.Snapshot()

		assert.Equal(t, once, twice)
		assert.True(t, twice.IsEmpty())
		assert.Zero(t, twice.TotalItems)
		assert.True(t, twice.TotalAmount.IsZero())
		assert.Empty(t, twice.CustomerNotes)
	})

	t.Run("remove submitted keeps what came later", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.AddLine(builder.NewLineBuilder().BuildInput()))
		c.SetCustomerNotes("deliver before 9am")
		submitted := c.Snapshot()

		later := builder.NewLineBuilder().With(func(b *builder.LineBuilder) {
			b.ProductID = 999
			b.Quantity = 1
		})
		require.NoError(t, c.AddLine(later.BuildInput()))
		_, err := c.UpdateQuantity(key, 3)
		require.NoError(t, err)

		assert.True(t, c.RemoveSubmitted(submitted))

		s := c.Snapshot()
		assert.Equal(t, 1, c.QuantityOf(key))
		assert.Equal(t, 1, c.QuantityOf(later.BuildKey()))
		assert.Equal(t, 2, s.LineCount)
		assert.Empty(t, s.CustomerNotes)
		assertTotalsConsistent(t, s)

		assert.True(t, c.RemoveSubmitted(submitted))
		assert.Equal(t, 0, c.QuantityOf(key))
		assert.False(t, c.RemoveSubmitted(submitted))
	})

	t.Run("snapshot does not alias cart lines", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.AddLine(builder.NewLineBuilder().BuildInput()))

		s := c.Snapshot()
		s.Lines[0].Quantity = 99

		assert.Equal(t, 2, c.QuantityOf(key))
	})
}

func TestCart_Scenarios(t *testing.T) {
	p1 := cart.NewLineKey(1, day(1), day(3))
	p2 := cart.NewLineKey(2, day(1), day(1))

	c := cart.NewCart()

	// 1. P1 at 10/day, qty 2, three days
	require.NoError(t, c.AddLine(cart.AddLineInput{
		ProductID: 1, ProductName: "P1", UnitPrice: dec("10"), Quantity: 2, Period: p1.Period,
	}))
	s := c.Snapshot()
	require.Len(t, s.Lines, 1)
	assert.True(t, dec("60").Equal(s.Lines[0].Subtotal))
	assert.True(t, dec("60").Equal(s.TotalAmount))

	// 2. P1 again, same dates, qty 1
	require.NoError(t, c.AddLine(cart.AddLineInput{
		ProductID: 1, ProductName: "P1", UnitPrice: dec("10"), Quantity: 1, Period: p1.Period,
	}))
	s = c.Snapshot()
	require.Len(t, s.Lines, 1)
	assert.Equal(t, 3, s.Lines[0].Quantity)
	assert.True(t, dec("90").Equal(s.Lines[0].Subtotal))
	assert.True(t, dec("90").Equal(s.TotalAmount))

	// 3. P2 at 5/day, qty 1, one day
	require.NoError(t, c.AddLine(cart.AddLineInput{
		ProductID: 2, ProductName: "P2", UnitPrice: dec("5"), Quantity: 1, Period: p2.Period,
	}))
	s = c.Snapshot()
	assert.Len(t, s.Lines, 2)
	assert.Equal(t, 4, s.TotalItems)
	assert.True(t, dec("95").Equal(s.TotalAmount))

	// 4. remove P1
	assert.True(t, c.RemoveLine(p1))
	s = c.Snapshot()
	require.Len(t, s.Lines, 1)
	assert.Equal(t, int64(2), s.Lines[0].ProductID)
	assert.True(t, dec("5").Equal(s.TotalAmount))
	assertTotalsConsistent(t, s)

	assert.False(t, c.RemoveLine(p1), "second removal is a no-op")
}
