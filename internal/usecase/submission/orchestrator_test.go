//go:build unit

package submission_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"rental-cart/internal/domain/availability"
	"rental-cart/internal/infra/storage"
	"rental-cart/internal/pkg/clock"
	"rental-cart/internal/pkg/errs"
	"rental-cart/internal/usecase/cartstore"
	"rental-cart/internal/usecase/gatekeeper"
	"rental-cart/internal/usecase/shared"
	"rental-cart/internal/usecase/submission"
	"rental-cart/tests/common/builder"
	"rental-cart/tests/common/testutil"
	sharedmock "rental-cart/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	availability *sharedmock.MockAvailabilityAPI
	reservations *sharedmock.MockReservationAPI
	publisher    *sharedmock.MockSubmissionPublisher
	store        *cartstore.Store
	gate         *gatekeeper.Gatekeeper
	orch         *submission.Orchestrator
}

func setup(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := fixture{
		availability: sharedmock.NewMockAvailabilityAPI(ctrl),
		reservations: sharedmock.NewMockReservationAPI(ctrl),
		publisher:    sharedmock.NewMockSubmissionPublisher(ctrl),
	}
	clk := clock.NewMockClock(now)
	logger := testutil.DiscardLogger()
	f.store = cartstore.New(context.Background(), storage.NewMemory(), "k", logger)
	f.gate = gatekeeper.New(f.availability, f.store, clk, logger)
	f.orch = submission.New(submission.Params{
		Store:     f.store,
		Gate:      f.gate,
		API:       f.reservations,
		Publisher: f.publisher,
		Clock:     clk,
		Logger:    logger,
		SessionID: "session-1",
	})
	return f
}

func (f fixture) seed(t *testing.T, builders ...*builder.LineBuilder) {
	t.Helper()
	for _, b := range builders {
		require.NoError(t, f.store.AddLine(context.Background(), b.BuildInput()))
	}
}

func available(n int) availability.Result {
	return availability.Result{Available: n > 0, AvailableQuantity: n}
}

var receipt = &shared.SubmissionReceipt{ReservationID: 42, Reference: "DEV-2025-0042", Status: "pending"}

func TestParseMode(t *testing.T) {
	cases := []struct {
		in   string
		want submission.Mode
		err  error
	}{
		{in: "", want: submission.ModeQuote},
		{in: "quote", want: submission.ModeQuote},
		{in: "order", want: submission.ModeDirectOrder},
		{in: "ORDER", err: submission.ErrInvalidMode},
	}
	for _, tc := range cases {
		got, err := submission.ParseMode(tc.in)
		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
	assert.False(t, submission.ModeQuote.AutoValidate())
	assert.True(t, submission.ModeDirectOrder.AutoValidate())
}

func TestOrchestrator_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart fails without any network call", func(t *testing.T) {
		f := setup(t)

		_, err := f.orch.Submit(ctx, submission.ModeQuote)

		require.ErrorIs(t, err, errs.ErrEmptyCart)
		assert.True(t, f.store.IsEmpty())
		st := f.orch.Status()
		assert.Equal(t, submission.PhaseIdle, st.Phase)
		assert.ErrorIs(t, st.LastError, errs.ErrEmptyCart)
	})

	t.Run("stale lines are re-checked and shortages listed", func(t *testing.T) {
		f := setup(t)
		p1 := builder.NewLineBuilder()
		p2 := builder.NewLineBuilder().With(func(b *builder.LineBuilder) {
			b.ProductID = 202
			b.ProductName = "Speaker"
			b.Quantity = 3
		})
		f.seed(t, p1, p2)

		q1, _ := availability.NewQuery(p1.BuildKey(), 2)
		q2, _ := availability.NewQuery(p2.BuildKey(), 3)
		f.availability.EXPECT().Check(gomock.Any(), q1).Return(available(10), nil)
		f.availability.EXPECT().Check(gomock.Any(), q2).
			Return(availability.Result{Available: true, AvailableQuantity: 1, Message: "only one left"}, nil)

		_, err := f.orch.Submit(ctx, submission.ModeQuote)

		var availErr *shared.AvailabilityError
		require.ErrorAs(t, err, &availErr)
		require.Len(t, availErr.Shortages, 1)
		s := availErr.Shortages[0]
		assert.Equal(t, p2.BuildKey(), s.Key)
		assert.Equal(t, "Speaker", s.ProductName)
		assert.Equal(t, 3, s.Requested)
		assert.Equal(t, 1, s.AvailableQuantity)
		assert.Equal(t, "only one left", s.Message)
		assert.Equal(t, 5, f.store.TotalItems(), "cart untouched")
	})

	t.Run("check taken after the last mutation is reused", func(t *testing.T) {
		f := setup(t)
		b := builder.NewLineBuilder()
		f.seed(t, b)
		q, _ := availability.NewQuery(b.BuildKey(), 2)
		f.availability.EXPECT().Check(gomock.Any(), q).Return(available(2), nil).Times(1)
		_, err := f.gate.CheckAvailability(ctx, q)
		require.NoError(t, err)

		f.reservations.EXPECT().SubmitDevis(gomock.Any(), gomock.Any()).Return(receipt, nil)
		f.publisher.EXPECT().PublishSubmitted(gomock.Any(), gomock.Any()).Return(nil)

		_, err = f.orch.Submit(ctx, submission.ModeQuote)
		require.NoError(t, err)
	})

	t.Run("check older than a quantity edit is not trusted", func(t *testing.T) {
		f := setup(t)
		b := builder.NewLineBuilder()
		f.seed(t, b)
		q2, _ := availability.NewQuery(b.BuildKey(), 2)
		f.availability.EXPECT().Check(gomock.Any(), q2).Return(available(2), nil)
		_, err := f.gate.CheckAvailability(ctx, q2)
		require.NoError(t, err)

		_, err = f.store.UpdateQuantity(ctx, b.BuildKey(), 1)
		require.NoError(t, err)
		q1, _ := availability.NewQuery(b.BuildKey(), 1)
		f.availability.EXPECT().Check(gomock.Any(), q1).Return(available(0), nil)

		_, err = f.orch.Submit(ctx, submission.ModeQuote)
		assert.ErrorIs(t, err, errs.ErrAvailability)
	})

	t.Run("network failure during validation keeps the cart", func(t *testing.T) {
		f := setup(t)
		f.seed(t, builder.NewLineBuilder())
		f.availability.EXPECT().Check(gomock.Any(), gomock.Any()).Return(availability.Result{}, errors.New("timeout"))

		_, err := f.orch.Submit(ctx, submission.ModeQuote)

		assert.ErrorIs(t, err, errs.ErrNetwork)
		assert.False(t, f.store.IsEmpty())
	})

	t.Run("cart edited during validation restarts it", func(t *testing.T) {
		f := setup(t)
		b := builder.NewLineBuilder()
		f.seed(t, b)

		first := true
		f.availability.EXPECT().Check(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, q availability.Query) (availability.Result, error) {
				if first {
					first = false
					_, err := f.store.UpdateQuantity(ctx, b.BuildKey(), 3)
					require.NoError(t, err)
				}
				return available(3), nil
			}).Times(2)

		var sent shared.DevisRequest
		f.reservations.EXPECT().SubmitDevis(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req shared.DevisRequest) (*shared.SubmissionReceipt, error) {
				sent = req
				return receipt, nil
			})
		f.publisher.EXPECT().PublishSubmitted(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.orch.Submit(ctx, submission.ModeQuote)
		require.NoError(t, err)
		require.Len(t, sent.Lines, 1)
		assert.Equal(t, 3, sent.Lines[0].Quantity)
	})

	t.Run("a cart that never settles gives up", func(t *testing.T) {
		f := setup(t)
		b := builder.NewLineBuilder()
		f.seed(t, b)

		n := 2
		f.availability.EXPECT().Check(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, q availability.Query) (availability.Result, error) {
				n++
				_, err := f.store.UpdateQuantity(ctx, b.BuildKey(), n)
				require.NoError(t, err)
				return available(100), nil
			}).AnyTimes()

		_, err := f.orch.Submit(ctx, submission.ModeQuote)
		assert.ErrorIs(t, err, errs.ErrCartChanged)
	})
}

func TestOrchestrator_Submit(t *testing.T) {
	ctx := context.Background()

	prepare := func(t *testing.T) (fixture, *builder.LineBuilder) {
		f := setup(t)
		b := builder.NewLineBuilder()
		f.seed(t, b)
		f.store.UpdateLineNotes(ctx, b.BuildKey(), "with cables")
		f.store.SetCustomerNotes(ctx, "deliver to stage door")
		f.availability.EXPECT().Check(gomock.Any(), gomock.Any()).Return(available(5), nil)
		return f, b
	}

	for _, mode := range []submission.Mode{submission.ModeQuote, submission.ModeDirectOrder} {
		t.Run("success clears the cart in mode "+string(mode), func(t *testing.T) {
			f, b := prepare(t)

			var sent shared.DevisRequest
			f.reservations.EXPECT().SubmitDevis(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req shared.DevisRequest) (*shared.SubmissionReceipt, error) {
					sent = req
					return receipt, nil
				})
			var event shared.SubmittedEvent
			f.publisher.EXPECT().PublishSubmitted(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, e shared.SubmittedEvent) error {
					event = e
					return nil
				})

			got, err := f.orch.Submit(ctx, mode)

			require.NoError(t, err)
			assert.Equal(t, receipt, got)

			assert.Equal(t, mode == submission.ModeDirectOrder, sent.AutoValidate)
			assert.Equal(t, "deliver to stage door", sent.CustomerNotes)
			assert.NotEqual(t, uuid.Nil, sent.IdempotencyKey)
			require.Len(t, sent.Lines, 1)
			line := sent.Lines[0]
			assert.Equal(t, b.ProductID, line.ProductID)
			assert.Equal(t, 2, line.Quantity)
			assert.True(t, b.UnitPrice.Equal(line.UnitPrice))
			assert.Equal(t, b.StartDate, line.StartDate)
			assert.Equal(t, b.EndDate, line.EndDate)
			assert.Equal(t, "with cables", line.Notes)

			assert.True(t, f.store.IsEmpty())
			assert.Empty(t, f.store.CustomerNotes())
			_, ok := f.gate.Latest(b.BuildKey())
			assert.False(t, ok)

			assert.Equal(t, "session-1", event.SessionID)
			assert.Equal(t, int64(42), event.ReservationID)
			assert.Equal(t, 2, event.TotalItems)
			assert.Equal(t, now, event.SubmittedAt)

			st := f.orch.Status()
			assert.Equal(t, submission.PhaseSucceeded, st.Phase)
			assert.NoError(t, st.LastError)
			assert.Equal(t, receipt, st.LastReceipt)
		})
	}

	t.Run("line added during the backend call survives success", func(t *testing.T) {
		f, b := prepare(t)
		late := builder.NewLineBuilder().With(func(lb *builder.LineBuilder) {
			lb.ProductID = 999
			lb.Quantity = 1
		})

		var sent shared.DevisRequest
		f.reservations.EXPECT().SubmitDevis(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, req shared.DevisRequest) (*shared.SubmissionReceipt, error) {
				sent = req
				require.NoError(t, f.store.AddLine(ctx, late.BuildInput()))
				return receipt, nil
			})
		f.publisher.EXPECT().PublishSubmitted(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.orch.Submit(ctx, submission.ModeQuote)

		require.NoError(t, err)
		require.Len(t, sent.Lines, 1)
		lines := f.store.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, int64(999), lines[0].ProductID)
		assert.Equal(t, 1, f.store.TotalItems())
		assert.Empty(t, f.store.CustomerNotes())
		_, ok := f.gate.Latest(b.BuildKey())
		assert.False(t, ok)
		assert.Equal(t, submission.PhaseSucceeded, f.orch.Phase())
	})

	t.Run("backend rejection is surfaced verbatim and keeps the cart", func(t *testing.T) {
		f, _ := prepare(t)
		f.reservations.EXPECT().SubmitDevis(gomock.Any(), gomock.Any()).
			Return(nil, &shared.ValidationError{StatusCode: 422, Message: "insufficient stock"})

		_, err := f.orch.Submit(ctx, submission.ModeQuote)

		require.ErrorIs(t, err, errs.ErrBackendValidation)
		assert.Equal(t, "insufficient stock", err.Error())
		assert.Equal(t, 2, f.store.TotalItems())
		assert.Equal(t, "deliver to stage door", f.store.CustomerNotes())
		assert.Equal(t, submission.PhaseIdle, f.orch.Phase())
	})

	t.Run("unclassified failures count as network errors", func(t *testing.T) {
		f, _ := prepare(t)
		f.reservations.EXPECT().SubmitDevis(gomock.Any(), gomock.Any()).Return(nil, errors.New("EOF"))

		_, err := f.orch.Submit(ctx, submission.ModeQuote)

		assert.ErrorIs(t, err, errs.ErrNetwork)
		assert.False(t, f.store.IsEmpty())
	})

	t.Run("retry after failure is a fresh attempt", func(t *testing.T) {
		f, _ := prepare(t)
		gomock.InOrder(
			f.reservations.EXPECT().SubmitDevis(gomock.Any(), gomock.Any()).Return(nil, &shared.NetworkError{Op: "submit devis", Err: context.DeadlineExceeded}),
			f.reservations.EXPECT().SubmitDevis(gomock.Any(), gomock.Any()).Return(receipt, nil),
		)
		f.availability.EXPECT().Check(gomock.Any(), gomock.Any()).Return(available(5), nil).AnyTimes()
		f.publisher.EXPECT().PublishSubmitted(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.orch.Submit(ctx, submission.ModeQuote)
		require.Error(t, err)
		_, err = f.orch.Submit(ctx, submission.ModeQuote)
		require.NoError(t, err)
		assert.True(t, f.store.IsEmpty())
	})

	t.Run("publisher failure does not fail the submission", func(t *testing.T) {
		f, _ := prepare(t)
		f.reservations.EXPECT().SubmitDevis(gomock.Any(), gomock.Any()).Return(receipt, nil)
		f.publisher.EXPECT().PublishSubmitted(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		_, err := f.orch.Submit(ctx, submission.ModeQuote)
		require.NoError(t, err)
		assert.True(t, f.store.IsEmpty())
	})

	t.Run("concurrent submit is rejected while one is in flight", func(t *testing.T) {
		f, _ := prepare(t)
		entered := make(chan struct{})
		release := make(chan struct{})
		f.reservations.EXPECT().SubmitDevis(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, shared.DevisRequest) (*shared.SubmissionReceipt, error) {
				close(entered)
				<-release
				return receipt, nil
			})
		f.publisher.EXPECT().PublishSubmitted(gomock.Any(), gomock.Any()).Return(nil)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.orch.Submit(ctx, submission.ModeQuote)
			assert.NoError(t, err)
		}()

		<-entered
		assert.Equal(t, submission.PhaseSubmitting, f.orch.Phase())
		_, err := f.orch.Submit(ctx, submission.ModeDirectOrder)
		assert.ErrorIs(t, err, errs.ErrSubmissionInProgress)

		close(release)
		wg.Wait()
		assert.Equal(t, submission.PhaseSucceeded, f.orch.Phase())
	})
}
