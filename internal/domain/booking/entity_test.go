//go:build unit

package booking_test

import (
	"strings"
	"testing"

	"playpark/internal/domain/booking"
	"playpark/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	t.Run("online booking starts pending and unpaid", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, booking.PaymentUnpaid, actual.PaymentStatus())
	})

	t.Run("counter booking starts confirmed", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().AsConfirmed().BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, actual.Status())
	})

	t.Run("rejects nil slot", func(t *testing.T) {
		contact, err := booking.NewContact("Taro", "090-0000-0000")
		require.NoError(t, err)
		partySize, err := booking.NewPartySize(2)
		require.NoError(t, err)

		_, err = booking.NewBooking(uuid.Nil, contact, partySize, booking.NewNotes(""), false)
		assert.Error(t, err)
	})
}

func TestContactValidation(t *testing.T) {
	cases := []struct {
		name    string
		guest   string
		phone   string
		wantErr bool
	}{
		{name: "valid contact", guest: "Taro", phone: "090-1234-5678"},
		{name: "empty name", guest: "", phone: "090-1234-5678", wantErr: true},
		{name: "whitespace name", guest: "   ", phone: "090-1234-5678", wantErr: true},
		{name: "empty phone", guest: "Taro", phone: "", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := booking.NewContact(tc.guest, tc.phone)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPartySizeValidation(t *testing.T) {
	cases := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{name: "minimum", size: 1},
		{name: "maximum", size: 30},
		{name: "zero", size: 0, wantErr: true},
		{name: "negative", size: -1, wantErr: true},
		{name: "over capacity", size: 31, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := booking.NewPartySize(tc.size)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChangeStatus(t *testing.T) {
	t.Run("pending to confirmed", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.ChangeStatus(booking.StatusConfirmed))
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.ChangeStatus(booking.StatusPending))
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("confirmed cannot revert to pending", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().AsConfirmed().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, b.ChangeStatus(booking.StatusPending), booking.ErrInvalidTransition)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, b.ChangeStatus(booking.Status("archived")), booking.ErrInvalidStatus)
	})
}

func TestCancel(t *testing.T) {
	t.Run("cancel releases nothing here but flips status", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		b.Cancel(false, "guest request")
		assert.True(t, b.IsCancelled())
		assert.Contains(t, b.Notes().String(), "guest request")
	})

	t.Run("refund of a paid booking moves payment to refunded", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().AsConfirmed().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.UpdatePayment(booking.PaymentPaid))

		b.Cancel(true, "")
		assert.Equal(t, booking.PaymentRefunded, b.PaymentStatus())
	})

	t.Run("refund of an unpaid booking flags manual follow-up", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		b.Cancel(true, "")
		assert.Equal(t, booking.PaymentUnpaid, b.PaymentStatus())
		assert.Contains(t, b.Notes().String(), "[refund required]")
	})

	t.Run("re-cancel is a no-op", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().AsConfirmed().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.UpdatePayment(booking.PaymentPaid))

		b.Cancel(true, "first")
		notesAfterFirst := b.Notes().String()
		paymentAfterFirst := b.PaymentStatus()

		b.Cancel(true, "second")
		assert.Equal(t, notesAfterFirst, b.Notes().String())
		assert.Equal(t, paymentAfterFirst, b.PaymentStatus())
	})
}

func TestUpdatePayment(t *testing.T) {
	t.Run("accepts the regular provider statuses", func(t *testing.T) {
		for _, next := range []booking.PaymentStatus{
			booking.PaymentPending, booking.PaymentPaid, booking.PaymentFailed, booking.PaymentUnpaid,
		} {
			b, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)
			assert.NoError(t, b.UpdatePayment(next))
			assert.Equal(t, next, b.PaymentStatus())
		}
	})

	t.Run("refunded is only reachable through cancel", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, b.UpdatePayment(booking.PaymentRefunded), booking.ErrInvalidPaymentStatus)
	})

	t.Run("cancelled booking rejects callbacks", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		b.Cancel(false, "")

		assert.ErrorIs(t, b.UpdatePayment(booking.PaymentPaid), booking.ErrBookingCancelled)
	})
}

func TestNotesAppend(t *testing.T) {
	notes := booking.NewNotes("first line")
	notes = notes.Append("second line")
	notes = notes.Append("   ")

	assert.Equal(t, "first line\nsecond line", notes.String())
	assert.Equal(t, 2, len(strings.Split(notes.String(), "\n")))
}

func TestPaymentStatusFromStore(t *testing.T) {
	t.Run("known value passes through", func(t *testing.T) {
		assert.Equal(t, booking.PaymentPaid, booking.PaymentStatusFromStore("paid"))
	})

	t.Run("unknown value folds to unknown instead of failing the read", func(t *testing.T) {
		assert.Equal(t, booking.PaymentUnknown, booking.PaymentStatusFromStore("chargeback"))
	})
}
