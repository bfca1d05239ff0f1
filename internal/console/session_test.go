package console_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/nikolayk812/checkout-demo/internal/console"
	"github.com/nikolayk812/checkout-demo/internal/pricing"
	"github.com/nikolayk812/checkout-demo/internal/repository"
	"github.com/nikolayk812/checkout-demo/internal/shop"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func newSession(t *testing.T, input string) (*console.Session, *bytes.Buffer, *shop.Service) {
	t.Helper()

	var out bytes.Buffer
	session, svc := newSessionWriter(t, input, &out)
	return session, &out, svc
}

func newSessionWriter(t *testing.T, input string, out io.Writer) (*console.Session, *shop.Service) {
	t.Helper()

	products, err := repository.SeedProducts(currency.INR)
	require.NoError(t, err)

	svc := shop.New(
		repository.NewCatalog(products),
		repository.NewCart(),
		repository.NewHistory(),
		pricing.NewSequence(0),
		nil,
		zerolog.Nop(),
	)

	return console.NewSession(svc, "guest", strings.NewReader(input), out, zerolog.Nop()), svc
}

func lines(in ...string) string {
	return strings.Join(in, "\n") + "\n"
}

func TestRunExit(t *testing.T) {
	session, out, _ := newSession(t, lines("0"))

	require.NoError(t, session.Run(t.Context()))

	assert.Contains(t, out.String(), "Welcome to Console E-Commerce App (Mini Project)")
	assert.Contains(t, out.String(), "--- MAIN MENU ---")
	assert.Contains(t, out.String(), "Exiting — Goodbye!")
}

func TestRunEndOfInputIsCleanExit(t *testing.T) {
	session, out, _ := newSession(t, "")

	require.NoError(t, session.Run(t.Context()))
	assert.NotContains(t, out.String(), "Goodbye")
}

func TestRunCancelledContext(t *testing.T) {
	session, _, _ := newSession(t, lines("1", "0"))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	require.ErrorIs(t, session.Run(ctx), context.Canceled)
}

func TestRunRepromptsOnMalformedNumbers(t *testing.T) {
	session, out, _ := newSession(t, lines("abc", "", "9", "0"))

	require.NoError(t, session.Run(t.Context()))

	assert.Equal(t, 2, strings.Count(out.String(), "Please enter a valid number."))
	assert.Contains(t, out.String(), "Invalid option. Try again.")
}

func TestRunRepromptsOnVeryLongLine(t *testing.T) {
	session, out, _ := newSession(t, lines(strings.Repeat("7", 100*1024), "0"))

	require.NoError(t, session.Run(t.Context()))

	assert.Equal(t, 1, strings.Count(out.String(), "Please enter a valid number."))
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestRunLastLineWithoutNewline(t *testing.T) {
	session, out, _ := newSession(t, "0")

	require.NoError(t, session.Run(t.Context()))
	assert.Contains(t, out.String(), "Goodbye!")
}

var errWriteFailed = errors.New("write failed")

// limitWriter accepts n bytes and fails every write after that.
type limitWriter struct {
	n      int
	failed int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		written := w.n
		w.n = 0
		w.failed++
		return written, errWriteFailed
	}
	w.n -= len(p)
	return len(p), nil
}

func TestRunStopsOnWriteError(t *testing.T) {
	tests := []struct {
		name  string
		limit int
	}{
		{name: "welcome fails", limit: 0},
		{name: "menu fails", limit: 60},
		{name: "catalog fails", limit: 240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &limitWriter{n: tt.limit}
			session, svc := newSessionWriter(t, lines("1", "2", "1", "1", "0"), w)

			require.ErrorIs(t, session.Run(t.Context()), errWriteFailed)
			assert.Equal(t, 1, w.failed)

			cart, err := svc.Cart(t.Context(), "guest")
			require.NoError(t, err)
			assert.True(t, cart.IsEmpty())
		})
	}
}

func TestRunCheckoutFestivalSave10(t *testing.T) {
	session, out, svc := newSession(t, lines(
		"2", "1", "1", // add Laptop x1
		"5", "2", "1", "1", "SAVE10", // checkout: festival, fast, UPI, SAVE10
		"6", // history
		"0",
	))

	require.NoError(t, session.Run(t.Context()))

	text := out.String()
	assert.Contains(t, text, "Added to cart: Laptop x1")
	assert.Contains(t, text, "Order ID: 1\n")
	assert.Contains(t, text, "Total before discount: Rs 53100.00\n")
	assert.Contains(t, text, "Discount applied: Festival Discount (10%)\n")
	assert.Contains(t, text, "Final amount to pay: Rs 43011.00\n")
	assert.Contains(t, text, "UPI payment successful with coupon 'SAVE10'. Paid: Rs 43011.00\n")
	assert.Contains(t, text, "Delivery: Fast Delivery (arrives within 1 day)\n")
	assert.Contains(t, text, "Order ID 1 - Rs 43011.00\n")

	cart, err := svc.Cart(t.Context(), "guest")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestRunCheckoutClearanceFlat200WithDefaults(t *testing.T) {
	session, out, _ := newSession(t, lines(
		"2", "5", "2", // add Rice x2
		"5", "3", "7", "9", "flat200", // clearance, unknown delivery -> normal, unknown payment -> UPI
		"0",
	))

	require.NoError(t, session.Run(t.Context()))

	text := out.String()
	assert.Contains(t, text, "Subtotal: Rs 2400.00\n")
	assert.Contains(t, text, "Total GST: Rs 120.00\n")
	assert.Contains(t, text, "Final amount to pay: Rs 1690.00\n")
	assert.Contains(t, text, "UPI payment successful with coupon 'flat200'. Paid: Rs 1690.00\n")
	assert.Contains(t, text, "Delivery: Normal Delivery (3–4 days)\n")
}

func TestRunCheckoutWithoutCoupon(t *testing.T) {
	session, out, _ := newSession(t, lines(
		"2", "1", "1",
		"5", "1", "2", "2", "",
		"0",
	))

	require.NoError(t, session.Run(t.Context()))

	text := out.String()
	assert.Contains(t, text, "Card payment successful. Paid: Rs 53100.00\n")
	assert.NotContains(t, text, "Discount applied")
}

func TestRunCartEditing(t *testing.T) {
	session, out, svc := newSession(t, lines(
		"3",           // remove from empty cart
		"5",           // checkout empty cart
		"2", "0",      // cancel add
		"2", "4", "0", // zero quantity
		"2", "4", "2", // Jeans x2
		"2", "4", "3", // Jeans x3 merges
		"2", "3", "1", // T-Shirt x1
		"3", "5", // remove out of range
		"3", "2", // remove T-Shirt
		"4", // view cart
		"0",
	))

	require.NoError(t, session.Run(t.Context()))

	text := out.String()
	assert.Contains(t, text, "Cart is empty.\n")
	assert.Contains(t, text, "Cart is empty. Add products before checkout.\n")
	assert.Contains(t, text, "Cancelled or invalid product number.\n")
	assert.Contains(t, text, "Quantity must be at least 1.\n")
	assert.Contains(t, text, "Cancelled or invalid number.\n")
	assert.Contains(t, text, "Removed: T-Shirt\n")
	assert.Contains(t, text, "1) Jeans x5  @ Rs 1499.00 each  Subtotal: Rs 7495.00  GST: Rs 899.40\n")

	cart, err := svc.Cart(t.Context(), "guest")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestRunHistoryEmpty(t *testing.T) {
	session, out, _ := newSession(t, lines("6", "0"))

	require.NoError(t, session.Run(t.Context()))
	assert.Contains(t, out.String(), "No orders placed yet.\n")
}
