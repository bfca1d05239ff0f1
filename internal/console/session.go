package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/pricing"
	"github.com/nikolayk812/checkout-demo/internal/render"
	"github.com/nikolayk812/checkout-demo/internal/shop"
)

// Session is one interactive shopper reading menu choices from in and
// writing screens to out.
type Session struct {
	svc     *shop.Service
	ownerID string
	in      *bufio.Reader
	out     io.Writer
	logger  zerolog.Logger

	// werr is the first error writing to out; once set nothing more is written.
	werr error
}

func NewSession(svc *shop.Service, ownerID string, in io.Reader, out io.Writer, logger zerolog.Logger) *Session {
	return &Session{
		svc:     svc,
		ownerID: ownerID,
		in:      bufio.NewReader(in),
		out:     out,
		logger:  logger,
	}
}

// Run loops over the main menu until the shopper exits or input ends.
// Reaching the end of input is a normal exit.
func (s *Session) Run(ctx context.Context) error {
	s.say("Welcome to Console E-Commerce App (Mini Project)")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMainMenu()
		choice, err := s.readInt("Choose an option: ")
		if err != nil {
			return s.finish(err)
		}

		switch choice {
		case 1:
			err = s.showCatalog(ctx)
		case 2:
			err = s.addToCart(ctx)
		case 3:
			err = s.removeFromCart(ctx)
		case 4:
			err = s.viewCart(ctx)
		case 5:
			err = s.checkout(ctx)
		case 6:
			err = s.viewHistory(ctx)
		case 0:
			s.say("Exiting — Goodbye!")
			return s.werr
		default:
			s.say("Invalid option. Try again.")
		}

		if err == nil {
			err = s.werr
		}
		if err != nil {
			return s.finish(err)
		}
	}
}

func (s *Session) finish(err error) error {
	if errors.Is(err, io.EOF) {
		s.logger.Debug().Msg("input closed, ending session")
		return nil
	}
	return err
}

func (s *Session) printMainMenu() {
	s.say("")
	s.say("--- MAIN MENU ---")
	s.say("1. Show catalog")
	s.say("2. Add product to cart")
	s.say("3. Remove product from cart")
	s.say("4. View cart")
	s.say("5. Checkout")
	s.say("6. View order history")
	s.say("0. Exit")
}

func (s *Session) showCatalog(ctx context.Context) error {
	products, err := s.svc.Catalog(ctx)
	if err != nil {
		return fmt.Errorf("svc.Catalog: %w", err)
	}
	return render.Catalog(s.out, products)
}

func (s *Session) addToCart(ctx context.Context) error {
	if err := s.showCatalog(ctx); err != nil {
		return err
	}

	number, err := s.readInt("Enter product number to add to cart (0 to cancel): ")
	if err != nil {
		return err
	}
	if _, err := s.svc.Product(ctx, number); err != nil {
		if errors.Is(err, domain.ErrInvalidSelection) {
			s.say("Cancelled or invalid product number.")
			return nil
		}
		return fmt.Errorf("svc.Product: %w", err)
	}

	quantity, err := s.readInt("Enter quantity: ")
	if err != nil {
		return err
	}

	item, err := s.svc.AddToCart(ctx, s.ownerID, number, quantity)
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		s.say("Quantity must be at least 1.")
		return nil
	case err != nil:
		return fmt.Errorf("svc.AddToCart: %w", err)
	}

	s.say(fmt.Sprintf("Added to cart: %s x%d", item.Product.Name, quantity))
	return nil
}

func (s *Session) removeFromCart(ctx context.Context) error {
	cart, err := s.svc.Cart(ctx, s.ownerID)
	if err != nil {
		return fmt.Errorf("svc.Cart: %w", err)
	}
	if cart.IsEmpty() {
		s.say("Cart is empty.")
		return nil
	}
	if err := render.Cart(s.out, cart); err != nil {
		return err
	}

	position, err := s.readInt("Enter cart item number to remove (0 to cancel): ")
	if err != nil {
		return err
	}

	removed, err := s.svc.RemoveFromCart(ctx, s.ownerID, position)
	switch {
	case errors.Is(err, domain.ErrInvalidSelection):
		s.say("Cancelled or invalid number.")
		return nil
	case errors.Is(err, domain.ErrEmptyCart):
		s.say("Cart is empty.")
		return nil
	case err != nil:
		return fmt.Errorf("svc.RemoveFromCart: %w", err)
	}

	s.say("Removed: " + removed.Product.Name)
	return nil
}

func (s *Session) viewCart(ctx context.Context) error {
	cart, err := s.svc.Cart(ctx, s.ownerID)
	if err != nil {
		return fmt.Errorf("svc.Cart: %w", err)
	}
	return render.Cart(s.out, cart)
}

func (s *Session) checkout(ctx context.Context) error {
	cart, err := s.svc.Cart(ctx, s.ownerID)
	if err != nil {
		return fmt.Errorf("svc.Cart: %w", err)
	}
	if cart.IsEmpty() {
		s.say("Cart is empty. Add products before checkout.")
		return nil
	}

	sel, err := s.readSelection()
	if err != nil {
		return err
	}

	invoice, err := s.svc.Checkout(ctx, s.ownerID, sel)
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		s.say("Cart is empty. Add products before checkout.")
		return nil
	case err != nil:
		return fmt.Errorf("svc.Checkout: %w", err)
	}

	return render.Invoice(s.out, invoice)
}

// readSelection prompts for the checkout policies. Unknown menu numbers fall
// back to the default of each menu.
func (s *Session) readSelection() (pricing.Selection, error) {
	var sel pricing.Selection

	s.say("")
	s.say("Choose discount option:")
	s.say("1) No Discount")
	s.say("2) Festival Discount (10%)")
	s.say("3) Clearance Sale (25%)")
	choice, err := s.readInt("Select option: ")
	if err != nil {
		return sel, err
	}
	sel.Discount = discountChoice(choice)

	s.say("")
	s.say("Choose delivery method:")
	s.say("1) Fast Delivery")
	s.say("2) Normal Delivery")
	s.say("3) Store Pickup")
	choice, err = s.readInt("Select option: ")
	if err != nil {
		return sel, err
	}
	sel.Delivery = deliveryChoice(choice)

	s.say("")
	s.say("Choose payment method:")
	s.say("1) UPI")
	s.say("2) Card")
	s.say("3) NetBanking")
	choice, err = s.readInt("Select option: ")
	if err != nil {
		return sel, err
	}
	sel.Payment = paymentChoice(choice)

	sel.Coupon, err = s.readLine("Enter coupon code (SAVE10 / FLAT200) or press Enter to skip: ")
	if err != nil {
		return sel, err
	}

	return sel, nil
}

func (s *Session) viewHistory(ctx context.Context) error {
	entries, err := s.svc.History(ctx)
	if err != nil {
		return fmt.Errorf("svc.History: %w", err)
	}
	return render.History(s.out, entries)
}

func discountChoice(choice int) domain.Discount {
	switch choice {
	case 2:
		return domain.DiscountFestival
	case 3:
		return domain.DiscountClearance
	default:
		return domain.DiscountNone
	}
}

func deliveryChoice(choice int) domain.Delivery {
	switch choice {
	case 1:
		return domain.DeliveryFast
	case 3:
		return domain.DeliveryStorePickup
	default:
		return domain.DeliveryNormal
	}
}

func paymentChoice(choice int) domain.PaymentMethod {
	switch choice {
	case 2:
		return domain.PaymentCard
	case 3:
		return domain.PaymentNetBanking
	default:
		return domain.PaymentUPI
	}
}

// readInt re-prompts until the line parses as an integer.
func (s *Session) readInt(prompt string) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		s.say("Please enter a valid number.")
	}
}

// readLine returns the next trimmed input line, or io.EOF once input is exhausted.
// Lines are not length limited.
func (s *Session) readLine(prompt string) (string, error) {
	s.write(prompt)
	if s.werr != nil {
		return "", s.werr
	}

	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}

	return strings.TrimSpace(line), nil
}

func (s *Session) say(line string) {
	s.write(line + "\n")
}

func (s *Session) write(text string) {
	if s.werr != nil {
		return
	}
	if _, err := io.WriteString(s.out, text); err != nil {
		s.werr = fmt.Errorf("write output: %w", err)
	}
}
