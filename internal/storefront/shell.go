package storefront

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/misoniwath/Omega-coffee-order/internal/cart"
	"github.com/misoniwath/Omega-coffee-order/internal/catalog"
	"github.com/misoniwath/Omega-coffee-order/internal/orders"
)

const help = `commands:
  menu [category]     list products
  add <id>...         add products to the cart
  inc <id> / dec <id> change a quantity by one
  rm <id>             remove a line
  cart                show the cart
  lang en|km|ch       switch language
  pay cash|aba        choose payment method
  paid                "I have paid" (ABA transfer)
  checkout            enter delivery details and send the order
  new                 start a new order after sending
  quit`

// Shell is a line-oriented terminal UI over one Session.
type Shell struct {
	Session *Session
	in      *bufio.Scanner
	out     io.Writer
}

func NewShell(s *Session, in io.Reader, out io.Writer) *Shell {
	return &Shell{Session: s, in: bufio.NewScanner(in), out: out}
}

// Run reads commands until quit or end of input.
func (sh *Shell) Run(ctx context.Context) error {
	sh.printf("%s\n%s\n", sh.Session.T(KeyTitle), help)
	for {
		sh.printf("> ")
		if !sh.in.Scan() {
			return sh.in.Err()
		}
		fields := strings.Fields(sh.in.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}
		sh.exec(ctx, fields[0], fields[1:])
	}
}

func (sh *Shell) exec(ctx context.Context, cmd string, args []string) {
	s := sh.Session
	if s.Status() == StatusSuccess && cmd != "new" && cmd != "lang" && cmd != "help" {
		sh.printf("%s  (new = %s)\n", s.T(KeyOrderSent), s.T(KeyOrderMore))
		return
	}

	switch cmd {
	case "help":
		sh.printf("%s\n", help)
	case "menu":
		sh.menu(args)
	case "add":
		for _, id := range args {
			if err := s.Cart().Add(id); err != nil {
				sh.printf("%s: %v\n", id, err)
			}
		}
		sh.showCart()
	case "inc", "dec", "rm":
		if len(args) != 1 {
			sh.printf("usage: %s <id>\n", cmd)
			return
		}
		var ok bool
		switch cmd {
		case "inc":
			ok = s.Cart().AdjustQuantity(args[0], 1)
		case "dec":
			ok = s.Cart().AdjustQuantity(args[0], -1)
		default:
			ok = s.Cart().Remove(args[0])
		}
		if !ok {
			sh.printf("%s: not in cart\n", args[0])
		}
		sh.showCart()
	case "cart":
		sh.showCart()
	case "lang":
		if len(args) != 1 {
			sh.printf("usage: lang en|km|ch\n")
			return
		}
		l, ok := catalog.ParseLanguage(args[0])
		if !ok {
			sh.printf("unknown language %q\n", args[0])
			return
		}
		s.SetLanguage(l)
		sh.printf("%s\n", s.T(KeyTitle))
	case "pay":
		switch strings.Join(args, " ") {
		case "aba":
			s.SetPaymentMethod(orders.PaymentPaid)
			sh.printf("%s: %s\n", s.T(KeyPaymentMethod), s.T(KeyABATransfer))
		case "cash":
			s.SetPaymentMethod(orders.PaymentOnDelivery)
			sh.printf("%s: %s\n", s.T(KeyPaymentMethod), s.T(KeyCashCOD))
		default:
			sh.printf("usage: pay cash|aba\n")
		}
	case "paid":
		s.ConfirmPaid()
		if s.PaidConfirmed() {
			sh.printf("✓ %s\n", s.T(KeyIHavePaid))
		}
	case "checkout":
		sh.checkout(ctx)
	case "new":
		s.StartNewOrder()
		sh.showCart()
	default:
		sh.printf("unknown command %q, try help\n", cmd)
	}
}

func (sh *Shell) menu(args []string) {
	s := sh.Session
	cat := s.Catalog()
	for _, c := range cat.Categories() {
		if len(args) > 0 && args[0] != c.ID {
			continue
		}
		sh.printf("== %s (%s)\n", c.Name.In(s.Language()), c.ID)
		for _, p := range cat.InCategory(c.ID) {
			sh.printf("  %-5s %-28s $%s\n", p.ID, p.Name.In(s.Language()), p.Price.StringFixed(2))
		}
	}
}

func (sh *Shell) showCart() {
	s := sh.Session
	if s.Cart().IsEmpty() {
		sh.printf("%s\n", s.T(KeyEmptyCart))
		return
	}
	sh.printf("%s:\n", s.T(KeyYourOrder))
	for _, l := range s.Cart().Lines() {
		sh.printLine(l)
	}
	sh.printf("%s: $%s\n", s.T(KeyTotalAmount), s.Cart().Total().StringFixed(2))
}

func (sh *Shell) printLine(l cart.Line) {
	sh.printf("  %-5s %s x%d  $%s\n", l.Product.ID, l.Product.Name.In(sh.Session.Language()), l.Quantity, l.Subtotal().StringFixed(2))
}

func (sh *Shell) checkout(ctx context.Context) {
	s := sh.Session
	if s.Cart().IsEmpty() {
		sh.printf("%s\n", s.T(KeyEmptyCart))
		return
	}

	var form DeliveryForm
	for _, f := range []struct {
		key Key
		dst *string
	}{
		{KeyName, &form.Name},
		{KeyPhone, &form.Phone},
		{KeyLocation, &form.Location},
		{KeyNote, &form.Notes},
	} {
		sh.printf("%s: ", s.T(f.key))
		if !sh.in.Scan() {
			return
		}
		*f.dst = strings.TrimSpace(sh.in.Text())
	}

	sh.printf("%s\n", s.T(KeySending))
	if _, err := s.Checkout(ctx, form); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			sh.printf("%s (%s)\n", s.T(KeyOrderProblem), apiErr.Message)
		} else {
			sh.printf("%s\n", s.T(KeyOrderProblem))
		}
		return
	}
	sh.printf("%s\n%s\n", s.T(KeyOrderSent), s.T(KeyOrderConfirmation))
}

func (sh *Shell) printf(format string, a ...any) {
	fmt.Fprintf(sh.out, format, a...)
}
