package domain

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

type SessionState int

const (
	Browsing SessionState = iota
	Submitting
	Submitted
)

// Identity is an optional collaborator that supplies the logged-in actor.
// When present, the actor name is stamped on every order this session submits.
type Identity interface {
	Actor() string
}

// Session drives one ordering cycle for a table: build the cart while
// browsing, validate and snapshot on submit, then start over empty.
type Session struct {
	cart     Cart
	state    SessionState
	catalog  Catalog
	orderLog *OrderLog
	notifier Notifier
	identity Identity
}

func NewSession(catalog Catalog, orderLog *OrderLog, notifier Notifier) *Session {
	return &Session{
		catalog:  catalog,
		orderLog: orderLog,
		notifier: notifier,
	}
}

func (s *Session) WithIdentity(identity Identity) *Session {
	s.identity = identity
	return s
}

func (s *Session) Cart() *Cart {
	return &s.cart
}

func (s *Session) State() SessionState {
	return s.state
}

func (s *Session) AddItem(id string) error {
	item, ok := s.catalog.Find(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}

	s.cart.AddOrIncrement(item)
	s.notifier.Notify(Notification{
		Title:       "Item adicionado",
		Description: fmt.Sprintf("%s - €%s", item.Name, item.Price),
		Severity:    Info,
	})

	return nil
}

func (s *Session) ChangeQuantity(id string, delta int) error {
	item, ok := s.catalog.Find(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}

	s.cart.ChangeQuantity(item, delta)
	return nil
}

func (s *Session) RemoveItem(id string) {
	line, ok := s.cart.RemoveLine(id)
	if !ok {
		return
	}

	s.notifier.Notify(Notification{
		Title:       "Item removido",
		Description: line.Name,
		Severity:    Warning,
	})
}

func (s *Session) SetTableInfo(number, responsible, seller string) {
	s.cart.TableNumber = number
	s.cart.TableResponsible = responsible
	s.cart.Seller = seller
}

// Submit validates the cart and appends it to the order log. On any failure
// the cart is left untouched and the session returns to browsing. On success
// the cart is cleared and the session is ready for the next order.
func (s *Session) Submit() error {
	s.state = Submitting

	if err := Validate(&s.cart); err != nil {
		s.notifier.Notify(validationNotification(err))
		s.state = Browsing
		return err
	}

	var employee string
	if s.identity != nil {
		employee = s.identity.Actor()
	}

	order := NewOrder(&s.cart, employee)
	if err := s.orderLog.Append(order); err != nil {
		s.notifier.Notify(Notification{
			Title:       "Erro ao enviar pedido",
			Description: "Tente novamente",
			Severity:    Error,
		})
		s.state = Browsing
		return err
	}

	s.state = Submitted
	log.Info().Str("order_id", order.Id).Str("table_number", order.TableNumber).Msgf("Order submitted with total €%s", order.Total)

	s.notifier.Notify(Notification{
		Title:       "Pedido enviado",
		Description: fmt.Sprintf("Mesa %s - €%s", order.TableNumber, order.Total),
		Severity:    Info,
	})

	s.cart.Clear()
	s.state = Browsing
	return nil
}

func validationNotification(err error) Notification {
	switch {
	case errors.Is(err, ErrMissingSessionInfo):
		return Notification{
			Title:       "Dados da mesa incompletos",
			Description: "Preencha mesa, responsável e vendedor",
			Severity:    Warning,
		}
	case errors.Is(err, ErrEmptyCart):
		return Notification{
			Title:       "Carrinho vazio",
			Description: "Adicione pelo menos um item ao pedido",
			Severity:    Warning,
		}
	}

	return Notification{Title: "Pedido inválido", Description: err.Error(), Severity: Warning}
}
