package main

import (
	"errors"
	"sync"

	"github.com/Marcel-MD/pos/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// server keeps one ordering session per table. Session operations are
// instant, so a single lock over the registry is enough.
type server struct {
	catalog  domain.Catalog
	orderLog *domain.OrderLog
	notifier domain.Notifier

	mu       sync.Mutex
	sessions map[string]*domain.Session
}

func newServer(catalog domain.Catalog, orderLog *domain.OrderLog, notifier domain.Notifier) *server {
	return &server{
		catalog:  catalog,
		orderLog: orderLog,
		notifier: notifier,
		sessions: make(map[string]*domain.Session),
	}
}

func (s *server) session(table string) *domain.Session {
	session, ok := s.sessions[table]
	if !ok {
		session = domain.NewSession(s.catalog, s.orderLog, s.notifier)
		session.SetTableInfo(table, "", "")
		s.sessions[table] = session
	}

	return session
}

func (s *server) getMenu(c *gin.Context) {
	c.JSON(200, gin.H{"items": s.catalog.Items})
}

func (s *server) getCart(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.session(c.Param("table")).Cart()
	c.JSON(200, gin.H{"cart": cart, "total": cart.Total()})
}

func (s *server) addItem(c *gin.Context) {
	var body struct {
		Id string `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Err(err).Msg("Error binding JSON")
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session(c.Param("table")).AddItem(body.Id); err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"message": "Item added"})
}

func (s *server) changeQuantity(c *gin.Context) {
	var body struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Err(err).Msg("Error binding JSON")
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session(c.Param("table")).ChangeQuantity(c.Param("id"), body.Delta); err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"message": "Quantity changed"})
}

func (s *server) removeItem(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session(c.Param("table")).RemoveItem(c.Param("id"))
	c.JSON(200, gin.H{"message": "Item removed"})
}

func (s *server) setTableInfo(c *gin.Context) {
	var body struct {
		TableResponsible string `json:"table_responsible"`
		Seller           string `json:"seller"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Err(err).Msg("Error binding JSON")
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	table := c.Param("table")
	s.session(table).SetTableInfo(table, body.TableResponsible, body.Seller)
	c.JSON(200, gin.H{"message": "Table info updated"})
}

func (s *server) submit(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.session(c.Param("table")).Submit()
	switch {
	case err == nil:
		c.JSON(200, gin.H{"message": "Order received"})
	case errors.Is(err, domain.ErrMissingSessionInfo), errors.Is(err, domain.ErrEmptyCart):
		c.JSON(400, gin.H{"error": err.Error()})
	default:
		c.JSON(500, gin.H{"error": err.Error()})
	}
}

func (s *server) allOrders(c *gin.Context) {
	c.JSON(200, gin.H{"orders": s.orderLog.Orders()})
}

func (s *server) pendingOrders(c *gin.Context) {
	c.JSON(200, gin.H{"orders": s.orderLog.Pending()})
}
