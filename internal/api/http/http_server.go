package http

import (
	"fmt"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/olyamironova/limit-order-book/internal/api/dto"
	"github.com/olyamironova/limit-order-book/internal/domain"
	"github.com/olyamironova/limit-order-book/internal/feed"
	"github.com/olyamironova/limit-order-book/internal/metrics"
	"github.com/olyamironova/limit-order-book/internal/middleware"
	"github.com/olyamironova/limit-order-book/internal/port"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

type HTTPServer struct {
	book  port.OrderBook
	clock port.Clock
	feed  *feed.Broadcaster
	log   *zap.Logger
}

func NewHTTPServer(book port.OrderBook, clock port.Clock, fd *feed.Broadcaster, log *zap.Logger) *HTTPServer {
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTPServer{book: book, clock: clock, feed: fd, log: log}
}

func (s *HTTPServer) Router() *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(ginzap.Ginzap(s.log, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(s.log, true))

	r.POST("/place_order", s.placeOrder)
	r.GET("/best_buy", s.bestBuy)
	r.GET("/best_sell", s.bestSell)
	r.GET("/ws/trades", s.tradeFeed)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	return r
}

func (s *HTTPServer) Run(addr string) error {
	return s.Router().Run(addr)
}

func (s *HTTPServer) placeOrder(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	side, err := parseSide(req.Side)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o := domain.Order{
		ID:        req.ID,
		Side:      side,
		Price:     req.Price,
		Quantity:  req.Quantity,
		Timestamp: s.clock.Now(),
	}

	trades := s.book.PlaceOrder(o)

	metrics.OrdersPlaced.Inc()
	for _, t := range trades {
		metrics.TradesExecuted.Inc()
		metrics.QuantityFilled.Add(float64(t.Quantity))
		s.feed.Publish(t)
	}

	c.JSON(http.StatusOK, convertTrades(trades))
}

func (s *HTTPServer) bestBuy(c *gin.Context) {
	renderBest(c, s.book.BestBuy())
}

func (s *HTTPServer) bestSell(c *gin.Context) {
	renderBest(c, s.book.BestSell())
}

// tradeFeed streams every trade executed after the connection was
// established. Subscription happens before the upgrade so a client
// that has seen the handshake complete cannot miss trades.
func (s *HTTPServer) tradeFeed(c *gin.Context) {
	sub := s.feed.Subscribe()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.feed.Unsubscribe(sub)
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer s.feed.Unsubscribe(sub)
	defer conn.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case t := <-sub.C:
			if err := conn.WriteJSON(convertTrade(t)); err != nil {
				return
			}
		}
	}
}

// renderBest serializes an absent level as JSON null, so clients can
// distinguish "no orders" from a zero-valued level.
func renderBest(c *gin.Context, best *domain.BestOrder) {
	if best == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, dto.BestOrder{
		Price:         best.Price,
		TotalQuantity: best.TotalQuantity,
	})
}

func parseSide(s string) (domain.Side, error) {
	switch domain.Side(s) {
	case domain.Buy, domain.Sell:
		return domain.Side(s), nil
	}
	return "", fmt.Errorf("invalid side: %q", s)
}

func convertTrade(t domain.Trade) dto.Trade {
	return dto.Trade{
		MakerID:  t.MakerID,
		TakerID:  t.TakerID,
		Price:    t.Price,
		Quantity: t.Quantity,
	}
}

func convertTrades(trades []domain.Trade) []dto.Trade {
	res := make([]dto.Trade, len(trades))
	for i, t := range trades {
		res[i] = convertTrade(t)
	}
	return res
}
