package usecase

import (
	"context"
	"sync"
	"time"

	"isp-dashboard/pkg/log"

	"github.com/gorilla/websocket"
)

const sendBuffer = 256

// Connection is one dashboard tab subscribed to its organization's changes.
type Connection struct {
	hub    *Hub
	conn   *websocket.Conn
	orgID  string
	userID string
	// send is closed by the hub on unregister.
	send chan []byte

	pongWait       time.Duration
	pingPeriod     time.Duration
	writeWait      time.Duration
	maxMessageSize int64

	logger    log.Logger
	done      chan struct{}
	closeOnce sync.Once
}

// readPump discards client frames. Dashboards only listen, so reads exist to
// see pongs and disconnects.
func (c *Connection) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.Close()
	}()

	c.conn.SetReadLimit(c.maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
	})

	for {
		if _, _, err := c.conn.NextReader(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				c.logger.Warnf(c.logCtx(), "internal.realtime.usecase.readPump: %v", err)
			}
			return
		}
	}
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(c.pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				c.writeClose(websocket.CloseNormalClosure)
				return
			}
			if err := c.write(websocket.TextMessage, message); err != nil {
				c.logger.Debugf(c.logCtx(), "internal.realtime.usecase.writePump: %v", err)
				c.Close()
				return
			}

		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				c.Close()
				return
			}

		case <-c.done:
			c.writeClose(websocket.CloseGoingAway)
			return
		}
	}
}

func (c *Connection) write(messageType int, data []byte) error {
	if err := c.conn.SetWriteDeadline(time.Now().Add(c.writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(messageType, data)
}

// writeClose says goodbye and drops the socket. The peer may already be gone.
func (c *Connection) writeClose(code int) {
	msg := websocket.FormatCloseMessage(code, "")
	_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(c.writeWait))
	_ = c.conn.Close()
}

func (c *Connection) logCtx() context.Context {
	return log.WithFields(context.Background(), "organization_id", c.orgID, "user_id", c.userID)
}

func (c *Connection) start() {
	go c.writePump()
	go c.readPump()
}

// Close stops both pumps. It is safe to call more than once and from any goroutine.
func (c *Connection) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}
