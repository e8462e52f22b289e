package wsclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const reconnectInterval = 5 * time.Second

// Client keeps a websocket open to the handler, reconnecting when it drops.
// Messages queue in small buffers while the link is down.
type Client struct {
	serverURL   string
	sendChan    chan Message
	receiveChan chan Message
}

type MessageType string

const (
	MTUndefined MessageType = ""
	MTState     MessageType = "state"
	MTPos       MessageType = "pos"
	MTRoute     MessageType = "route"
	MTLog       MessageType = "log"
	MTCmd       MessageType = "cmd"
)

type Message struct {
	Type    MessageType
	Content []byte
}

func New(serverURL string) *Client {
	return &Client{
		serverURL:   serverURL,
		sendChan:    make(chan Message, 16),
		receiveChan: make(chan Message, 1),
	}
}

// SendMessage queues a message, dropping it if the queue is full.
func (c *Client) SendMessage(message Message) {
	select {
	case c.sendChan <- message:
	default:
		logrus.WithField("type", message.Type).Debug("websocket send queue full, dropping message")
	}
}

func (c *Client) ReceiveMessage(ctx context.Context) Message {
	select {
	case <-ctx.Done():
		return Message{}
	case msg := <-c.receiveChan:
		return msg
	}
}

func (c *Client) wsURL() string {
	url := "ws" + strings.TrimPrefix(c.serverURL, "http")
	if !strings.HasSuffix(url, "/") {
		url += "/"
	}
	return url + "drone/ws/"
}

func (c *Client) Run(ctx context.Context) {
	logrus.Warnf("started websocket client")
	timer := time.NewTimer(0)
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			logrus.Warnf("stopped websocket client")
			return
		case <-timer.C:
			c.serve(ctx)
			timer.Reset(reconnectInterval)
		}
	}
}

// serve runs one connection until it fails or ctx is done.
func (c *Client) serve(ctx context.Context) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.wsURL(), nil)
	if err != nil {
		logrus.Error(fmt.Errorf("error connecting to server's web socket: %w", err))
		return
	}
	defer func() { _ = conn.Close() }()

	connCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-connCtx.Done()
		_ = conn.Close()
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()
		c.receiveMessages(connCtx, conn)
	}()
	c.sendMessages(connCtx, conn)
	cancel()
	<-done
}

func (c *Client) receiveMessages(ctx context.Context, conn *websocket.Conn) {
	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() == nil {
				logrus.Error(fmt.Errorf("error reading message from web socket: %w", err))
			}
			return
		}
		select {
		case c.receiveChan <- msg:
		case <-ctx.Done():
			return
		case <-time.After(200 * time.Millisecond):
			continue
		}
	}
}

// sendMessages returns when writing fails or ctx is done.
func (c *Client) sendMessages(ctx context.Context, conn *websocket.Conn) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-c.sendChan:
			if err := conn.WriteJSON(msg); err != nil {
				logrus.Error(fmt.Errorf("error writing message to web socket: %w", err))
				return
			}
		}
	}
}
