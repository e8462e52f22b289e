package statesend

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/einherij/tellopilot/pkg/navigator"
	"github.com/einherij/tellopilot/pkg/telemetry"
	"github.com/einherij/tellopilot/pkg/wsclient"
)

const (
	stateInterval = 100 * time.Millisecond
	routeInterval = time.Second
)

type Messenger interface {
	SendMessage(message wsclient.Message)
}

type StateSource interface {
	State() telemetry.State
}

type Positioner interface {
	GetPos() navigator.Position
}

type OBJSource interface {
	GetOBJ() []byte
}

// Sender publishes the telemetry snapshot, the dead-reckoned position and
// the recorded route to the handler.
type Sender struct {
	ws    Messenger
	state StateSource
	nav   Positioner
	route OBJSource
}

func New(ws Messenger, state StateSource, nav Positioner, route OBJSource) *Sender {
	return &Sender{
		ws:    ws,
		state: state,
		nav:   nav,
		route: route,
	}
}

func (s *Sender) Run(ctx context.Context) {
	logrus.Warnf("starting state sender")
	stateTicker := time.NewTicker(stateInterval)
	defer stateTicker.Stop()
	routeTicker := time.NewTicker(routeInterval)
	defer routeTicker.Stop()
	for {
		select {
		case <-stateTicker.C:
			s.sendState()
		case <-routeTicker.C:
			s.ws.SendMessage(wsclient.Message{
				Type:    wsclient.MTRoute,
				Content: s.route.GetOBJ(),
			})
		case <-ctx.Done():
			logrus.Warnf("stopped state sender")
			return
		}
	}
}

func (s *Sender) sendState() {
	content, err := json.Marshal(s.state.State())
	if err != nil {
		logrus.Error(fmt.Errorf("error encoding state: %w", err))
		return
	}
	s.ws.SendMessage(wsclient.Message{
		Type:    wsclient.MTState,
		Content: content,
	})
	s.ws.SendMessage(wsclient.Message{
		Type:    wsclient.MTPos,
		Content: s.nav.GetPos().GetOBJ(),
	})
}
