package controller

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/einherij/tellopilot/pkg/navigator"
	"github.com/einherij/tellopilot/pkg/tellointer"
	"github.com/einherij/tellopilot/pkg/vector"
	"github.com/einherij/tellopilot/pkg/wsclient"
)

const (
	stickPower int8 = 60

	// go accepts -500..500 cm per axis and refuses moves where every axis
	// is within 20 cm
	maxGoDistance = 500.
	minGoDistance = 20.
	goSpeed       = 50
)

type Messenger interface {
	ReceiveMessage(ctx context.Context) wsclient.Message
	SendMessage(message wsclient.Message)
}

type Positioner interface {
	GetPos() navigator.Position
}

type Route interface {
	Append(position vector.V3D) int
	Get(id int) (vector.V3D, bool)
}

type axis int

const (
	leftRight axis = iota
	forwardBackward
	upDown
	yaw
)

type stick struct {
	axis axis
	sign int8
}

var sticks = map[byte]stick{
	'q': {yaw, -1},
	'e': {yaw, 1},
	'w': {forwardBackward, 1},
	's': {forwardBackward, -1},
	'a': {leftRight, -1},
	'd': {leftRight, 1},
	'r': {upDown, 1},
	'f': {upDown, -1},
}

var stickNames = map[byte]string{
	'q': "Turning Left",
	'e': "Turning Right",
	'w': "Going Forward",
	's': "Going Backward",
	'a': "Going Left",
	'd': "Going Right",
	'r': "Going Up",
	'f': "Going Down",
}

// Controller turns key events from the handler ("D<key>" on press,
// "U<key>" on release) into drone commands and reports each one back.
type Controller struct {
	ws    Messenger
	drone tellointer.Drone
	nav   Positioner
	route Route

	mux   sync.Mutex
	rc    [4]int8
	home  navigator.Position
	homed bool

	flights sync.WaitGroup
}

func New(ws Messenger, drone tellointer.Drone, nav Positioner, route Route) *Controller {
	return &Controller{
		ws:    ws,
		drone: drone,
		nav:   nav,
		route: route,
	}
}

func (h *Controller) Run(ctx context.Context) {
	logrus.Warnf("started drone controller")
	for {
		msg := h.ws.ReceiveMessage(ctx)
		if ctx.Err() != nil {
			h.flights.Wait()
			logrus.Warnf("stopped drone controller")
			return
		}
		if msg.Type != wsclient.MTCmd {
			continue
		}
		info := h.handle(ctx, string(msg.Content))
		h.report("Command " + info)
	}
}

func (h *Controller) handle(ctx context.Context, key string) string {
	if len(key) != 2 || (key[0] != 'D' && key[0] != 'U') {
		return key
	}
	pressed, k := key[0] == 'D', key[1]

	if st, ok := sticks[k]; ok {
		return h.moveStick(ctx, st, pressed, stickNames[k])
	}

	switch key {
	case "Du":
		return h.exec("Take Off", func() (string, error) { return h.drone.TakeOff(ctx) })
	case "Dl":
		h.background("Land", func() (string, error) { return h.drone.Land(ctx) })
		return "Landing"
	case "Dx":
		return h.exec("Emergency", func() (string, error) { return h.drone.Emergency(ctx) })
	case "Uh":
		pos := h.nav.GetPos()
		h.mux.Lock()
		h.home, h.homed = pos, true
		h.mux.Unlock()
		return "Home set"
	case "Un":
		id := h.route.Append(h.nav.GetPos().Location)
		return fmt.Sprintf("Waypoint %d added", id)
	case "U0":
		h.mux.Lock()
		home, homed := h.home, h.homed
		h.mux.Unlock()
		if !homed {
			return "Home not set"
		}
		h.flyTo(ctx, "home", home.Location)
		return "Going home"
	}

	if !pressed && k >= '1' && k <= '9' {
		id, _ := strconv.Atoi(string(k))
		target, ok := h.route.Get(id)
		if !ok {
			return fmt.Sprintf("Waypoint %d not found", id)
		}
		h.flyTo(ctx, fmt.Sprintf("waypoint %d", id), target)
		return fmt.Sprintf("Going to waypoint %d", id)
	}
	return key
}

func (h *Controller) moveStick(ctx context.Context, st stick, pressed bool, name string) string {
	h.mux.Lock()
	info := "Stopped " + name
	if pressed {
		h.rc[st.axis] = st.sign * stickPower
		info = "Started " + name
	} else if h.rc[st.axis] == st.sign*stickPower {
		h.rc[st.axis] = 0
	}
	rc := h.rc
	h.mux.Unlock()

	return h.exec(info, func() (string, error) {
		return h.drone.RC(ctx, rc[leftRight], rc[forwardBackward], rc[upDown], rc[yaw])
	})
}

func (h *Controller) exec(info string, command func() (string, error)) string {
	if _, err := command(); err != nil {
		logrus.Error(fmt.Errorf("error executing %q: %w", info, err))
		return info + " failed: " + err.Error()
	}
	return info
}

// background runs a command that waits for the drone's ack without holding
// up the key loop, and reports its result when done.
func (h *Controller) background(info string, command func() (string, error)) {
	h.flights.Add(1)
	go func() {
		defer h.flights.Done()
		h.report(h.exec(info, command))
	}()
}

// flyTo moves to target with a single go command computed in the body
// frame. It runs in the background since go waits for the drone's ack.
func (h *Controller) flyTo(ctx context.Context, name string, target vector.V3D) {
	pos := h.nav.GetPos()
	delta := target.Sub(pos.Location).RotateZ(-pos.Yaw).Clamp(maxGoDistance)
	if math.Abs(delta.X()) < minGoDistance &&
		math.Abs(delta.Y()) < minGoDistance &&
		math.Abs(delta.Z()) < minGoDistance {
		h.report(fmt.Sprintf("Already at %s", name))
		return
	}

	h.flights.Add(1)
	go func() {
		defer h.flights.Done()
		_, err := h.drone.Go(ctx, int16(delta.X()), int16(delta.Y()), int16(delta.Z()), goSpeed)
		if err != nil {
			logrus.Error(fmt.Errorf("error flying to %s: %w", name, err))
			h.report(fmt.Sprintf("Autoflight to %s failed: %v", name, err))
			return
		}
		h.report(fmt.Sprintf("Autoflight to %s done", name))
	}()
}

func (h *Controller) report(info string) {
	st := h.drone.State()
	h.ws.SendMessage(wsclient.Message{
		Type:    wsclient.MTLog,
		Content: []byte(fmt.Sprintf("%s BatPrc: %d; Height: %d", info, st.Battery, st.Height)),
	})
}
