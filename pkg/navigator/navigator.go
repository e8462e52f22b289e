package navigator

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/einherij/tellopilot/pkg/telemetry"
	"github.com/einherij/tellopilot/pkg/vector"
)

// the SDK reports ground speed in dm/s, positions are kept in cm
const velocityScale = 10.

type Position struct {
	Location vector.V3D
	Rotation vector.V3D
	Yaw      float64
}

// Navigator dead-reckons the drone position from the telemetry stream:
// ground speed is integrated for X/Y, height and yaw are taken as reported.
type Navigator struct {
	states     <-chan telemetry.State
	currentPos atomic.Pointer[Position]
	lastUpdate time.Time
}

func NewNavigator(states <-chan telemetry.State) *Navigator {
	n := &Navigator{
		states: states,
	}
	n.currentPos.Store(&Position{
		Location: vector.V3D{0, 0, 0},
		Rotation: vector.V3D{1, 0, 0},
	})
	return n
}

func (n *Navigator) Run(ctx context.Context) {
	logrus.Warnf("started navigation")
	for {
		select {
		case st, ok := <-n.states:
			if !ok {
				logrus.Warnf("telemetry stream closed, stopped navigation")
				return
			}
			n.update(st, time.Now())
		case <-ctx.Done():
			logrus.Warnf("stopped navigation")
			return
		}
	}
}

func (n *Navigator) update(st telemetry.State, now time.Time) {
	currentPos := *(n.currentPos.Load())
	if !n.lastUpdate.IsZero() {
		dt := now.Sub(n.lastUpdate).Seconds()
		currentPos.Location[vector.X] += float64(st.VelocityX) * velocityScale * dt
		currentPos.Location[vector.Y] += float64(st.VelocityY) * velocityScale * dt
	}
	currentPos.Location[vector.Z] = float64(st.Height)
	currentPos.Yaw = float64(st.Yaw)
	singleVector := vector.V3D{1., 0., 0.}
	currentPos.Rotation = singleVector.RotateZ(currentPos.Yaw)
	n.currentPos.Store(&currentPos)
	n.lastUpdate = now
}

func (n *Navigator) GetPos() Position {
	pos := *(n.currentPos.Load())
	return pos
}

// GetOBJ renders the position as a small arrow for the handler's viewer.
func (p Position) GetOBJ() []byte {
	dirLeft := p.Rotation.RotateZ(-135).Scale(10).Add(p.Location)
	dirRight := p.Rotation.RotateZ(135).Scale(10).Add(p.Location)
	directionLocation := p.Rotation.Scale(10).Add(p.Location)
	return []byte(
		fmt.Sprintf(
			"mtllib pos.mtl\n"+
				"o Pos\n"+
				"v %f %f %f\n"+
				"v %f %f %f\n"+
				"v %f %f %f\n"+
				"v %f %f %f\n"+
				"l 1 2\n"+
				"l 2 3\n"+
				"l 2 4\n"+
				"l 4 1\n"+
				"l 3 1\n"+
				"f 2/1/2 4/1/4 1/1/1 3/1/3\n",
			p.Location[0], p.Location[1], p.Location[2],
			directionLocation[0], directionLocation[1], directionLocation[2],
			dirLeft[0], dirLeft[1], dirLeft[2],
			dirRight[0], dirRight[1], dirRight[2],
		))
}
