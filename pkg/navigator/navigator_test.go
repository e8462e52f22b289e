package navigator

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/einherij/tellopilot/pkg/telemetry"
)

type NavigatorSuite struct {
	suite.Suite
}

func TestNavigatorSuite(t *testing.T) {
	suite.Run(t, new(NavigatorSuite))
}

func (s *NavigatorSuite) TestDeadReckoning() {
	n := NewNavigator(nil)
	start := time.Now()

	n.update(telemetry.State{VelocityX: 5, Height: 80, Yaw: 90}, start)
	s.Equal(0., n.GetPos().Location.X())
	s.Equal(80., n.GetPos().Location.Z())

	n.update(telemetry.State{VelocityX: 5, VelocityY: -2, Height: 100, Yaw: 90}, start.Add(2*time.Second))
	pos := n.GetPos()
	s.InDelta(100., pos.Location.X(), 1e-9)
	s.InDelta(-40., pos.Location.Y(), 1e-9)
	s.Equal(100., pos.Location.Z())
	s.Equal(90., pos.Yaw)
	s.InDelta(0., pos.Rotation.X(), 1e-9)
	s.InDelta(1., pos.Rotation.Y(), 1e-9)
}

func (s *NavigatorSuite) TestRunFollowsStream() {
	states := make(chan telemetry.State, 1)
	n := NewNavigator(states)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go n.Run(ctx)

	states <- telemetry.State{Height: 120}
	s.Eventually(func() bool { return n.GetPos().Location.Z() == 120 }, time.Second, 10*time.Millisecond)
}

func (s *NavigatorSuite) TestRunStopsWhenStreamCloses() {
	states := make(chan telemetry.State)
	done := make(chan struct{})
	go func() {
		NewNavigator(states).Run(context.Background())
		close(done)
	}()
	close(states)
	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("navigator did not stop")
	}
}

func (s *NavigatorSuite) TestGetOBJ() {
	obj := string(Position{Rotation: [3]float64{1, 0, 0}}.GetOBJ())
	s.True(strings.HasPrefix(obj, "mtllib pos.mtl\no Pos\nv 0.000000 0.000000 0.000000\nv 10.000000 0.000000 0.000000\n"))
	s.Equal(4, strings.Count(obj, "\nv "))
}
