package flightlog

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/einherij/tellopilot/pkg/telemetry"
)

type FlightLogSuite struct {
	suite.Suite
	log *Log
	ctx context.Context
}

func TestFlightLogSuite(t *testing.T) {
	suite.Run(t, new(FlightLogSuite))
}

func (s *FlightLogSuite) SetupTest() {
	var err error
	s.log, err = Open(filepath.Join(s.T().TempDir(), "flight.db"))
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func (s *FlightLogSuite) TearDownTest() {
	s.NoError(s.log.Close())
}

func (s *FlightLogSuite) TestRecordAndLast() {
	_, _, err := s.log.Last(s.ctx)
	s.ErrorIs(err, ErrEmpty)

	at := time.Unix(1700000000, 123)
	st := telemetry.State{
		Roll: -3, Pitch: 1, Yaw: 178,
		VelocityX: 5, VelocityY: -2, VelocityZ: 0,
		TempLow: 60, TempHigh: 63,
		TOF: 10, Height: 120, Battery: 77,
		Barometer: 128.5, Time: 42,
		AccelX: -4.5, AccelY: 12, AccelZ: -999.25,
	}
	s.Require().NoError(s.log.Record(s.ctx, at.Add(-time.Second), telemetry.State{Battery: 80}))
	s.Require().NoError(s.log.Record(s.ctx, at, st))

	n, err := s.log.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	gotAt, got, err := s.log.Last(s.ctx)
	s.Require().NoError(err)
	s.True(at.Equal(gotAt))
	s.Equal(st, got)
}

func (s *FlightLogSuite) TestCloseTwice() {
	s.NoError(s.log.Close())
	s.NoError(s.log.Close())
}

type changingState struct {
	mux sync.Mutex
	st  telemetry.State
}

func (c *changingState) State() telemetry.State {
	c.mux.Lock()
	defer c.mux.Unlock()
	return c.st
}

func (c *changingState) set(st telemetry.State) {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.st = st
}

func (s *FlightLogSuite) TestRecorderSkipsUnchanged() {
	src := &changingState{st: telemetry.State{Battery: 90}}
	ctx, cancel := context.WithCancel(s.ctx)
	done := make(chan struct{})
	go func() {
		NewRecorder(s.log, src, 5*time.Millisecond).Run(ctx)
		close(done)
	}()

	count := func() int64 {
		n, err := s.log.Count(s.ctx)
		if err != nil {
			return -1
		}
		return n
	}
	s.Eventually(func() bool { return count() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	s.Equal(int64(1), count())

	src.set(telemetry.State{Battery: 89})
	s.Eventually(func() bool { return count() == 2 }, time.Second, 5*time.Millisecond)

	cancel()
	<-done
	_, last, err := s.log.Last(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint8(89), last.Battery)
}
