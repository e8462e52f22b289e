package catalog

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/einherij/tellopilot/pkg/telemetry"
)

type CatalogSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	core *MockCore
	cat  *Catalog
	ctx  context.Context
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogSuite))
}

func (s *CatalogSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.core = NewMockCore(s.ctrl)
	s.cat = New(s.core)
	s.ctx = context.Background()
}

func (s *CatalogSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CatalogSuite) expect(command string, awaitAck bool) {
	s.core.EXPECT().Issue(s.ctx, command, awaitAck).Return("ok", nil)
}

func (s *CatalogSuite) TestWireForms() {
	calls := []struct {
		command  string
		awaitAck bool
		call     func() (string, error)
	}{
		{"command", true, func() (string, error) { return s.cat.Command(s.ctx) }},
		{"takeoff", false, func() (string, error) { return s.cat.TakeOff(s.ctx) }},
		{"land", true, func() (string, error) { return s.cat.Land(s.ctx) }},
		{"streamon", true, func() (string, error) { return s.cat.StreamOn(s.ctx) }},
		{"streamoff", true, func() (string, error) { return s.cat.StreamOff(s.ctx) }},
		{"emergency", false, func() (string, error) { return s.cat.Emergency(s.ctx) }},
		{"up 20", true, func() (string, error) { return s.cat.Up(s.ctx, 20) }},
		{"down 30", true, func() (string, error) { return s.cat.Down(s.ctx, 30) }},
		{"left 40", true, func() (string, error) { return s.cat.Left(s.ctx, 40) }},
		{"right 50", true, func() (string, error) { return s.cat.Right(s.ctx, 50) }},
		{"forward 60", true, func() (string, error) { return s.cat.Forward(s.ctx, 60) }},
		{"back 70", true, func() (string, error) { return s.cat.Back(s.ctx, 70) }},
		{"cw 90", true, func() (string, error) { return s.cat.CW(s.ctx, 90) }},
		{"ccw 180", true, func() (string, error) { return s.cat.CCW(s.ctx, 180) }},
		{"flip b", true, func() (string, error) { return s.cat.Flip(s.ctx, FlipBackward) }},
		{"go -100 50 20 30", true, func() (string, error) { return s.cat.Go(s.ctx, -100, 50, 20, 30) }},
		{"curve 20 20 20 60 40 0 30", true, func() (string, error) { return s.cat.Curve(s.ctx, 20, 20, 20, 60, 40, 0, 30) }},
		{"rc -100 0 50 10", false, func() (string, error) { return s.cat.RC(s.ctx, -100, 0, 50, 10) }},
		{"speed 40", true, func() (string, error) { return s.cat.Speed(s.ctx, 40) }},
		{"hardware?", true, func() (string, error) { return s.cat.Hardware(s.ctx) }},
	}
	for _, c := range calls {
		s.expect(c.command, c.awaitAck)
		resp, err := c.call()
		s.NoError(err, c.command)
		s.Equal("ok", resp, c.command)
	}
}

func (s *CatalogSuite) TestExtensionWireForms() {
	s.core.EXPECT().HasExtendedCapability().Return(true).AnyTimes()
	calls := []struct {
		command string
		call    func() (string, error)
	}{
		{"EXT led 255 0 10", func() (string, error) { return s.cat.LEDColor(s.ctx, 255, 0, 10) }},
		{"EXT led br 2.5 1 2 3", func() (string, error) { return s.cat.LEDPulse(s.ctx, 1, 2, 3, 2.5) }},
		{"EXT led bl 1 1 2 3 4 5 6", func() (string, error) { return s.cat.LEDBlink(s.ctx, 1, 2, 3, 4, 5, 6, 1) }},
		{"EXT mled l r 0.5 hello", func() (string, error) { return s.cat.MatrixScroll(s.ctx, 'l', 'r', "hello", 0.5) }},
		{"EXT mled g rrr0", func() (string, error) { return s.cat.MatrixDisplay(s.ctx, "rrr0") }},
		{"EXT mled s p heart", func() (string, error) { return s.cat.MatrixChar(s.ctx, 'p', "heart") }},
		{"EXT mled sl 200", func() (string, error) { return s.cat.MatrixBrightness(s.ctx, 200) }},
	}
	for _, c := range calls {
		s.expect(c.command, false)
		_, err := c.call()
		s.NoError(err, c.command)
	}
}

func (s *CatalogSuite) TestExtensionNeedsCapability() {
	s.core.EXPECT().HasExtendedCapability().Return(false).Times(3)
	// no Issue expectation: any call fails the test

	_, err := s.cat.LEDColor(s.ctx, 1, 2, 3)
	s.ErrorIs(err, ErrCapabilityUnavailable)
	_, err = s.cat.MatrixDisplay(s.ctx, "r")
	s.ErrorIs(err, ErrCapabilityUnavailable)
	_, err = s.cat.MatrixBrightness(s.ctx, 1)
	s.ErrorIs(err, ErrCapabilityUnavailable)
}

func (s *CatalogSuite) TestState() {
	s.core.EXPECT().State().Return(telemetry.State{Battery: 42})
	s.Equal(uint8(42), s.cat.State().Battery)
}
