// Package catalog turns drone operations into SDK command strings and sends
// them through a connected core. It holds no state of its own.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/einherij/tellopilot/pkg/telemetry"
)

//go:generate mockgen -source=catalog.go -destination=mock_core_test.go -package=catalog Core

var ErrCapabilityUnavailable = errors.New("RMTT not connected")

// Core is the part of tello.Client the catalog needs.
type Core interface {
	Issue(ctx context.Context, command string, awaitAck bool) (string, error)
	HasExtendedCapability() bool
	State() telemetry.State
}

type Flip byte

const (
	FlipLeft     Flip = 'l'
	FlipRight    Flip = 'r'
	FlipForward  Flip = 'f'
	FlipBackward Flip = 'b'
)

type Catalog struct {
	core Core
}

func New(core Core) *Catalog {
	return &Catalog{core: core}
}

func (c *Catalog) State() telemetry.State {
	return c.core.State()
}

func (c *Catalog) issue(ctx context.Context, awaitAck bool, format string, args ...interface{}) (string, error) {
	return c.core.Issue(ctx, fmt.Sprintf(format, args...), awaitAck)
}

// ext sends an expansion board command, refusing without the board.
func (c *Catalog) ext(ctx context.Context, format string, args ...interface{}) (string, error) {
	if !c.core.HasExtendedCapability() {
		return "", ErrCapabilityUnavailable
	}
	return c.issue(ctx, false, "EXT "+format, args...)
}

// Command enters SDK mode.
func (c *Catalog) Command(ctx context.Context) (string, error) {
	return c.issue(ctx, true, "command")
}

// TakeOff does not wait for the reply: the drone only answers once airborne.
func (c *Catalog) TakeOff(ctx context.Context) (string, error) {
	return c.issue(ctx, false, "takeoff")
}

func (c *Catalog) Land(ctx context.Context) (string, error) {
	return c.issue(ctx, true, "land")
}

func (c *Catalog) StreamOn(ctx context.Context) (string, error) {
	return c.issue(ctx, true, "streamon")
}

func (c *Catalog) StreamOff(ctx context.Context) (string, error) {
	return c.issue(ctx, true, "streamoff")
}

// Emergency stops all motors immediately. It does not wait for the reply, so
// it never queues behind another command's ack.
func (c *Catalog) Emergency(ctx context.Context) (string, error) {
	return c.issue(ctx, false, "emergency")
}

func (c *Catalog) Up(ctx context.Context, cm uint16) (string, error) {
	return c.issue(ctx, true, "up %d", cm)
}

func (c *Catalog) Down(ctx context.Context, cm uint16) (string, error) {
	return c.issue(ctx, true, "down %d", cm)
}

func (c *Catalog) Left(ctx context.Context, cm uint16) (string, error) {
	return c.issue(ctx, true, "left %d", cm)
}

func (c *Catalog) Right(ctx context.Context, cm uint16) (string, error) {
	return c.issue(ctx, true, "right %d", cm)
}

func (c *Catalog) Forward(ctx context.Context, cm uint16) (string, error) {
	return c.issue(ctx, true, "forward %d", cm)
}

func (c *Catalog) Back(ctx context.Context, cm uint16) (string, error) {
	return c.issue(ctx, true, "back %d", cm)
}

func (c *Catalog) CW(ctx context.Context, angle uint16) (string, error) {
	return c.issue(ctx, true, "cw %d", angle)
}

func (c *Catalog) CCW(ctx context.Context, angle uint16) (string, error) {
	return c.issue(ctx, true, "ccw %d", angle)
}

func (c *Catalog) Flip(ctx context.Context, dir Flip) (string, error) {
	return c.issue(ctx, true, "flip %c", dir)
}

// Go flies to a point relative to the drone, in cm, at speed cm/s.
func (c *Catalog) Go(ctx context.Context, x, y, z int16, speed uint8) (string, error) {
	return c.issue(ctx, true, "go %d %d %d %d", x, y, z, speed)
}

// Curve flies an arc through (x1, y1, z1) to (x2, y2, z2).
func (c *Catalog) Curve(ctx context.Context, x1, y1, z1, x2, y2, z2 int16, speed uint8) (string, error) {
	return c.issue(ctx, true, "curve %d %d %d %d %d %d %d", x1, y1, z1, x2, y2, z2, speed)
}

// RC sets the virtual sticks. It never waits for a reply so it can be
// streamed at a high rate.
func (c *Catalog) RC(ctx context.Context, leftRight, forwardBackward, upDown, yaw int8) (string, error) {
	return c.issue(ctx, false, "rc %d %d %d %d", leftRight, forwardBackward, upDown, yaw)
}

func (c *Catalog) Speed(ctx context.Context, cmPerSec uint8) (string, error) {
	return c.issue(ctx, true, "speed %d", cmPerSec)
}

func (c *Catalog) Hardware(ctx context.Context) (string, error) {
	return c.issue(ctx, true, "hardware?")
}

func (c *Catalog) LEDColor(ctx context.Context, r, g, b uint8) (string, error) {
	return c.ext(ctx, "led %d %d %d", r, g, b)
}

// LEDPulse breathes the top LED at rate Hz.
func (c *Catalog) LEDPulse(ctx context.Context, r, g, b uint8, rate float32) (string, error) {
	return c.ext(ctx, "led br %g %d %d %d", rate, r, g, b)
}

// LEDBlink alternates the top LED between two colours at rate Hz.
func (c *Catalog) LEDBlink(ctx context.Context, r1, g1, b1, r2, g2, b2 uint8, rate float32) (string, error) {
	return c.ext(ctx, "led bl %g %d %d %d %d %d %d", rate, r1, g1, b1, r2, g2, b2)
}

// MatrixScroll scrolls text across the dot matrix. dir is one of l, r, u, d
// and color one of r, b, p.
func (c *Catalog) MatrixScroll(ctx context.Context, dir, color byte, text string, rate float32) (string, error) {
	return c.ext(ctx, "mled %c %c %g %s", dir, color, rate, text)
}

// MatrixDisplay draws a 64 character pattern of r, b, p and 0.
func (c *Catalog) MatrixDisplay(ctx context.Context, pattern string) (string, error) {
	return c.ext(ctx, "mled g %s", pattern)
}

func (c *Catalog) MatrixChar(ctx context.Context, color byte, char string) (string, error) {
	return c.ext(ctx, "mled s %c %s", color, char)
}

func (c *Catalog) MatrixBrightness(ctx context.Context, brightness uint8) (string, error) {
	return c.ext(ctx, "mled sl %d", brightness)
}
