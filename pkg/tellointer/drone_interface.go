package tellointer

import (
	"context"

	"github.com/einherij/tellopilot/pkg/telemetry"
)

//go:generate mockgen -source=drone_interface.go -destination=mock_drone.go -package=tellointer

// Drone is what the controller flies. catalog.Catalog implements it.
type Drone interface {
	State() telemetry.State

	TakeOff(ctx context.Context) (string, error)
	Land(ctx context.Context) (string, error)
	Emergency(ctx context.Context) (string, error)
	RC(ctx context.Context, leftRight, forwardBackward, upDown, yaw int8) (string, error)
	Go(ctx context.Context, x, y, z int16, speed uint8) (string, error)
}
