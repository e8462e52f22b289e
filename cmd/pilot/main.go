package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/einherij/enterprise"
	"github.com/einherij/enterprise/utils"
	"github.com/sirupsen/logrus"

	"github.com/einherij/tellopilot/pkg/catalog"
	"github.com/einherij/tellopilot/pkg/config"
	"github.com/einherij/tellopilot/pkg/controller"
	"github.com/einherij/tellopilot/pkg/flightlog"
	"github.com/einherij/tellopilot/pkg/navigator"
	"github.com/einherij/tellopilot/pkg/statesend"
	"github.com/einherij/tellopilot/pkg/tello"
	"github.com/einherij/tellopilot/pkg/waypoint"
	"github.com/einherij/tellopilot/pkg/wsclient"
)

const (
	connectTimeout  = 15 * time.Second
	statePeriod     = 100 * time.Millisecond
	batteryPeriod   = 5 * time.Second
	lowBatteryLevel = 15
)

func main() {
	configPath := flag.String("c", os.Getenv("PILOT_CONFIG"), "path to a .yaml or .toml config")
	flag.Parse()

	cfg := utils.Must(config.Load(*configPath))
	logrus.SetLevel(cfg.LogLevel())

	app := enterprise.NewApplication()

	// connect to interface
	wsClient := wsclient.New(cfg.Handler.URL)
	app.RegisterRunner(wsClient)

	// drone
	client := tello.New(cfg.TelloOptions())
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), connectTimeout)
	utils.PanicOnError(client.Connect(connectCtx))
	cancelConnect()
	app.RegisterOnShutdown(func() {
		client.Disconnect()
		logrus.Warnf("drone disconnected")
	})
	logrus.WithField("drone", client.String()).Warnf("drone connected")
	drone := catalog.New(client)

	// position
	streamCtx, stopStream := context.WithCancel(context.Background())
	app.RegisterOnShutdown(stopStream)
	nav := navigator.NewNavigator(client.StreamState(streamCtx, statePeriod))
	app.RegisterRunner(nav)

	// route
	route := loadRoute(cfg.Route.Path)
	if cfg.Route.Path != "" {
		app.RegisterOnShutdown(func() {
			if err := waypoint.Save(cfg.Route.Path, route); err != nil {
				logrus.Error(fmt.Errorf("error saving route: %w", err))
			}
		})
	}

	// flight log
	if cfg.FlightLog.Path != "" {
		flightLog := utils.Must(flightlog.Open(cfg.FlightLog.Path))
		app.RegisterOnShutdown(func() { _ = flightLog.Close() })
		app.RegisterRunner(flightlog.NewRecorder(flightLog, client, cfg.FlightLog.Interval.Std()))
	}

	stateSender := statesend.New(wsClient, client, nav, route)
	app.RegisterRunner(stateSender)

	cmdHandler := controller.New(wsClient, drone, nav, route)
	app.RegisterRunner(cmdHandler)

	app.RegisterRunner(runnerFunc(func(ctx context.Context) {
		batteryWatch(ctx, client, wsClient)
	}))

	app.Run()
}

func loadRoute(path string) *waypoint.Route {
	if path == "" {
		return waypoint.New("Route", "route.mtl")
	}
	route, err := waypoint.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return waypoint.New("Route", "route.mtl")
	}
	utils.PanicOnError(err)
	return route
}

// batteryWatch warns the handler once per period while the battery is low.
func batteryWatch(ctx context.Context, client *tello.Client, wsClient *wsclient.Client) {
	ticker := time.NewTicker(batteryPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !client.IsRunning() {
				continue
			}
			if bat := client.State().Battery; bat < lowBatteryLevel {
				logrus.WithField("battery", bat).Warnf("battery low")
				wsClient.SendMessage(wsclient.Message{
					Type:    wsclient.MTLog,
					Content: []byte(fmt.Sprintf("BatteryLow BatPrc: %d", bat)),
				})
			}
		}
	}
}

// TODO: add runnerFunc to enterprise
type runnerFunc func(ctx context.Context)

func (r runnerFunc) Run(ctx context.Context) {
	r(ctx)
}
