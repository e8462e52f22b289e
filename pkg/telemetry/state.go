package telemetry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMissingField = errors.New("telemetry: missing field")
	ErrBadValue     = errors.New("telemetry: bad value")
)

// State is one fully parsed telemetry frame.
type State struct {
	Roll      int16   `json:"roll"`  // degrees
	Pitch     int16   `json:"pitch"` // degrees
	Yaw       int16   `json:"yaw"`   // degrees
	VelocityX int16   `json:"vgx"`   // ground speed
	VelocityY int16   `json:"vgy"`   // ground speed
	VelocityZ int16   `json:"vgz"`   // ground speed
	TempLow   uint8   `json:"templ"` // °C
	TempHigh  uint8   `json:"temph"` // °C
	TOF       int16   `json:"tof"`   // time-of-flight distance, cm
	Height    int16   `json:"h"`     // cm
	Battery   uint8   `json:"bat"`   // percent
	Barometer float32 `json:"baro"`  // barometric height, m
	Time      uint16  `json:"time"`  // motor-on time, s
	AccelX    float32 `json:"agx"`   // 0.001g
	AccelY    float32 `json:"agy"`   // 0.001g
	AccelZ    float32 `json:"agz"`   // 0.001g
}

// RequiredKeys lists every key a frame must carry to be accepted.
var RequiredKeys = []string{
	"roll", "pitch", "yaw",
	"vgx", "vgy", "vgz",
	"templ", "temph",
	"tof", "h", "bat", "baro", "time",
	"agx", "agy", "agz",
}

// Fields splits a frame into its key/value pairs. Tokens that are too short
// to hold a pair or have no ':' are skipped; the value is everything after
// the first ':'. Keys and values are taken as sent, without trimming.
func Fields(frame []byte) map[string]string {
	fields := make(map[string]string, len(RequiredKeys))
	for _, token := range strings.Split(strings.TrimSpace(string(frame)), ";") {
		if len(token) <= 1 || !strings.Contains(token, ":") {
			continue
		}
		key, value, _ := strings.Cut(token, ":")
		fields[key] = value
	}
	return fields
}

// Parse builds a State from a raw frame. It fails unless every required key
// is present and parses into its field's type.
func Parse(frame []byte) (State, error) {
	p := parser{fields: Fields(frame)}
	st := State{
		Roll:      p.int16("roll"),
		Pitch:     p.int16("pitch"),
		Yaw:       p.int16("yaw"),
		VelocityX: p.int16("vgx"),
		VelocityY: p.int16("vgy"),
		VelocityZ: p.int16("vgz"),
		TempLow:   p.uint8("templ"),
		TempHigh:  p.uint8("temph"),
		TOF:       p.int16("tof"),
		Height:    p.int16("h"),
		Battery:   p.uint8("bat"),
		Barometer: p.float32("baro"),
		Time:      p.uint16("time"),
		AccelX:    p.float32("agx"),
		AccelY:    p.float32("agy"),
		AccelZ:    p.float32("agz"),
	}
	if p.err != nil {
		return State{}, p.err
	}
	return st, nil
}

// parser keeps the first error and turns every later lookup into a no-op.
type parser struct {
	fields map[string]string
	err    error
}

func (p *parser) raw(key string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	v, ok := p.fields[key]
	if !ok {
		p.err = fmt.Errorf("%w: %q", ErrMissingField, key)
		return "", false
	}
	return v, true
}

func (p *parser) fail(key, value string, err error) {
	p.err = fmt.Errorf("%w: %s=%q: %v", ErrBadValue, key, value, err)
}

func (p *parser) int16(key string) int16 {
	v, ok := p.raw(key)
	if !ok {
		return 0
	}
	i, err := strconv.ParseInt(v, 10, 16)
	if err != nil {
		p.fail(key, v, err)
	}
	return int16(i)
}

func (p *parser) uint8(key string) uint8 {
	v, ok := p.raw(key)
	if !ok {
		return 0
	}
	u, err := strconv.ParseUint(v, 10, 8)
	if err != nil {
		p.fail(key, v, err)
	}
	return uint8(u)
}

func (p *parser) uint16(key string) uint16 {
	v, ok := p.raw(key)
	if !ok {
		return 0
	}
	u, err := strconv.ParseUint(v, 10, 16)
	if err != nil {
		p.fail(key, v, err)
	}
	return uint16(u)
}

func (p *parser) float32(key string) float32 {
	v, ok := p.raw(key)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		p.fail(key, v, err)
	}
	return float32(f)
}
