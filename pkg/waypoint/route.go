package waypoint

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/einherij/tellopilot/pkg/vector"
)

// Route is a numbered set of waypoints recorded during a flight, linked in
// the order they were taken. It is stored as a Wavefront OBJ so the handler
// can render it next to the position arrow.
type Route struct {
	mux       sync.RWMutex
	Name      string
	MtlLib    string
	waypoints map[int]*Waypoint
	last      int
}

type Waypoint struct {
	ID       int // assigned by Add
	Position vector.V3D
	Links    []*Waypoint
}

func New(name, mtlLib string) *Route {
	return &Route{
		Name:      name,
		MtlLib:    mtlLib,
		waypoints: make(map[int]*Waypoint),
	}
}

// Add stores a waypoint under the lowest free id.
func (r *Route) Add(position vector.V3D) (id int) {
	r.mux.Lock()
	defer r.mux.Unlock()
	return r.add(position)
}

func (r *Route) add(position vector.V3D) (id int) {
	for id = 1; ; id++ {
		if _, ok := r.waypoints[id]; !ok {
			r.waypoints[id] = &Waypoint{ID: id, Position: position}
			return id
		}
	}
}

// Append adds a waypoint and links it to the previously appended one.
func (r *Route) Append(position vector.V3D) (id int) {
	r.mux.Lock()
	defer r.mux.Unlock()

	id = r.add(position)
	if r.last != 0 {
		r.link(r.last, id)
	}
	r.last = id
	return id
}

func (r *Route) Get(id int) (vector.V3D, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()

	wp, ok := r.waypoints[id]
	if !ok {
		return vector.V3D{}, false
	}
	return wp.Position, true
}

func (r *Route) Len() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.waypoints)
}

func (r *Route) Link(fromID, toID int) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.link(fromID, toID)
}

func (r *Route) link(fromID, toID int) {
	from, ok := r.waypoints[fromID]
	if !ok {
		logrus.Warnf("waypoint %d isn't found", fromID)
		return
	}
	to, ok := r.waypoints[toID]
	if !ok {
		logrus.Warnf("waypoint %d isn't found", toID)
		return
	}
	from.Links = append(from.Links, to)
	to.Links = append(to.Links, from)
}

func Load(path string) (*Route, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer func() { _ = f.Close() }()
	r, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("error reading route: %w", err)
	}
	return r, nil
}

// Read parses the subset of OBJ that Write produces. Malformed lines are
// logged and skipped.
func Read(src io.Reader) (*Route, error) {
	r := New("", "")
	sc := bufio.NewScanner(src)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "o":
			if len(fields) < 2 {
				logrus.Warnf("broken name line")
				continue
			}
			r.Name = fields[1]
		case "mtllib":
			if len(fields) < 2 {
				logrus.Warnf("broken mtllib line")
				continue
			}
			r.MtlLib = fields[1]
		case "v":
			if len(fields) < 4 {
				logrus.Warnf("broken vertex line")
				continue
			}
			var v vector.V3D
			for i := range v {
				f, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					logrus.Warnf("error converting string to float: %q", fields[i+1])
				}
				v[i] = f
			}
			r.Add(v)
		case "l":
			if len(fields) < 3 {
				logrus.Warnf("broken link line")
				continue
			}
			from, errFrom := strconv.Atoi(fields[1])
			to, errTo := strconv.Atoi(fields[2])
			if errFrom != nil || errTo != nil {
				logrus.Warnf("error converting link ids: %q %q", fields[1], fields[2])
				continue
			}
			r.Link(from, to)
		default:
			logrus.Warnf("unknown OBJ statement %q", fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("error reading line: %w", err)
	}
	return r, nil
}

func Save(path string, r *Route) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening file: %w", err)
	}
	defer func() { _ = f.Close() }()
	if err = Write(f, r); err != nil {
		return fmt.Errorf("error writing route: %w", err)
	}
	return nil
}

func Write(dest io.Writer, r *Route) error {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return r.write(dest)
}

func (r *Route) write(dest io.Writer) error {
	if _, err := fmt.Fprintf(dest, "mtllib %s\no %s\n", r.MtlLib, r.Name); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}
	err := r.forEach(func(wp *Waypoint) error {
		if _, err := fmt.Fprintf(dest, "v %f %f %f\n", wp.Position[0], wp.Position[1], wp.Position[2]); err != nil {
			return fmt.Errorf("error writing vertex: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	type key struct {
		from int
		to   int
	}
	linked := make(map[key]struct{})
	return r.forEach(func(wp *Waypoint) error {
		for _, next := range wp.Links {
			from, to := wp.ID, next.ID
			if from > to {
				from, to = to, from
			}
			k := key{from: from, to: to}
			if _, ok := linked[k]; ok {
				continue
			}
			linked[k] = struct{}{}
			if _, err := fmt.Fprintf(dest, "l %d %d\n", from, to); err != nil {
				return fmt.Errorf("error writing link: %w", err)
			}
		}
		return nil
	})
}

// forEach walks waypoints by ascending id, which keeps OBJ vertex indices
// equal to waypoint ids.
func (r *Route) forEach(f func(wp *Waypoint) error) error {
	for i := 1; i <= len(r.waypoints); i++ {
		wp, ok := r.waypoints[i]
		if !ok {
			break
		}
		if err := f(wp); err != nil {
			return err
		}
	}
	return nil
}

func (r *Route) GetOBJ() []byte {
	r.mux.RLock()
	defer r.mux.RUnlock()

	var buf bytes.Buffer
	_ = r.write(&buf)
	return buf.Bytes()
}
