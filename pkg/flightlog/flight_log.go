package flightlog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/einherij/tellopilot/pkg/telemetry"
)

var ErrEmpty = errors.New("flight log is empty")

// Log is an append-only SQLite table of telemetry snapshots.
type Log struct {
	db *sql.DB

	closeOnce sync.Once
	closeErr  error
}

func Open(path string) (*Log, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?%s", path, "_journal_mode=WAL&_synchronous=NORMAL"))
	if err != nil {
		return nil, fmt.Errorf("opening flight log: %w", err)
	}
	if _, err = db.Exec(initSchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &Log{db: db}, nil
}

func (l *Log) Record(ctx context.Context, at time.Time, st telemetry.State) error {
	_, err := l.db.ExecContext(ctx, insertSnapshotSQL,
		at.UnixNano(),
		st.Roll, st.Pitch, st.Yaw,
		st.VelocityX, st.VelocityY, st.VelocityZ,
		st.TempLow, st.TempHigh,
		st.TOF, st.Height, st.Battery,
		st.Barometer, st.Time,
		st.AccelX, st.AccelY, st.AccelZ,
	)
	if err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}
	return nil
}

func (l *Log) Count(ctx context.Context) (n int64, err error) {
	if err = l.db.QueryRowContext(ctx, countSnapshotsSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting snapshots: %w", err)
	}
	return n, nil
}

// Last returns the most recent snapshot, or ErrEmpty.
func (l *Log) Last(ctx context.Context) (at time.Time, st telemetry.State, err error) {
	var nanos int64
	err = l.db.QueryRowContext(ctx, selectLastSnapshotSQL).Scan(
		&nanos,
		&st.Roll, &st.Pitch, &st.Yaw,
		&st.VelocityX, &st.VelocityY, &st.VelocityZ,
		&st.TempLow, &st.TempHigh,
		&st.TOF, &st.Height, &st.Battery,
		&st.Barometer, &st.Time,
		&st.AccelX, &st.AccelY, &st.AccelZ,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, telemetry.State{}, ErrEmpty
	}
	if err != nil {
		return time.Time{}, telemetry.State{}, fmt.Errorf("scanning snapshot: %w", err)
	}
	return time.Unix(0, nanos), st, nil
}

func (l *Log) Close() error {
	l.closeOnce.Do(func() {
		l.closeErr = l.db.Close()
	})
	return l.closeErr
}
