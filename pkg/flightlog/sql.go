package flightlog

const (
	initSchemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    recorded_at INTEGER NOT NULL,
    roll        INTEGER NOT NULL,
    pitch       INTEGER NOT NULL,
    yaw         INTEGER NOT NULL,
    vgx         INTEGER NOT NULL,
    vgy         INTEGER NOT NULL,
    vgz         INTEGER NOT NULL,
    templ       INTEGER NOT NULL,
    temph       INTEGER NOT NULL,
    tof         INTEGER NOT NULL,
    h           INTEGER NOT NULL,
    bat         INTEGER NOT NULL,
    baro        REAL    NOT NULL,
    time        INTEGER NOT NULL,
    agx         REAL    NOT NULL,
    agy         REAL    NOT NULL,
    agz         REAL    NOT NULL
);
CREATE INDEX IF NOT EXISTS snapshots_recorded_at ON snapshots (recorded_at);`

	insertSnapshotSQL = `
INSERT INTO snapshots (recorded_at,
                       roll,
                       pitch,
                       yaw,
                       vgx,
                       vgy,
                       vgz,
                       templ,
                       temph,
                       tof,
                       h,
                       bat,
                       baro,
                       time,
                       agx,
                       agy,
                       agz)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	countSnapshotsSQL = `SELECT COUNT(*) FROM snapshots`

	selectLastSnapshotSQL = `
SELECT recorded_at,
       roll,
       pitch,
       yaw,
       vgx,
       vgy,
       vgz,
       templ,
       temph,
       tof,
       h,
       bat,
       baro,
       time,
       agx,
       agy,
       agz
FROM snapshots
ORDER BY id DESC
LIMIT 1`
)
