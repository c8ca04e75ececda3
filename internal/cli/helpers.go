package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/gocube_engine"
	"github.com/SeamusWaldron/gocube_engine/internal/config"
	"github.com/SeamusWaldron/gocube_engine/internal/logging"
	"github.com/SeamusWaldron/gocube_engine/internal/recorder"
	"github.com/SeamusWaldron/gocube_engine/internal/solver"
	"github.com/SeamusWaldron/gocube_engine/internal/storage"
)

// openDB opens the configured database, or the default one.
func openDB() (*storage.DB, error) {
	if cfg.DBPath != "" {
		return storage.Open(cfg.DBPath)
	}
	return storage.OpenDefault()
}

// openLog starts a session log in the configured directory.
func openLog() (*logging.Session, error) {
	dir := cfg.LogDir
	if dir == "" {
		base, err := config.Dir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "logs")
	}
	return logging.New(dir, verbose)
}

// engineRun holds an engine wired to a recording session. Close releases
// everything it opened.
type engineRun struct {
	engine  *gocube.Engine
	session *recorder.Session
	log     *logging.Session
	db      *storage.DB
}

// newEngineRun opens the database and log, starts a session of the given
// source and builds an engine wired to both.
func newEngineRun(source, deviceName string) (*engineRun, error) {
	log, err := openLog()
	if err != nil {
		return nil, err
	}

	db, err := openDB()
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	session := recorder.NewSession(db, log.Logger)
	if _, err := session.Start(source, deviceName); err != nil {
		db.Close()
		log.Close()
		return nil, err
	}

	opts := []gocube.Option{
		gocube.WithSpacing(cfg.Spacing),
		gocube.WithTurnSpeed(cfg.TurnSpeed),
		gocube.WithSolverOptions(cfg.SolverOptions()),
		gocube.WithLogger(log.Logger),
		gocube.WithCommitHook(session.OnCommit),
		gocube.WithSolveHook(func(input string, sol gocube.Solution, err error) {
			if rerr := session.RecordSolve(input, sol, err); rerr != nil {
				log.Warn("record solve", zap.Error(rerr))
			}
		}),
	}

	s, err := cfg.NewSolver()
	switch {
	case err == nil:
		opts = append(opts, gocube.WithSolver(s))
	case !errors.Is(err, solver.ErrNoSolver):
		session.End()
		db.Close()
		log.Close()
		return nil, err
	}

	return &engineRun{
		engine:  gocube.NewEngine(opts...),
		session: session,
		log:     log,
		db:      db,
	}, nil
}

// Close ends the session and releases the database and log.
func (r *engineRun) Close() error {
	err := r.session.End()
	if sf, serr := recorder.NewDefaultStateFile(); serr == nil {
		if serr := sf.SetLastSession(r.session.ID()); serr != nil {
			r.log.Warn("save state", zap.Error(serr))
		}
	}
	r.db.Close()
	r.log.Close()
	return err
}
