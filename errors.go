package gocube

import (
	"errors"

	"github.com/SeamusWaldron/gocube_engine/internal/anim"
	"github.com/SeamusWaldron/gocube_engine/internal/ble"
	"github.com/SeamusWaldron/gocube_engine/internal/facelet"
	"github.com/SeamusWaldron/gocube_engine/internal/solver"
	"github.com/SeamusWaldron/gocube_engine/pkg/types"
)

// Sentinel errors for the gocube package.
var (
	// Input errors
	ErrInvalidNotation = types.ErrInvalidNotation
	ErrInvalidFacelets = facelet.ErrInvalidFacelets
	ErrUnmappedColor   = facelet.ErrUnmappedColor

	// State errors
	ErrBusy      = anim.ErrBusy
	ErrAnimating = errors.New("gocube: turn in progress")

	// Solver errors
	ErrNoSolver    = solver.ErrNoSolver
	ErrSolveFailed = facelet.ErrSolveFailed
	ErrNoSolution  = facelet.ErrNoSolution

	// Connection errors
	ErrNotConnected     = ble.ErrNotConnected
	ErrAlreadyConnected = ble.ErrAlreadyConnected
	ErrDeviceNotFound   = ble.ErrDeviceNotFound
)
