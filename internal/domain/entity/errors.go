package entity

import "errors"

var (
	// ErrNoNetworkSelected is returned before any work when every EVM network is disabled.
	ErrNoNetworkSelected = errors.New("no network selected: enable at least one network in the configuration")
	// ErrNoAddresses is returned when the input holds no non-blank line.
	ErrNoAddresses = errors.New("no addresses to check")
	// ErrRunnerFinished is returned when a finished batch runner is started again.
	ErrRunnerFinished = errors.New("batch runner already finished, create a new one")
	// ErrRunnerBusy is returned when a batch runner is started while running.
	ErrRunnerBusy = errors.New("batch runner is already running")
)
