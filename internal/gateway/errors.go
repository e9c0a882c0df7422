package gateway

import "errors"

// Enable failure modes. All of them leave the gateway disabled; none are
// retried automatically.
var (
	// ErrPreconditionFailed means the upstream interface has no address,
	// so there is no connectivity to share. Nothing was changed.
	ErrPreconditionFailed = errors.New("upstream interface has no address")

	// ErrInterfaceNotReady means the shared interface did not acquire an
	// address within the retry budget. Mode switch and identity config
	// stay applied; the operator retries or disables.
	ErrInterfaceNotReady = errors.New("shared interface did not acquire an address")

	// ErrUpstreamUnavailable means the upstream lost its address between
	// the precondition check and translation binding.
	ErrUpstreamUnavailable = errors.New("upstream address lost during enable")

	// ErrTranslationBindFailed means the translation capability rejected
	// the binding.
	ErrTranslationBindFailed = errors.New("translation bind failed")

	// ErrModeSwitchFailed means the device rejected the dual-role switch.
	ErrModeSwitchFailed = errors.New("dual-role mode switch failed")
)
