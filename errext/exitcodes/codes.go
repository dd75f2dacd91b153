// Package exitcodes contains the constants for the possible patloc process
// exit codes.
package exitcodes

// ExitCode represents a process exit code. Values should stay between 0 and
// 125 so they survive shells and CI runners unmangled.
type ExitCode uint8

const (
	// GenericError is used when nothing more specific applies.
	GenericError ExitCode = 1
	// InvalidConfig covers unreadable or unparsable property files and bad
	// CLI/environment options.
	InvalidConfig ExitCode = 104
	// ResolutionFailed covers resolution-time configuration errors: missing
	// templates, malformed instance suffixes, unknown roles.
	ResolutionFailed ExitCode = 105
)
