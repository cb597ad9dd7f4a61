package kernel

import (
	"os"
	"runtime"
	"strings"
)

// EnvOverride names the environment variable that forces a kernel set.
const EnvOverride = "BITVEC_KERNEL"

// ISA represents an instruction set the kernels can target.
type ISA uint8

const (
	// Generic represents pure Go implementation (no hardware popcount).
	Generic ISA = iota
	// POPCNT represents x86-64 POPCNT.
	POPCNT
	// NEON represents ARM64 ASIMD (CNT on vector registers).
	NEON
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case POPCNT:
		return "popcnt"
	case NEON:
		return "neon"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "popcnt":
		return POPCNT, true
	case "neon":
		return NEON, true
	default:
		return Generic, false
	}
}

// Package-level state, written once during init.
var (
	activeISA   ISA
	hasOverride bool

	// CPU feature flags (set by platform-specific init)
	hasPOPCNT bool // x86-64 POPCNT
	hasASIMD  bool // ARM64 NEON
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv(EnvOverride); override != "" {
		if isa, ok := ParseISA(override); ok {
			hasOverride = true
			if isISAAvailable(isa) {
				use(isa)
				return
			}
		}
	}

	use(selectBestISA())
}

// use installs the kernels for isa.
func use(isa ISA) {
	activeISA = isa
	switch isa {
	case POPCNT, NEON:
		kernelPopcountWords = popcountWordsHW
		kernelMaskedPopcount = maskedPopcountHW
	default:
		kernelPopcountWords = popcountWordsGeneric
		kernelMaskedPopcount = maskedPopcountGeneric
	}
}

// isISAAvailable checks if an ISA is supported on this CPU.
func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case POPCNT:
		return hasPOPCNT
	case NEON:
		return hasASIMD
	default:
		return false
	}
}

// selectBestISA chooses the optimal ISA for the current platform.
func selectBestISA() ISA {
	switch runtime.GOARCH {
	case "amd64":
		if hasPOPCNT {
			return POPCNT
		}
	case "arm64":
		if hasASIMD {
			return NEON
		}
	}
	return Generic
}

// ActiveISA returns the currently active ISA.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if BITVEC_KERNEL was set.
func IsOverridden() bool {
	return hasOverride
}

// HasPOPCNT returns true if x86-64 POPCNT is available.
func HasPOPCNT() bool {
	return hasPOPCNT
}

// HasASIMD returns true if ARM64 NEON is available.
func HasASIMD() bool {
	return hasASIMD
}
