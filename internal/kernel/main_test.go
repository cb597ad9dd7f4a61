package kernel

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain prints which kernel set is active so CI logs show the path under test.
func TestMain(m *testing.M) {
	fmt.Printf("=== Kernel Diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("%s=%q\n", EnvOverride, os.Getenv(EnvOverride))
	fmt.Printf("Active ISA: %s\n", ActiveISA())
	fmt.Printf("Override: %v\n", IsOverridden())
	fmt.Printf("POPCNT: %v ASIMD: %v\n", HasPOPCNT(), HasASIMD())
	fmt.Printf("==========================\n\n")

	os.Exit(m.Run())
}
