// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"github.com/pbnjay/memory"
)

// Platform describes the machine the run is scheduled on.
type Platform struct {
	LogicalCPUs    int
	PhysicalCores  int
	ThreadsPerCore int
	Brand          string
	TotalMemory    uint64 // bytes; 0 when the OS does not report it
}

// DetectPlatform gathers CPU topology (cpuid) and total RAM.
func DetectPlatform() Platform {
	p := Platform{
		LogicalCPUs:    runtime.NumCPU(),
		PhysicalCores:  cpuid.CPU.PhysicalCores,
		ThreadsPerCore: cpuid.CPU.ThreadsPerCore,
		Brand:          cpuid.CPU.BrandName,
		TotalMemory:    memory.TotalMemory(),
	}
	if p.LogicalCPUs < 1 {
		p.LogicalCPUs = 1
	}
	return p
}

// EffectiveWorkers returns requested when positive, otherwise the number of
// logical CPUs (the same count a process pool would default to).
func EffectiveWorkers(requested int, p Platform) int {
	if requested > 0 {
		return requested
	}
	if p.LogicalCPUs > 0 {
		return p.LogicalCPUs
	}
	return 1
}

// MemoryWarning returns a non-empty message when an input of inputBytes is
// likely to crowd physical memory. The whole input is held at once, along
// with a filtered copy, so the threshold is half of RAM.
func MemoryWarning(inputBytes int64, p Platform) string {
	if p.TotalMemory == 0 || inputBytes <= 0 {
		return ""
	}
	if uint64(inputBytes) > p.TotalMemory/2 {
		return fmt.Sprintf("input is %s but this machine has %s of RAM; expect heavy swapping",
			HumanBytes(uint64(inputBytes)), HumanBytes(p.TotalMemory))
	}
	return ""
}

// HumanBytes formats n with a binary unit, e.g. "1.5 GiB".
func HumanBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
