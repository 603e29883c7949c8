package simulator

import (
	"math/bits"

	"github.com/shirou/gopsutil/mem"
)

// HardCap bounds the superposed register width regardless of host
// memory. A dense vector of 26 qubits already needs 1 GiB of
// amplitudes; basis-state circuits are not limited by it.
const HardCap = 26

const bytesPerAmplitude = 16

// QubitCapacity derives the largest register the host can hold without
// committing more than a quarter of its available memory to amplitudes.
// Probing failures fall back to the hard cap rather than refusing to run.
func QubitCapacity() int {
	vm, err := mem.VirtualMemory()
	if err != nil || vm.Available == 0 {
		return HardCap
	}
	budget := vm.Available / 4 / bytesPerAmplitude
	if budget < 2 {
		return 1
	}
	capacity := bits.Len64(budget) - 1
	if capacity > HardCap {
		return HardCap
	}
	return capacity
}
