// This file is part of Fireworks.
//
// Fireworks is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Fireworks is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Fireworks.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"fmt"
	"strings"

	"github.com/fireworks-sim/fireworks/curated"
	"github.com/fireworks-sim/fireworks/hardware/cpu/registers"
	"github.com/fireworks-sim/fireworks/hardware/isa/microblaze"
	"github.com/fireworks-sim/fireworks/hardware/memory/memorymap"
)

// Error patterns.
const (
	InvalidConfig = "config: %v"
	InvalidDevice = "config: %s: %s"
)

// Device is the configuration of a peripheral on the peripheral bus.
type Device struct {
	Enabled      bool
	Base         uint32
	ReadLatency  int
	WriteLatency int
}

func (d Device) String() string {
	if !d.Enabled {
		return "disabled"
	}
	return fmt.Sprintf("%08x r%d w%d", d.Base, d.ReadLatency, d.WriteLatency)
}

func (d Device) validate(label string) error {
	if !d.Enabled {
		return nil
	}
	if d.Base&0x03 != 0 {
		return curated.Errorf(InvalidDevice, label, "base address is not word aligned")
	}
	if d.ReadLatency < 1 || d.WriteLatency < 1 {
		return curated.Errorf(InvalidDevice, label, "latency must be at least one")
	}
	return nil
}

// Config is the complete configuration of the simulated hardware. A Config
// is created once and not changed while the hardware is running.
type Config struct {
	Map memorymap.Map

	// the initial value of each processor version register. the number of
	// PVR registers is len(PVR)
	PVR []uint32

	Latencies microblaze.Latencies

	Timer    Device
	UARTLite Device
}

// Default addresses of the peripherals.
const (
	DefaultTimerBase    = 0x41c00000
	DefaultUARTLiteBase = 0x40600000
)

// Default returns the configuration used when no configuration file exists.
func Default() Config {
	cfg := Config{
		Map: memorymap.Map{
			LMB: memorymap.Region{
				Begin:        0x00000000,
				End:          0x0000ffff,
				ReadLatency:  1,
				WriteLatency: 1,
			},
			OPBEnabled: false,
			OPB: memorymap.Region{
				Begin:        0x80000000,
				End:          0x800fffff,
				ReadLatency:  3,
				WriteLatency: 3,
			},
			UnmappedPenalty: 3,
		},
		PVR:       make([]uint32, registers.DefaultPVR),
		Latencies: microblaze.DefaultLatencies(),
		Timer: Device{
			Enabled:      true,
			Base:         DefaultTimerBase,
			ReadLatency:  2,
			WriteLatency: 2,
		},
		UARTLite: Device{
			Enabled:      true,
			Base:         DefaultUARTLiteBase,
			ReadLatency:  2,
			WriteLatency: 2,
		},
	}
	return cfg
}

// Validate returns an error if the configuration can not be used to create
// the hardware.
func (cfg Config) Validate() error {
	if err := cfg.Map.Validate(); err != nil {
		return curated.Errorf(InvalidConfig, err)
	}
	if err := cfg.Latencies.Validate(); err != nil {
		return curated.Errorf(InvalidConfig, err)
	}
	if err := cfg.Timer.validate("timer"); err != nil {
		return err
	}
	if err := cfg.UARTLite.validate("uartlite"); err != nil {
		return err
	}
	return nil
}

func (cfg Config) String() string {
	s := strings.Builder{}
	s.WriteString(cfg.Map.Summary())
	s.WriteString(fmt.Sprintf("pvr\t%d registers\n", len(cfg.PVR)))
	s.WriteString(fmt.Sprintf("timer\t%s\n", cfg.Timer))
	s.WriteString(fmt.Sprintf("uartlite\t%s\n", cfg.UARTLite))
	return s.String()
}
