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
	"sort"
	"strconv"
	"strings"

	"github.com/fireworks-sim/fireworks/curated"
	"github.com/fireworks-sim/fireworks/prefs"
)

// Preferences is the hardware configuration as stored on disk. Use Config()
// to create the Config value used to create the hardware.
type Preferences struct {
	dsk *prefs.Disk

	LMBBegin prefs.Int
	LMBEnd   prefs.Int
	LMBRead  prefs.Int
	LMBWrite prefs.Int

	OPBEnabled prefs.Bool
	OPBBegin   prefs.Int
	OPBEnd     prefs.Int
	OPBRead    prefs.Int
	OPBWrite   prefs.Int

	// the number of cycles an access to an unmapped address takes before the
	// fault is raised
	UnmappedPenalty prefs.Int

	// the number of PVR registers and their values. values are given as a
	// comma separated list. missing values are zero
	NumPVR prefs.Int
	PVR    *prefs.Generic
	pvr    []uint32

	// latency tables in the form "mnemonic=cycles, mnemonic=cycles"
	Execute *prefs.Generic
	Taken   *prefs.Generic
	execute map[string]int
	taken   map[string]int

	TimerEnabled prefs.Bool
	TimerBase    prefs.Int
	TimerRead    prefs.Int
	TimerWrite   prefs.Int

	UARTLiteEnabled prefs.Bool
	UARTLiteBase    prefs.Int
	UARTLiteRead    prefs.Int
	UARTLiteWrite   prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the file at pth. If the file does
// not exist it is created with the default values.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{
		execute: make(map[string]int),
		taken:   make(map[string]int),
	}

	p.PVR = prefs.NewGeneric(
		func(s string) error {
			v, err := parsePVR(s)
			if err != nil {
				return err
			}
			p.pvr = v
			return nil
		},
		func() string {
			return formatPVR(p.pvr)
		},
	)

	p.Execute = prefs.NewGeneric(
		func(s string) error {
			v, err := parseLatencies(s)
			if err != nil {
				return err
			}
			p.execute = v
			return nil
		},
		func() string {
			return formatLatencies(p.execute)
		},
	)

	p.Taken = prefs.NewGeneric(
		func(s string) error {
			v, err := parseLatencies(s)
			if err != nil {
				return err
			}
			p.taken = v
			return nil
		},
		func() string {
			return formatLatencies(p.taken)
		},
	)

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for _, v := range []struct {
		key string
		p   prefs.Preference
	}{
		{"memory.lmb.begin", &p.LMBBegin},
		{"memory.lmb.end", &p.LMBEnd},
		{"memory.lmb.read", &p.LMBRead},
		{"memory.lmb.write", &p.LMBWrite},
		{"memory.opb.enabled", &p.OPBEnabled},
		{"memory.opb.begin", &p.OPBBegin},
		{"memory.opb.end", &p.OPBEnd},
		{"memory.opb.read", &p.OPBRead},
		{"memory.opb.write", &p.OPBWrite},
		{"memory.mapped", &p.UnmappedPenalty},
		{"cpu.pvr.count", &p.NumPVR},
		{"cpu.pvr", p.PVR},
		{"cpu.latency", p.Execute},
		{"cpu.latency.taken", p.Taken},
		{"device.timer.enabled", &p.TimerEnabled},
		{"device.timer.base", &p.TimerBase},
		{"device.timer.read", &p.TimerRead},
		{"device.timer.write", &p.TimerWrite},
		{"device.uartlite.enabled", &p.UARTLiteEnabled},
		{"device.uartlite.base", &p.UARTLiteBase},
		{"device.uartlite.read", &p.UARTLiteRead},
		{"device.uartlite.write", &p.UARTLiteWrite},
	} {
		if err := p.dsk.Add(v.key, v.p); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults sets every value to the value in the default configuration.
func (p *Preferences) SetDefaults() error {
	cfg := Default()

	set := []struct {
		p prefs.Preference
		v prefs.Value
	}{
		{&p.LMBBegin, cfg.Map.LMB.Begin},
		{&p.LMBEnd, cfg.Map.LMB.End},
		{&p.LMBRead, cfg.Map.LMB.ReadLatency},
		{&p.LMBWrite, cfg.Map.LMB.WriteLatency},
		{&p.OPBEnabled, cfg.Map.OPBEnabled},
		{&p.OPBBegin, cfg.Map.OPB.Begin},
		{&p.OPBEnd, cfg.Map.OPB.End},
		{&p.OPBRead, cfg.Map.OPB.ReadLatency},
		{&p.OPBWrite, cfg.Map.OPB.WriteLatency},
		{&p.UnmappedPenalty, cfg.Map.UnmappedPenalty},
		{&p.NumPVR, len(cfg.PVR)},
		{p.PVR, formatPVR(cfg.PVR)},
		{p.Execute, formatLatencies(cfg.Latencies.Execute)},
		{p.Taken, formatLatencies(cfg.Latencies.Taken)},
		{&p.TimerEnabled, cfg.Timer.Enabled},
		{&p.TimerBase, cfg.Timer.Base},
		{&p.TimerRead, cfg.Timer.ReadLatency},
		{&p.TimerWrite, cfg.Timer.WriteLatency},
		{&p.UARTLiteEnabled, cfg.UARTLite.Enabled},
		{&p.UARTLiteBase, cfg.UARTLite.Base},
		{&p.UARTLiteRead, cfg.UARTLite.ReadLatency},
		{&p.UARTLiteWrite, cfg.UARTLite.WriteLatency},
	}

	for _, s := range set {
		if err := s.p.Set(s.v); err != nil {
			return curated.Errorf(InvalidConfig, err)
		}
	}

	return nil
}

// Load values from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save values to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Config creates a Config from the current preference values. The Config is
// validated before it is returned.
func (p *Preferences) Config() (Config, error) {
	cfg := Default()

	cfg.Map.LMB.Begin = uint32(p.LMBBegin.Get().(int))
	cfg.Map.LMB.End = uint32(p.LMBEnd.Get().(int))
	cfg.Map.LMB.ReadLatency = p.LMBRead.Get().(int)
	cfg.Map.LMB.WriteLatency = p.LMBWrite.Get().(int)

	cfg.Map.OPBEnabled = p.OPBEnabled.Get().(bool)
	cfg.Map.OPB.Begin = uint32(p.OPBBegin.Get().(int))
	cfg.Map.OPB.End = uint32(p.OPBEnd.Get().(int))
	cfg.Map.OPB.ReadLatency = p.OPBRead.Get().(int)
	cfg.Map.OPB.WriteLatency = p.OPBWrite.Get().(int)

	cfg.Map.UnmappedPenalty = p.UnmappedPenalty.Get().(int)

	n := p.NumPVR.Get().(int)
	if n < 0 {
		return Config{}, curated.Errorf(InvalidConfig, "number of PVR registers cannot be negative")
	}
	cfg.PVR = make([]uint32, n)
	copy(cfg.PVR, p.pvr)

	cfg.Latencies.Execute = make(map[string]int)
	for k, v := range p.execute {
		cfg.Latencies.Execute[k] = v
	}
	cfg.Latencies.Taken = make(map[string]int)
	for k, v := range p.taken {
		cfg.Latencies.Taken[k] = v
	}

	cfg.Timer = Device{
		Enabled:      p.TimerEnabled.Get().(bool),
		Base:         uint32(p.TimerBase.Get().(int)),
		ReadLatency:  p.TimerRead.Get().(int),
		WriteLatency: p.TimerWrite.Get().(int),
	}
	cfg.UARTLite = Device{
		Enabled:      p.UARTLiteEnabled.Get().(bool),
		Base:         uint32(p.UARTLiteBase.Get().(int)),
		ReadLatency:  p.UARTLiteRead.Get().(int),
		WriteLatency: p.UARTLiteWrite.Get().(int),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// parse a comma separated list of PVR values.
func parsePVR(s string) ([]uint32, error) {
	var pvr []uint32
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseUint(f, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("pvr value: %w", err)
		}
		pvr = append(pvr, uint32(v))
	}
	return pvr, nil
}

func formatPVR(pvr []uint32) string {
	s := make([]string, len(pvr))
	for i, v := range pvr {
		s[i] = fmt.Sprintf("0x%08x", v)
	}
	return strings.Join(s, ", ")
}

// parse a latency table in the form "mnemonic=cycles, mnemonic=cycles".
func parseLatencies(s string) (map[string]int, error) {
	lat := make(map[string]int)
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		kv := strings.SplitN(f, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("latency entry %q is not in the form mnemonic=cycles", f)
		}
		v, err := strconv.Atoi(strings.TrimSpace(kv[1]))
		if err != nil {
			return nil, fmt.Errorf("latency entry %q: %w", f, err)
		}
		lat[strings.ToLower(strings.TrimSpace(kv[0]))] = v
	}
	return lat, nil
}

func formatLatencies(lat map[string]int) string {
	keys := make([]string, 0, len(lat))
	for k := range lat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = fmt.Sprintf("%s=%d", k, lat[k])
	}
	return strings.Join(s, ", ")
}
