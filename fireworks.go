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

package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fireworks-sim/fireworks/debugger"
	"github.com/fireworks-sim/fireworks/debugger/terminal"
	"github.com/fireworks-sim/fireworks/debugger/terminal/colorterm"
	"github.com/fireworks-sim/fireworks/debugger/terminal/plainterm"
	"github.com/fireworks-sim/fireworks/disassembly"
	"github.com/fireworks-sim/fireworks/hardware"
	"github.com/fireworks-sim/fireworks/hardware/config"
	"github.com/fireworks-sim/fireworks/hardware/cpu/execution"
	"github.com/fireworks-sim/fireworks/logger"
	"github.com/fireworks-sim/fireworks/modalflag"
	"github.com/fireworks-sim/fireworks/paths"
	"github.com/fireworks-sim/fireworks/performance"
	"github.com/fireworks-sim/fireworks/performance/limiter"
	"github.com/fireworks-sim/fireworks/prefs"
	"github.com/fireworks-sim/fireworks/profiling"
	"github.com/fireworks-sim/fireworks/script"
	"github.com/fireworks-sim/fireworks/statsview"
	"github.com/fireworks-sim/fireworks/symbols"
	"github.com/fireworks-sim/fireworks/version"
)

const defaultInitScript = "debuggerInit"

const defaultConfigFile = "hardware"

// exit values
const (
	exitOk    = 0
	exitParse = 10
	exitMode  = 20
)

func main() {
	os.Exit(launch(os.Args[1:]))
}

func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "PROFILE", "SCRIPT", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOk

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return exitParse
	}

	// the script mode returns the number of failed expectations as the exit
	// value
	exitVal := exitOk

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DEBUG":
		err = debug(md)
	case "PROFILE":
		err = profile(md)
	case "SCRIPT":
		exitVal, err = luaScript(md)
	case "DISASM":
		err = disasm(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return exitMode
	}

	return exitVal
}

// the flags shared by every mode that creates a System
type systemFlags struct {
	config  *string
	origin  *string
	exit    *string
	symbols *string
	debug   *bool
	prefs   *string
}

func addSystemFlags(md *modalflag.Modes) systemFlags {
	defConfig, err := paths.ResourcePath("", defaultConfigFile)
	if err != nil {
		defConfig = ""
	}

	return systemFlags{
		config:  md.AddString("config", defConfig, "hardware configuration file"),
		origin:  md.AddString("origin", "0", "load address of the program image"),
		exit:    md.AddString("exit", "", "address or function name of the program exit"),
		symbols: md.AddString("symbols", "", "symbols table for the program"),
		debug:   md.AddBool("debug", false, "log exceptions and interrupts"),
		prefs:   md.AddString("prefs", "", "override hardware preferences (key::value; key::value)"),
	}
}

// parseAddress accepts a decimal or 0x prefixed hexadecimal value, or the
// name of a function in the symbols table
func parseAddress(s string, tab *symbols.Table) (uint32, error) {
	if fn, ok := tab.Search(s); ok {
		return fn.Begin, nil
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid address (%s)", s)
	}
	return uint32(v), nil
}

// loadConfig loads the hardware configuration from the prefs file. The
// override string is pushed onto the prefs command line stack for the
// duration of the load. An empty filename gives the default configuration
// with the overrides applied.
func loadConfig(filename string, override string) (config.Config, error) {
	if override != "" {
		prefs.PushCommandLineStack(override)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "config", "unused preferences: %s", unused)
			}
		}()
	}

	if filename == "" {
		if override == "" {
			return config.Default(), nil
		}

		// the overrides are applied to a prefs file that is never saved
		filename = filepath.Join(os.TempDir(), paths.UniqueFilename("fireworks", "prefs"))
		defer os.Remove(filename)
	}

	prf, err := config.NewPreferences(filename)
	if err != nil {
		return config.Config{}, err
	}
	return prf.Config()
}

// newSystem creates the System described by the flags and loads the program
// named by the first remaining argument. Returns the system, the symbols
// table (empty if no table was specified) and the number of words loaded.
func newSystem(md *modalflag.Modes, flgs systemFlags) (*hardware.System, *symbols.Table, int, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, nil, 0, fmt.Errorf("program image required for %s mode", md)
	case 1:
	default:
		return nil, nil, 0, fmt.Errorf("too many arguments for %s mode", md)
	}

	cfg, err := loadConfig(*flgs.config, *flgs.prefs)
	if err != nil {
		return nil, nil, 0, err
	}

	var perm logger.Permission
	if *flgs.debug {
		perm = logger.Allow
	}

	sys, err := hardware.NewSystem(cfg, os.Stdout, perm)
	if err != nil {
		return nil, nil, 0, err
	}

	tab := symbols.NewTable()
	if *flgs.symbols != "" {
		tab, err = symbols.ReadFile(*flgs.symbols)
		if err != nil {
			return nil, nil, 0, err
		}
	}

	origin, err := parseAddress(*flgs.origin, tab)
	if err != nil {
		return nil, nil, 0, err
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return nil, nil, 0, err
	}
	defer f.Close()

	n, err := sys.LoadImage(f, origin)
	if err != nil {
		return nil, nil, 0, err
	}

	if *flgs.exit != "" {
		exit, err := parseAddress(*flgs.exit, tab)
		if err != nil {
			return nil, nil, 0, err
		}
		if err := sys.ProgramExit(exit); err != nil {
			return nil, nil, 0, err
		}
	}

	return sys, tab, n, nil
}

// haltOnInterrupt halts the System when an interrupt signal is received. The
// returned function stops signal handling
func haltOnInterrupt(sys *hardware.System) func() {
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	done := make(chan bool)
	go func() {
		select {
		case <-intChan:
			fmt.Println("\r")
			sys.Halt()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(intChan)
		close(done)
	}
}

// a continue check that fails after a number of cycles. a limit of zero means
// no limit
func cycleLimit(sys *hardware.System, limit uint64) func() (bool, error) {
	return func() (bool, error) {
		if limit > 0 && sys.Cycles() >= limit {
			return false, fmt.Errorf("program did not stop after %d cycles", limit)
		}
		return true, nil
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addSystemFlags(md)
	trace := md.AddBool("trace", false, "print every retired instruction")
	cycles := md.AddUint64("cycles", 0, "stop with an error after the number of cycles (0 for no limit)")
	hz := md.AddUint64("limit", 0, "limit the simulation to a clock rate in Hz (0 for no limit)")
	prof := md.AddBool("profile", false, "print a function profile when the program stops")
	echo := md.AddBool("log", false, "echo log entries to stderr")
	input := md.AddBool("input", false, "send stdin to the uart")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%t)", statsview.Available()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sys, tab, _, err := newSystem(md, flgs)
	if err != nil {
		return err
	}

	if *echo {
		logger.SetEcho(os.Stderr, true)
		defer logger.SetEcho(nil, false)
	}

	if *stats {
		defer statsview.Launch(os.Stderr)()
	}

	if *trace {
		trc := disassembly.NewTracer(os.Stderr)
		trc.Symbols = tab
		sys.AddObserver(trc)
	}

	var prf *profiling.Profiler
	if *prof {
		prf = profiling.NewProfiler(tab)
		sys.AddObserver(prf)
	}

	if *input {
		if sys.UART == nil {
			return errors.New("uart is not enabled")
		}
		stopInput := uartInput(sys.UART, os.Stdin)
		defer stopInput()
	}

	lim := limiter.NewLimiter(*hz)
	limit := cycleLimit(sys, *cycles)

	stop := haltOnInterrupt(sys)
	defer stop()

	st, err := sys.Run(func() (bool, error) {
		lim.Tick()
		return limit()
	})
	if err != nil {
		return err
	}

	switch st {
	case execution.RunNormal:
		fmt.Fprintf(os.Stderr, "halted after %d cycles\n", sys.Cycles())
	case execution.RunBreakpoint:
		return errors.New("program reached a breakpoint")
	case execution.RunStopped:
		fmt.Fprintf(os.Stderr, "program stopped after %d cycles (%d instructions)\n", sys.Cycles(), sys.CPU.Instructions())
	}

	if prf != nil {
		prf.Write(os.Stdout)
	}

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	defInitScript, err := paths.ResourcePath("", defaultInitScript)
	if err != nil {
		return err
	}

	flgs := addSystemFlags(md)
	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	initScript := md.AddString("initscript", defInitScript, "script to run on debugger start")
	prof := md.AddString("profile", "none", "run debugger through profiler (cpu, mem, trace, all)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	profile, err := performance.ParseProfileString(*prof)
	if err != nil {
		return err
	}

	sys, tab, _, err := newSystem(md, flgs)
	if err != nil {
		return err
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	dbg, err := debugger.NewDebugger(sys, term, tab)
	if err != nil {
		return err
	}

	return performance.RunProfiler(profile, "debugger", func() error {
		return dbg.Start(*initScript)
	})
}

func profile(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addSystemFlags(md)
	cycles := md.AddUint64("cycles", 0, "stop with an error after the number of cycles (0 for no limit)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%t)", statsview.Available()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sys, tab, _, err := newSystem(md, flgs)
	if err != nil {
		return err
	}

	if *stats {
		defer statsview.Launch(os.Stderr)()
	}

	stop := haltOnInterrupt(sys)
	defer stop()

	prf, err := profiling.Profile(sys, tab, cycleLimit(sys, *cycles))
	if err != nil {
		return err
	}

	prf.Write(md.Output)

	return nil
}

func luaScript(md *modalflag.Modes) (int, error) {
	md.NewMode()

	defConfig, err := paths.ResourcePath("", defaultConfigFile)
	if err != nil {
		return exitOk, err
	}
	cfgFile := md.AddString("config", defConfig, "hardware configuration file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return exitOk, err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return exitOk, fmt.Errorf("lua script required for %s mode", md)
	case 1:
	default:
		return exitOk, fmt.Errorf("too many arguments for %s mode", md)
	}

	cfg, err := loadConfig(*cfgFile, "")
	if err != nil {
		return exitOk, err
	}

	sys, err := hardware.NewSystem(cfg, os.Stdout, nil)
	if err != nil {
		return exitOk, err
	}

	failures, err := script.Run(sys, md.GetArg(0), md.Output)
	if err != nil {
		return exitOk, err
	}

	if failures > 0 {
		fmt.Fprintf(md.Output, "%d failed expectations\n", failures)
	}

	return failures, nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addSystemFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sys, tab, n, err := newSystem(md, flgs)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	origin, err := parseAddress(*flgs.origin, tab)
	if err != nil {
		return err
	}

	dsm := disassembly.NewDisassembly(sys.Mem, sys.Decoder)
	dsm.Symbols = tab

	return dsm.Write(md.Output, origin, origin+uint32(n-1)*4)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addSystemFlags(md)
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	prof := md.AddString("profile", "none", "produce profiling reports (cpu, mem, trace, all)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	profile, err := performance.ParseProfileString(*prof)
	if err != nil {
		return err
	}

	sys, _, _, err := newSystem(md, flgs)
	if err != nil {
		return err
	}

	stop := haltOnInterrupt(sys)
	defer stop()

	_, err = performance.Check(md.Output, profile, sys, *duration)
	return err
}
