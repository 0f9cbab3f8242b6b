package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/nmatthias/gbcore/internal/machine"
)

func main() {
	app := cli.NewApp()
	app.Name = "gbcore"
	app.Usage = "run a Game Boy ROM against the core CPU/bus/timer/interrupt emulation"
	app.ArgsUsage = "<rom-path>"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "max-steps",
			Value: 5_000_000,
			Usage: "stop after this many CPU steps even if the CPU never halts (0 disables the cap)",
		},
		cli.BoolFlag{
			Name:  "trace",
			Usage: "log PC and opcode for every step",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("exactly one ROM path argument is required", 2)
	}
	romPath := c.Args().Get(0)

	rom, err := os.ReadFile(romPath)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("read rom: %v", err), 1)
	}

	m, err := machine.New(rom, machine.Config{Trace: c.Bool("trace")})
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("build machine: %v", err), 1)
	}

	start := time.Now()
	steps := m.Run(uint64(c.Int("max-steps")))
	elapsed := time.Since(start).Truncate(time.Millisecond)

	status := "ran out of steps"
	if m.Halted() {
		status = "halted cleanly"
	}
	fmt.Printf("%s: steps=%d pc=%#04x elapsed=%s\n", status, steps, m.CPU.PC, elapsed)
	return nil
}
