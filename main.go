package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/gameboy"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

func main() {
	steps := flag.Int("steps", 0, "The number of instructions to execute")
	level := flag.String("log", "", "The log level. Can be debug, info, warn or error (default info)")
	strict := flag.Bool("strict", false, "Treat out of range bank selections as errors")
	serial := flag.Bool("serial", false, "Write bytes sent over the serial port to stdout")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <rom>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *level, *steps, *strict, *serial); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(path, level string, steps int, strict, serial bool) error {
	logger := log.New()
	if level != "" {
		var err error
		if logger, err = log.NewWithLevel(level); err != nil {
			return err
		}
	}

	rom, err := utils.LoadFile(path)
	if err != nil {
		return types.Wrap(types.KindIO, err, path)
	}

	cart, err := cartridge.New(rom)
	if err != nil {
		return err
	}
	h := cart.Header()
	fmt.Println(h.String())
	fmt.Printf("fingerprint: %016x\n", cart.Fingerprint())

	opts := []gameboy.Opt{gameboy.WithLogger(logger)}
	if strict {
		opts = append(opts, gameboy.StrictBanking())
	}
	if serial {
		opts = append(opts, gameboy.SerialDebugger(os.Stdout))
	}

	gb := gameboy.NewGameBoy(opts...)
	if err := gb.Load(cart); err != nil {
		return err
	}

	n, err := gb.Run(steps)
	logger.Infof("executed %d instructions in %d cycles", n, gb.Cycles())
	if err != nil {
		return err
	}
	fmt.Println(gb.Registers())
	return nil
}
