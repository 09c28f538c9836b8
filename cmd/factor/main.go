package main

import (
	"fmt"
	"log"
	"math/big"
	"os"

	"github.com/urfave/cli"

	"github.com/cartazio/arithmoi/qs"
)

// VERSION is injected by buildflags
var VERSION = "SELFBUILD"

func main() {
	myApp := cli.NewApp()
	myApp.Name = "factor"
	myApp.Usage = "find a nontrivial factor of an odd composite with the quadratic sieve"
	myApp.UsageText = "factor [options] <decimal integer>"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.Int64Flag{
			Name:  "fb-bound,b",
			Value: 0,
			Usage: "factor base bound (0 picks one from the size of n)",
		},
		cli.IntFlag{
			Name:  "sieve-len,t",
			Value: 0,
			Usage: "sieve window length (0 picks one from the size of n)",
		},
		cli.IntFlag{
			Name:  "max-windows,w",
			Value: 0,
			Usage: "widening budget before giving up",
		},
		cli.BoolFlag{
			Name:  "no-retry",
			Usage: "stop after the first null vector instead of deriving more",
		},
		cli.BoolFlag{
			Name:  "quiet,q",
			Usage: "suppress progress logging",
		},
	}
	myApp.Action = func(c *cli.Context) error {
		if c.NArg() != 1 {
			return cli.NewExitError("expected exactly one integer argument", 1)
		}
		n, ok := new(big.Int).SetString(c.Args().First(), 10)
		if !ok {
			return cli.NewExitError(fmt.Sprintf("not a decimal integer: %q", c.Args().First()), 1)
		}
		if c.Bool("quiet") {
			log.SetOutput(nullWriter{})
		}

		// cheap outs before the sieve spins up
		if n.Bit(0) == 0 && n.Cmp(big.NewInt(2)) > 0 {
			fmt.Println(2)
			return nil
		}

		cfg := qs.Config{
			B:                 c.Int64("fb-bound"),
			T:                 c.Int("sieve-len"),
			MaxWindows:        c.Int("max-windows"),
			RetryDependencies: !c.Bool("no-retry"),
		}
		f, err := qs.Factor(n, cfg)
		if err != nil {
			return cli.NewExitError(fmt.Sprintf("factor: %v", err), 1)
		}
		fmt.Println(f)
		return nil
	}
	if err := myApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) { return len(p), nil }
