package main

import (
	"fmt"
	"simlife/src/universe"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

//EnvOptions holds the settings of the command, defaults come from the environment
type EnvOptions struct {
	Interactive bool          `env:"SIMLIFE_INTERACTIVE" envDefault:"false"`
	RandomData  bool          `env:"SIMLIFE_RANDOM" envDefault:"false"`
	Template    string        `env:"SIMLIFE_TEMPLATE" envDefault:"testSample1"`
	Width       int           `env:"SIMLIFE_WIDTH" envDefault:"40"`
	Height      int           `env:"SIMLIFE_HEIGHT" envDefault:"15"`
	OriginX     int           `env:"SIMLIFE_ORIGIN_X" envDefault:"0"`
	OriginY     int           `env:"SIMLIFE_ORIGIN_Y" envDefault:"0"`
	Interval    time.Duration `env:"SIMLIFE_INTERVAL" envDefault:"100ms"`
	MaxSteps    int           `env:"SIMLIFE_MAX_STEPS" envDefault:"1000"`
	Seed        int64         `env:"SIMLIFE_SEED" envDefault:"42"`
	Cells       []string      `env:"SIMLIFE_CELLS" envSeparator:";"`
}

//loadEnvOptions reads the SIMLIFE_* variables
func loadEnvOptions() (*EnvOptions, error) {
	eo := &EnvOptions{}
	if err := env.Parse(eo); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return eo, nil
}

func (eo *EnvOptions) universeOptions() *universe.Options {
	return &universe.Options{Interval: eo.Interval, MaxSteps: eo.MaxSteps}
}

func (eo *EnvOptions) area() universe.Rect {
	return universe.Rect{X: eo.OriginX, Y: eo.OriginY, Width: eo.Width, Height: eo.Height}
}

//cellBatch converts the "x,y" cell arguments to a batch for Universe.MakeAlive
//a malformed argument is kept as a string and rejected by the batch
func cellBatch(cells []string) []any {
	batch := make([]any, 0, len(cells))
	for _, s := range cells {
		x, y, ok := strings.Cut(s, ",")
		if !ok {
			batch = append(batch, s)
			continue
		}
		cx, errX := strconv.ParseInt(strings.TrimSpace(x), 10, strconv.IntSize)
		cy, errY := strconv.ParseInt(strings.TrimSpace(y), 10, strconv.IntSize)
		if errX != nil || errY != nil {
			batch = append(batch, s)
			continue
		}
		batch = append(batch, [2]int64{cx, cy})
	}
	return batch
}
