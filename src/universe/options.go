package universe

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

//default options
const (
	DefSimulationInterval = time.Millisecond * 700
	DefWidth              = 30
	DefHeight             = 30
	DefCellSize           = 20
	DefDensity            = 0.5
	DefMaxSteps           = 0
)

//Options represents the Universe's configurable options
type Options struct {
	Width    int
	Height   int
	CellSize int           //pixel size of one cell on the canvas
	Interval time.Duration //period of the simulation timer
	MaxSteps int           //the running loop stops itself after MaxSteps generations, 0 is unlimited
	Density  float64       //probability of a live cell when settling with random data
	Seed     int64         //random seed, 0 seeds from the clock
}

var DefaultUniverseOptions = Options{
	Width:    DefWidth,
	Height:   DefHeight,
	CellSize: DefCellSize,
	Interval: DefSimulationInterval,
	MaxSteps: DefMaxSteps,
	Density:  DefDensity,
}

//Validate checks the options
//the field dimensions are fixed, only the defaults are accepted
func (o Options) Validate() error {
	if o.Width != DefWidth || o.Height != DefHeight {
		return errors.Errorf("the field size is fixed to %vx%v, got %vx%v", DefWidth, DefHeight, o.Width, o.Height)
	}
	if o.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %v", o.CellSize)
	}
	if o.Interval <= 0 {
		return errors.Errorf("interval must be positive, got %v", o.Interval)
	}
	if o.MaxSteps < 0 {
		return errors.Errorf("maxSteps must not be negative, got %v", o.MaxSteps)
	}
	if o.Density < 0 || o.Density > 1 {
		return errors.Errorf("density must be in [0,1], got %v", o.Density)
	}
	return nil
}

//fileOptions is the JSON representation of Options
type fileOptions struct {
	Interval *string  `json:"interval"`
	MaxSteps *int     `json:"max_steps"`
	Density  *float64 `json:"density"`
	Seed     *int64   `json:"seed"`
}

//LoadOptions reads the JSON configuration file on top of base
//the fields missing in the file keep the base values
func LoadOptions(filename string, base Options) (Options, error) {
	o := base

	data, err := os.ReadFile(filename)
	if err != nil {
		return o, errors.Wrapf(err, "failed to read config file: %v", filename)
	}

	var fo fileOptions
	if err = json.Unmarshal(data, &fo); err != nil {
		return o, errors.Wrapf(err, "failed to unmarshal config file: %v", filename)
	}

	if fo.Interval != nil {
		if o.Interval, err = time.ParseDuration(*fo.Interval); err != nil {
			return base, errors.Wrapf(err, "bad interval in config file: %v", filename)
		}
	}
	if fo.MaxSteps != nil {
		o.MaxSteps = *fo.MaxSteps
	}
	if fo.Density != nil {
		o.Density = *fo.Density
	}
	if fo.Seed != nil {
		o.Seed = *fo.Seed
	}
	return o, nil
}
