package resistance

import (
	"fmt"

	"github.com/maritimerenewable/resis/pkg/util"
)

type powerConfig struct {
	efficiency float64
	seaMargin  float64
}

// PowerOption overrides an assumption of Power.
type PowerOption func(*powerConfig)

// WithEfficiency sets the propulsive efficiency, which must be in (0, 1].
func WithEfficiency(eta float64) PowerOption {
	return func(p *powerConfig) {
		p.efficiency = eta
	}
}

// WithSeaMargin sets the service allowance applied on top of installed power.
func WithSeaMargin(margin float64) PowerOption {
	return func(p *powerConfig) {
		p.seaMargin = margin
	}
}

// Power evaluates the resistance at the configured speed and converts it to power.
func (s *Ship) Power(opts ...PowerOption) (PowerEstimate, error) {
	pc := powerConfig{efficiency: DefaultEfficiency, seaMargin: DefaultSeaMargin}
	for _, opt := range opts {
		opt(&pc)
	}
	if err := pc.validate(); err != nil {
		return PowerEstimate{}, err
	}

	b, err := s.Resistance()
	if err != nil {
		return PowerEstimate{}, err
	}
	return estimatePower(b.Total, b.Speed, pc), nil
}

// EstimatePower converts a resistance in Newtons at speed in m/s to power,
// independently of any Ship.
func EstimatePower(totalResistance, speed float64, opts ...PowerOption) (PowerEstimate, error) {
	pc := powerConfig{efficiency: DefaultEfficiency, seaMargin: DefaultSeaMargin}
	for _, opt := range opts {
		opt(&pc)
	}
	if err := pc.validate(); err != nil {
		return PowerEstimate{}, err
	}
	if !util.Finite(totalResistance, speed) || totalResistance < 0 || speed < 0 {
		return PowerEstimate{}, fmt.Errorf("%w: resistance %g N at %g m/s", ErrInvalidDimension, totalResistance, speed)
	}
	return estimatePower(totalResistance, speed, pc), nil
}

func (p powerConfig) validate() error {
	if !(p.efficiency > 0 && p.efficiency <= 1) {
		return fmt.Errorf("%w: got %g", ErrInvalidEfficiency, p.efficiency)
	}
	if !util.Finite(p.seaMargin) || p.seaMargin < 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidSeaMargin, p.seaMargin)
	}
	return nil
}

func estimatePower(rt, v float64, p powerConfig) PowerEstimate {
	pe := rt * v
	pb := pe / p.efficiency
	return PowerEstimate{
		TotalResistance: rt,
		Speed:           v,
		Efficiency:      p.efficiency,
		SeaMargin:       p.seaMargin,
		Effective:       pe,
		Installed:       pb,
		Service:         (1 + p.seaMargin) * pb,
	}
}
