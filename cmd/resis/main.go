package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/maritimerenewable/resis/pkg/resistance"
	"github.com/maritimerenewable/resis/pkg/types"
	"github.com/maritimerenewable/resis/pkg/util"
)

type opts struct {
	configPath string
	hullPath   string
	format     outputFormat
	knots      bool
	speeds     []float64

	dims resistance.Dimensions

	efficiency float64
	seaMargin  float64
}

// outputFormat is a pflag.Value restricted to the supported writers.
type outputFormat string

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Type() string { return "format" }

func (f *outputFormat) Set(s string) error {
	switch s {
	case "table", "csv", "json", "yaml":
		*f = outputFormat(s)
		return nil
	}
	return fmt.Errorf("unknown output format %q (want table, csv, json or yaml)", s)
}

type row struct {
	resistance.Breakdown `yaml:",inline"`
	Power                resistance.PowerEstimate `json:"power" yaml:"power"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := opts{format: "table"}

	root := &cobra.Command{
		Use:   "resis",
		Short: "Ship resistance and propulsion power estimation",
		Long: `resis estimates the calm-water resistance of a displacement hull from its
principal dimensions and converts it to effective, installed and service power.

Frictional resistance follows the ITTC-1957 line; residual resistance is
interpolated from a (slenderness, prismatic, Froude) coefficient table.

Examples:
  resis --length 5.72 --draught 0.248 --beam 0.76 --speed 2 --slenderness 6.99 --prismatic 0.613
  resis --hull hull.yaml --speeds 1,1.5,2,2.5 --format csv
  resis --hull hull.yaml --knots --speed 4 --efficiency 0.6`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, o)
		},
	}

	f := root.Flags()
	f.StringVar(&o.configPath, "config", "", "config file (yaml, json or toml)")
	f.StringVar(&o.hullPath, "hull", "", "yaml file with hull dimensions; flags override its values")
	f.VarP(&o.format, "format", "o", "output format: table, csv, json or yaml")
	f.BoolVar(&o.knots, "knots", false, "interpret --speed and --speeds in knots instead of m/s")
	f.Float64SliceVar(&o.speeds, "speeds", nil, "evaluate a speed sweep instead of the single --speed")

	f.Float64Var(&o.dims.Length, "length", 0, "length L in metres")
	f.Float64Var(&o.dims.Draught, "draught", 0, "draught T in metres")
	f.Float64Var(&o.dims.Beam, "beam", 0, "beam B in metres")
	f.Float64Var(&o.dims.Speed, "speed", 0, "target speed in m/s")
	f.Float64Var(&o.dims.Slenderness, "slenderness", 0, "slenderness coefficient L/V^(1/3)")
	f.Float64Var(&o.dims.Prismatic, "prismatic", 0, "prismatic coefficient")

	f.Float64Var(&o.efficiency, "efficiency", resistance.DefaultEfficiency, "propulsive efficiency (0,1]; overrides config")
	f.Float64Var(&o.seaMargin, "sea-margin", resistance.DefaultSeaMargin, "service sea margin; overrides config")

	return root
}

func run(cmd *cobra.Command, o opts) error {
	cfg, err := LoadConfig(o.configPath)
	if err != nil {
		return err
	}
	logger := SetupLogger(cfg, cmd.ErrOrStderr())
	slog.SetDefault(logger)

	d, err := dimensions(cmd, o)
	if err != nil {
		return err
	}

	modelOpts, err := cfg.Model.Options(logger)
	if err != nil {
		return err
	}
	ship, err := resistance.NewShip(modelOpts...)
	if err != nil {
		return err
	}
	if err := ship.ConfigureDimensions(d); err != nil {
		return err
	}

	speeds := []float64{d.Speed}
	if len(o.speeds) > 0 {
		speeds = make([]float64, len(o.speeds))
		for i, v := range o.speeds {
			speeds[i] = speedSI(v, o.knots)
		}
	}

	eff, margin := cfg.Model.Efficiency, cfg.Model.SeaMargin
	if cmd.Flags().Changed("efficiency") {
		eff = o.efficiency
	}
	if cmd.Flags().Changed("sea-margin") {
		margin = o.seaMargin
	}

	breakdowns, err := ship.Sweep(speeds)
	if err != nil {
		return err
	}
	rows := make([]row, 0, len(breakdowns))
	for _, b := range breakdowns {
		p, err := resistance.EstimatePower(b.Total, b.Speed,
			resistance.WithEfficiency(eff), resistance.WithSeaMargin(margin))
		if err != nil {
			return err
		}
		rows = append(rows, row{Breakdown: b, Power: p})
	}
	logger.Debug("evaluated", "speeds", len(rows), "efficiency", eff, "sea_margin", margin)

	return write(cmd.OutOrStdout(), string(o.format), rows)
}

// dimensions merges the hull file with explicitly set flags.
func dimensions(cmd *cobra.Command, o opts) (resistance.Dimensions, error) {
	d := o.dims
	if o.hullPath != "" {
		hull, err := LoadHull(o.hullPath)
		if err != nil {
			return resistance.Dimensions{}, err
		}
		overrides := []struct {
			flag string
			dst  *float64
			v    float64
		}{
			{"length", &hull.Length, o.dims.Length},
			{"draught", &hull.Draught, o.dims.Draught},
			{"beam", &hull.Beam, o.dims.Beam},
			{"speed", &hull.Speed, o.dims.Speed},
			{"slenderness", &hull.Slenderness, o.dims.Slenderness},
			{"prismatic", &hull.Prismatic, o.dims.Prismatic},
		}
		for _, ov := range overrides {
			if cmd.Flags().Changed(ov.flag) {
				*ov.dst = ov.v
			}
		}
		d = hull
	}
	d.Speed = speedSI(d.Speed, o.knots)
	return d, nil
}

func speedSI(v float64, knots bool) float64 {
	if knots {
		return types.Knots(v).MetresPerSecond()
	}
	return v
}

func write(w io.Writer, format string, rows []row) error {
	switch format {
	case "table", "":
		return writeTable(w, rows)
	case "csv":
		return writeCSV(w, rows)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer func() {
			_ = enc.Close()
		}()
		return enc.Encode(rows)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeTable(w io.Writer, rows []row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SPEED (m/s)\tKNOTS\tFn\tR_F\tR_R\tR_APP\tR_AA\tR_A\tR_T\tP_E\tP_B\tP_S")
	fmt.Fprintln(tw, "-----------\t-----\t--\t---\t---\t-----\t----\t---\t---\t---\t---\t---")
	for _, r := range rows {
		fmt.Fprintf(tw, "%.3f\t%.2f\t%.4f\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Speed, float64(types.FromMetresPerSecond(r.Speed)), r.FroudeNumber,
			types.Newtons(r.Frictional).Humanized(), types.Newtons(r.Residual).Humanized(),
			types.Newtons(r.Appendage).Humanized(), types.Newtons(r.Air).Humanized(),
			types.Newtons(r.Correlation).Humanized(), types.Newtons(r.Total).Humanized(),
			types.Watts(r.Power.Effective).Humanized(), types.Watts(r.Power.Installed).Humanized(),
			types.Watts(r.Power.Service).Humanized(),
		)
	}
	return tw.Flush()
}

func writeCSV(w io.Writer, rows []row) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{
		"speed_ms", "froude_number", "reynolds_number", "cf", "cr",
		"frictional_n", "residual_n", "appendage_n", "air_n", "correlation_n", "total_n",
		"effective_w", "installed_w", "service_w",
	})
	for _, r := range rows {
		_ = cw.Write([]string{
			util.FmtFloat(r.Speed), util.FmtFloat(r.FroudeNumber), util.FmtFloat(r.ReynoldsNumber),
			util.FmtFloat(r.FrictionCoefficient), util.FmtFloat(r.ResidualCoefficient),
			util.FmtFloat(r.Frictional), util.FmtFloat(r.Residual), util.FmtFloat(r.Appendage),
			util.FmtFloat(r.Air), util.FmtFloat(r.Correlation), util.FmtFloat(r.Total),
			util.FmtFloat(r.Power.Effective), util.FmtFloat(r.Power.Installed), util.FmtFloat(r.Power.Service),
		})
	}
	cw.Flush()
	return cw.Error()
}
