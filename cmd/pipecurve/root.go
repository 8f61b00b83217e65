package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/viperadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/logrusadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubelab/geom/curvature"
	"github.com/tubelab/geom/scene"
	"github.com/tubelab/geom/spline"
)

const appName = "pipecurve"

// tracer writes to trace with key 'pipecurve'
func tracer() tracing.Trace {
	return tracing.Select(appName)
}

// trace keys of all packages of this module
var traceKeys = []string{
	"geom", "spline", "curvature", "polygon", "markers",
	"layers", "pointsource", "scene", appName,
}

// ErrConflictingSources is returned if points are requested from a file and
// a URL at the same time.
var ErrConflictingSources = errors.New("--input and --url are mutually exclusive")

type rootOptions struct {
	ConfigPath string
	Trace      string
	TraceLevel string
	Input      string
	URL        string
	Output     string
	Timeout    time.Duration
}

// flags mapped onto configuration keys
var flagKeys = map[string]string{
	"tension":        scene.KeyTension,
	"kind":           scene.KeyKind,
	"samples":        scene.KeySamples,
	"degree-samples": scene.KeyDegreeSamples,
	"divisions":      scene.KeyDivisions,
	"explode":        scene.KeyExplode,
	"wall":           scene.KeyTubeWall,
}

type confKey struct{}

// NewRootCommand creates the root command with all flags and subcommands.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:     appName,
		Short:   "Centerline curvature analysis for pipe runs",
		Long:    "pipecurve builds a smooth centerline through 3D control points and reports\nits curvature profile, critical points and complexity score.",
		Version: Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path")
	pf.StringVar(&opts.Trace, "trace", "go", "trace adapter (go, logrus)")
	pf.StringVar(&opts.TraceLevel, "tracelevel", "Error", "trace level (Debug, Info, Error)")
	pf.StringVarP(&opts.Output, "output", "o", "json", "output format (json, text)")

	f := cmd.Flags()
	f.StringVarP(&opts.Input, "input", "i", "", "JSON file with control points, - for stdin")
	f.StringVar(&opts.URL, "url", "", "URL to fetch control points from")
	f.DurationVar(&opts.Timeout, "timeout", 30*time.Second, "timeout for fetching control points")
	f.Float64("tension", spline.DefaultTension, "curve tension, 0.5 is neutral")
	f.String("kind", spline.Centripetal.String(), "knot parametrization (centripetal, chordal, uniform)")
	f.Int("samples", curvature.DefaultSamples, "resolution of the critical point scan")
	f.Int("degree-samples", curvature.DefaultDegreeSamples, "resolution of the complexity score")
	f.Int("divisions", scene.DefaultDivisions, "number of centerline chords in the output")
	f.Float64("explode", 0, "offset of the end connectors along the end tangents")
	f.Float64("wall", 0, "rendered wall thickness of the tubes")

	cmd.AddCommand(newLayersCommand(opts))
	return cmd
}

func persistentPreRun(cmd *cobra.Command, opts *rootOptions) error {
	conf, err := initConfig(cmd, opts)
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}
	if err := initTracing(cmd, conf, opts); err != nil {
		return fmt.Errorf("tracing initialization failed: %w", err)
	}
	cmd.SetContext(context.WithValue(cmd.Context(), confKey{}, schuko.Configuration(conf)))
	return nil
}

// initConfig loads the configuration file, if any, and lets flags set on the
// command line override it.
func initConfig(cmd *cobra.Command, opts *rootOptions) (*viperadapter.VConf, error) {
	viper.Reset()
	conf := viperadapter.New(appName)
	conf.InitDefaults()
	if opts.ConfigPath != "" {
		viper.SetConfigFile(opts.ConfigPath)
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	flags := cmd.Root().Flags()
	for name, key := range flagKeys {
		if fl := flags.Lookup(name); fl != nil && fl.Changed {
			if err := viper.BindPFlag(key, fl); err != nil {
				return nil, err
			}
		}
	}
	if cmd.Flags().Changed("trace") {
		conf.Set("tracing", opts.Trace)
	}
	return conf, nil
}

func initTracing(cmd *cobra.Command, conf schuko.Configuration, opts *rootOptions) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	tracing.RegisterTraceAdapter("logrus", logrusadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	level := opts.TraceLevel
	if !cmd.Flags().Changed("tracelevel") && conf.IsSet("tracelevel") {
		level = conf.GetString("tracelevel")
	}
	l := tracing.TraceLevelFromString(level)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	tracer().Debugf("tracing with adapter %q at level %s", conf.GetString("tracing"), l)
	return nil
}

// configuration installed by persistentPreRun
func configFrom(ctx context.Context) schuko.Configuration {
	if conf, ok := ctx.Value(confKey{}).(schuko.Configuration); ok {
		return conf
	}
	return nil
}

func outputFormat(s string) (string, error) {
	switch f := strings.ToLower(s); f {
	case "json", "text":
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}
