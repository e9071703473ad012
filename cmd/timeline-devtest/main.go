// Command timeline-devtest replays the smoke-test scenarios used during
// development of the timelinedb library: generate a sine wave, resample it
// up and down, convert to the wide layout, aggregate to buckets, and
// compare the scalar and vector backends.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"

	"github.com/mynd-ideal/timelinedb"
	"github.com/mynd-ideal/timelinedb/genutil"
)

func main() {
	var configPath = pflag.StringP("config", "c", "", "Load scenario parameters from a YAML file instead of the flags below.")
	var samples = pflag.Uint32P("samples", "n", 25, "Number of samples to generate.")
	var channels = pflag.Uint8P("channels", "C", 1, "Number of channels to generate.")
	var sourceRate = pflag.Uint32P("rate", "r", 1_000_000, "Source sample rate in Hz.")
	var backend = pflag.IntP("backend", "b", -1, "Backend to use: 0=C Backend, 1=SIMD Backend, -1=default.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")
	var showVersion = pflag.Bool("version", false, "Display version information and exit.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - replay timelinedb developer-test scenarios\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}
	if *showVersion {
		fmt.Println(timelinedb.VersionString())
		os.Exit(0)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	timelinedb.SetLogger(logger)

	var cfg scenarioConfig
	if *configPath != "" {
		var err error
		cfg, err = loadScenarioConfig(*configPath)
		if err != nil {
			logger.Error("failed to load scenario config", "err", err)
			os.Exit(1)
		}
	} else {
		cfg = defaultScenarioConfig()
		cfg.Samples = *samples
		cfg.Channels = *channels
		cfg.SourceRateHz = *sourceRate
		cfg.Backend = *backend
	}

	if cfg.Backend >= 0 {
		if err := timelinedb.SetBackend(cfg.Backend); err != nil {
			logger.Error("invalid backend selection", "backend", cfg.Backend, "err", err)
			os.Exit(1)
		}
	}

	printHeader("S1: generate")

	var buf timelinedb.ValueBuffer
	buf.Init()
	buf.ValueType = timelinedb.AnalogSint8
	if err := genutil.GenerateSine(&buf, cfg.Samples, cfg.Channels, cfg.Period, cfg.Amplitude, cfg.SourceRateHz); err != nil {
		logger.Error("failed to generate sine wave", "err", err)
		os.Exit(1)
	}
	fmt.Print(genutil.Dump(&buf))

	var events timelinedb.TimelineDB
	for ch := uint8(0); ch < cfg.Channels; ch++ {
		events.Add(timelinedb.TimelineEvent{
			ID:          int(ch),
			Name:        fmt.Sprintf("ch%d", ch),
			Description: fmt.Sprintf("generated sine, channel %d of %d", ch, cfg.Channels),
		})
	}
	for _, e := range events.Events {
		fmt.Printf("  event[%d]: %s - %s\n", e.ID, e.Name, e.Description)
	}

	runResample("S2: downsample", &buf, cfg.DownsampleHz, logger)
	runResample("S3: upsample", &buf, cfg.UpsampleHz, logger)

	printHeader("S4: layout convert + resample + aggregate")
	runWideRoundtrip(&buf, cfg.WideRateHz, cfg.Buckets, logger)

	printHeader("S5: backend comparison on a large wide buffer")
	runBackendComparison(logger)

	buf.Free()
}

func printHeader(title string) {
	stamp, _ := strftime.Format("%Y-%m-%dT%H:%M:%S%z", time.Now())
	fmt.Printf("\n=== %s (generated at %s) ===\n", title, stamp)
}

func runResample(title string, src *timelinedb.ValueBuffer, rateHz uint32, logger *log.Logger) {
	printHeader(title)

	var dst timelinedb.ValueBuffer
	dst.Init()
	if err := timelinedb.PrepareRateConversion(src, rateHz, &dst); err != nil {
		logger.Error("failed to prepare sample rate conversion", "rateHz", rateHz, "err", err)
		return
	}
	if err := timelinedb.ConvertSampleRate(src, &dst); err != nil {
		logger.Error("failed to convert sample rate", "rateHz", rateHz, "err", err)
		return
	}
	fmt.Print(genutil.Dump(&dst))
	dst.Free()
}

func runWideRoundtrip(src *timelinedb.ValueBuffer, wideRateHz, buckets uint32, logger *log.Logger) {
	var wide timelinedb.ValueBuffer
	wide.Init()
	if err := timelinedb.PrepareWide(src, &wide); err != nil {
		logger.Error("failed to prepare wide buffer", "err", err)
		return
	}
	if err := timelinedb.ConvertToWide(src, &wide, 0, 0); err != nil {
		logger.Error("failed to convert to wide buffer", "err", err)
		return
	}
	fmt.Print(genutil.Dump(&wide))

	var converted timelinedb.ValueBuffer
	converted.Init()
	if err := timelinedb.PrepareRateConversion(&wide, wideRateHz, &converted); err != nil {
		logger.Error("failed to prepare wide resample", "err", err)
		return
	}
	if err := timelinedb.ConvertSampleRate(&wide, &converted); err != nil {
		logger.Error("failed to convert wide sample rate", "err", err)
		return
	}
	fmt.Print(genutil.Dump(&converted))

	var outMin, outMax timelinedb.ValueBuffer
	outMin.Init()
	outMax.Init()
	if err := timelinedb.PrepareMinMax(&converted, &outMin, &outMax, buckets); err != nil {
		logger.Error("failed to prepare min/max aggregation", "err", err)
		return
	}
	if err := timelinedb.AggregateMinMax(&converted, &outMin, &outMax, 0, 0); err != nil {
		logger.Error("failed to aggregate min/max", "err", err)
		return
	}
	fmt.Print(genutil.Dump(&outMin))
	fmt.Print(genutil.Dump(&outMax))

	wide.Free()
	converted.Free()
	outMin.Free()
	outMax.Free()
}

func runBackendComparison(logger *log.Logger) {
	const numSamples = 1_000_000
	var src timelinedb.ValueBuffer
	src.Init()
	src.ValueType = timelinedb.SIMDSint16x8
	if err := genutil.GenerateSine(&src, numSamples, 8, 25.0, 100.0, 1_500_000); err != nil {
		logger.Error("failed to generate SIMD sine wave", "err", err)
		return
	}

	var scalarOut, vectorOut timelinedb.ValueBuffer
	scalarOut.Init()
	vectorOut.Init()

	if err := timelinedb.SetBackend(0); err != nil {
		logger.Error("failed to select C Backend", "err", err)
		return
	}
	if err := timelinedb.PrepareRateConversion(&src, 1_200_000, &scalarOut); err != nil {
		logger.Error("failed to prepare scalar conversion", "err", err)
		return
	}
	start := time.Now()
	if err := timelinedb.ConvertSampleRate(&src, &scalarOut); err != nil {
		logger.Error("C Backend conversion failed", "err", err)
		return
	}
	logger.Info("C Backend sample rate conversion", "elapsed", time.Since(start))

	if err := timelinedb.SetBackend(1); err != nil {
		logger.Error("failed to select SIMD Backend", "err", err)
		return
	}
	if err := timelinedb.PrepareRateConversion(&src, 1_200_000, &vectorOut); err != nil {
		logger.Error("failed to prepare vector conversion", "err", err)
		return
	}
	start = time.Now()
	if err := timelinedb.ConvertSampleRate(&src, &vectorOut); err != nil {
		logger.Error("SIMD Backend conversion failed", "err", err)
		return
	}
	logger.Info("SIMD Backend sample rate conversion", "elapsed", time.Since(start))

	var outMin, outMax timelinedb.ValueBuffer
	outMin.Init()
	outMax.Init()
	if err := timelinedb.PrepareMinMax(&src, &outMin, &outMax, 20); err != nil {
		logger.Error("failed to prepare min/max aggregation", "err", err)
		return
	}
	if err := timelinedb.AggregateMinMax(&src, &outMin, &outMax, src.NrOfSamples, 0); err != nil {
		logger.Error("failed to aggregate min/max", "err", err)
		return
	}
	fmt.Print(genutil.Dump(&outMin))
	fmt.Print(genutil.Dump(&outMax))

	src.Free()
	scalarOut.Free()
	vectorOut.Free()
	outMin.Free()
	outMax.Free()
}
