//go:build portaudio

// Command timeline-capture records a fixed duration of audio from the
// default input device and feeds it through the same rate-conversion and
// aggregation pipeline as timeline-devtest, demonstrating the producer ->
// consumer data flow with a real device instead of a synthetic generator.
// It performs one bounded capture then exits; it does not run an event
// loop or render anything.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gordonklaus/portaudio"
	"github.com/spf13/pflag"

	"github.com/mynd-ideal/timelinedb"
	"github.com/mynd-ideal/timelinedb/genutil"
)

func main() {
	var duration = pflag.DurationP("duration", "d", 2*time.Second, "Capture duration.")
	var sampleRate = pflag.Float64P("rate", "r", 44100, "Capture sample rate in Hz.")
	var downsampleHz = pflag.Uint32P("downsample", "s", 8000, "Rate to resample the captured buffer to.")
	var buckets = pflag.Uint32P("buckets", "b", 40, "Number of min/max aggregation buckets.")
	pflag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	timelinedb.SetLogger(logger)

	if err := portaudio.Initialize(); err != nil {
		logger.Error("failed to initialize portaudio", "err", err)
		os.Exit(1)
	}
	defer portaudio.Terminate()

	numSamples := uint32(*sampleRate * (*duration).Seconds())
	samples := make([]int32, numSamples)

	stream, err := portaudio.OpenDefaultStream(1, 0, *sampleRate, len(samples), samples)
	if err != nil {
		logger.Error("failed to open default input stream", "err", err)
		os.Exit(1)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		logger.Error("failed to start capture", "err", err)
		os.Exit(1)
	}
	if err := stream.Read(); err != nil {
		logger.Error("failed to read capture buffer", "err", err)
		os.Exit(1)
	}
	if err := stream.Stop(); err != nil {
		logger.Error("failed to stop capture", "err", err)
		os.Exit(1)
	}

	var buf timelinedb.ValueBuffer
	buf.Init()
	buf.Allocate(numSamples, 1, 8, 1, timelinedb.AnalogSint8)
	buf.TimeExponent, buf.TimeStep = genutil.ScaledTimeStep(uint32(*sampleRate))
	for i, v := range samples {
		_ = buf.SetSampleInt8(uint32(i), 0, quantizeToInt8(v))
	}

	fmt.Print(genutil.Dump(&buf))

	var dst timelinedb.ValueBuffer
	dst.Init()
	if err := timelinedb.PrepareRateConversion(&buf, *downsampleHz, &dst); err != nil {
		logger.Error("failed to prepare sample rate conversion", "err", err)
		os.Exit(1)
	}
	if err := timelinedb.ConvertSampleRate(&buf, &dst); err != nil {
		logger.Error("failed to convert sample rate", "err", err)
		os.Exit(1)
	}
	fmt.Print(genutil.Dump(&dst))

	var outMin, outMax timelinedb.ValueBuffer
	outMin.Init()
	outMax.Init()
	if err := timelinedb.PrepareMinMax(&dst, &outMin, &outMax, *buckets); err != nil {
		logger.Error("failed to prepare min/max aggregation", "err", err)
		os.Exit(1)
	}
	if err := timelinedb.AggregateMinMax(&dst, &outMin, &outMax, 0, 0); err != nil {
		logger.Error("failed to aggregate min/max", "err", err)
		os.Exit(1)
	}
	fmt.Print(genutil.Dump(&outMin))
	fmt.Print(genutil.Dump(&outMax))
}

// quantizeToInt8 converts a 32-bit signed PCM sample (as produced by
// portaudio's int32 sample format) down to the 8-bit range.
func quantizeToInt8(v int32) int8 {
	return int8(v >> 24)
}
