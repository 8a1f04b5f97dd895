// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ik5/audxform"
	"github.com/ik5/audxform/effects"
)

type transformFlags struct {
	pitch      string
	scale      float64
	reflect    bool
	reverse    bool
	filterSize int
	bitDepth   int
}

func newTransformCmd(a *app) *cobra.Command {
	var f transformFlags

	cmd := &cobra.Command{
		Use:   "transform <input> <output.wav>",
		Short: "Transform an audio file and write the result as WAV",
		Long: "Decode <input> (wav, aiff, mp3, ogg or flac), keep its first channel, apply\n" +
			"pitch shift, reverse, scale/reflect and smoothing in that order, and write a\n" +
			"mono PCM WAV file at the input sample rate.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, bitDepth, err := f.resolve(cmd, a)
			if err != nil {
				return err
			}

			return runTransform(cmd, args[0], args[1], cfg, bitDepth)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.pitch, "pitch", "p", "none", "Pitch effect: none, chipmunk, child, female, deep, monster")
	flags.Float64VarP(&f.scale, "scale", "s", 1, "Amplitude factor in [0, 2]")
	flags.BoolVar(&f.reflect, "reflect", false, "Invert the phase")
	flags.BoolVarP(&f.reverse, "reverse", "r", false, "Play the signal backwards")
	flags.IntVarP(&f.filterSize, "filter-size", "f", 1, "Moving average length in [1, 100], 1 disables smoothing")
	flags.IntVarP(&f.bitDepth, "bit-depth", "b", 16, "Output bit depth: 16, 24 or 32")

	return cmd
}

// resolve starts from the configured effect defaults and applies the flags
// that were set explicitly.
func (f *transformFlags) resolve(cmd *cobra.Command, a *app) (effects.Config, int, error) {
	cfg := a.cfg.Effects
	bitDepth := a.cfg.Output.BitDepth
	flags := cmd.Flags()

	if flags.Changed("pitch") {
		p, err := effects.ParsePitch(f.pitch)
		if err != nil {
			return cfg, 0, err
		}
		cfg.Pitch = p
	}
	if flags.Changed("scale") {
		cfg.Scale = f.scale
	}
	if flags.Changed("reflect") {
		cfg.Reflect = f.reflect
	}
	if flags.Changed("reverse") {
		cfg.Reverse = f.reverse
	}
	if flags.Changed("filter-size") {
		cfg.FilterSize = f.filterSize
	}
	if flags.Changed("bit-depth") {
		bitDepth = f.bitDepth
	}

	if err := cfg.Validate(); err != nil {
		return cfg, 0, err
	}

	return cfg, bitDepth, nil
}

func runTransform(cmd *cobra.Command, inPath, outPath string, cfg effects.Config, bitDepth int) error {
	start := time.Now()

	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	err = audxform.ProcessToWAV(out, data, cfg, bitDepth)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		// Do not leave a truncated WAV behind.
		if rmErr := os.Remove(outPath); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			logrus.WithError(rmErr).WithField("path", outPath).Warn("removing partial output")
		}
		return fmt.Errorf("%s: %w", inPath, err)
	}

	logrus.WithFields(logrus.Fields{
		"input":       inPath,
		"output":      outPath,
		"pitch":       cfg.Pitch.String(),
		"scale":       cfg.Scale,
		"reflect":     cfg.Reflect,
		"reverse":     cfg.Reverse,
		"filter_size": cfg.FilterSize,
		"bit_depth":   bitDepth,
		"elapsed":     time.Since(start).String(),
	}).Info("transformed")

	fmt.Fprintln(cmd.OutOrStdout(), "Wrote:", outPath)

	return nil
}
