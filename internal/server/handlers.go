// SPDX-License-Identifier: EPL-2.0

package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audxform"
	"github.com/ik5/audxform/audio"
	"github.com/ik5/audxform/effects"
	"github.com/ik5/audxform/formats/wav"
)

const (
	formFile       = "file"
	outputFilename = "transformed_audio.wav"

	// maxFormMemory is how much of a multipart body is held in memory
	// before parts spill to temporary files.
	maxFormMemory = 32 << 20
)

type pitchInfo struct {
	Name      string  `json:"name"`
	Label     string  `json:"label"`
	Semitones float64 `json:"semitones"`
}

type rangeInfo struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
}

type effectsResponse struct {
	Pitches    []pitchInfo `json:"pitches"`
	Scale      rangeInfo   `json:"scale"`
	FilterSize rangeInfo   `json:"filter_size"`
	Formats    []string    `json:"formats"`
	BitDepth   int         `json:"bit_depth"`
}

func (s *Server) listEffects(c *gin.Context) {
	def := effects.DefaultConfig()

	resp := effectsResponse{
		Scale:      rangeInfo{Min: effects.MinScale, Max: effects.MaxScale, Default: def.Scale},
		FilterSize: rangeInfo{Min: effects.MinFilterSize, Max: effects.MaxFilterSize, Default: float64(def.FilterSize)},
		Formats:    s.registry.Formats(),
		BitDepth:   s.bitDepth,
	}
	for _, p := range effects.Pitches() {
		resp.Pitches = append(resp.Pitches, pitchInfo{Name: p.String(), Label: p.Label(), Semitones: p.Semitones()})
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) transform(c *gin.Context) {
	limit := s.cfg.MaxUploadBytes
	if c.Request.ContentLength > limit {
		fail(c, http.StatusRequestEntityTooLarge, codeTooLarge,
			fmt.Errorf("upload of %d bytes exceeds %d", c.Request.ContentLength, limit), nil)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			fail(c, http.StatusRequestEntityTooLarge, codeTooLarge, err, nil)
			return
		}
		fail(c, http.StatusBadRequest, codeMissingFile, fmt.Errorf("multipart form: %w", err), nil)
		return
	}

	cfg, err := parseConfig(c)
	if err != nil {
		fail(c, http.StatusBadRequest, codeInvalidConfig, err, configDetails(err))
		return
	}

	data, err := readUpload(c)
	if err != nil {
		fail(c, http.StatusBadRequest, codeMissingFile, err, nil)
		return
	}

	samples, rate, err := audxform.LoadFrom(s.registry, data)
	if err != nil {
		status, code := decodeStatus(err)
		fail(c, status, code, err, nil)
		return
	}

	out, err := audxform.Apply(samples, rate, cfg)
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, codeCorrupt, err, nil)
		return
	}

	body, err := wav.EncodeBytes(rate, s.bitDepth, out)
	if err != nil {
		fail(c, http.StatusInternalServerError, codeInternal, err, nil)
		return
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  c.GetString(ctxRequestID),
		"sample_rate": rate,
		"samples":     len(out),
		"pitch":       cfg.Pitch.String(),
		"scale":       cfg.Scale,
		"reflect":     cfg.Reflect,
		"reverse":     cfg.Reverse,
		"filter_size": cfg.FilterSize,
	}).Info("transformed upload")

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, outputFilename))
	c.Data(http.StatusOK, "audio/wav", body)
}

// parseConfig reads the effect fields of the parsed form. Missing fields
// keep their defaults.
func parseConfig(c *gin.Context) (effects.Config, error) {
	cfg := effects.DefaultConfig()

	if v, ok := c.GetPostForm("pitch"); ok {
		p, err := effects.ParsePitch(v)
		if err != nil {
			return cfg, err
		}
		cfg.Pitch = p
	}

	if v, ok := c.GetPostForm("scale"); ok && v != "" {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return cfg, &effects.ConfigError{Field: "scale", Value: v, Reason: "not a number"}
		}
		cfg.Scale = f
	}

	for _, b := range []struct {
		field string
		dst   *bool
	}{
		{"reflect", &cfg.Reflect},
		{"reverse", &cfg.Reverse},
	} {
		v, ok := c.GetPostForm(b.field)
		if !ok || v == "" {
			continue
		}
		on, err := parseBool(v)
		if err != nil {
			return cfg, &effects.ConfigError{Field: b.field, Value: v, Reason: "not a boolean"}
		}
		*b.dst = on
	}

	if v, ok := c.GetPostForm("filter_size"); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, &effects.ConfigError{Field: "filter_size", Value: v, Reason: "not an integer"}
		}
		cfg.FilterSize = n
	}

	return cfg, cfg.Validate()
}

// parseBool accepts strconv.ParseBool values and the "on" / "off" sent by
// HTML checkboxes.
func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}

	return strconv.ParseBool(v)
}

func readUpload(c *gin.Context) ([]byte, error) {
	fh, err := c.FormFile(formFile)
	if err != nil {
		return nil, fmt.Errorf("form field %q: %w", formFile, err)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("opening upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	return data, nil
}

func decodeStatus(err error) (int, string) {
	switch {
	case errors.Is(err, audio.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType, codeUnsupported
	case errors.Is(err, audio.ErrCorruptData), errors.Is(err, io.ErrNoProgress):
		return http.StatusUnprocessableEntity, codeCorrupt
	default:
		return http.StatusInternalServerError, codeInternal
	}
}

func configDetails(err error) map[string]any {
	var cerr *effects.ConfigError
	if !errors.As(err, &cerr) {
		return nil
	}

	return map[string]any{"field": cerr.Field}
}
