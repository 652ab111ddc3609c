// Package config loads camera configuration from YAML, with optional live
// reload backed by fsnotify.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vantage2d/vantage"
)

// Boundaries mirrors vantage.Boundaries for YAML. Omitted sides stay at the
// defaults; use .inf / -.inf for open sides.
type Boundaries struct {
	MinX float64 `yaml:"minX"`
	MinY float64 `yaml:"minY"`
	MaxX float64 `yaml:"maxX"`
	MaxY float64 `yaml:"maxY"`
}

// Options is the full set of recognized camera options. Zero values are
// filled from Default before parsing, so a partial file only overrides what
// it names.
type Options struct {
	ViewPortWidth  float64    `yaml:"viewPortWidth"`
	ViewPortHeight float64    `yaml:"viewPortHeight"`
	Boundaries     Boundaries `yaml:"boundaries"`
	MinZoom        float64    `yaml:"minZoom"`
	MaxZoom        float64    `yaml:"maxZoom"`
	MinRotation    float64    `yaml:"minRotation"`
	MaxRotation    float64    `yaml:"maxRotation"`
	RotationBound  bool       `yaml:"rotationBound"`

	LimitEntireViewPort bool `yaml:"limitEntireViewPort"`
	RestrictX           bool `yaml:"restrictXTranslation"`
	RestrictY           bool `yaml:"restrictYTranslation"`
	RestrictRelativeX   bool `yaml:"restrictRelativeXTranslation"`
	RestrictRelativeY   bool `yaml:"restrictRelativeYTranslation"`
	RestrictZoom        bool `yaml:"restrictZoom"`
	ClampZoom           bool `yaml:"clampZoom"`
	RestrictRotation    bool `yaml:"restrictRotation"`
	ClampRotation       bool `yaml:"clampRotation"`
}

// Default returns the documented defaults: 1000×1000 viewport, ±10000
// boundaries, zoom 0.1–10, unbounded rotation, viewport-fit panning,
// clamped zoom and rotation, nothing restricted.
func Default() Options {
	return Options{
		ViewPortWidth:  vantage.DefaultViewPortWidth,
		ViewPortHeight: vantage.DefaultViewPortHeight,
		Boundaries: Boundaries{
			MinX: -vantage.DefaultBoundary,
			MinY: -vantage.DefaultBoundary,
			MaxX: vantage.DefaultBoundary,
			MaxY: vantage.DefaultBoundary,
		},
		MinZoom:             vantage.DefaultMinZoom,
		MaxZoom:             vantage.DefaultMaxZoom,
		LimitEntireViewPort: true,
		ClampZoom:           true,
		ClampRotation:       true,
	}
}

// Parse unmarshals YAML over the defaults, so omitted fields keep their
// default values.
func Parse(data []byte) (Options, error) {
	opts := Default()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parse camera options: %w", err)
	}
	return opts, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read camera options: %w", err)
	}
	return Parse(data)
}

// Apply pushes the options onto a camera and its rig. A nil rig applies
// only the camera-side options.
func (o Options) Apply(cam *vantage.Camera, rig *vantage.CameraRig) {
	cam.SetViewPortSize(o.ViewPortWidth, o.ViewPortHeight)
	cam.SetBoundaries(vantage.Boundaries{
		MinX: o.Boundaries.MinX,
		MinY: o.Boundaries.MinY,
		MaxX: o.Boundaries.MaxX,
		MaxY: o.Boundaries.MaxY,
	})
	cam.SetZoomBoundaries(vantage.Range{Min: o.MinZoom, Max: o.MaxZoom})
	if o.RotationBound {
		cam.SetRotationBoundaries(vantage.Range{Min: o.MinRotation, Max: o.MaxRotation})
	}
	if rig == nil {
		return
	}
	rig.SetPanPolicy(vantage.PanConfig{
		RestrictX:           o.RestrictX,
		RestrictY:           o.RestrictY,
		RestrictRelativeX:   o.RestrictRelativeX,
		RestrictRelativeY:   o.RestrictRelativeY,
		LimitEntireViewPort: o.LimitEntireViewPort,
	})
	rig.SetZoomPolicy(vantage.ZoomConfig{Restrict: o.RestrictZoom, Clamp: o.ClampZoom})
	rig.SetRotationPolicy(vantage.RotationConfig{Restrict: o.RestrictRotation, Clamp: o.ClampRotation})
}
