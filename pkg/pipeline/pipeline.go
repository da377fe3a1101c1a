// Package pipeline provides the core rendering pipeline for wiremap.
//
// This package implements the complete load → layout → render pipeline that
// can be used by CLI, API, and editor components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read a mapping document from a file or a document store
//  2. Layout: Compute node rectangles for the document's two columns
//  3. Render: Generate output in various formats (SVG, PNG, DOT, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:   "orders.json",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wiremaphq/wiremap/pkg/cache"
	"github.com/wiremaphq/wiremap/pkg/document"
	"github.com/wiremaphq/wiremap/pkg/errors"
	"github.com/wiremaphq/wiremap/pkg/geometry"
	"github.com/wiremaphq/wiremap/pkg/layout"
	"github.com/wiremaphq/wiremap/pkg/render/wire"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatDOT:  true,
	FormatJSON: true,
}

// Options contains all configuration for the rendering pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options. Exactly one of Input, DocumentID, or the runtime
	// Document field must be set.
	Input      string `json:"input,omitempty"`       // Path to a document JSON file
	DocumentID string `json:"document_id,omitempty"` // Document ID in the store
	StoreDSN   string `json:"store_dsn,omitempty"`   // Store DSN when DocumentID is set
	Refresh    bool   `json:"refresh,omitempty"`     // Bypass cached stage results

	// Layout options
	Layout layout.Options `json:"layout,omitzero"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Style      string   `json:"style,omitempty"`
	Curve      string   `json:"curve,omitempty"`
	StepRadius float64  `json:"step_radius,omitempty"`
	ArrowSize  float64  `json:"arrow_size,omitempty"`
	Headings   bool     `json:"headings,omitempty"`

	// Runtime options (not serialized)
	Document *document.Document `json:"-"`
	Logger   *log.Logger        `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the loaded mapping document.
	Document *document.Document

	// DocumentHash is the content hash of the document.
	DocumentHash string

	// Layout contains the computed node rectangles.
	Layout layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SourceCount int
	TargetCount int
	LinkCount   int
	LoadTime    time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, dot, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks that exactly one document source is configured.
func (o *Options) ValidateForLoad() error {
	sources := 0
	if o.Input != "" {
		sources++
	}
	if o.DocumentID != "" {
		sources++
	}
	if o.Document != nil {
		sources++
	}
	switch {
	case sources == 0:
		return errors.New(errors.ErrCodeInvalidInput, "input, document_id, or document is required")
	case sources > 1:
		return errors.New(errors.ErrCodeInvalidInput, "input, document_id, and document are mutually exclusive")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = wire.StyleSimple
	}
	if o.Curve == "" {
		o.Curve = string(geometry.CurveBezier)
	}
	if o.StepRadius == 0 {
		o.StepRadius = geometry.DefaultStepRadius
	}
	if o.ArrowSize == 0 {
		o.ArrowSize = wire.DefaultArrowSize
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates formats, style, and curve.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if !wire.ValidStyles[o.Style] {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: simple, blueprint)", o.Style)
	}
	if !geometry.ValidCurves[geometry.Curve(o.Curve)] {
		return errors.New(errors.ErrCodeInvalidCurve,
			"invalid curve: %q (must be one of: bezier, smoothstep)", o.Curve)
	}
	return nil
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	opts := o.Layout
	opts.SetDefaults()
	return cache.LayoutKeyOpts{
		NodeWidth:  opts.NodeWidth,
		NodeHeight: opts.NodeHeight,
		ColumnGap:  opts.ColumnGap,
		RowGap:     opts.RowGap,
		Padding:    opts.Padding,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:     format,
		Style:      o.Style,
		Curve:      o.Curve,
		StepRadius: o.StepRadius,
		ArrowSize:  o.ArrowSize,
		Headings:   o.Headings,
	}
}
