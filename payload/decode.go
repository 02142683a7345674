// SPDX-License-Identifier: MIT

package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tempus/core"
	"github.com/katalvlaran/tempus/interval"
)

// Format names a request encoding.
type Format int

const (
	// FormatJSON is encoding/json with unknown fields rejected.
	FormatJSON Format = iota
	// FormatYAML is gopkg.in/yaml.v3 with unknown fields rejected.
	FormatYAML
	// FormatHCL is HCL native syntax with edge, node and options blocks.
	FormatHCL
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatHCL:
		return "hcl"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from a file extension:
// .json, .yaml / .yml or .hcl (case-insensitive).
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load reads and decodes the request file at path. It does not validate.
func Load(path string) (*Request, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("payload: read %s: %w", path, err)
	}

	return decodeBytes(src, format, path)
}

// Decode parses a request in the given format from r. It does not validate.
func Decode(r io.Reader, format Format) (*Request, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("payload: read: %w", err)
	}

	return decodeBytes(src, format, "request."+format.String())
}

func decodeBytes(src []byte, format Format, name string) (*Request, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(src)
	case FormatYAML:
		return decodeYAML(src)
	case FormatHCL:
		return decodeHCL(src, name)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

func decodeJSON(src []byte) (*Request, error) {
	dec := json.NewDecoder(bytes.NewReader(src))
	dec.DisallowUnknownFields()

	var req Request
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: json: %w", ErrMalformedInput, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, malformedf("json: unexpected content after the request object")
	}

	return &req, nil
}

func decodeYAML(src []byte) (*Request, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var req Request
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: yaml: %w", ErrMalformedInput, err)
	}

	return &req, nil
}

// hclFile mirrors Request in HCL block form.
type hclFile struct {
	Edges   []*hclEdge  `hcl:"edge,block"`
	Nodes   []*hclNode  `hcl:"node,block"`
	Options *hclOptions `hcl:"options,block"`
}

type hclEdge struct {
	Source   int64     `hcl:"source"`
	Target   int64     `hcl:"target"`
	Interval []float64 `hcl:"interval,optional"`
	Minutes  *float64  `hcl:"minutes,optional"`
	Action   *string   `hcl:"action,optional"`
}

type hclNode struct {
	ID    int64  `hcl:"id"`
	Label string `hcl:"label"`
}

type hclOptions struct {
	ImplicitIntervals    *bool    `hcl:"implicit_intervals,optional"`
	ExecutionUncertainty *float64 `hcl:"execution_uncertainty,optional"`
	Duplicates           *string  `hcl:"duplicates,optional"`
}

func decodeHCL(src []byte, name string) (*Request, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: hcl: %s", ErrMalformedInput, diags.Error())
	}

	var parsed hclFile
	if diags = gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("%w: hcl: %s", ErrMalformedInput, diags.Error())
	}

	req := &Request{}
	for i, e := range parsed.Edges {
		spec := EdgeSpec{
			Source:  core.TimePoint(e.Source),
			Target:  core.TimePoint(e.Target),
			Minutes: e.Minutes,
		}
		if e.Interval != nil {
			iv, err := interval.FromPair(e.Interval)
			if err != nil {
				return nil, fmt.Errorf("%w: hcl: edge %d: %w", ErrMalformedInput, i, err)
			}
			spec.Interval = &iv
		}
		if e.Action != nil {
			spec.Action = *e.Action
		}
		req.Edges = append(req.Edges, spec)
	}
	for _, n := range parsed.Nodes {
		req.Nodes = append(req.Nodes, NodeSpec{ID: core.TimePoint(n.ID), Label: n.Label})
	}
	if o := parsed.Options; o != nil {
		if o.ImplicitIntervals != nil {
			req.Options.ImplicitIntervals = *o.ImplicitIntervals
		}
		req.Options.ExecutionUncertainty = o.ExecutionUncertainty
		if o.Duplicates != nil {
			req.Options.Duplicates = *o.Duplicates
		}
	}

	return req, nil
}
