package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/plotgrid/plotgrid/pkg/cache"
	"github.com/plotgrid/plotgrid/pkg/dataset"
	"github.com/plotgrid/plotgrid/pkg/engine"
	"github.com/plotgrid/plotgrid/pkg/errors"
	"github.com/plotgrid/plotgrid/pkg/pipeline"
	"github.com/plotgrid/plotgrid/pkg/series"
)

// maxBodyBytes bounds request bodies to keep a single request from
// exhausting memory.
const maxBodyBytes = 8 << 20

// NormalizeRequest carries an inline dataset and pipeline options.
// The dataset document uses the same format the CLI reads from disk.
type NormalizeRequest struct {
	Dataset json.RawMessage `json:"dataset"`
	Kind    string          `json:"kind,omitempty"`
	Width   float64         `json:"width,omitempty"`
	Height  float64         `json:"height,omitempty"`

	SlotFill float64 `json:"slot_fill,omitempty"`
	Quantize float64 `json:"quantize,omitempty"`
}

// NormalizeResponse carries the computed layout.
type NormalizeResponse struct {
	DatasetHash string        `json:"dataset_hash"`
	Layout      engine.Layout `json:"layout"`
	CacheHit    bool          `json:"cache_hit"`
}

// RenderRequest extends NormalizeRequest with render options.
type RenderRequest struct {
	NormalizeRequest
	Formats []string `json:"formats,omitempty"`
	Theme   string   `json:"theme,omitempty"`
}

// RenderResponse carries rendered artifacts keyed by format. Artifact bytes
// are base64-encoded in the JSON body.
type RenderResponse struct {
	DatasetHash string            `json:"dataset_hash"`
	Artifacts   map[string][]byte `json:"artifacts"`
	CacheHit    bool              `json:"cache_hit"`
}

// pipelineOptions translates the request into pipeline options.
func (req *NormalizeRequest) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		Kind:     req.Kind,
		Width:    req.Width,
		Height:   req.Height,
		SlotFill: req.SlotFill,
		Quantize: req.Quantize,
	}
}

func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	var req NormalizeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ds, hash, ok := s.decodeDataset(w, req.Dataset)
	if !ok {
		return
	}

	opts := req.pipelineOptions()
	layout, hit, err := s.runner.NormalizeWithCacheInfo(r.Context(), ds, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, NormalizeResponse{
		DatasetHash: hash,
		Layout:      layout,
		CacheHit:    hit,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ds, hash, ok := s.decodeDataset(w, req.Dataset)
	if !ok {
		return
	}

	opts := req.pipelineOptions()
	opts.Formats = req.Formats
	opts.Theme = req.Theme

	layout, _, err := s.runner.NormalizeWithCacheInfo(r.Context(), ds, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	artifacts, hit, err := s.runner.RenderWithCacheInfo(r.Context(), layout, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, RenderResponse{
		DatasetHash: hash,
		Artifacts:   artifacts,
		CacheHit:    hit,
	})
}

// decodeDataset parses the inline dataset document and computes its hash.
// On failure it writes the error response and returns ok=false.
func (s *Server) decodeDataset(w http.ResponseWriter, raw json.RawMessage) (series.Dataset, string, bool) {
	if len(raw) == 0 {
		writeError(w, errors.New(errors.ErrCodeInvalidDataset, "dataset is required"))
		return nil, "", false
	}
	ds, err := dataset.ReadJSON(bytes.NewReader(raw))
	if err != nil {
		writeError(w, err)
		return nil, "", false
	}

	var hash string
	if canonical, err := dataset.Canonical(ds); err == nil {
		hash = cache.Hash(canonical)
	}
	return ds, hash, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body"))
		return false
	}
	return true
}
