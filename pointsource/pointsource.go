/*
Package pointsource loads centerline control points from JSON documents.

The expected document is an array of objects with numeric members x, y and z:

	[ {"x": 0, "y": 0, "z": 0}, {"x": 60, "y": 0, "z": 0}, … ]

Missing or non-numeric members are read as 0, as are array elements which
are not objects. Loading errors are returned to the caller; geometry code
never sees them and falls back to its default centerline for empty input.

# BSD License

# Copyright (c) The tubelab authors

All rights reserved.

Please refer to the license file for more information.
*/
package pointsource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/ungerik/go3d/float64/vec3"
)

// tracer writes to trace with key 'pointsource'
func tracer() tracing.Trace {
	return tracing.Select("pointsource")
}

// ErrDecode is returned for documents which are not a JSON array.
var ErrDecode = errors.New("cannot decode control points")

// HTTPError reports a non-2xx response of a point source.
type HTTPError struct {
	URL        string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("fetching control points from %s: HTTP %d", e.URL, e.StatusCode)
}

// Decode reads an array of control points from r.
func Decode(r io.Reader) ([]vec3.T, error) {
	var elems []json.RawMessage
	if err := json.NewDecoder(r).Decode(&elems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	pts := make([]vec3.T, len(elems))
	for i, raw := range elems {
		var obj map[string]interface{}
		if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
			tracer().Debugf("control point %d is not an object, using origin", i)
			continue
		}
		pts[i] = vec3.T{number(obj["x"]), number(obj["y"]), number(obj["z"])}
	}
	tracer().Debugf("decoded %d control points", len(pts))
	return pts, nil
}

func number(v interface{}) float64 {
	if f, ok := v.(float64); ok {
		return f
	}
	return 0
}

// ReadFile reads control points from a JSON file.
func ReadFile(name string) ([]vec3.T, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	pts, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return pts, nil
}

// Fetch loads control points from url. If client is nil,
// http.DefaultClient is used.
func Fetch(ctx context.Context, client *http.Client, url string) ([]vec3.T, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		tracer().Errorf("failed to fetch points: %v", err)
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := &HTTPError{URL: url, StatusCode: resp.StatusCode}
		tracer().Errorf("failed to fetch points: %v", err)
		return nil, err
	}
	pts, err := Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	return pts, nil
}
