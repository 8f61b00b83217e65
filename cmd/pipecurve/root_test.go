package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const points = `[{"x":0,"y":0,"z":0},{"x":50,"y":0,"z":0},{"x":100,"y":30,"z":0},{"x":150,"y":30,"z":40}]`

func execute(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// value of a "name  value" line of the text summary
func summaryValue(t *testing.T, out, name string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, name+" ") {
			return strings.TrimSpace(strings.TrimPrefix(line, name))
		}
	}
	t.Fatalf("no line %q in output:\n%s", name, out)
	return ""
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultCenterlineAsJSON(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	defer trace2go.Teardown()
	out, err := execute(t, nil)
	require.NoError(t, err)
	var doc struct {
		Knots          [][3]float64             `json:"knots"`
		Centerline     [][3]float64             `json:"centerline"`
		CriticalPoints []map[string]interface{} `json:"criticalPoints"`
		Degree         float64                  `json:"degree"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc.Knots, 6)
	assert.Len(t, doc.Centerline, 201)
	assert.NotEmpty(t, doc.CriticalPoints)
	assert.Greater(t, doc.Degree, 0.0)
}

func TestInputFileAsText(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	defer trace2go.Teardown()
	input := writeFile(t, "points.json", points)
	out, err := execute(t, nil, "--input", input, "-o", "text", "--tension", "0.3")
	require.NoError(t, err)
	assert.Equal(t, "4", summaryValue(t, out, "knots"))
	assert.Equal(t, "0.3", summaryValue(t, out, "tension"))
	assert.Equal(t, "centripetal", summaryValue(t, out, "kind"))
}

func TestStdin(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	defer trace2go.Teardown()
	out, err := execute(t, strings.NewReader(points), "-i", "-", "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "4", summaryValue(t, out, "knots"))
}

func TestConfigFile(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	defer trace2go.Teardown()
	conf := writeFile(t, "pipecurve.yaml", "curve:\n  kind: uniform\n  tension: 0.25\nanalysis:\n  samples: 50\n")
	out, err := execute(t, nil, "--config", conf, "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "uniform", summaryValue(t, out, "kind"))
	assert.Equal(t, "0.25", summaryValue(t, out, "tension"))

	out, err = execute(t, nil, "--config", conf, "-o", "text", "--kind", "chordal")
	require.NoError(t, err)
	assert.Equal(t, "chordal", summaryValue(t, out, "kind"))
	assert.Equal(t, "0.25", summaryValue(t, out, "tension"))

	_, err = execute(t, nil, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFetchFromURL(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	defer trace2go.Teardown()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/points.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(points))
	}))
	defer srv.Close()
	out, err := execute(t, nil, "--url", srv.URL+"/points.json", "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "4", summaryValue(t, out, "knots"))

	_, err = execute(t, nil, "--url", srv.URL+"/other.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestRejectedInvocations(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	defer trace2go.Teardown()
	_, err := execute(t, nil, "--input", "a.json", "--url", "http://localhost/b.json")
	assert.True(t, errors.Is(err, ErrConflictingSources))
	_, err = execute(t, nil, "-o", "yaml")
	assert.Error(t, err)
	_, err = execute(t, nil, "surplus")
	assert.Error(t, err)
}

func TestLayersCommand(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	defer trace2go.Teardown()
	out, err := execute(t, nil, "layers", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Inconel 625")
	assert.Contains(t, out, "Aço Carbono A106")

	out, err = execute(t, nil, "layers")
	require.NoError(t, err)
	var table []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &table))
	assert.Len(t, table, 4)
	assert.Equal(t, "outer", table[0]["layer"])
}
