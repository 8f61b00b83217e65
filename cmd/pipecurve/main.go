/*
Command pipecurve builds the centerline of a pipe run from control points
and prints its curvature analysis.

	pipecurve                         # analyse the built-in S-shaped run
	pipecurve --input points.json -o text
	pipecurve --url http://host/points.json --samples 400
	pipecurve layers                  # material table of the wall layers

Control points are read as a JSON array of {"x","y","z"} objects. Options may
be given in a configuration file (--config), with keys like curve.tension,
curve.kind, analysis.samples or connectors.explode; flags take precedence.

# BSD License

# Copyright (c) The tubelab authors

All rights reserved.

Please refer to the license file for more information.
*/
package main

import (
	"fmt"
	"os"
)

// Version is injected at build time.
var Version = "dev"

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
