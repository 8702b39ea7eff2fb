// Package dotattrs resolves the bracketed attribute strings the DOT
// renderer decorates graphs, nodes, edges, and cluster subgraphs with.
// Environment variables are the baseline source; an optional YAML
// file overlays non-empty fields on top of that baseline.
package dotattrs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Attrs holds the four bracketed attribute strings DOT output uses.
// All fields default to "" (no attributes).
type Attrs struct {
	Graph   string
	Node    string
	Edge    string
	Cluster string
}

const (
	envGraph   = "HOPSCOTCH_DOT_GRAPH_ATTR"
	envNode    = "HOPSCOTCH_DOT_NODE_ATTR"
	envEdge    = "HOPSCOTCH_DOT_EDGE_ATTR"
	envCluster = "HOPSCOTCH_DOT_CLUSTER_ATTR"
)

// FromEnv reads the four HOPSCOTCH_DOT_*_ATTR environment variables,
// defaulting unset ones to "".
func FromEnv() Attrs {
	return Attrs{
		Graph:   os.Getenv(envGraph),
		Node:    os.Getenv(envNode),
		Edge:    os.Getenv(envEdge),
		Cluster: os.Getenv(envCluster),
	}
}

// overlay holds the YAML shape of an attribute overlay file; fields
// left unset in the file (zero value) do not override the baseline.
type overlay struct {
	Graph   string `yaml:"graph"`
	Node    string `yaml:"node"`
	Edge    string `yaml:"edge"`
	Cluster string `yaml:"cluster"`
}

// Load reads path as a YAML overlay and applies its non-empty fields
// on top of base, returning the merged result. base is typically the
// result of FromEnv.
func Load(path string, base Attrs) (Attrs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Attrs{}, fmt.Errorf("read dot attribute overlay %q: %w", path, err)
	}

	var ov overlay
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return Attrs{}, fmt.Errorf("parse dot attribute overlay %q: %w", path, err)
	}

	merged := base
	if ov.Graph != "" {
		merged.Graph = ov.Graph
	}
	if ov.Node != "" {
		merged.Node = ov.Node
	}
	if ov.Edge != "" {
		merged.Edge = ov.Edge
	}
	if ov.Cluster != "" {
		merged.Cluster = ov.Cluster
	}
	return merged, nil
}
