package model

import (
	"encoding/json"
	"fmt"
	"os"

	"careerpath/internal/domain"
)

// Classifier evaluates the pre-trained job-role decision tree. It is loaded
// once at startup and is read-only afterwards, so a single instance is safe
// for concurrent use.
type Classifier struct {
	features int
	labels   []string
	nodes    []treeNode
}

type treeNode struct {
	// Leaf nodes carry a label; internal nodes carry a split.
	Label     string  `json:"label,omitempty"`
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
}

type artifact struct {
	Version  int        `json:"version"`
	Features int        `json:"features"`
	Labels   []string   `json:"labels"`
	Nodes    []treeNode `json:"nodes"`
}

const artifactVersion = 1

// Load reads and validates a serialized classifier. Any error here means no
// prediction can ever succeed, so callers treat it as fatal.
func Load(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}

	if a.Version != artifactVersion {
		return nil, fmt.Errorf("unsupported model artifact version %d", a.Version)
	}
	if a.Features <= 0 {
		return nil, fmt.Errorf("model artifact declares %d features", a.Features)
	}
	if len(a.Nodes) == 0 {
		return nil, fmt.Errorf("model artifact has no nodes")
	}
	for _, label := range a.Labels {
		if !domain.KnownJobRole(label) {
			return nil, fmt.Errorf("model artifact label %q is not a known job role", label)
		}
	}

	labelSet := make(map[string]struct{}, len(a.Labels))
	for _, label := range a.Labels {
		labelSet[label] = struct{}{}
	}

	for i, n := range a.Nodes {
		if n.Label != "" {
			if _, ok := labelSet[n.Label]; !ok {
				return nil, fmt.Errorf("node %d: leaf label %q not in label set", i, n.Label)
			}
			continue
		}
		if n.Feature < 0 || n.Feature >= a.Features {
			return nil, fmt.Errorf("node %d: feature index %d out of range", i, n.Feature)
		}
		// Node 0 is the root, so no split may point at it.
		if n.Left <= 0 || n.Left >= len(a.Nodes) || n.Right <= 0 || n.Right >= len(a.Nodes) {
			return nil, fmt.Errorf("node %d: child index out of range", i)
		}
	}

	return &Classifier{
		features: a.Features,
		labels:   append([]string(nil), a.Labels...),
		nodes:    a.Nodes,
	}, nil
}

// Features returns the expected feature vector length.
func (c *Classifier) Features() int {
	return c.features
}

// Labels returns the labels the model can emit.
func (c *Classifier) Labels() []string {
	return append([]string(nil), c.labels...)
}

// Predict walks the tree for one feature vector and returns the leaf label.
// A malformed vector fails the call only, never the process.
func (c *Classifier) Predict(vector []float64) (string, error) {
	if len(vector) != c.features {
		return "", fmt.Errorf("feature vector has %d entries, model expects %d", len(vector), c.features)
	}

	idx := 0
	// A well-formed tree visits each node at most once.
	for steps := 0; steps <= len(c.nodes); steps++ {
		n := c.nodes[idx]
		if n.Label != "" {
			return n.Label, nil
		}
		if vector[n.Feature] <= n.Threshold {
			idx = n.Left
		} else {
			idx = n.Right
		}
	}
	return "", fmt.Errorf("model tree walk did not terminate")
}
