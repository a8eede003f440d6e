package scene

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type yamlNode struct {
	Tag      string         `yaml:"tag"`
	Props    map[string]any `yaml:"props"`
	Children []*yamlNode    `yaml:"children"`
}

// LoadYAML decodes one declarative tree from a YAML document. Tags are
// not resolved here; an unknown tag surfaces as ErrUnrecognizedTag at
// materialize time.
func LoadYAML(r io.Reader) (*Node, error) {
	dec := yaml.NewDecoder(r)
	var root yamlNode
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return convertYAML(&root)
}

// LoadYAMLFile reads a scene tree from a file.
func LoadYAMLFile(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene %s: %w", path, err)
	}
	defer f.Close()
	n, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return n, nil
}

func convertYAML(y *yamlNode) (*Node, error) {
	if y.Tag == "" {
		return nil, fmt.Errorf("scene node without tag")
	}
	n := &Node{Tag: y.Tag, Props: y.Props}
	for _, c := range y.Children {
		child, err := convertYAML(c)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}
