package codec

import (
	"gopkg.in/yaml.v3"

	skemawire "github.com/reoring/skemawire"
)

type yamlCodec struct{}

// YAML returns a yaml.v3 codec that keeps Object member order.
func YAML() Codec { return yamlCodec{} }

func (yamlCodec) ContentType() string { return "application/yaml" }

func (yamlCodec) Marshal(v any) ([]byte, error) {
	n, err := toYAMLNode(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(n)
}

func toYAMLNode(v any) (*yaml.Node, error) {
	switch t := v.(type) {
	case skemawire.Object:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, m := range t {
			vn, err := toYAMLNode(m.Value)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.Key}, vn)
		}
		return n, nil
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range t {
			en, err := toYAMLNode(e)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, en)
		}
		return n, nil
	case numberLike:
		tag := "!!float"
		if _, err := t.Int64(); err == nil {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: t.String()}, nil
	}
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return n, nil
}
