package records

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/erraggy/restcli/pathtree"
	"go.yaml.in/yaml/v4"
)

// listSeparator joins the items of a sequence attribute value.
const listSeparator = ", "

// converter turns document values into attribute strings: booleans become
// words, null becomes "", sequences are joined and nested mappings are
// flattened into dotted keys.
type converter struct {
	trueWord  string
	falseWord string
}

// resolve follows alias nodes to their anchor.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func (c converter) mappingNode(attrs *pathtree.Attributes, prefix string, n *yaml.Node) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := resolve(n.Content[i]), resolve(n.Content[i+1])
		if key.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: attribute key must be a scalar", key.Line)
		}
		name := joinKey(prefix, key.Value)
		if val.Kind == yaml.MappingNode {
			if err := c.mappingNode(attrs, name, val); err != nil {
				return err
			}
			continue
		}
		s, err := c.node(val)
		if err != nil {
			return fmt.Errorf("attribute %q: %w", name, err)
		}
		attrs.Set(name, s)
	}
	return nil
}

func (c converter) node(n *yaml.Node) (string, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return "", nil
		case "!!bool":
			return c.boolWord(strings.EqualFold(n.Value, "true")), nil
		}
		return n.Value, nil
	case yaml.SequenceNode:
		items := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			item = resolve(item)
			if item.Kind != yaml.ScalarNode {
				return "", fmt.Errorf("line %d: list items must be scalars", item.Line)
			}
			s, err := c.node(item)
			if err != nil {
				return "", err
			}
			items = append(items, s)
		}
		return strings.Join(items, listSeparator), nil
	default:
		return "", fmt.Errorf("line %d: unsupported value", n.Line)
	}
}

func (c converter) mapping(attrs *pathtree.Attributes, prefix string, m map[string]any) error {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if err := c.set(attrs, joinKey(prefix, k), m[k]); err != nil {
			return err
		}
	}
	return nil
}

func (c converter) set(attrs *pathtree.Attributes, name string, v any) error {
	switch val := v.(type) {
	case map[string]any:
		return c.mapping(attrs, name, val)
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, item := range val {
			m[fmt.Sprint(k)] = item
		}
		return c.mapping(attrs, name, m)
	}
	s, err := c.value(v)
	if err != nil {
		return fmt.Errorf("attribute %q: %w", name, err)
	}
	attrs.Set(name, s)
	return nil
}

func (c converter) value(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case bool:
		return c.boolWord(val), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), nil
	case int, int64, uint64, uint, int32:
		return fmt.Sprint(val), nil
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			switch item.(type) {
			case []any, map[string]any, map[any]any:
				return "", fmt.Errorf("list items must be scalars")
			}
			s, err := c.value(item)
			if err != nil {
				return "", err
			}
			items = append(items, s)
		}
		return strings.Join(items, listSeparator), nil
	default:
		return fmt.Sprint(val), nil
	}
}

func (c converter) boolWord(b bool) string {
	if b {
		return c.trueWord
	}
	return c.falseWord
}
