package movement

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LayerMask is a bitmask of collision layers used to filter oracle queries.
type LayerMask uint32

const (
	LayerGround LayerMask = 1 << iota
	LayerWall
	LayerPlayer
	LayerHazard
)

const LayerNone LayerMask = 0

var layerNames = map[string]LayerMask{
	"ground": LayerGround,
	"wall":   LayerWall,
	"player": LayerPlayer,
	"hazard": LayerHazard,
}

// ParseLayer resolves a single layer name.
func ParseLayer(name string) (LayerMask, error) {
	l, ok := layerNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return LayerNone, fmt.Errorf("movement: unknown layer %q", name)
	}
	return l, nil
}

// Has reports whether any bit of other is set in m.
func (m LayerMask) Has(other LayerMask) bool {
	return m&other != 0
}

// Names lists the named layers set in m, sorted.
func (m LayerMask) Names() []string {
	var out []string
	for name, l := range layerNames {
		if m.Has(l) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func (m LayerMask) String() string {
	if m == LayerNone {
		return "none"
	}
	return strings.Join(m.Names(), "|")
}

// UnmarshalYAML accepts either a raw integer mask or a list of layer names.
func (m *LayerMask) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var raw uint32
		if err := node.Decode(&raw); err == nil {
			*m = LayerMask(raw)
			return nil
		}
		l, err := ParseLayer(node.Value)
		if err != nil {
			return err
		}
		*m = l
		return nil
	case yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return fmt.Errorf("movement: decode layer list: %w", err)
		}
		var mask LayerMask
		for _, name := range names {
			l, err := ParseLayer(name)
			if err != nil {
				return err
			}
			mask |= l
		}
		*m = mask
		return nil
	default:
		return fmt.Errorf("movement: layer mask must be an integer or a list of names")
	}
}
