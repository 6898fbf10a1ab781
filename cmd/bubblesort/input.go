package main

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nobletooth/primer/pkg/sorting"
	"gopkg.in/yaml.v3"
)

var errNotSequence = errors.New("input must be a sequence of values inside '[]'")

// sequence is a homogeneous list of values read from the user.
type sequence interface {
	sort(descending bool)
	String() string
}

type typedSequence[E cmp.Ordered] struct { // Implements sequence.
	values []E
	format func(E) string
}

var (
	_ sequence = (*typedSequence[int64])(nil)
	_ sequence = (*typedSequence[float64])(nil)
	_ sequence = (*typedSequence[string])(nil)
)

func (s *typedSequence[E]) sort(descending bool) {
	if descending {
		sorting.BubbleFunc(s.values, func(x, y E) int { return cmp.Compare(y, x) })
		return
	}
	sorting.Bubble(s.values)
}

// String renders the values as "[1, 2, 3]".
func (s *typedSequence[E]) String() string {
	parts := make([]string, len(s.values))
	for i, v := range s.values {
		parts[i] = s.format(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// decodeAll decodes every scalar node of `nodes` into a value of type E.
func decodeAll[E cmp.Ordered](nodes []*yaml.Node, format func(E) string) (sequence, error) {
	values := make([]E, len(nodes))
	for i, node := range nodes {
		if err := node.Decode(&values[i]); err != nil {
			return nil, fmt.Errorf("failed to decode value '%s': %w", node.Value, err)
		}
	}
	return &typedSequence[E]{values: values, format: format}, nil
}

// parseSequence parses a flow sequence such as `[5, 3, 1]`, `[1.5, 2]` or `['b', "a"]`.
// Integers mixed with floats are widened to floats; any other mix of kinds is rejected.
func parseSequence(text string) (sequence, error) {
	var document yaml.Node
	if err := yaml.Unmarshal([]byte(text), &document); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}
	if document.Kind != yaml.DocumentNode || len(document.Content) != 1 {
		return nil, errNotSequence
	}
	root := document.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, errNotSequence
	}

	tags := make(map[ /*tag*/ string]int)
	for _, node := range root.Content {
		if node.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("nested values are not supported: line %d column %d", node.Line, node.Column)
		}
		switch tag := node.ShortTag(); tag {
		case "!!int", "!!float", "!!str":
			tags[tag]++
		default:
			return nil, fmt.Errorf("unsupported value '%s' of type %s", node.Value, tag)
		}
	}

	switch {
	case tags["!!str"] > 0 && tags["!!str"] != len(root.Content):
		return nil, errors.New("cannot sort strings mixed with numbers")
	case tags["!!str"] > 0:
		return decodeAll(root.Content, strconv.Quote)
	case tags["!!float"] > 0:
		return decodeAll(root.Content, func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) })
	default:
		return decodeAll(root.Content, func(v int64) string { return strconv.FormatInt(v, 10) })
	}
}
