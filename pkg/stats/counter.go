package stats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// NameCount is one (name, occurrences) entry of a finalized bucket.
type NameCount struct {
	Name  string
	Count int
}

// NameCounts is a finalized bucket: descending by count, ties in
// first-insertion order. It marshals as an ordered JSON/YAML mapping so
// the rank order survives serialization.
type NameCounts []NameCount

// MarshalJSON emits the counts as a JSON object whose keys appear in
// rank order.
func (nc NameCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, entry := range nc {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(entry.Name)
		if err != nil {
			return nil, fmt.Errorf("stats: marshal name %q: %w", entry.Name, err)
		}

		buf.Write(key)
		fmt.Fprintf(&buf, ":%d", entry.Count)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON restores the counts from an ordered JSON object.
func (nc *NameCounts) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("stats: decode counts: %w", err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("stats: decode counts: expected object, got %v", tok)
	}

	*nc = (*nc)[:0]

	for dec.More() {
		keyTok, keyErr := dec.Token()
		if keyErr != nil {
			return fmt.Errorf("stats: decode counts key: %w", keyErr)
		}

		name, _ := keyTok.(string)

		var count int

		decodeErr := dec.Decode(&count)
		if decodeErr != nil {
			return fmt.Errorf("stats: decode count for %q: %w", name, decodeErr)
		}

		*nc = append(*nc, NameCount{Name: name, Count: count})
	}

	return nil
}

// MarshalYAML emits the counts as an ordered YAML mapping.
func (nc NameCounts) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, entry := range nc {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: entry.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprintf("%d", entry.Count)},
		)
	}

	return node, nil
}

// Total sums all counts in the bucket.
func (nc NameCounts) Total() int {
	total := 0
	for _, entry := range nc {
		total += entry.Count
	}

	return total
}

// Get returns the count for name, or 0 when absent.
func (nc NameCounts) Get(name string) int {
	for _, entry := range nc {
		if entry.Name == name {
			return entry.Count
		}
	}

	return 0
}

// NameCounter accumulates occurrences while remembering first-insertion
// order, which later breaks ties in the sorted views.
type NameCounter struct {
	counts map[string]int
	order  []string
}

// NewNameCounter returns an empty counter.
func NewNameCounter() *NameCounter {
	return &NameCounter{counts: make(map[string]int)}
}

// Inc adds one occurrence of name.
func (c *NameCounter) Inc(name string) {
	if _, seen := c.counts[name]; !seen {
		c.order = append(c.order, name)
	}

	c.counts[name]++
}

// Len returns the number of distinct names seen.
func (c *NameCounter) Len() int {
	return len(c.counts)
}

// Sorted finalizes the counter: descending by count, equal counts keep
// first-insertion order.
func (c *NameCounter) Sorted() NameCounts {
	out := make(NameCounts, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, NameCount{Name: name, Count: c.counts[name]})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	return out
}
