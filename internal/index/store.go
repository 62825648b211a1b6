package index

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ErrMultipleDocuments is returned for an index file holding more than one
// YAML document.
var ErrMultipleDocuments = errors.New("expected a single document, found more than one")

// Record is one entry of an index file. Field order is the serialized order.
type Record struct {
	Name string `yaml:"name"`
	Link string `yaml:"link"`
}

// Outcome reports what AddEntry did.
type Outcome int

const (
	// Added means the record was appended and the file rewritten.
	Added Outcome = iota
	// Duplicate means a record with the same name exists; the file is untouched.
	Duplicate
)

func (o Outcome) String() string {
	switch o {
	case Added:
		return "added"
	case Duplicate:
		return "duplicate"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Store reads and appends to index files.
type Store struct {
	Logger *slog.Logger
}

// NewStore returns a Store logging to logger, or slog.Default() when nil.
func NewStore(logger *slog.Logger) *Store {
	return &Store{Logger: logger}
}

func (s *Store) logger() *slog.Logger {
	if s == nil || s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

// AddEntry appends {name, link} to the index at path unless a record named
// name already exists. A missing file is treated as an empty index and is
// created. Read, parse and write failures are returned as errors.
func (s *Store) AddEntry(path, name, link string) (Outcome, error) {
	doc, err := s.loadDocument(path)
	if err != nil {
		return 0, err
	}

	seq := doc.Content[0]
	for _, item := range seq.Content {
		if v, ok := mappingValue(item, "name"); ok && v == name {
			s.logger().Debug("index entry exists", "path", path, "name", name)
			return Duplicate, nil
		}
	}

	seq.Content = append(seq.Content, recordNode(Record{Name: name, Link: link}))
	clearFlowStyle(doc)

	if err := writeDocument(path, doc); err != nil {
		return 0, err
	}
	s.logger().Debug("index entry added", "path", path, "name", name, "link", link, "records", len(seq.Content))
	return Added, nil
}

// Load returns the records of the index at path in file order. A missing
// file yields an empty slice.
func (s *Store) Load(path string) ([]Record, error) {
	doc, err := s.loadDocument(path)
	if err != nil {
		return nil, err
	}

	var records []Record
	if err := doc.Content[0].Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding index %s: %w", path, err)
	}
	return records, nil
}

// loadDocument returns a document node whose single child is the record
// sequence.
func (s *Store) loadDocument(path string) (*yaml.Node, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger().Debug("index missing, starting empty", "path", path)
		return emptyDocument(""), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading index %s: %w", path, err)
	}

	var doc yaml.Node
	err = decodeSingle(data, &doc)
	if errors.Is(err, io.EOF) {
		return emptyDocument(leadingComments(data)), nil
	}
	if err != nil {
		return nil, fmt.Errorf("parsing index %s: %w", path, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return emptyDocument(leadingComments(data)), nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return emptyDocument(leadingComments(data)), nil
	}

	var raw interface{}
	if err := root.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing index %s: %w", path, err)
	}
	result, err := validateValue(raw)
	if err != nil {
		return nil, fmt.Errorf("validating index %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("index %s is not a list of name/link records: %s", path, result.Summary())
	}
	return &doc, nil
}

func writeDocument(path string, doc *yaml.Node) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding index %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding index %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating index directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing index %s: %w", path, err)
	}
	return nil
}

// decodeSingle decodes the only document in data into out. Input with no
// document returns io.EOF.
func decodeSingle(data []byte, out interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(out); err != nil {
		return err
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return err
		}
		return ErrMultipleDocuments
	}
	return nil
}

// emptyDocument returns a document holding an empty sequence. comment, if
// set, is carried over as the sequence's head comment.
func emptyDocument(comment string) *yaml.Node {
	return &yaml.Node{
		Kind: yaml.DocumentNode,
		Content: []*yaml.Node{{
			Kind:        yaml.SequenceNode,
			Tag:         "!!seq",
			HeadComment: comment,
		}},
	}
}

// leadingComments returns the comment lines at the top of data.
func leadingComments(data []byte) string {
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "#") {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func recordNode(r Record) *yaml.Node {
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
		Content: []*yaml.Node{
			strNode("name"), strNode(r.Name),
			strNode("link"), strNode(r.Link),
		},
	}
}

func strNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

// mappingValue returns the scalar value stored under key in a mapping node.
func mappingValue(n *yaml.Node, key string) (string, bool) {
	if n.Kind != yaml.MappingNode {
		return "", false
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Value == key && v.Kind == yaml.ScalarNode {
			return v.Value, true
		}
	}
	return "", false
}

// clearFlowStyle forces block style throughout so the rewritten file is
// never compacted into [..] or {..} form.
func clearFlowStyle(n *yaml.Node) {
	n.Style &^= yaml.FlowStyle
	for _, c := range n.Content {
		clearFlowStyle(c)
	}
}
