// Package wordpool loads the word pool document.
//
// A pool document maps category IDs to a color and an ordered word list:
//
//	{"animals": {"color": "blue", "words": ["cat", "dog"]}}
//
// JSON and YAML are both accepted. A document starting with "{" is read as
// JSON, anything else as YAML. Category order in the document is kept.
package wordpool

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/wordpick/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed default.json
var defaultDocument []byte

type categoryDoc struct {
	Color string   `json:"color" yaml:"color"`
	Words wordList `json:"words" yaml:"words"`
}

// wordList only accepts a list of strings; numbers, booleans and nulls are
// rejected rather than converted.
type wordList []string

func (w *wordList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.New("words must be a list of strings")
	}
	words := make([]string, 0, len(raw))
	for i, item := range raw {
		var word string
		if bytes.Equal(bytes.TrimSpace(item), []byte("null")) || json.Unmarshal(item, &word) != nil {
			return fmt.Errorf("word %d is not a string", i+1)
		}
		words = append(words, word)
	}
	*w = words
	return nil
}

func (w *wordList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: words must be a list of strings", value.Line)
	}
	words := make([]string, 0, len(value.Content))
	for i, item := range value.Content {
		if item.Kind != yaml.ScalarNode || item.ShortTag() != "!!str" {
			return fmt.Errorf("line %d: word %d is not a string", item.Line, i+1)
		}
		words = append(words, item.Value)
	}
	*w = words
	return nil
}

// Default returns the built-in pool.
func Default() (*domain.Pool, error) {
	pool, err := Parse(bytes.NewReader(defaultDocument))
	if err != nil {
		return nil, fmt.Errorf("built-in pool: %w", err)
	}
	return pool, nil
}

// Load reads a pool document from path, or the built-in pool when path is empty.
func Load(path string) (*domain.Pool, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pool file: %w", err)
	}
	defer f.Close()

	pool, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("pool file %s: %w", path, err)
	}
	return pool, nil
}

// Parse decodes a pool document. Structural problems wrap domain.ErrInvalidPool.
func Parse(r io.Reader) (*domain.Pool, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading pool document: %w", err)
	}
	var categories []domain.Category
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		categories, err = parseJSON(data)
	} else {
		categories, err = parseYAML(data)
	}
	if err != nil {
		return nil, err
	}
	return domain.NewPool(categories)
}

// parseJSON walks the top-level object token by token so category order
// survives decoding.
func parseJSON(data []byte) ([]domain.Category, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPool, err)
	}

	var categories []domain.Category
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPool, err)
		}
		id, _ := tok.(string)

		var cd categoryDoc
		if err := dec.Decode(&cd); err != nil {
			return nil, fmt.Errorf("%w: category %q: %v", domain.ErrInvalidPool, id, err)
		}
		categories = append(categories, domain.Category{
			ID:    id,
			Color: domain.Color(cd.Color),
			Words: cd.Words,
		})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPool, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after the top-level object", domain.ErrInvalidPool)
	}
	return categories, nil
}

func parseYAML(data []byte) ([]domain.Category, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPool, err)
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", domain.ErrInvalidPool)
	}

	doc := &root
	if doc.Kind == yaml.DocumentNode {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping of categories", domain.ErrInvalidPool)
	}

	categories := make([]domain.Category, 0, len(doc.Content)/2)
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]

		var cd categoryDoc
		if err := value.Decode(&cd); err != nil {
			return nil, fmt.Errorf("%w: category %q (line %d): %v", domain.ErrInvalidPool, key.Value, value.Line, err)
		}
		categories = append(categories, domain.Category{
			ID:    key.Value,
			Color: domain.Color(cd.Color),
			Words: cd.Words,
		})
	}
	return categories, nil
}
