package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"gopkg.in/yaml.v3"

	"github.com/mundrapranay/padbreaker/internal/codec"
)

// Corpus is a set of hex-encoded ciphertexts believed to share one pad,
// plus the target ciphertext to decode with the inferred pad.
type Corpus struct {
	// Target is the ciphertext to decode (optional when ciphertexts are given)
	Target string `yaml:"target" json:"target"`

	// Ciphertexts that were encrypted under the same pad as the target
	Ciphertexts []string `yaml:"ciphertexts" json:"ciphertexts"`

	// ServerAddress of a padbreak-server; when set, breaking runs remotely
	ServerAddress string `yaml:"server_address,omitempty" json:"server_address,omitempty"`
}

// Decoded holds the byte form of a corpus.
type Decoded struct {
	Target      []byte
	Ciphertexts [][]byte

	// Skipped maps the index of every malformed ciphertext to its error.
	Skipped map[int]error
}

// LoadCorpus loads a corpus from a YAML file
func LoadCorpus(filePath string) (*Corpus, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}

	var corpus Corpus
	if err := yaml.Unmarshal(data, &corpus); err != nil {
		return nil, fmt.Errorf("failed to parse corpus file: %w", err)
	}

	if err := corpus.Validate(); err != nil {
		return nil, fmt.Errorf("invalid corpus: %w", err)
	}

	return &corpus, nil
}

// SaveCorpus saves a corpus to a YAML file
func SaveCorpus(corpus *Corpus, filePath string) error {
	data, err := yaml.Marshal(corpus)
	if err != nil {
		return fmt.Errorf("failed to marshal corpus: %w", err)
	}

	return os.WriteFile(filePath, data, 0644)
}

// Validate checks that the corpus has something to break
func (c *Corpus) Validate() error {
	if strings.TrimSpace(c.Target) == "" && len(c.Ciphertexts) == 0 {
		return fmt.Errorf("target or ciphertexts is required")
	}

	for i, ct := range c.Ciphertexts {
		if strings.TrimSpace(ct) == "" {
			return fmt.Errorf("ciphertext %d is empty", i)
		}
	}

	return nil
}

// Duplicates returns the ciphertexts that occur more than once, in the order
// of their second occurrence. Identical ciphertexts XOR to zero and never
// contribute votes to each other.
func (c *Corpus) Duplicates() []string {
	seen := mapset.NewThreadUnsafeSet[string]()
	reported := mapset.NewThreadUnsafeSet[string]()
	var dups []string
	for _, ct := range c.Ciphertexts {
		key := normalize(ct)
		if !seen.Add(key) && reported.Add(key) {
			dups = append(dups, ct)
		}
	}
	return dups
}

// Decode converts the hex strings of the corpus to bytes. A malformed target
// fails the whole corpus; malformed ciphertexts are recorded in Skipped and
// left out so the rest can still be used.
func (c *Corpus) Decode() (*Decoded, error) {
	d := &Decoded{Skipped: make(map[int]error)}

	if strings.TrimSpace(c.Target) != "" {
		target, err := codec.DecodeHex(strings.TrimSpace(c.Target))
		if err != nil {
			return nil, fmt.Errorf("failed to decode target: %w", err)
		}
		d.Target = target
	}

	for i, ct := range c.Ciphertexts {
		b, err := codec.DecodeHex(strings.TrimSpace(ct))
		if err != nil {
			d.Skipped[i] = err
			continue
		}
		d.Ciphertexts = append(d.Ciphertexts, b)
	}

	return d, nil
}

func normalize(hex string) string {
	s := strings.ToLower(strings.TrimSpace(hex))
	return strings.TrimPrefix(s, "0x")
}
