// Package provider supplies raw per-topic question records. The bank
// ships embedded in the binary; a data directory can override it for
// custom question sets. Payloads are schema-checked before they reach
// the normalizer, so a bad file surfaces as a single error rather than
// a half-parsed question list.
package provider

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/prepdeck/internal/question"
	"github.com/abhisek/prepdeck/internal/topic"
)

//go:embed data/*.json
var bankFS embed.FS

// Provider is a per-topic raw-record source. Implementations return the
// records in bank order or an error; callers treat an error as an empty
// question set.
type Provider interface {
	Questions(ctx context.Context, topicID string) ([]question.RawRecord, error)
}

// FileProvider reads topic data files from an optional directory,
// falling back to the embedded bank.
type FileProvider struct {
	dataDir string
}

// NewFileProvider creates a provider. dataDir may be empty, in which
// case only the embedded bank is used.
func NewFileProvider(dataDir string) *FileProvider {
	return &FileProvider{dataDir: dataDir}
}

// Questions loads, validates, and decodes the raw records for a topic.
func (p *FileProvider) Questions(ctx context.Context, topicID string) ([]question.RawRecord, error) {
	t, ok := topic.ByID(topicID)
	if !ok {
		return nil, fmt.Errorf("unknown topic %q", topicID)
	}

	data, err := p.readDataFile(t.DataFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", t.DataFile, err)
	}

	if err := validateBank(data); err != nil {
		return nil, fmt.Errorf("validate %s: %w", t.DataFile, err)
	}

	var records []question.RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", t.DataFile, err)
	}
	return records, nil
}

func (p *FileProvider) readDataFile(name string) ([]byte, error) {
	if p.dataDir != "" {
		data, err := os.ReadFile(filepath.Join(p.dataDir, name))
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
		// Missing override file falls through to the embedded bank.
	}
	return bankFS.ReadFile("data/" + name)
}
