package render

import (
	"encoding/json"
	"fmt"
	"github.com/SLAPaper/CppIncludeGraph/graph"
	"github.com/minio/highwayhash"
	"io"
	"os"
)

var hashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// Document is the serialized record set handed to downstream tooling,
// digest-stamped so consumers can detect content changes cheaply.
type Document struct {
	Project    string       `json:"project,omitempty" yaml:"project,omitempty"`
	Nodes      []graph.Node `json:"nodes" yaml:"nodes"`
	Links      []graph.Link `json:"links" yaml:"links"`
	Categories []string     `json:"categories" yaml:"categories"`
	Digest     uint64       `json:"digest" yaml:"digest"`
}

// NewDocument wraps records into an export document stamped with the
// digest of their compact JSON form.
func NewDocument(records *graph.RecordSet, project string) (*Document, error) {
	digest, err := recordsDigest(records)
	if err != nil {
		return nil, fmt.Errorf("digest records: %w", err)
	}
	return &Document{
		Project:    project,
		Nodes:      records.Nodes,
		Links:      records.Links,
		Categories: records.Categories,
		Digest:     digest,
	}, nil
}

func recordsDigest(records *graph.RecordSet) (uint64, error) {
	data, err := json.Marshal(records)
	if err != nil {
		return 0, err
	}
	hash, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	if _, err := hash.Write(data); err != nil {
		return 0, err
	}
	return hash.Sum64(), nil
}

// WriteJSON writes the document as indented JSON.
func (d *Document) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(d)
}

// WriteJSONFile writes the document to path.
func (d *Document) WriteJSONFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %v: %w", path, err)
	}
	defer file.Close()
	return d.WriteJSON(file)
}
