// Where: cli/internal/exports/load.go
// What: Legacy config acquisition from file, stdin, or S3.
// Why: Share document loading across CLI commands.
package exports

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"sigs.k8s.io/yaml"
)

// StdinLocation selects standard input as the legacy config source.
const StdinLocation = "-"

// S3Location is a parsed s3://bucket/key object reference.
type S3Location struct {
	Bucket string
	Key    string
}

// ObjectFetcher retrieves a remote legacy config payload.
type ObjectFetcher interface {
	Fetch(ctx context.Context, location S3Location) ([]byte, error)
}

// Loader reads and decodes legacy configuration documents. The zero value
// reads stdin from os.Stdin and builds a real S3 client on first use.
type Loader struct {
	Stdin   io.Reader
	Fetcher ObjectFetcher
}

// Load resolves the location ("-" for stdin, an s3:// URI, or a local file
// path), reads the payload, and decodes it into the flat legacy record.
func (l *Loader) Load(ctx context.Context, location string) (map[string]any, error) {
	payload, err := l.read(ctx, location)
	if err != nil {
		return nil, err
	}
	return Parse(payload)
}

func (l *Loader) read(ctx context.Context, location string) ([]byte, error) {
	if location == StdinLocation {
		in := l.Stdin
		if in == nil {
			in = os.Stdin
		}
		payload, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return payload, nil
	}

	if s3Loc, ok := ParseS3URI(location); ok {
		fetcher := l.Fetcher
		if fetcher == nil {
			fetcher = NewS3Fetcher()
		}
		return fetcher.Fetch(ctx, s3Loc)
	}

	payload, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("read legacy config: %w", err)
	}
	return payload, nil
}

// ParseS3URI splits an s3://bucket/key URI. It reports false for anything
// that is not an s3 URI with both a bucket and a key.
func ParseS3URI(location string) (S3Location, bool) {
	rest, ok := strings.CutPrefix(location, "s3://")
	if !ok {
		return S3Location{}, false
	}
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return S3Location{}, false
	}
	return S3Location{Bucket: bucket, Key: key}, true
}

// Parse decodes a JSON or YAML legacy config payload into the flat record.
// The document must be a top-level object.
func Parse(payload []byte) (map[string]any, error) {
	jsonData, err := yaml.YAMLToJSON(payload)
	if err != nil {
		return nil, fmt.Errorf("convert legacy config to json: %w", err)
	}

	var document map[string]any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return nil, fmt.Errorf("decode legacy config: %w", err)
	}
	return document, nil
}
