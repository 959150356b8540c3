// Package evidence serializes validation output into audit artifacts:
// per-result JSON files, per-validator summaries, and the invocation
// evidence manifest. All writes are write-temp-then-rename so a concurrent
// summary pass never observes a partially-written file.
package evidence

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/metalagman/protovet/internal/rubric"
)

// Writer persists artifacts under a single validation directory.
type Writer struct {
	Dir string
}

// NewWriter creates the writer, ensuring the directory exists.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create validation dir: %w", err)
	}
	return &Writer{Dir: dir}, nil
}

// ResultPath returns the deterministic artifact path for one result.
func (w *Writer) ResultPath(protocolID, validator string) string {
	return filepath.Join(w.Dir, fmt.Sprintf("protocol-%s-%s.json", protocolID, validator))
}

// WriteResult writes one ValidationResult and returns its artifact
// reference with checksum.
func (w *Writer) WriteResult(res rubric.ValidationResult) (Artifact, error) {
	path := w.ResultPath(res.ProtocolID, res.Validator)
	sum, err := writeJSON(path, res)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{Path: path, SHA256: sum}, nil
}

// WriteGateReport writes a gate-execution report for one protocol under a
// gates/ subdirectory.
func (w *Writer) WriteGateReport(protocolID string, report any) (Artifact, error) {
	dir := filepath.Join(w.Dir, "gates")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Artifact{}, fmt.Errorf("create gates dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("protocol-%s-gates.json", protocolID))
	sum, err := writeJSON(path, report)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{Path: path, SHA256: sum}, nil
}

// writeJSON marshals v, writes it atomically, and returns the sha256 hex
// digest of the written bytes.
func writeJSON(path string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), ".protovet-*")
	if err != nil {
		return "", fmt.Errorf("create temp artifact: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("close artifact: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("rename artifact into place: %w", err)
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
