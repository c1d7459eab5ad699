package persistence

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"
)

// Snapshot files are a 4-byte magic, a format version byte, then the
// zstd-compressed JSON snapshot.
var fileMagic = []byte("EPSV")

const fileVersion = 1

var (
	// ErrBadMagic means the file is not a snapshot file.
	ErrBadMagic = errors.New("persistence: not a snapshot file")
	// ErrUnsupportedVersion means the snapshot format is newer than
	// this build understands.
	ErrUnsupportedVersion = errors.New("persistence: unsupported snapshot version")
)

// EncodeSnapshot serializes and compresses a snapshot into the file format.
func EncodeSnapshot(p *PersistedState) ([]byte, error) {
	raw, err := p.Serialize()
	if err != nil {
		return nil, err
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("init compressor: %w", err)
	}
	defer enc.Close()

	out := make([]byte, 0, len(fileMagic)+1+len(raw)/3)
	out = append(out, fileMagic...)
	out = append(out, fileVersion)
	return enc.EncodeAll(raw, out), nil
}

// DecodeSnapshot reverses EncodeSnapshot.
func DecodeSnapshot(data []byte) (*PersistedState, error) {
	if len(data) < len(fileMagic)+1 || !bytes.Equal(data[:len(fileMagic)], fileMagic) {
		return nil, ErrBadMagic
	}
	if v := data[len(fileMagic)]; v != fileVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("init decompressor: %w", err)
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(data[len(fileMagic)+1:], nil)
	if err != nil {
		return nil, fmt.Errorf("decompress snapshot: %w", err)
	}
	return Deserialize(raw)
}

// WriteFile writes a snapshot to disk atomically: the file is written to
// a temp sibling and renamed into place.
func WriteFile(path string, p *PersistedState) error {
	data, err := EncodeSnapshot(p)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename snapshot into place: %w", err)
	}
	return nil
}

// ReadFile loads a snapshot written by WriteFile.
func ReadFile(path string) (*PersistedState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	return DecodeSnapshot(data)
}
