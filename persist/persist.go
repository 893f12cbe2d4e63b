// Package persist saves and loads a finalized split graph as a
// gob-encoded, zstd-compressed snapshot with an xxhash integrity
// checksum.
package persist

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash"
	"github.com/klauspost/compress/zstd"

	"galign/splitgraph"
)

// magic tags the file format; version lets a future incompatible layout
// be rejected cleanly instead of decoding garbage.
const (
	magic   = "GALN"
	version = uint32(1)
)

// Save writes g's snapshot to path as magic+version+checksum header
// followed by a zstd-compressed gob stream.
func Save(path string, g *splitgraph.SplitGraph) error {
	var payload bytes.Buffer
	zw, err := zstd.NewWriter(&payload,
		zstd.WithEncoderCRC(false),
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("[persist.Save] new zstd writer: %w", err)
	}
	if err := gob.NewEncoder(zw).Encode(g.ToSnapshot()); err != nil {
		return fmt.Errorf("[persist.Save] encode snapshot: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("[persist.Save] close zstd writer: %w", err)
	}

	checksum := xxhash.Sum64(payload.Bytes())

	fp, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("[persist.Save] create %s: %w", path, err)
	}
	defer fp.Close()

	w := bufio.NewWriterSize(fp, 1<<16)
	if _, err := io.WriteString(w, magic); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, version); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, checksum); err != nil {
		return err
	}
	if _, err := w.Write(payload.Bytes()); err != nil {
		return err
	}
	return w.Flush()
}

// Load reads a snapshot written by Save and rebuilds the SplitGraph. It
// rejects files with a wrong magic/version or whose checksum does not
// match the stored payload.
func Load(path string) (*splitgraph.SplitGraph, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("[persist.Load] open %s: %w", path, err)
	}
	defer fp.Close()
	r := bufio.NewReaderSize(fp, 1<<16)

	gotMagic := make([]byte, len(magic))
	if _, err := io.ReadFull(r, gotMagic); err != nil {
		return nil, fmt.Errorf("[persist.Load] read magic: %w", err)
	}
	if string(gotMagic) != magic {
		return nil, fmt.Errorf("[persist.Load] %s is not a galign snapshot", path)
	}

	var gotVersion uint32
	if err := binary.Read(r, binary.LittleEndian, &gotVersion); err != nil {
		return nil, fmt.Errorf("[persist.Load] read version: %w", err)
	}
	if gotVersion != version {
		return nil, fmt.Errorf("[persist.Load] unsupported snapshot version %d", gotVersion)
	}

	var wantChecksum uint64
	if err := binary.Read(r, binary.LittleEndian, &wantChecksum); err != nil {
		return nil, fmt.Errorf("[persist.Load] read checksum: %w", err)
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("[persist.Load] read payload: %w", err)
	}
	if got := xxhash.Sum64(payload); got != wantChecksum {
		return nil, fmt.Errorf("[persist.Load] checksum mismatch: got %x want %x", got, wantChecksum)
	}

	zr, err := zstd.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("[persist.Load] new zstd reader: %w", err)
	}
	defer zr.Close()

	var snap splitgraph.Snapshot
	if err := gob.NewDecoder(zr).Decode(&snap); err != nil {
		return nil, fmt.Errorf("[persist.Load] decode snapshot: %w", err)
	}
	return splitgraph.FromSnapshot(snap), nil
}
