package catalog

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ksemonis/advisor/pkg/domain"
)

// Bulk-transfer payload format: a fixed header, the uncompressed body
// size, then the msgpack-encoded course list as one lz4 block. This is
// a wire format for moving a catalog between tools in one request; the
// catalog itself is never persisted to disk.
const (
	// Magic bytes identifying the payload format
	DumpMagic = "CRSE"
	// Current format version
	DumpFormatVersion = 1
)

// Flag bit set when the body is stored uncompressed because lz4 could
// not shrink it.
const dumpFlagUncompressed = 0x01

// DumpHeader prefixes every dump payload.
type DumpHeader struct {
	Magic    [4]byte // "CRSE"
	Version  uint8   // Format version
	Flags    uint8   // Bit 0: body uncompressed
	Reserved [2]byte // Reserved for future use
}

type dumpBody struct {
	Courses []domain.Course `msgpack:"courses"`
	Count   int             `msgpack:"count"`
}

// WriteDump encodes courses into the dump format on w.
func WriteDump(w io.Writer, courses []domain.Course) error {
	body := dumpBody{Courses: courses, Count: len(courses)}
	raw, err := msgpack.Marshal(&body)
	if err != nil {
		return fmt.Errorf("failed to encode MessagePack: %w", err)
	}

	compressed := make([]byte, lz4.CompressBlockBound(len(raw)))
	var hashTable [1 << 16]int
	n, err := lz4.CompressBlock(raw, compressed, hashTable[:])
	if err != nil {
		return fmt.Errorf("failed to compress data: %w", err)
	}

	header := DumpHeader{
		Magic:   [4]byte{'C', 'R', 'S', 'E'},
		Version: DumpFormatVersion,
	}
	payload := compressed[:n]
	if n == 0 {
		// lz4 reports incompressible input as a zero-length block.
		header.Flags |= dumpFlagUncompressed
		payload = raw
	}

	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(raw))); err != nil {
		return fmt.Errorf("failed to write body size: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("failed to write body: %w", err)
	}
	return nil
}

// ReadDump decodes a dump payload from r and returns the course list
// in the order it was written.
func ReadDump(r io.Reader) ([]domain.Course, error) {
	var header DumpHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if string(header.Magic[:]) != DumpMagic {
		return nil, fmt.Errorf("invalid dump format: expected %s, got %s", DumpMagic, string(header.Magic[:]))
	}
	if header.Version != DumpFormatVersion {
		return nil, fmt.Errorf("unsupported dump version: %d", header.Version)
	}

	var rawSize uint32
	if err := binary.Read(r, binary.LittleEndian, &rawSize); err != nil {
		return nil, fmt.Errorf("failed to read body size: %w", err)
	}
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	raw := payload
	if header.Flags&dumpFlagUncompressed == 0 {
		raw = make([]byte, rawSize)
		n, err := lz4.UncompressBlock(payload, raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress data: %w", err)
		}
		raw = raw[:n]
	}

	var body dumpBody
	if err := msgpack.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("failed to decode MessagePack: %w", err)
	}
	return body.Courses, nil
}
