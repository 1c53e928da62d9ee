// Package ledger implements the packed metadata buffer.
//
// All token URIs of a collection live in one contiguous byte buffer, one
// record per token in mint order, separated by a single newline:
//
//	record0 \n record1 \n ... \n recordN-1
//
// Record i is the URI of token i. The buffer is append-only. Lookup is a
// linear scan over the separators, so its cost grows with the number of bytes
// stored before the target record. Offsets provides a (start, length) table
// for callers that need constant-time access to a single record.
package ledger

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/feral-file/ff-nft-issuer/internal/domain"
)

const separator = domain.TOKEN_URI_SEPARATOR

// Offset locates one record inside the buffer
type Offset struct {
	Start  uint64 `json:"start"`
	Length uint64 `json:"length"`
}

// End returns the position right after the record
func (o Offset) End() uint64 {
	return o.Start + o.Length
}

// Suffix returns the bytes that record uri at the end of a buffer of bufferLen bytes.
// The first record is written without a leading separator.
func Suffix(bufferLen uint64, uri string) []byte {
	if bufferLen == 0 {
		return []byte(uri)
	}

	suffix := make([]byte, 0, len(uri)+1)
	suffix = append(suffix, separator)
	return append(suffix, uri...)
}

// NextOffset returns the offset uri will occupy once appended to a buffer of bufferLen bytes
func NextOffset(bufferLen uint64, uri string) Offset {
	start := bufferLen
	if bufferLen > 0 {
		start++
	}
	return Offset{Start: start, Length: uint64(len(uri))}
}

// Lookup returns the record of token id.
//
// The buffer is scanned left to right. A record followed by a separator
// matches whenever its index equals id. The trailing record matches only if it
// is non-empty, so an empty buffer or a buffer ending with a separator yields
// no record for the trailing position.
func Lookup(buffer []byte, id uint64) (string, bool) {
	var cur uint64
	pos := 0
	for {
		offset := bytes.IndexByte(buffer[pos:], separator)
		if offset < 0 {
			break
		}

		sep := pos + offset
		if cur == id {
			return Decode(buffer[pos:sep]), true
		}
		cur++
		pos = sep + 1
	}

	if cur == id && pos < len(buffer) {
		return Decode(buffer[pos:]), true
	}

	return "", false
}

// Count returns the number of records stored in buffer
func Count(buffer []byte) uint64 {
	if len(buffer) == 0 {
		return 0
	}
	return uint64(bytes.Count(buffer, []byte{separator})) + 1
}

// Offsets builds the offset table of every record in buffer
func Offsets(buffer []byte) []Offset {
	if len(buffer) == 0 {
		return []Offset{}
	}

	offsets := make([]Offset, 0, Count(buffer))
	var start uint64
	for i, b := range buffer {
		if b != separator {
			continue
		}
		offsets = append(offsets, Offset{Start: start, Length: uint64(i) - start})
		start = uint64(i) + 1
	}

	return append(offsets, Offset{Start: start, Length: uint64(len(buffer)) - start})
}

// Slice returns the bytes at offset, or false when the offset lies outside buffer
func Slice(buffer []byte, offset Offset) ([]byte, bool) {
	if offset.End() > uint64(len(buffer)) || offset.End() < offset.Start {
		return nil, false
	}
	return buffer[offset.Start:offset.End()], true
}

// Decode converts record bytes to text.
// Invalid UTF-8 sequences are replaced with U+FFFD instead of failing.
func Decode(record []byte) string {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(record)
	if err != nil {
		return strings.ToValidUTF8(string(record), "\uFFFD")
	}
	return string(decoded)
}

// ValidateURI rejects URIs that would break the record boundaries of the buffer.
// An empty URI is rejected as well: as the first record it would leave the
// buffer empty and shift every later record by one.
func ValidateURI(uri string) error {
	if uri == "" {
		return fmt.Errorf("%w: empty uri", domain.ErrInvalidTokenURI)
	}
	if strings.IndexByte(uri, separator) >= 0 {
		return fmt.Errorf("%w: uri contains the record separator", domain.ErrInvalidTokenURI)
	}
	return nil
}
