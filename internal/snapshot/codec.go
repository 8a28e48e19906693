package snapshot

import (
	"encoding/binary"
	"fmt"
	"io"
)

// record is one on-disk entry: nkey, optional id, optional data, a
// unix-seconds timestamp and a count. Keys are already normalized —
// the codec never normalizes or re-normalizes anything.
type record struct {
	NKey  string
	ID    string
	Data  *string
	When  uint32
	Count uint32
}

// encodeRecord writes one record in the wire format from spec.md
// §4.4: five big-endian u32 header fields, followed by the NUL-
// terminated nkey, NUL-terminated id, and — only when data is present
// — the NUL-terminated data payload.
func encodeRecord(w io.Writer, r record) error {
	klen := uint32(len(r.NKey) + 1)
	ilen := uint32(len(r.ID) + 1)
	var dlen uint32
	if r.Data != nil {
		dlen = uint32(len(*r.Data) + 1)
	}

	header := make([]byte, 20)
	binary.BigEndian.PutUint32(header[0:4], klen)
	binary.BigEndian.PutUint32(header[4:8], ilen)
	binary.BigEndian.PutUint32(header[8:12], dlen)
	binary.BigEndian.PutUint32(header[12:16], r.When)
	binary.BigEndian.PutUint32(header[16:20], r.Count)

	if _, err := w.Write(header); err != nil {
		return err
	}
	if _, err := io.WriteString(w, r.NKey); err != nil {
		return err
	}
	if _, err := w.Write([]byte{0}); err != nil {
		return err
	}
	if _, err := io.WriteString(w, r.ID); err != nil {
		return err
	}
	if _, err := w.Write([]byte{0}); err != nil {
		return err
	}
	if dlen > 0 {
		if _, err := io.WriteString(w, *r.Data); err != nil {
			return err
		}
		if _, err := w.Write([]byte{0}); err != nil {
			return err
		}
	}
	return nil
}

// decodeRecord reads one record from r. It returns io.EOF (unwrapped)
// when the stream ends cleanly at a header boundary, the normal
// end-of-file terminator. A short read discovered after a complete
// header has been read is reported as a corrupt-record error rather
// than io.EOF, per spec.md §4.4.
func decodeRecord(r io.Reader) (record, error) {
	header := make([]byte, 20)
	n, err := io.ReadFull(r, header)
	if err != nil {
		if n == 0 && (err == io.EOF || err == io.ErrUnexpectedEOF) {
			return record{}, io.EOF
		}
		return record{}, fmt.Errorf("snapshot: short read in header: %w", err)
	}

	klen := binary.BigEndian.Uint32(header[0:4])
	ilen := binary.BigEndian.Uint32(header[4:8])
	dlen := binary.BigEndian.Uint32(header[8:12])
	when := binary.BigEndian.Uint32(header[12:16])
	count := binary.BigEndian.Uint32(header[16:20])

	nkeyBuf := make([]byte, klen)
	if _, err := io.ReadFull(r, nkeyBuf); err != nil {
		return record{}, fmt.Errorf("snapshot: corrupt record: truncated nkey: %w", err)
	}
	idBuf := make([]byte, ilen)
	if _, err := io.ReadFull(r, idBuf); err != nil {
		return record{}, fmt.Errorf("snapshot: corrupt record: truncated id: %w", err)
	}

	var data *string
	if dlen > 0 {
		dataBuf := make([]byte, dlen)
		if _, err := io.ReadFull(r, dataBuf); err != nil {
			return record{}, fmt.Errorf("snapshot: corrupt record: truncated data: %w", err)
		}
		s := trimNUL(dataBuf)
		data = &s
	}

	return record{
		NKey:  trimNUL(nkeyBuf),
		ID:    trimNUL(idBuf),
		Data:  data,
		When:  when,
		Count: count,
	}, nil
}

// trimNUL drops the single trailing NUL terminator the wire format
// always appends.
func trimNUL(b []byte) string {
	if n := len(b); n > 0 && b[n-1] == 0 {
		b = b[:n-1]
	}
	return string(b)
}
