package util

import (
	"io"
)

// DefaultBufSize is the standard buffer size for network I/O (32 KiB).
const DefaultBufSize = 32 * 1024

// WriteFull writes all of p to w, looping over short writes.  It
// returns an error as soon as any write fails; a nil return guarantees
// the whole buffer was delivered.  The control channel's wire contract
// has no length prefixes, so a partial request or port disclosure would
// silently corrupt the handshake.
func WriteFull(w io.Writer, p []byte) error {
	for len(p) > 0 {
		n, err := w.Write(p)
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
		p = p[n:]
	}
	return nil
}

// CopyAll drains r into w using a pooled buffer and returns the number
// of bytes copied.
func CopyAll(w io.Writer, r io.Reader) (int64, error) {
	buf := GetBuf()
	defer PutBuf(buf)
	return io.CopyBuffer(w, r, *buf)
}
