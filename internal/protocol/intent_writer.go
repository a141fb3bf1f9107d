package protocol

import (
	"io"

	"goft/util"
)

// IntentWriter wraps a payload sink and strips the server's four-byte
// intent code from the front of the stream, recording it for the
// caller.  Payloads that do not start with a recognized code pass
// through untouched, so it is safe to wrap every sink.
type IntentWriter struct {
	w       io.Writer
	header  []byte
	decided bool
	intent  Intent
}

// NewIntentWriter wraps w.
func NewIntentWriter(w io.Writer) *IntentWriter {
	return &IntentWriter{w: w, header: make([]byte, 0, intentCodeLen)}
}

// Intent returns the code seen at the start of the stream, or
// IntentNone if there was none (or too few bytes arrived to decide).
func (iw *IntentWriter) Intent() Intent { return iw.intent }

// Write implements io.Writer.  The first intentCodeLen bytes are
// buffered until the code can be recognized or ruled out.
func (iw *IntentWriter) Write(p []byte) (int, error) {
	total := len(p)

	if !iw.decided {
		need := intentCodeLen - len(iw.header)
		if len(p) < need {
			iw.header = append(iw.header, p...)
			return total, nil
		}
		iw.header = append(iw.header, p[:need]...)
		p = p[need:]
		iw.decided = true

		intent, rest := ParseIntent(iw.header)
		iw.intent = intent
		if len(rest) > 0 {
			if err := util.WriteFull(iw.w, rest); err != nil {
				return 0, err
			}
		}
	}

	if len(p) > 0 {
		if err := util.WriteFull(iw.w, p); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// Flush forwards any bytes still buffered because the stream ended
// before a code could be recognized.  Call once after the copy is done.
func (iw *IntentWriter) Flush() error {
	if iw.decided || len(iw.header) == 0 {
		return nil
	}
	iw.decided = true
	return util.WriteFull(iw.w, iw.header)
}
