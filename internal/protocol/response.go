package protocol

import (
	"bytes"
	"io"

	"goft/internal/errors"
	"goft/util"
)

// MinResponseSize is the minimum number of bytes a well-formed response
// carries.  The original server always pads its status/greeting text to
// at least this length, so a shorter payload means the peer gave up
// mid-transfer.
const MinResponseSize = 18

// Intent labels the server's declared handling of the request.  The
// server prefixes every response with a four-byte intent code on the
// data connection; the protocol layer treats the payload as opaque, but
// the CLI uses the intent for friendlier output.
type Intent string

const (
	IntentDirectory Intent = "dir" // directory listing follows
	IntentFile      Intent = "fil" // file contents follow
	IntentNotFound  Intent = "nof" // requested file does not exist
	IntentUnknown   Intent = "unk" // server did not understand the request
	IntentNone      Intent = ""    // payload carries no recognizable code
)

// intentCodeLen is len("dir\n"): three letters and a newline.
const intentCodeLen = 4

// ParseIntent inspects the leading bytes of a response payload and
// returns the declared intent plus the payload with the code stripped.
// Payloads without a recognizable code are returned unchanged with
// IntentNone.
func ParseIntent(payload []byte) (Intent, []byte) {
	if len(payload) < intentCodeLen || payload[intentCodeLen-1] != '\n' {
		return IntentNone, payload
	}
	code := Intent(payload[:intentCodeLen-1])
	switch code {
	case IntentDirectory, IntentFile, IntentNotFound, IntentUnknown:
		return code, payload[intentCodeLen:]
	}
	return IntentNone, payload
}

// ReadResponse drains the data connection into sink and returns the
// number of bytes received.  Fewer than MinResponseSize total bytes
// before EOF is a *errors.ProtocolError; the session must treat the
// response as truncated.
func ReadResponse(r io.Reader, sink io.Writer) (int64, error) {
	n, err := util.CopyAll(sink, r)
	if err != nil {
		return n, err
	}
	if n < MinResponseSize {
		return n, errors.WrapProtocol(int(n), MinResponseSize, io.ErrUnexpectedEOF)
	}
	return n, nil
}

// TrimPadding removes the trailing NUL padding the original server
// leaves on fixed-size status messages.
func TrimPadding(payload []byte) []byte {
	return bytes.TrimRight(payload, "\x00")
}
