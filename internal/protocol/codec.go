package protocol

import (
	"fmt"
	"strconv"
)

// ListToken is the literal the legacy wire uses for a directory-listing
// request.
const ListToken = "-l"

// Tagged-wire discriminant bytes.
const (
	tagList byte = 0x01
	tagGet  byte = 0x02
)

// Codec serializes a Request for the control connection.  The port
// disclosure that follows the request is codec-independent: always the
// decimal ASCII digits of the data port, with no prefix or delimiter.
type Codec interface {
	// EncodeRequest returns the exact bytes to send on the control
	// connection for the given request.
	EncodeRequest(r Request) ([]byte, error)

	// Name identifies the codec in logs and config ("legacy", "tagged").
	Name() string
}

// EncodePort returns the control-channel bytes disclosing the data
// port: its decimal string representation, nothing else.
func EncodePort(port int) []byte {
	return []byte(strconv.Itoa(port))
}

// ── Legacy wire ──────────────────────────────────────────────────────

// LegacyCodec speaks the original wire format: the literal token "-l"
// for a listing, or the raw file name bytes for a fetch.  The server
// tells the two apart purely by content, so a file actually named "-l"
// cannot be requested on this wire; Validate rejects it up front rather
// than letting the server misread the command.
type LegacyCodec struct{}

func (LegacyCodec) Name() string { return "legacy" }

// EncodeRequest implements Codec.
func (LegacyCodec) EncodeRequest(r Request) ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if r.Kind == KindList {
		return []byte(ListToken), nil
	}
	if r.Name == ListToken {
		return nil, fmt.Errorf("file name %q is indistinguishable from the list command on the legacy wire (use --wire tagged)", r.Name)
	}
	return []byte(r.Name), nil
}

// ── Tagged wire ──────────────────────────────────────────────────────

// TaggedCodec removes the legacy wire's ambiguity with an explicit
// one-byte discriminant (0x01 list, 0x02 get) followed by the optional
// file-name payload.  Requires a server that understands the framing.
type TaggedCodec struct{}

func (TaggedCodec) Name() string { return "tagged" }

// EncodeRequest implements Codec.
func (TaggedCodec) EncodeRequest(r Request) ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if r.Kind == KindList {
		return []byte{tagList}, nil
	}
	out := make([]byte, 0, 1+len(r.Name))
	out = append(out, tagGet)
	out = append(out, r.Name...)
	return out, nil
}

// CodecByName returns the codec for a config value.
func CodecByName(name string) (Codec, error) {
	switch name {
	case "", "legacy":
		return LegacyCodec{}, nil
	case "tagged":
		return TaggedCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown wire format %q (want legacy or tagged)", name)
	}
}
