// Package protocol defines the request/response model of the
// two-connection file-transfer protocol and its wire encodings.
//
// A session carries exactly one request: either a directory listing or
// a fetch of a single named file.  The request travels over the control
// connection; the response arrives on a second connection the server
// dials back to the client.
package protocol

import (
	"fmt"
	"strings"
)

// RequestKind discriminates the two request variants.
type RequestKind int

const (
	// KindList asks the server for its directory listing.
	KindList RequestKind = iota
	// KindGet asks the server for the contents of one named file.
	KindGet
)

// String returns the kind name for logs.
func (k RequestKind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindGet:
		return "get"
	default:
		return fmt.Sprintf("RequestKind(%d)", int(k))
	}
}

// Request is the single command a session sends.  It is immutable once
// constructed; build one with [ListDirectory] or [GetFile].
type Request struct {
	Kind RequestKind
	Name string // file name, KindGet only
}

// ListDirectory returns a directory-listing request.
func ListDirectory() Request {
	return Request{Kind: KindList}
}

// GetFile returns a request for the named file.
func GetFile(name string) Request {
	return Request{Kind: KindGet, Name: name}
}

// Validate checks that the request is expressible on the wire.
func (r Request) Validate() error {
	switch r.Kind {
	case KindList:
		if r.Name != "" {
			return fmt.Errorf("list request carries no file name")
		}
	case KindGet:
		if r.Name == "" {
			return fmt.Errorf("file name is required")
		}
		if strings.ContainsRune(r.Name, 0) {
			return fmt.Errorf("file name %q contains a NUL byte", r.Name)
		}
	default:
		return fmt.Errorf("unknown request kind %d", int(r.Kind))
	}
	return nil
}

// String describes the request for logs.
func (r Request) String() string {
	if r.Kind == KindGet {
		return fmt.Sprintf("get %q", r.Name)
	}
	return "list directory"
}
