package types

import (
	"errors"
	"fmt"
)

// Kind tags every error the emulator core can produce.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindIO
	KindOversizedImage
	KindMalformedImage
	KindUnsupportedCartridgeType
	KindUnimplementedOpcode
	KindBankIndexOutOfRange
)

var kindNames = map[Kind]string{
	KindUnknown:                  "unknown",
	KindIO:                       "io failure",
	KindOversizedImage:           "oversized image",
	KindMalformedImage:           "malformed image",
	KindUnsupportedCartridgeType: "unsupported cartridge type",
	KindUnimplementedOpcode:      "unimplemented opcode",
	KindBankIndexOutOfRange:      "bank index out of range",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Error is a tagged error. Two Errors match under errors.Is when their
// kinds are equal, so the Err* values below can be used as targets.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

var (
	ErrIO                       = &Error{Kind: KindIO}
	ErrOversizedImage           = &Error{Kind: KindOversizedImage}
	ErrMalformedImage           = &Error{Kind: KindMalformedImage}
	ErrUnsupportedCartridgeType = &Error{Kind: KindUnsupportedCartridgeType}
	ErrUnimplementedOpcode      = &Error{Kind: KindUnimplementedOpcode}
	ErrBankIndexOutOfRange      = &Error{Kind: KindBankIndexOutOfRange}
)

// Errorf returns a new Error of the given kind.
func Errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap tags err with the given kind.
func Wrap(kind Kind, err error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// TagKind implements Kinded.
func (e *Error) TagKind() Kind { return e.Kind }

// Kinded is implemented by errors that carry a Kind.
type Kinded interface {
	TagKind() Kind
}

// KindOf returns the Kind of the first tagged error in err's chain, or
// KindUnknown.
func KindOf(err error) Kind {
	var k Kinded
	if errors.As(err, &k) {
		return k.TagKind()
	}
	return KindUnknown
}
