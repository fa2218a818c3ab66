package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ErrMalformedInput is matched by every error DecodeHex returns.
var ErrMalformedInput = errors.New("malformed input")

// MalformedInputError describes a string that is not valid hex.
type MalformedInputError struct {
	Input  string
	Reason error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input %q: %v", truncate(e.Input, 32), e.Reason)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Reason
}

// Is reports whether target is ErrMalformedInput.
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// DecodeHex decodes a string of hex digit pairs into bytes. A leading "0x"
// or "0X" is accepted. Odd-length input and non-hex characters are rejected
// with an error matching ErrMalformedInput; no partial result is returned.
func DecodeHex(s string) ([]byte, error) {
	digits := s
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
	}

	b, err := hexutil.Decode("0x" + digits)
	if err != nil {
		return nil, &MalformedInputError{Input: s, Reason: err}
	}
	return b, nil
}

// EncodeHex returns the lowercase, 0x-prefixed hex encoding of b.
func EncodeHex(b []byte) string {
	return hexutil.Encode(b)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
