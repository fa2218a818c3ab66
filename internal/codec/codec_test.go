package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

func TestDecodeHex(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []byte
	}{
		{"empty", "", []byte{}},
		{"two bytes", "0123", []byte{0x01, 0x23}},
		{"upper case", "07AB", []byte{0x07, 0xAB}},
		{"mixed case", "aBcD", []byte{0xAB, 0xCD}},
		{"prefixed", "0x07ab", []byte{0x07, 0xAB}},
		{"upper prefix", "0XFF00", []byte{0xFF, 0x00}},
		{"bare prefix", "0x", []byte{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeHex(tc.input)
			if err != nil {
				t.Fatalf("DecodeHex(%q) failed: %v", tc.input, err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Errorf("DecodeHex(%q) = %x, want %x", tc.input, got, tc.want)
			}
		})
	}
}

func TestDecodeHex_Malformed(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		reason error
	}{
		{"non-hex character", "0123X5", hexutil.ErrSyntax},
		{"odd length", "01234", hexutil.ErrOddLength},
		{"single digit", "7", hexutil.ErrOddLength},
		{"odd after prefix", "0x123", hexutil.ErrOddLength},
		{"space", "01 3", hexutil.ErrSyntax},
		{"double prefix", "0x0x12", hexutil.ErrSyntax},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeHex(tc.input)
			if err == nil {
				t.Fatalf("DecodeHex(%q) = %x, expected an error", tc.input, got)
			}
			if got != nil {
				t.Errorf("Expected no partial result, got %x", got)
			}
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("Expected ErrMalformedInput, got %v", err)
			}
			if !errors.Is(err, tc.reason) {
				t.Errorf("Expected reason %v, got %v", tc.reason, err)
			}

			var mie *MalformedInputError
			if !errors.As(err, &mie) {
				t.Fatalf("Expected *MalformedInputError, got %T", err)
			}
			if mie.Input != tc.input {
				t.Errorf("Expected input %q in error, got %q", tc.input, mie.Input)
			}
		})
	}
}

func TestMalformedInputError_TruncatesLongInput(t *testing.T) {
	long := string(bytes.Repeat([]byte("z"), 100))
	_, err := DecodeHex(long)
	if err == nil {
		t.Fatal("Expected an error")
	}
	if len(err.Error()) > 100 {
		t.Errorf("Expected a truncated message, got %d characters", len(err.Error()))
	}
}

func TestEncodeHex(t *testing.T) {
	if got := EncodeHex([]byte{0x07, 0xAB}); got != "0x07ab" {
		t.Errorf("Expected 0x07ab, got %s", got)
	}
	if got := EncodeHex(nil); got != "0x" {
		t.Errorf("Expected 0x, got %s", got)
	}

	b, err := DecodeHex(EncodeHex([]byte("pad")))
	if err != nil {
		t.Fatalf("DecodeHex failed: %v", err)
	}
	if string(b) != "pad" {
		t.Errorf("Expected %q, got %q", "pad", b)
	}
}

func TestRender(t *testing.T) {
	testCases := []struct {
		name  string
		input []byte
		want  string
	}{
		{"empty", nil, ""},
		{"ascii", []byte{0x7B, 0x41, 0x62, 0x7D}, "{Ab}"},
		{"control", []byte{0x00, 0x0A}, "\x00\n"},
		{"latin-1", []byte{0xE9, 0xFF}, "éÿ"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Render(tc.input); got != tc.want {
				t.Errorf("Render(%x) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
