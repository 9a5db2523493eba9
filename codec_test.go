package padlock

import (
	"bytes"
	"errors"
	"testing"
)

func TestTextToBytes(t *testing.T) {
	b, err := TextToBytes("baby")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, []byte{98, 97, 98, 121}) {
		t.Errorf("unexpected bytes: %v", b)
	}
}

func TestTextToBytesRejectsWideRunes(t *testing.T) {
	if _, err := TextToBytes("baby π"); !errors.Is(err, ErrEncoding) {
		t.Errorf("expected ErrEncoding, got %v", err)
	}
}

func TestBytesToTextRoundTrip(t *testing.T) {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	out, err := TextToBytes(BytesToText(b))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, b) {
		t.Error("text round trip did not recover original bytes")
	}
}

func TestBytesToHex(t *testing.T) {
	if h := BytesToHex([]byte{0x00, 0x0F, 0xAB}); h != "000FAB" {
		t.Errorf("expected 000FAB, got %v", h)
	}
	if h := BytesToHex([]byte{}); h != "" {
		t.Errorf("expected empty string, got %q", h)
	}
}

func TestHexToBytes(t *testing.T) {
	for _, s := range []string{"777c3854", "777C3854"} {
		b, err := HexToBytes(s)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(b, []byte{119, 124, 56, 84}) {
			t.Errorf("unexpected bytes for %v: %v", s, b)
		}
	}
}

func TestHexToBytesMalformed(t *testing.T) {
	for _, s := range []string{"ABC", "GG", "0x11"} {
		if _, err := HexToBytes(s); !errors.Is(err, ErrDecoding) {
			t.Errorf("expected ErrDecoding for %q, got %v", s, err)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	out, err := HexToBytes(BytesToHex(b))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, b) {
		t.Error("hex round trip did not recover original bytes")
	}
}
