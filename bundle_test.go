package padlock

import (
	"errors"
	"strings"
	"testing"
)

func TestBundleJSONRoundTrip(t *testing.T) {
	b := NewBundle([]byte{119, 124, 56, 84}, []byte{21, 29, 90, 45}, "")
	out, err := NewBundleFromJSON(b.ToJSON())
	if err != nil {
		t.Fatal(err)
	}
	if out != b {
		t.Errorf("expected %+v, got %+v", b, out)
	}
}

func TestBundleFieldNames(t *testing.T) {
	b := NewBundle([]byte{1}, []byte{2}, "hint")
	j := string(b.ToJSON())
	for _, field := range []string{"cipher_hex", "key_hex", "plaintext_hint", "checksum"} {
		if !strings.Contains(j, field) {
			t.Errorf("serialized bundle missing field %v", field)
		}
	}
}

func TestBundleHintOmittedWhenEmpty(t *testing.T) {
	b := NewBundle([]byte{1}, []byte{2}, "")
	if strings.Contains(string(b.ToJSON()), "plaintext_hint") {
		t.Error("empty hint should not be serialized")
	}
}

func TestBundleValidateMissingFields(t *testing.T) {
	cases := [][]byte{
		[]byte(`{}`),
		[]byte(`{"cipher_hex":"AB"}`),
		[]byte(`{"key_hex":"AB"}`),
	}
	for _, c := range cases {
		if _, err := NewBundleFromJSON(c); !errors.Is(err, ErrParse) {
			t.Errorf("expected ErrParse for %s, got %v", c, err)
		}
	}
}

func TestBundleValidateBadHex(t *testing.T) {
	raw := []byte(`{"cipher_hex":"XYZ","key_hex":"AB"}`)
	if _, err := NewBundleFromJSON(raw); !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
}

func TestBundleValidateChecksumMismatch(t *testing.T) {
	b := NewBundle([]byte{1, 2, 3}, []byte{4, 5, 6}, "")
	b.CipherHex = "FFFFFF" // corrupt after stamping
	if err := b.Validate(); !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
}

func TestBundleValidateWithoutChecksum(t *testing.T) {
	b := Bundle{CipherHex: "778C3854", KeyHex: "150B5A2D"}
	if err := b.Validate(); err != nil {
		t.Errorf("bundle without checksum should validate: %v", err)
	}
}

func TestBundleFingerprint(t *testing.T) {
	b1 := NewBundle([]byte{1}, []byte{21, 29, 90, 45}, "")
	b2 := NewBundle([]byte{9}, []byte{21, 29, 90, 45}, "")
	b3 := NewBundle([]byte{1}, []byte{45, 90, 29, 21}, "")

	f1, err := b1.Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	if f1 == "" {
		t.Fatal("empty fingerprint")
	}
	f2, err := b2.Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	if f1 != f2 {
		t.Error("fingerprint should depend only on the key")
	}
	f3, err := b3.Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	if f1 == f3 {
		t.Error("different keys produced the same fingerprint")
	}
}
