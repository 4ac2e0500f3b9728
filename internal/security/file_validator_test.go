package security

import "testing"

func TestSourceValidatorAcceptsMatchingSignature(t *testing.T) {
	var v SourceValidator
	png := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, "rest"...)
	if err := v.Validate(".png", png); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestSourceValidatorRejectsMismatchedSignature(t *testing.T) {
	var v SourceValidator
	if err := v.Validate("png", []byte("not actually a png")); err == nil {
		t.Fatal("expected an error for mismatched signature")
	}
}

func TestSourceValidatorRejectsBinaryTextSource(t *testing.T) {
	var v SourceValidator
	binaryJunk := bytesOfControlChars(64)
	if err := v.Validate("obj", binaryJunk); err == nil {
		t.Fatal("expected an error for binary data claiming to be an obj source")
	}
}

func TestSourceValidatorAcceptsPlainTextSource(t *testing.T) {
	var v SourceValidator
	if err := v.Validate("obj", []byte("v 0.0 0.0 0.0\nf 1 2 3\n")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestSourceValidatorIgnoresUnknownExtensions(t *testing.T) {
	var v SourceValidator
	if err := v.Validate("pcm", bytesOfControlChars(32)); err != nil {
		t.Fatalf("expected no opinion on pcm sources, got %v", err)
	}
}

func bytesOfControlChars(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(1)
	}
	return b
}
