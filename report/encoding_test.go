package report

import "testing"

func TestEncodeDecodeVector(t *testing.T) {
	in := []float32{4, 0, 7}
	out, err := DecodeVector(EncodeVector(in))
	if err != nil {
		t.Fatalf("DecodeVector failed: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("length = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], in[i])
		}
	}
}

func TestDecodeVectorInvalidLength(t *testing.T) {
	if _, err := DecodeVector([]byte{1, 2, 3}); err == nil {
		t.Fatalf("expected error for blob length not a multiple of 4")
	}
}

func TestEncodeVectorEmpty(t *testing.T) {
	if b := EncodeVector(nil); b != nil {
		t.Fatalf("EncodeVector(nil) = %v, want nil", b)
	}
	out, err := DecodeVector(nil)
	if err != nil || out != nil {
		t.Fatalf("DecodeVector(nil) = %v, %v, want nil, nil", out, err)
	}
}
