package audition

import (
	"testing"
)

func TestPCMBytesMono(t *testing.T) {
	data := PCMBytes([]float64{0, 1, -1}, 1)
	if len(data) != 6 {
		t.Fatalf("expected 6 bytes, got %d", len(data))
	}

	read := func(i int) int16 {
		return int16(uint16(data[i*2]) | uint16(data[i*2+1])<<8)
	}
	if v := read(0); v != 0 {
		t.Errorf("sample 0 = %d, want 0", v)
	}
	if v := read(1); v != 32767 {
		t.Errorf("sample 1 = %d, want 32767", v)
	}
	if v := read(2); v != -32767 {
		t.Errorf("sample 2 = %d, want -32767", v)
	}
}

func TestPCMBytesStereoDuplicates(t *testing.T) {
	data := PCMBytes([]float64{0.5, -0.5}, 2)
	if len(data) != 8 {
		t.Fatalf("expected 8 bytes, got %d", len(data))
	}
	for frame := 0; frame < 2; frame++ {
		l := uint16(data[frame*4]) | uint16(data[frame*4+1])<<8
		r := uint16(data[frame*4+2]) | uint16(data[frame*4+3])<<8
		if l != r {
			t.Errorf("frame %d: channels differ: %d vs %d", frame, l, r)
		}
	}
}

func TestPCMBytesClamps(t *testing.T) {
	data := PCMBytes([]float64{3.0, -3.0}, 1)
	read := func(i int) int16 {
		return int16(uint16(data[i*2]) | uint16(data[i*2+1])<<8)
	}
	if v := read(0); v != 32767 {
		t.Errorf("positive overshoot = %d, want 32767", v)
	}
	if v := read(1); v != -32767 {
		t.Errorf("negative overshoot = %d, want -32767", v)
	}
}

func TestPCMReader(t *testing.T) {
	r := newPCMReader([]byte{1, 2, 3, 4, 5})

	buf := make([]byte, 3)
	n, err := r.Read(buf)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("expected to read 3 bytes, got %d", n)
	}
	if buf[0] != 1 || buf[1] != 2 || buf[2] != 3 {
		t.Errorf("unexpected data: %v", buf)
	}

	n, err = r.Read(buf)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected to read 2 bytes, got %d", n)
	}

	n, err = r.Read(buf)
	if err == nil {
		t.Error("expected EOF")
	}
	if n != 0 {
		t.Errorf("expected 0 bytes at EOF, got %d", n)
	}
}
