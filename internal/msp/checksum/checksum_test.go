package checksum

import "testing"

func TestXOREmptyPayload(t *testing.T) {
	// size=0 cmd=100: checksum collapses to the command byte.
	if got := XOR(0, 100, nil); got != 100 {
		t.Fatalf("xor checksum: got %#x want 0x64", got)
	}
}

func TestXORCoversSizeCommandAndPayload(t *testing.T) {
	got := XOR(3, 0x6C, []byte{0x01, 0x02, 0x03})
	want := byte(3 ^ 0x6C ^ 0x01 ^ 0x02 ^ 0x03)
	if got != want {
		t.Fatalf("xor checksum: got %#x want %#x", got, want)
	}
}

func TestXORSelfCancels(t *testing.T) {
	// Appending the checksum itself must zero the running XOR, which is how
	// receivers may validate v1 frames.
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	ck := XOR(4, 109, payload)
	if got := XOR(4, 109, append(append([]byte{}, payload...), ck)); got != 0 {
		t.Fatalf("xor over frame+checksum: got %#x want 0", got)
	}
}

func TestCrc8DvbS2KnownVectors(t *testing.T) {
	vectors := []struct {
		in   []byte
		want byte
	}{
		{[]byte{0x00}, 0x00},
		{[]byte{0x01}, 0xD5},
		{[]byte{0xFF}, 0xF9},
		{[]byte{0x01, 0x01}, 0xDE},
		// flags=0, cmd=0x0102 LE, size=0 LE: the v2 header of an empty frame.
		{[]byte{0x00, 0x02, 0x01, 0x00, 0x00}, 0x09},
	}
	for _, v := range vectors {
		if got := Crc8DvbS2(0, v.in); got != v.want {
			t.Fatalf("crc8 of % x: got %#x want %#x", v.in, got, v.want)
		}
	}
}

func TestCrc8DvbS2Incremental(t *testing.T) {
	data := []byte{0x00, 0x02, 0x01, 0x00, 0x00, 0xAA, 0x55}
	whole := Crc8DvbS2(0, data)
	split := Crc8DvbS2(Crc8DvbS2(0, data[:3]), data[3:])
	if whole != split {
		t.Fatalf("incremental crc mismatch: %#x vs %#x", whole, split)
	}
}
