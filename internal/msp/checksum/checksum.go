// Package checksum implements the two frame integrity algorithms used by the
// MSP wire protocol: the running XOR of MSPv1 and the CRC8 DVB-S2 of MSPv2.
package checksum

// dvbS2Poly is the CRC-8 DVB-S2 generator polynomial.
const dvbS2Poly = 0xD5

// XOR computes the MSPv1 checksum: exclusive-or over the size byte, the
// command byte, and every payload byte, in that order.
func XOR(size, command byte, payload []byte) byte {
	ck := size ^ command
	for _, b := range payload {
		ck ^= b
	}
	return ck
}

// Crc8DvbS2 folds data into crc one bit at a time using the DVB-S2
// polynomial. Seed with 0 for a fresh computation; feeding the result back
// as the seed continues the same CRC across buffers.
func Crc8DvbS2(crc byte, data []byte) byte {
	for _, b := range data {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = (crc << 1) ^ dvbS2Poly
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
