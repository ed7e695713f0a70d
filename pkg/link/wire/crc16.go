package wire

// CRC16 is the CRC-16/MCRF4XX checksum over data.
func CRC16(data []byte) uint16 {
	return crcAccumulate(0xFFFF, data)
}

func crcAccumulate(crc uint16, data []byte) uint16 {
	for _, b := range data {
		b = b ^ uint8(crc&0xFF)
		b = b ^ (b << 4)
		b16 := uint16(b)
		crc = (b16<<8 | crc>>8) ^ (b16 >> 4) ^ (b16 << 3)
	}
	return crc
}
