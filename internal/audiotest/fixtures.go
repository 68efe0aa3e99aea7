// SPDX-License-Identifier: EPL-2.0

package audiotest

import "encoding/binary"

// Fixture sample rate. The probers only read channel counts, so one
// rate serves every fixture.
const fixtureRate = 44100

// WAV returns a minimal 16-bit PCM RIFF/WAVE file with the given
// channel count, holding frames frames of silence.
func WAV(channels, frames int) []byte {
	numChannels := uint16(channels)
	bitsPerSample := uint16(16)
	byteRate := uint32(fixtureRate) * uint32(numChannels) * uint32(bitsPerSample/8)
	blockAlign := numChannels * bitsPerSample / 8
	dataSize := uint32(frames * channels * 2)

	buf := make([]byte, 44+int(dataSize))

	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], 36+dataSize)
	copy(buf[8:12], "WAVE")

	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16)
	binary.LittleEndian.PutUint16(buf[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(buf[22:24], numChannels)
	binary.LittleEndian.PutUint32(buf[24:28], fixtureRate)
	binary.LittleEndian.PutUint32(buf[28:32], byteRate)
	binary.LittleEndian.PutUint16(buf[32:34], blockAlign)
	binary.LittleEndian.PutUint16(buf[34:36], bitsPerSample)

	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], dataSize)

	// Sample data stays zero: silence.
	return buf
}

// AIFF returns a minimal 16-bit PCM AIFF file with the given channel
// count, holding frames frames of silence. AIFF is big-endian and
// stores the sample rate as an 80-bit extended float.
func AIFF(channels, frames int) []byte {
	dataSize := frames * channels * 2
	formSize := 4 + (8 + 18) + (8 + 8 + dataSize)

	buf := make([]byte, 12+8+18+8+8+dataSize)

	copy(buf[0:4], "FORM")
	binary.BigEndian.PutUint32(buf[4:8], uint32(formSize))
	copy(buf[8:12], "AIFF")

	copy(buf[12:16], "COMM")
	binary.BigEndian.PutUint32(buf[16:20], 18)
	binary.BigEndian.PutUint16(buf[20:22], uint16(channels))
	binary.BigEndian.PutUint32(buf[22:26], uint32(frames))
	binary.BigEndian.PutUint16(buf[26:28], 16)
	// 44100 Hz as an 80-bit extended float: exponent 0x400E,
	// mantissa 0xAC44 << 48.
	copy(buf[28:38], []byte{0x40, 0x0E, 0xAC, 0x44, 0, 0, 0, 0, 0, 0})

	copy(buf[38:42], "SSND")
	binary.BigEndian.PutUint32(buf[42:46], uint32(8+dataSize))
	// offset and block size stay zero, silence follows.

	return buf
}

// FLAC returns a FLAC stream holding only the mandatory StreamInfo
// metadata block, declaring the given channel count at 16 bits per
// sample.
func FLAC(channels int) []byte {
	buf := make([]byte, 4+4+34)

	copy(buf[0:4], "fLaC")
	buf[4] = 0x80 // last metadata block, type 0 (StreamInfo)
	buf[7] = 34   // 24-bit block length

	info := buf[8:]
	binary.BigEndian.PutUint16(info[0:2], 4096) // min block size
	binary.BigEndian.PutUint16(info[2:4], 4096) // max block size
	// min/max frame size (24-bit each) stay zero: unknown.

	// Packed field: sample rate (20 bits), channels-1 (3 bits),
	// bits-per-sample-1 (5 bits), total samples (36 bits, zero here).
	rate := uint32(fixtureRate)
	bps := uint32(16)
	info[10] = byte(rate >> 12)
	info[11] = byte(rate >> 4)
	info[12] = byte(rate&0xF)<<4 | byte(channels-1)<<1 | byte((bps-1)>>4)
	info[13] = byte((bps-1)&0xF) << 4
	// info[14:18] total samples low bits, info[18:34] MD5: zero.

	return buf
}
