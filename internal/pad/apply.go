package pad

// asciiMask clears the high bit so every decoded byte is 7-bit ASCII.
const asciiMask = 0x7F

// ApplyPad XORs message with pad and clears the high bit of every result
// byte. The output is min(len(message), len(pad)) bytes long.
//
// The mask assumes the plaintext is ASCII. Where the pad byte is wrong the
// output byte is still 7-bit, just not the right character.
func ApplyPad(message, pad []byte) []byte {
	n := min(len(message), len(pad))
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = (message[i] ^ pad[i]) & asciiMask
	}
	return out
}
