package aprs

// CalculatePasscode computes the well-known APRS-IS login passcode for a
// callsign's base (SSID ignored). This is a fixed, single-correct-answer
// algorithm with nothing idiomatic to restructure, so it's kept
// near-verbatim from the teacher's aprs/passcode.go, adapted to take a
// Callsign instead of a bare string.
func CalculatePasscode(call Callsign) int {
	hash := 0x73e2
	flag := false
	for _, ch := range call.Base {
		shift := 0
		if !flag {
			shift = 8
		}
		hash ^= int(ch) << shift
		flag = !flag
	}
	return hash & 0x7fff
}
