package aprs

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Position represents a decoded APRS position, uncompressed or
// compressed, with optional ambiguity, altitude, and data extension.
//
// Uncompressed arithmetic is ported from
// original_source/aprs3/position.go's Python ancestor
// (decode_position_uncompressed); compressed arithmetic is ported from
// the same file's decode_position_compressed/encode_position_compressed.
type Position struct {
	Lat         float64
	Lon         float64
	Ambiguity   int // 0-4, uncompressed only
	SymbolTable byte
	SymbolCode  byte
	Compressed  bool
	AltitudeFt  *int
	Extension   DataExtension
}

const positionUncompressedLen = 19
const positionCompressedLen = 13

// isUncompressedLead reports whether c is a valid leading byte for an
// uncompressed position block (digit or space, per spec.md §4.5's
// disambiguation rule).
func isUncompressedLead(c byte) bool {
	return c == ' ' || (c >= '0' && c <= '9')
}

// isCompressedLead reports whether c is a valid leading byte for a
// compressed position block ('/', '\\', 'A'-'Z', 'a'-'j').
func isCompressedLead(c byte) bool {
	return c == '/' || c == '\\' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'j')
}

// DecodePosition decodes a position block (compressed or uncompressed)
// from the front of data, disambiguating by the first byte per
// spec.md §4.5. It returns the number of bytes consumed from data (19 or
// 13), not including any following data extension or comment.
func DecodePosition(data []byte) (Position, int, error) {
	if len(data) == 0 {
		return Position{}, 0, &PositionError{Raw: data, Reason: "empty position block"}
	}
	switch {
	case isCompressedLead(data[0]):
		if len(data) < positionCompressedLen {
			return Position{}, 0, &PositionError{Raw: data, Reason: "compressed position block too short"}
		}
		p, err := decodeCompressedPosition(data[:positionCompressedLen])
		return p, positionCompressedLen, err
	case isUncompressedLead(data[0]):
		if len(data) < positionUncompressedLen {
			return Position{}, 0, &PositionError{Raw: data, Reason: "uncompressed position block too short"}
		}
		p, err := decodeUncompressedPosition(data[:positionUncompressedLen])
		return p, positionUncompressedLen, err
	default:
		return Position{}, 0, &PositionError{Raw: data, Reason: "unrecognized position lead byte"}
	}
}

// decodeDMField decodes a degrees+minutes field with ambiguity support.
// degDigits is 2 for latitude, 3 for longitude. The field is
// degDigits digits followed by "MM.mm" (5 bytes, minute digits may be
// spaces to indicate ambiguity).
func decodeDMField(s string, degDigits int) (deg int, min float64, ambiguity int, err error) {
	if len(s) != degDigits+5 {
		return 0, 0, 0, fmt.Errorf("wrong field width")
	}
	degPart := s[:degDigits]
	minPart := s[degDigits:]
	if minPart[2] != '.' {
		return 0, 0, 0, fmt.Errorf("missing decimal point")
	}
	deg, err = strconv.Atoi(degPart)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid degrees: %w", err)
	}
	min, ambiguity, err = parseAmbiguousFloat(minPart)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid minutes: %w", err)
	}
	return deg, min, ambiguity, nil
}

func decodeUncompressedPosition(data []byte) (Position, error) {
	text := string(data)

	latDeg, latMin, latAmb, err := decodeDMField(text[0:7], 2)
	if err != nil {
		return Position{}, &PositionError{Raw: data, Reason: "invalid latitude: " + err.Error()}
	}
	hemiLat := text[7]
	if hemiLat != 'N' && hemiLat != 'S' {
		return Position{}, &PositionError{Raw: data, Reason: "invalid latitude hemisphere"}
	}
	symTable := data[8]

	lonDeg, lonMin, lonAmb, err := decodeDMField(text[9:17], 3)
	if err != nil {
		return Position{}, &PositionError{Raw: data, Reason: "invalid longitude: " + err.Error()}
	}
	hemiLon := text[17]
	if hemiLon != 'E' && hemiLon != 'W' {
		return Position{}, &PositionError{Raw: data, Reason: "invalid longitude hemisphere"}
	}
	symCode := data[18]

	if latAmb != lonAmb {
		return Position{}, &PositionError{Raw: data, Reason: "inconsistent ambiguity masking between latitude and longitude"}
	}

	lat := dm2decimal(latDeg, latMin)
	if hemiLat == 'S' {
		lat = -lat
	}
	lon := dm2decimal(lonDeg, lonMin)
	if hemiLon == 'W' {
		lon = -lon
	}

	if lat < -90 || lat > 90 {
		return Position{}, &PositionError{Raw: data, Reason: "latitude out of range"}
	}
	if lon < -180 || lon > 180 {
		return Position{}, &PositionError{Raw: data, Reason: "longitude out of range"}
	}

	return Position{
		Lat:         lat,
		Lon:         lon,
		Ambiguity:   latAmb,
		SymbolTable: symTable,
		SymbolCode:  symCode,
		Compressed:  false,
	}, nil
}

// EncodeUncompressedPosition renders the 19-byte uncompressed position
// block (no data extension, no comment).
func EncodeUncompressedPosition(p Position) (string, error) {
	if p.Ambiguity < 0 || p.Ambiguity > 4 {
		return "", &EncodingError{Reason: "ambiguity must be 0-4"}
	}
	latStr, err := encodeLat(p.Lat)
	if err != nil {
		return "", err
	}
	lonStr, err := encodeLon(p.Lon)
	if err != nil {
		return "", err
	}
	latStr = ambiguateDM(latStr, p.Ambiguity)
	lonStr = ambiguateDM(lonStr, p.Ambiguity)

	return latStr + string(p.SymbolTable) + lonStr + string(p.SymbolCode), nil
}

func decompressLat(n int) float64 {
	return 90 - float64(n)/380926.0
}

func compressLat(lat float64) (int, error) {
	return int(math.Round(380926 * (90 - lat))), nil
}

func decompressLon(n int) float64 {
	return -180 + float64(n)/190463.0
}

func compressLon(lon float64) (int, error) {
	return int(math.Round(190463 * (180 + lon))), nil
}

func decodeCompressedPosition(data []byte) (Position, error) {
	if isUncompressedLead(data[0]) {
		return Position{}, &PositionError{Raw: data, Reason: "not a compressed position"}
	}
	symTable := data[0]
	latN, err := DecodeBase91(string(data[1:5]))
	if err != nil {
		return Position{}, &PositionError{Raw: data, Reason: "invalid compressed latitude"}
	}
	lonN, err := DecodeBase91(string(data[5:9]))
	if err != nil {
		return Position{}, &PositionError{Raw: data, Reason: "invalid compressed longitude"}
	}
	symCode := data[9]
	cExt := data[10:12]
	// compType := data[12] // compression-source/fix-type bits, not needed for extension dispatch here

	lat := decompressLat(latN)
	lon := decompressLon(lonN)
	if lat < -90 || lat > 90 {
		return Position{}, &PositionError{Raw: data, Reason: "latitude out of range"}
	}
	if lon < -180 || lon > 180 {
		return Position{}, &PositionError{Raw: data, Reason: "longitude out of range"}
	}

	pos := Position{
		Lat:         lat,
		Lon:         lon,
		SymbolTable: symTable,
		SymbolCode:  symCode,
		Compressed:  true,
	}

	switch {
	case cExt[0] == ' ' && cExt[1] == ' ':
		// no extension
	case cExt[0] == '{':
		n, err := DecodeBase91(string(cExt[1]))
		if err == nil {
			alt := int(math.Round(math.Pow(1.002, float64(n))))
			pos.AltitudeFt = &alt
		}
	default:
		c1, err1 := DecodeBase91(string(cExt[0]))
		c2, err2 := DecodeBase91(string(cExt[1]))
		if err1 == nil && err2 == nil {
			pos.Extension = DataExtension{
				Kind:   ExtCourseSpeed,
				Course: c1 * 4,
				Speed:  int(math.Round(math.Pow(1.08, float64(c2)) - 1)),
			}
		}
	}

	return pos, nil
}

// EncodeCompressedPosition renders the 13-byte compressed position block
// (no comment). Exactly one of p.Extension (CourseSpeed) or
// p.AltitudeFt may be set; if neither is set, the extension slot is
// emitted as "  " per the teacher-ported encode_position_compressed.
func EncodeCompressedPosition(p Position) (string, error) {
	latN, _ := compressLat(p.Lat)
	lonN, _ := compressLon(p.Lon)
	if latN < 0 || lonN < 0 {
		return "", &EncodingError{Reason: "compressed position out of range"}
	}
	latStr, err := EncodeBase91(latN, 4)
	if err != nil {
		return "", err
	}
	lonStr, err := EncodeBase91(lonN, 4)
	if err != nil {
		return "", err
	}

	var extStr string
	switch {
	case p.Extension.Kind == ExtCourseSpeed:
		c1, err := EncodeBase91(p.Extension.Course/4, 1)
		if err != nil {
			return "", err
		}
		c2, err := EncodeBase91(int(math.Round(math.Log(float64(p.Extension.Speed)+1)/math.Log(1.08))), 1)
		if err != nil {
			return "", err
		}
		extStr = c1 + c2 + "#"
	case p.AltitudeFt != nil:
		// The leading '{' is a literal marker, not a base-91 digit: the
		// decoder only reads the second character as N. That leaves a
		// single base-91 digit (0-90) of range for N, same as the
		// course/speed cs-bytes use one digit each.
		n := int(math.Round(math.Log(float64(*p.AltitudeFt)) / math.Log(1.002)))
		if n < 0 {
			n = 0
		}
		if n > 90 {
			n = 90
		}
		c, err := EncodeBase91(n, 1)
		if err != nil {
			return "", err
		}
		extStr = "{" + c + "#"
	default:
		extStr = "  #"
	}

	return string(symOrSlash(p.SymbolTable)) + latStr + lonStr + string(p.SymbolCode) + extStr, nil
}

func symOrSlash(b byte) byte {
	if b == 0 {
		return '/'
	}
	return b
}

// altitudeRex matches a "/A=dddddd" altitude-in-comment marker: six
// decimal digits, or a '-' followed by five digits (spec.md §4.4).
var altitudeRex = regexp.MustCompile(`/A=(-[0-9]{5}|[0-9]{6})`)

// liftAltitude scans comment for an "/A=dddddd" marker, removing the
// first match and returning the altitude value in feet.
func liftAltitude(comment []byte) ([]byte, *int) {
	loc := altitudeRex.FindSubmatchIndex(comment)
	if loc == nil {
		return comment, nil
	}
	n, err := strconv.Atoi(string(comment[loc[2]:loc[3]]))
	if err != nil {
		return comment, nil
	}
	out := make([]byte, 0, len(comment)-(loc[1]-loc[0]))
	out = append(out, comment[:loc[0]]...)
	out = append(out, comment[loc[1]:]...)
	return out, &n
}

// formatAltitude renders the "/A=dddddd" comment marker for altitude, or
// "" if altitude is nil.
func formatAltitude(altitude *int) string {
	if altitude == nil {
		return ""
	}
	return fmt.Sprintf("/A=%06d", *altitude)
}

// consumeExtensionAndComment implements spec.md's resolved ordering for
// the comment tail of an uncompressed position: a data extension is
// consumed first from the front of the comment, then an altitude marker
// is lifted by scanning whatever remains.
func consumeExtensionAndComment(data []byte) (ext DataExtension, altitude *int, comment []byte) {
	ext, n, _ := DecodeDataExtension(data)
	rest := data
	if n > 0 {
		rest = data[n:]
	}
	rest, altitude = liftAltitude(rest)
	return ext, altitude, rest
}
