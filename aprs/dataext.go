package aprs

import (
	"fmt"
	"math"
	"regexp"
)

// DataExtension is a closed sum type for the four 7-byte data extensions
// that may follow an uncompressed position block. Ported from
// original_source/aprs3/classes.go's CourseSpeed/PHG/RNG/DFS DataExt
// subclasses; represented here as a single tagged struct per spec.md §9's
// "dynamic dispatch on DTI -> tagged variants" guidance, applied equally
// to extension dispatch.
type DataExtension struct {
	Kind DataExtensionKind

	// CourseSpeed
	Course int // degrees, 0-360
	Speed  int // knots

	// PHG / DFS
	PowerW      int // PHG only
	StrengthS   int // DFS only
	HeightFt    int
	GainDB      int
	Directivity int // degrees, multiple of 45 (0 = omni)

	// RNG
	RangeMiles int
}

type DataExtensionKind int

const (
	ExtNone DataExtensionKind = iota
	ExtCourseSpeed
	ExtPHG
	ExtRNG
	ExtDFS
)

var courseSpeedRex = regexp.MustCompile(`^[0-9]{3}/[0-9]{3}`)

// DecodeDataExtension attempts to decode a 7-byte data extension from the
// front of data. If data does not begin with a recognized extension
// pattern, it returns ExtNone and consumed=0 (not an error): the caller
// treats the whole of data as comment.
func DecodeDataExtension(data []byte) (ext DataExtension, consumed int, err error) {
	if len(data) < 7 {
		return DataExtension{}, 0, nil
	}
	head := data[:7]

	switch {
	case courseSpeedRex.Match(head):
		course, err1 := digits3(head[0:3])
		speed, err2 := digits3(head[4:7])
		if err1 != nil || err2 != nil {
			return DataExtension{}, 0, nil
		}
		return DataExtension{Kind: ExtCourseSpeed, Course: course, Speed: speed}, 7, nil

	case string(head[0:3]) == "PHG" && allDigits(head[3:7]):
		power := int(head[3] - '0')
		height := int(head[4] - '0')
		gain := int(head[5] - '0')
		dir := int(head[6] - '0')
		return DataExtension{
			Kind:        ExtPHG,
			PowerW:      power * power,
			HeightFt:    10 * (1 << uint(height)),
			GainDB:      gain,
			Directivity: dir * 45,
		}, 7, nil

	case string(head[0:3]) == "RNG" && allDigits(head[3:7]):
		r, err := digits4(head[3:7])
		if err != nil {
			return DataExtension{}, 0, nil
		}
		return DataExtension{Kind: ExtRNG, RangeMiles: r}, 7, nil

	case string(head[0:3]) == "DFS" && allDigits(head[3:7]):
		strength := int(head[3] - '0')
		height := int(head[4] - '0')
		gain := int(head[5] - '0')
		dir := int(head[6] - '0')
		return DataExtension{
			Kind:        ExtDFS,
			StrengthS:   strength,
			HeightFt:    10 * (1 << uint(height)),
			GainDB:      gain,
			Directivity: dir * 45,
		}, 7, nil
	}

	return DataExtension{}, 0, nil
}

// Encode renders the 7-byte data extension field.
func (e DataExtension) Encode() (string, error) {
	switch e.Kind {
	case ExtNone:
		return "", nil
	case ExtCourseSpeed:
		if e.Course < 0 || e.Course > 999 || e.Speed < 0 || e.Speed > 999 {
			return "", &EncodingError{Reason: "course/speed out of range"}
		}
		return fmt.Sprintf("%03d/%03d", e.Course, e.Speed), nil
	case ExtPHG:
		powerCode := int(math.Round(math.Sqrt(float64(e.PowerW))))
		heightCode := int(math.Round(math.Log2(float64(e.HeightFt) / 10.0)))
		dirCode := e.Directivity / 45
		if powerCode < 0 || powerCode > 9 || heightCode < 0 || heightCode > 9 ||
			e.GainDB < 0 || e.GainDB > 9 || dirCode < 0 || dirCode > 9 {
			return "", &EncodingError{Reason: "PHG value out of digit range"}
		}
		return fmt.Sprintf("PHG%d%d%d%d", powerCode, heightCode, e.GainDB, dirCode), nil
	case ExtRNG:
		if e.RangeMiles < 0 || e.RangeMiles > 9999 {
			return "", &EncodingError{Reason: "RNG out of range"}
		}
		return fmt.Sprintf("RNG%04d", e.RangeMiles), nil
	case ExtDFS:
		heightCode := int(math.Round(math.Log2(float64(e.HeightFt) / 10.0)))
		dirCode := e.Directivity / 45
		if e.StrengthS < 0 || e.StrengthS > 9 || heightCode < 0 || heightCode > 9 ||
			e.GainDB < 0 || e.GainDB > 9 || dirCode < 0 || dirCode > 9 {
			return "", &EncodingError{Reason: "DFS value out of digit range"}
		}
		return fmt.Sprintf("DFS%d%d%d%d", e.StrengthS, heightCode, e.GainDB, dirCode), nil
	default:
		return "", &EncodingError{Reason: "unknown data extension kind"}
	}
}

func allDigits(b []byte) bool {
	for _, c := range b {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func digits3(b []byte) (int, error) {
	if len(b) != 3 || !allDigits(b) {
		return 0, fmt.Errorf("expected 3 digits")
	}
	return int(b[0]-'0')*100 + int(b[1]-'0')*10 + int(b[2]-'0'), nil
}

func digits4(b []byte) (int, error) {
	if len(b) != 4 || !allDigits(b) {
		return 0, fmt.Errorf("expected 4 digits")
	}
	return int(b[0]-'0')*1000 + int(b[1]-'0')*100 + int(b[2]-'0')*10 + int(b[3]-'0'), nil
}
