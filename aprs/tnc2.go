package aprs

import (
	"fmt"
	"strings"
)

// TNC2Line is the textual APRS-IS monitor-format framing of an AX.25 UI
// frame: SRC>DEST[,PATH]:INFO. Grounded on the teacher's aprs/ax25.go
// text-mode findPayload branch (split on first ':' then first '>'), moved
// into the codec per spec.md §4.6/§6 since the line shape is part of the
// core textual framing contract, not transport-private detail.
type TNC2Line struct {
	Source      Callsign
	Destination Callsign
	Path        []Callsign
	Info        []byte
}

// IsServerComment reports whether line is an APRS-IS server comment line
// (spec.md §4.6: lines beginning with '#').
func IsServerComment(line string) bool {
	return strings.HasPrefix(line, "#")
}

// DecodeTNC2Line decodes a TNC2 monitor-format line (CRLF already
// stripped by the caller).
func DecodeTNC2Line(line string) (TNC2Line, error) {
	colon := strings.IndexByte(line, ':')
	if colon == -1 {
		return TNC2Line{}, &FrameError{Raw: []byte(line), Reason: "missing ':' separator between header and information field"}
	}
	header := line[:colon]
	info := line[colon+1:]

	gt := strings.IndexByte(header, '>')
	if gt == -1 {
		return TNC2Line{}, &AddressError{Raw: []byte(header), Reason: "missing '>' separator between source and destination"}
	}
	srcStr := header[:gt]
	destPathStr := header[gt+1:]

	src, err := ParseCallsignText(srcStr)
	if err != nil {
		return TNC2Line{}, err
	}

	parts := strings.Split(destPathStr, ",")
	if len(parts) == 0 || parts[0] == "" {
		return TNC2Line{}, &AddressError{Raw: []byte(destPathStr), Reason: "missing destination callsign"}
	}
	dest, err := ParseCallsignText(parts[0])
	if err != nil {
		return TNC2Line{}, err
	}

	var path []Callsign
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		cs, err := ParseCallsignText(p)
		if err != nil {
			return TNC2Line{}, err
		}
		path = append(path, cs)
	}

	return TNC2Line{
		Source:      src,
		Destination: dest,
		Path:        path,
		Info:        []byte(info),
	}, nil
}

// Encode renders the TNC2 line (without trailing CRLF).
func (t TNC2Line) Encode() string {
	var b strings.Builder
	b.WriteString(t.Source.String())
	b.WriteByte('>')
	b.WriteString(t.Destination.String())
	for _, p := range t.Path {
		b.WriteByte(',')
		b.WriteString(p.String())
	}
	b.WriteByte(':')
	b.Write(t.Info)
	return b.String()
}

// BuildLoginLine renders the APRS-IS client login line (spec.md §6):
// "user {CALL} pass {PASSCODE} vers {NAME} {VERSION}[ filter {FILTER}]\r\n".
// A negative passcode selects read-only login ("pass -1").
func BuildLoginLine(call Callsign, passcode int, software, version, filter string) string {
	line := fmt.Sprintf("user %s pass %d vers %s %s", call.String(), passcode, software, version)
	if filter != "" {
		line += " filter " + filter
	}
	return line + "\r\n"
}
