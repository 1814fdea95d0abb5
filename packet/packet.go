// Package packet reduces a decoded APRS frame to the handful of fields
// the TUI actually renders (a callsign, a type, and either a position or
// a message body).
package packet

import "github.com/kf7hvm/aprsgo/aprs"

// PacketType defines the type of APRS data.
type PacketType int

const (
	TypePosition PacketType = iota // A position, object, or item report
	TypeMessage                    // A directed message
	TypeUnknown                    // Anything else (status, telemetry, raw)
)

// Packet holds the simplified APRS data the UI cares about, plus the
// full decoded Frame for anything that needs more.
type Packet struct {
	Callsign string
	Type     PacketType
	Frame    *aprs.APRSFrame

	// Fields for TypePosition
	Lat float64
	Lon float64

	// Fields for TypeMessage
	MsgTo   string
	MsgBody string
	MsgID   string
}

// FromAPRSFrame reduces a decoded frame to a Packet. Object and item
// reports are treated as position reports keyed by the object/item name
// rather than the reporting station's callsign, since that's what a map
// view should plot them under.
func FromAPRSFrame(f *aprs.APRSFrame) *Packet {
	p := &Packet{
		Callsign: sourceCallsign(f).String(),
		Type:     TypeUnknown,
		Frame:    f,
	}

	switch info := f.Info.(type) {
	case aprs.PositionReport:
		p.Type = TypePosition
		p.Lat = info.Position.Lat
		p.Lon = info.Position.Lon
	case aprs.ObjectReport:
		p.Type = TypePosition
		p.Callsign = info.Name
		p.Lat = info.Position.Lat
		p.Lon = info.Position.Lon
	case aprs.ItemReport:
		p.Type = TypePosition
		p.Callsign = info.Name
		p.Lat = info.Position.Lat
		p.Lon = info.Position.Lon
	case aprs.Message:
		p.Type = TypeMessage
		p.MsgTo = info.Addressee
		p.MsgBody = info.Text
		p.MsgID = info.Number
	}

	return p
}

func sourceCallsign(f *aprs.APRSFrame) aprs.Callsign {
	switch {
	case f.TNC2 != nil:
		return f.TNC2.Source
	case f.Frame != nil:
		return f.Frame.Source
	default:
		return aprs.Callsign{}
	}
}
