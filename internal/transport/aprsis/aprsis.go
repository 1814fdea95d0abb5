package aprsis

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"net"
	"strings"
	"time"

	"github.com/kf7hvm/aprsgo/aprs"
	"github.com/kf7hvm/aprsgo/config"
	"github.com/kf7hvm/aprsgo/packet"
)

// APRS-IS defaults, used when config doesn't override them.
const (
	defaultServer   = "rotate.aprs.net:14580"
	appName         = "aprsgo"
	appVersion      = "0.1"
	defaultRadiusKm = 200
)

// Client represents an active connection to an APRS-IS server.
type Client struct {
	conn       net.Conn
	reader     *bufio.Reader
	callsign   aprs.Callsign
	filter     string
	IsVerified bool
}

// Connect establishes a connection to an APRS-IS server.
func Connect(conf config.Config) (*Client, error) {
	if conf.Station.Callsign == "" {
		return nil, fmt.Errorf("callsign missing in config for APRS-IS")
	}
	callsign, err := aprs.ParseCallsignText(conf.Station.Callsign)
	if err != nil {
		return nil, fmt.Errorf("invalid station callsign in config: %w", err)
	}

	passcode := conf.Station.Passcode
	if passcode <= 0 {
		log.Printf("Warning: APRS-IS passcode not provided or invalid in config, connecting read-only.")
		passcode = -1
	} else if calculated := aprs.CalculatePasscode(callsign); passcode != calculated {
		log.Printf("Warning: provided passcode (%d) does not match calculated passcode (%d) for %s. Connecting read-only.", passcode, calculated, callsign.String())
		passcode = -1
	}

	filterStr := conf.Interface.Filter
	if filterStr == "" {
		filterStr = defaultFilter(conf.Station.GridSquare)
	}

	server := conf.Interface.Server
	if server == "" {
		server = defaultServer
	}

	log.Printf("Attempting APRS-IS connection to %s", server)
	conn, err := net.DialTimeout("tcp", server, 15*time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to APRS-IS server %s: %w", server, err)
	}
	log.Printf("Connected to APRS-IS server: %s", conn.RemoteAddr())

	client := &Client{
		conn:     conn,
		reader:   bufio.NewReader(conn),
		callsign: callsign,
		filter:   filterStr,
	}

	if err := client.login(passcode, conf.Interface.Vers); err != nil {
		client.Close()
		return nil, fmt.Errorf("APRS-IS login failed: %w", err)
	}

	log.Println("APRS-IS login successful")
	return client, nil
}

// defaultFilter derives a radius filter centered on the station's
// gridsquare, falling back to a wide default centered on Ohio when no
// gridsquare is configured or it fails to parse.
func defaultFilter(gridSquare string) string {
	if gridSquare == "" {
		log.Printf("Warning: station gridsquare not set. Using default APRS-IS filter.")
		return fmt.Sprintf("r/%.3f/%.3f/%d", 41.5, -81.0, defaultRadiusKm*2)
	}
	lon, lat, err := aprs.GridSquareToLatLon(gridSquare)
	if err != nil {
		log.Printf("Warning: could not parse station gridsquare %q for APRS-IS filter: %v. Using default filter.", gridSquare, err)
		return fmt.Sprintf("r/%.3f/%.3f/%d", 41.5, -81.0, defaultRadiusKm*2)
	}
	log.Printf("Setting APRS-IS filter based on gridsquare %s (Lat: %.3f, Lon: %.3f)", gridSquare, lat, lon)
	return fmt.Sprintf("r/%.3f/%.3f/%d", lat, lon, defaultRadiusKm)
}

// login sends the login string and verifies the response.
func (c *Client) login(passcode int, vers string) error {
	if vers == "" {
		vers = appVersion
	}
	loginStr := aprs.BuildLoginLine(c.callsign, passcode, appName, vers, c.filter)

	log.Printf("Sending login: user %s pass **** vers %s %s filter %s", c.callsign.String(), appName, vers, c.filter)

	if _, err := c.conn.Write([]byte(loginStr)); err != nil {
		return fmt.Errorf("failed to send login string: %w", err)
	}

	c.conn.SetReadDeadline(time.Now().Add(10 * time.Second))
	defer c.conn.SetReadDeadline(time.Time{})

	for {
		lineBytes, err := c.reader.ReadBytes('\n')
		if err != nil {
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				return fmt.Errorf("timeout waiting for login response from server")
			}
			if err == io.EOF {
				return fmt.Errorf("connection closed unexpectedly during login")
			}
			return fmt.Errorf("error reading login response: %w", err)
		}
		line := strings.TrimSpace(string(lineBytes))
		log.Printf("APRS-IS server: %s", line)

		if !aprs.IsServerComment(line) {
			log.Printf("Received unexpected data before login confirmation: %s", line)
			c.IsVerified = false
			return nil
		}

		if !strings.HasPrefix(line, "# logresp ") {
			continue // other comment lines (banner, port info)
		}

		// # logresp <callsign> verified|invalid ..., server <serverid>
		parts := strings.Fields(line)
		if len(parts) < 4 {
			continue
		}
		if parts[2] != c.callsign.String() {
			return fmt.Errorf("login response callsign mismatch: expected %s, got %s", c.callsign.String(), parts[2])
		}
		if strings.HasPrefix(parts[3], "verified") {
			c.IsVerified = passcode != -1
			return nil
		}
		log.Printf("APRS-IS login status: %s (continuing read-only)", parts[3])
		c.IsVerified = false
		return nil
	}
}

// Start begins the packet-reading loop for APRS-IS.
func (c *Client) Start(packetChan chan<- *packet.Packet) {
	log.Println("Starting APRS-IS packet reader...")

	for {
		c.conn.SetReadDeadline(time.Time{})

		lineBytes, err := c.reader.ReadBytes('\n')
		if err != nil {
			if err != io.EOF {
				log.Printf("Error reading APRS-IS stream: %v", err)
			} else {
				log.Println("APRS-IS connection closed.")
			}
			close(packetChan)
			return
		}

		line := strings.TrimSpace(string(lineBytes))
		if line == "" || aprs.IsServerComment(line) {
			continue
		}

		f, err := aprs.DecodeTNC2(line)
		if err != nil {
			log.Printf("Failed to decode APRS-IS line: %v -- Line: %s", err, line)
			continue
		}

		packetChan <- packet.FromAPRSFrame(f)
	}
}

// Close disconnects the client.
func (c *Client) Close() {
	if c.conn != nil {
		log.Println("Closing APRS-IS connection.")
		c.conn.Close()
	}
}
