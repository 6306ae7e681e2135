package gpsd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"
)

// Protocol docs: https://gpsd.gitlab.io/gpsd/gpsd_json.html
// gpsd streams JSON reports over TCP once a WATCH command is sent; a TPV
// report with mode >= 2 carries a usable 2D fix.
const (
	watchCommand = `?WATCH={"enable":true,"json":true};` + "\n"

	// acquireTimeout bounds the whole acquisition, connect included.
	acquireTimeout = 5 * time.Second

	// maxFixAge is how old a previously acquired fix may be and still be
	// served without touching the device again.
	maxFixAge = 10 * time.Minute
)

// Fix is a 2D position report.
type Fix struct {
	Lat  float64
	Lon  float64
	Time time.Time
}

// tpvReport is the subset of a gpsd TPV report we consume.
type tpvReport struct {
	Class string  `json:"class"`
	Mode  int     `json:"mode"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Time  string  `json:"time"`
}

type Client struct {
	addr string

	mu      sync.Mutex
	lastFix *Fix
}

func NewClient(addr string) *Client {
	return &Client{addr: addr}
}

// Position returns the current device position. A fix acquired within the
// last ten minutes is reused without contacting gpsd; otherwise the client
// connects and waits up to five seconds for a TPV report with a 2D fix.
func (c *Client) Position() (*Fix, error) {
	c.mu.Lock()
	if c.lastFix != nil && time.Since(c.lastFix.Time) <= maxFixAge {
		fix := *c.lastFix
		c.mu.Unlock()
		return &fix, nil
	}
	c.mu.Unlock()

	fix, err := c.acquire()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.lastFix = fix
	c.mu.Unlock()

	result := *fix
	return &result, nil
}

func (c *Client) acquire() (*Fix, error) {
	deadline := time.Now().Add(acquireTimeout)

	conn, err := net.DialTimeout("tcp", c.addr, acquireTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to gpsd at %s: %w", c.addr, err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(deadline); err != nil {
		return nil, fmt.Errorf("failed to set deadline: %w", err)
	}

	if _, err := conn.Write([]byte(watchCommand)); err != nil {
		return nil, fmt.Errorf("failed to send watch command: %w", err)
	}

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var report tpvReport
		if err := json.Unmarshal(scanner.Bytes(), &report); err != nil {
			// gpsd also emits VERSION, DEVICES and SKY reports; skip
			// anything that does not parse as what we want.
			continue
		}
		if report.Class != "TPV" || report.Mode < 2 {
			continue
		}

		fixTime, err := time.Parse(time.RFC3339, report.Time)
		if err != nil {
			fixTime = time.Now()
		}

		return &Fix{Lat: report.Lat, Lon: report.Lon, Time: fixTime}, nil
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("no position fix: %w", err)
	}
	return nil, fmt.Errorf("gpsd stream ended without a position fix")
}
