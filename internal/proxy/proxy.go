// Package proxy loads egress proxy descriptors and assigns them to
// account slots.
package proxy

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/sabir1919/Hednet-node/internal/errors"
)

// Descriptor is a parsed proxy URI. Immutable after load; safe to share
// across sessions without coordination.
type Descriptor struct {
	Scheme   string
	Host     string
	Port     int
	Username string
	Password string
}

// Parse parses a proxy URI of the form scheme://[user[:pass]@]host:port.
func Parse(raw string) (Descriptor, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Descriptor{}, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid proxy URI: "+raw,
			"Use scheme://[user[:pass]@]host:port, e.g. http://1.2.3.4:8080")
	}
	if u.Scheme == "" || u.Hostname() == "" || u.Port() == "" {
		return Descriptor{}, errors.New(errors.ErrConfig,
			"Invalid proxy URI: "+raw,
			"Scheme, host, and port are all required, e.g. socks5://1.2.3.4:1080")
	}

	port, err := strconv.Atoi(u.Port())
	if err != nil {
		return Descriptor{}, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid proxy port in: "+raw,
			"Port must be numeric")
	}

	d := Descriptor{
		Scheme: u.Scheme,
		Host:   u.Hostname(),
		Port:   port,
	}
	if u.User != nil {
		d.Username = u.User.Username()
		d.Password, _ = u.User.Password()
	}
	return d, nil
}

// Server returns the proxy address without credentials, the form the
// rendering engine expects.
func (d Descriptor) Server() string {
	return fmt.Sprintf("%s://%s:%d", d.Scheme, d.Host, d.Port)
}

// Label returns the short display form shown in the status table.
func (d Descriptor) Label() string {
	return fmt.Sprintf("%s:%d", d.Host, d.Port)
}

// Assign maps an account index to a proxy by round-robin, or nil when no
// proxies are configured. Deterministic: the same index always yields the
// same proxy, so an account keeps its egress path across restarts.
func Assign(index int, list []Descriptor) *Descriptor {
	if len(list) == 0 || index < 0 {
		return nil
	}
	return &list[index%len(list)]
}

// LoadFile reads a newline-delimited proxy list. Blank lines are ignored.
// A missing file yields an empty list, not an error.
func LoadFile(path string) ([]Descriptor, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot read proxies file: "+path,
			"Check file permissions")
	}
	defer f.Close()

	var list []Descriptor
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		d, err := Parse(text)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Bad proxy on line %d of %s", line, path),
				"Fix or remove the offending line")
		}
		list = append(list, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed reading proxies file: "+path, "")
	}

	return list, nil
}
