package route

type authorityState int

const (
	inScheme authorityState = iota
	inUser
	inIPv6
	inHost
	inPort
)

// Authority holds the lengths of the scheme and authority components of a URI, as found by [ScanAuthority].
// A length of zero means the component isn't present.
type Authority struct {
	Scheme int
	User   int
	Host   int
	Port   int
	// Offset of the first byte after the scheme separator.
	start int
	// Offset of the first byte after the authority.
	end int
}

// UserStart is the offset of the user component, or of the host when there's no user.
func (a Authority) UserStart() int {
	return a.start
}

// HostStart is the offset of the host component.
func (a Authority) HostStart() int {
	if a.User > 0 {
		return a.start + a.User + 1
	}
	return a.start
}

// PortStart is the offset of the port component.
// It's only meaningful when Port is non-zero.
func (a Authority) PortStart() int {
	return a.HostStart() + a.Host + 1
}

// End is the offset of the first byte after the authority, where the path begins.
func (a Authority) End() int {
	return a.end
}

// ScanAuthority finds the scheme, user, host, and port of uri in a single pass.
//
// An authority introduced with "//" may have a bracketed IPv6 literal host.
// A URI without "//" after the scheme, like "mailto:user@example.com", only reports a host when a user is present.
// A URI starting with a path, like "/a/b?c", has no scheme or authority, and all lengths are zero.
func ScanAuthority(uri string) Authority {
	var (
		a         Authority
		state     = inScheme
		start     int
		hostStart int
		opaque    bool
	)
	for i := 0; i < len(uri); i++ {
		ch := uri[i]
		switch state {
		case inScheme:
			switch ch {
			case '/', '?', '#':
				return Authority{}
			case ':':
				a.Scheme = i
				state = inUser
				if i+2 < len(uri) && uri[i+1] == '/' && uri[i+2] == '/' {
					start = i + 3
					if start < len(uri) && uri[start] == '[' {
						state = inIPv6
					}
					i = start - 1
				} else {
					start = i + 1
					opaque = true
				}
				a.start, hostStart = start, start
			}
		case inUser:
			switch ch {
			case '@':
				a.User = i - start
				state = inHost
				start = i + 1
				hostStart = start
			case ':':
				a.Host = i - start
				state = inPort
				start = i + 1
			case '/', '?', '#':
				a.Host = i - start
				a.end = i
				return a
			}
		case inIPv6:
			if ch == ']' {
				state = inHost
			}
		case inHost:
			switch ch {
			case ':':
				a.Host = i - start
				state = inPort
				start = i + 1
			case '/', '?', '#':
				a.Host = i - start
				a.end = i
				return a
			}
		case inPort:
			switch ch {
			case '/', '?', '#':
				a.Port = i - start
				a.end = i
				return a
			case ':':
				// The host itself contains a colon.
				a.Host = i - hostStart
				start = i + 1
			case '@':
				// What looked like host and port was "user:password".
				a.User = i - a.start
				a.Host = 0
				state = inHost
				start = i + 1
				hostStart = start
			}
		}
	}
	switch state {
	case inScheme:
		return Authority{}
	case inUser, inPort:
		if opaque {
			a.Host, a.Port = 0, 0
			a.end = a.start
			return a
		}
		if state == inPort {
			a.Port = len(uri) - start
		} else {
			a.Host = len(uri) - start
		}
	case inHost, inIPv6:
		a.Host = len(uri) - start
	}
	a.end = len(uri)
	return a
}
