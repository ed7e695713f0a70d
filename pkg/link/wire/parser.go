package wire

type parseState int

const (
	stateMagic parseState = iota // waiting for Magic
	stateLen                     // waiting for payload length
	stateBody                    // collecting header, payload and crc
)

// Parser splits a byte stream into frames.
//
// A rejected frame is rescanned from its second byte, so a stray Magic
// with a bogus length does not swallow the valid frames that follow it.
// Bytes queued for rescanning are fed back with Pending and Next.
type Parser struct {
	buf   [MaxFrameLen]byte
	n     int
	want  int
	state parseState

	replay [MaxFrameLen]byte
	ri, rn int

	// Dropped counts frames discarded on framing or checksum errors.
	Dropped int
}

// Reset discards any partial frame and queued bytes.
func (p *Parser) Reset() {
	p.reset()
	p.ri, p.rn = 0, 0
}

func (p *Parser) reset() {
	p.n, p.want, p.state = 0, 0, stateMagic
}

// Pending reports whether bytes from a rejected frame are waiting to be
// rescanned.
func (p *Parser) Pending() bool {
	return p.ri < p.rn
}

// Next parses the next queued byte. It must only be called when Pending.
func (p *Parser) Next() ([]byte, error) {
	b := p.replay[p.ri]
	p.ri++
	return p.Parse(b)
}

// Parse consumes one byte. When a frame completes, its raw bytes are
// returned; the slice is only valid until the next call.
func (p *Parser) Parse(b byte) ([]byte, error) {
	switch p.state {
	case stateMagic:
		if b == Magic {
			p.buf[0], p.n = b, 1
			p.state = stateLen
		}
	case stateLen:
		p.buf[1], p.n = b, 2
		p.want = HeaderLen + int(b) + TrailerLen
		p.state = stateBody
	case stateBody:
		p.buf[p.n] = b
		p.n++
		if p.n < p.want {
			return nil, nil
		}
		pkt := p.buf[:p.n]
		p.reset()
		if _, err := Unpack(pkt); err != nil {
			p.Dropped++
			p.requeue(pkt[1:])
			return nil, err
		}
		return pkt, nil
	}
	return nil, nil
}

// requeue puts b in front of the bytes still queued. The result never
// exceeds MaxFrameLen: when queued bytes remain, b was taken from them.
func (p *Parser) requeue(b []byte) {
	left := p.rn - p.ri
	copy(p.replay[len(b):], p.replay[p.ri:p.rn])
	copy(p.replay[:], b)
	p.ri, p.rn = 0, len(b)+left
}
