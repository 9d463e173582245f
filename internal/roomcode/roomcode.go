// Package roomcode mints the shareable codes the lobby hands out for new
// rooms. Codes are lowercase base36 in the form xxx-xxxx-xxx. The relay core
// never inspects them: any string is a valid room identifier, a code is just
// easy to read out loud.
package roomcode

import (
	"fmt"

	nanoid "github.com/jaevor/go-nanoid"
)

const (
	alphabet   = "0123456789abcdefghijklmnopqrstuvwxyz"
	codeLength = 10
)

// Generator mints room codes.
type Generator struct {
	gen func() string
}

// NewGenerator builds a code generator backed by a crypto/rand id source.
func NewGenerator() (*Generator, error) {
	gen, err := nanoid.CustomASCII(alphabet, codeLength)
	if err != nil {
		return nil, fmt.Errorf("init room code generator: %w", err)
	}
	return &Generator{gen: gen}, nil
}

// NewCode returns a fresh code in the form xxx-xxxx-xxx.
func (g *Generator) NewCode() string {
	raw := g.gen()
	return raw[:3] + "-" + raw[3:7] + "-" + raw[7:]
}
