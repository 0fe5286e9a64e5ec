//go:build windows

package cleanenv

import (
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/z0mbix/withcleanenv/internal/envblock"
)

type windowsSystem struct{}

func hostSystem() System {
	return windowsSystem{}
}

// processToken wraps a token opened with TOKEN_READ.
type processToken struct {
	token windows.Token
}

func (t *processToken) Close() error {
	return t.token.Close()
}

// environmentBlock is memory returned by CreateEnvironmentBlock. It must be
// freed with DestroyEnvironmentBlock.
type environmentBlock struct {
	p *uint16
}

func (b *environmentBlock) View() envblock.Block {
	return envblock.FromPointer(b.p, envblock.MaxBlockUnits)
}

func (b *environmentBlock) Destroy() error {
	return windows.DestroyEnvironmentBlock(b.p)
}

func (windowsSystem) OpenProcessToken() (Token, error) {
	var token windows.Token
	if err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_READ, &token); err != nil {
		return nil, err
	}
	return &processToken{token: token}, nil
}

func (windowsSystem) CreateEnvironmentBlock(token Token) (Block, error) {
	pt, ok := token.(*processToken)
	if !ok {
		return nil, fmt.Errorf("token of type %T was not opened by this system", token)
	}

	var p *uint16
	// inheritExisting=false: only the user's default variables, nothing
	// from this process.
	if err := windows.CreateEnvironmentBlock(&p, pt.token, false); err != nil {
		return nil, err
	}
	return &environmentBlock{p: p}, nil
}
