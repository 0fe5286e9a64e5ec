// Package cleanenv produces the operating system's default environment for
// the current user, as opposed to the environment this process inherited.
//
// On Windows the default environment comes from CreateEnvironmentBlock
// called with the current process token and inheritance disabled. Other
// systems have no equivalent and report ErrUnsupported.
package cleanenv

import (
	"github.com/z0mbix/withcleanenv/internal/envblock"
)

// Token is an open handle to a security token. Close releases it.
type Token interface {
	Close() error
}

// Block is an environment block allocated by the operating system.
// View is only valid until Destroy is called.
type Block interface {
	View() envblock.Block
	Destroy() error
}

// SecurityContext opens the security token of the current process.
type SecurityContext interface {
	OpenProcessToken() (Token, error)
}

// TemplateService creates the default environment block for a token.
type TemplateService interface {
	CreateEnvironmentBlock(token Token) (Block, error)
}

// System is the pair of OS capabilities a Provider needs.
type System interface {
	SecurityContext
	TemplateService
}

// Provider builds clean environments.
type Provider struct {
	Security  SecurityContext
	Templates TemplateService

	// OnReleaseError is called when releasing the token or the block
	// fails. Release failures never fail Environment.
	OnReleaseError func(resource string, err error)

	// Tracef, when set, receives progress messages.
	Tracef func(format string, args ...any)
}

// NewProvider returns a Provider backed by the host operating system.
func NewProvider() *Provider {
	sys := hostSystem()
	return &Provider{
		Security:  sys,
		Templates: sys,
	}
}

// Environment returns the default environment for the current process's
// security context. Every resource acquired along the way is released
// before it returns, block first and token last.
func (p *Provider) Environment() (Environment, error) {
	token, err := p.Security.OpenProcessToken()
	if err != nil {
		return Environment{}, &Error{Op: OpOpenToken, Err: err}
	}
	defer p.release("process token", token.Close)
	p.tracef("process token opened")

	block, err := p.Templates.CreateEnvironmentBlock(token)
	if err != nil {
		return Environment{}, &Error{Op: OpCreateBlock, Err: err}
	}
	defer p.release("environment block", block.Destroy)

	env := Environment{entries: envblock.Parse(block.View())}
	p.tracef("environment block parsed: %d variables", env.Len())

	return env, nil
}

func (p *Provider) release(resource string, fn func() error) {
	if err := fn(); err != nil {
		if p.OnReleaseError != nil {
			p.OnReleaseError(resource, err)
		}
		return
	}
	p.tracef("%s released", resource)
}

func (p *Provider) tracef(format string, args ...any) {
	if p.Tracef != nil {
		p.Tracef(format, args...)
	}
}

// Get returns the clean environment using the host operating system.
func Get() (Environment, error) {
	return NewProvider().Environment()
}
