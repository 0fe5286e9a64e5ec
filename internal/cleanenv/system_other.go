//go:build !windows

package cleanenv

type unsupportedSystem struct{}

func hostSystem() System {
	return unsupportedSystem{}
}

func (unsupportedSystem) OpenProcessToken() (Token, error) {
	return nil, ErrUnsupported
}

func (unsupportedSystem) CreateEnvironmentBlock(Token) (Block, error) {
	return nil, ErrUnsupported
}
