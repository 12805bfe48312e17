package config

import (
	"github.com/ytget/bg-remover/internal/rembg"
)

// RemoverOptions builds the removal engine options from the stored settings
func (s *Settings) RemoverOptions() rembg.Options {
	return rembg.Options{
		Backend:   string(s.GetBackend()),
		ServerURL: s.GetServerURL(),
		Command:   s.GetCommand(),
		Model:     s.GetModel(),
	}
}
