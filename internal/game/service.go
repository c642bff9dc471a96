package game

import (
	"log/slog"
	mathrand "math/rand"
	"time"
)

// Service bundles the simulation operations. All methods take the session's
// *State and mutate it in place; each mutation either fully applies or leaves
// the state unchanged. The embedded rand source feeds the daily event roll,
// the only non-deterministic part of the engine.
type Service struct {
	log  *slog.Logger
	rand *mathrand.Rand
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		log:  logger,
		rand: mathrand.New(mathrand.NewSource(time.Now().UnixNano())),
	}
}

// NewServiceWithRand pins the event roll source, for deterministic tests.
func NewServiceWithRand(logger *slog.Logger, src mathrand.Source) *Service {
	s := NewService(logger)
	s.rand = mathrand.New(src)
	return s
}
