package core

import (
	"sync"

	"github.com/automoto/vantage-mp/shared/messages"
	"github.com/leap-fish/necs/router"
	"github.com/yohamta/donburi"
)

const spawnHitPoints = 100

// session tracks one joined client and its character entity. Intents arrive
// on necs router goroutines and are drained by the game loop; only the
// newest one is kept, an older sequence never overwrites a newer one.
// entity, health and spawned are written and read only on the loop
// goroutine, which owns every world mutation.
type session struct {
	client  *router.NetworkClient
	entity  donburi.Entity
	health  *characterHealth
	spawned bool

	mu      sync.Mutex
	pending *messages.MoveIntent
}

func (s *session) queueIntent(intent messages.MoveIntent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil && intent.Sequence < s.pending.Sequence {
		return
	}
	s.pending = &intent
}

func (s *session) takeIntent() *messages.MoveIntent {
	s.mu.Lock()
	defer s.mu.Unlock()
	intent := s.pending
	s.pending = nil
	return intent
}

// characterHealth is the authority-side cue.Health implementation. It is
// only touched from the game loop goroutine.
type characterHealth struct {
	hp int
}

func newCharacterHealth() *characterHealth {
	return &characterHealth{hp: spawnHitPoints}
}

func (h *characterHealth) ApplyDamage(amount int) {
	if amount <= 0 {
		return
	}
	h.hp -= amount
	if h.hp < 0 {
		h.hp = 0
	}
}

func (h *characterHealth) Dead() bool { return h.hp <= 0 }
