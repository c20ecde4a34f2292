package core

import (
	"log"
	"sync"

	"github.com/automoto/vantage-mp/config"
	"github.com/automoto/vantage-mp/shared/gamemath"
	"github.com/automoto/vantage-mp/shared/messages"
	"github.com/automoto/vantage-mp/shared/netcomponents"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// Server owns the authoritative simulation and the replication session.
// Characters are client-authoritative only in the sense that clients send
// intents; every simulated value is produced here and pushed out through
// esync snapshots.
type Server struct {
	cfg       *config.Config
	sim       *simulation
	arena     *Arena
	loop      *GameLoop
	transport *transports.WsServerTransport

	mu       sync.RWMutex
	sessions map[*router.NetworkClient]*session

	// commands carries world mutations from router goroutines to the game
	// loop; only the loop goroutine touches the ECS world.
	cmdMu    sync.Mutex
	commands []func()
}

func NewServer(cfg *config.Config) (*Server, error) {
	sim, err := newSimulation(cfg)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:      cfg,
		sim:      sim,
		arena:    NewArena(0, mgl32.Vec3{0, 0.5, 0}),
		sessions: make(map[*router.NetworkClient]*session),
	}
	s.loop = NewGameLoop(s, cfg.Net.TickRate)

	srvsync.UseEsync(sim.ecs.World)
	s.setupRouterCallbacks()

	return s, nil
}

// Start runs the game loop and blocks serving the WebSocket transport.
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		// The character spawns on the join handshake, not on connect.
		log.Printf("[server] client connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.onJoinRequest(client, req)
	})

	router.On(func(client *router.NetworkClient, intent messages.MoveIntent) {
		s.onMoveIntent(client, intent)
	})

	router.On(func(client *router.NetworkClient, evt messages.LadderEvent) {
		s.onLadderEvent(client, evt)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

func (s *Server) onJoinRequest(client *router.NetworkClient, req messages.JoinRequest) {
	if s.cfg.Net.Version != "" && req.Version != s.cfg.Net.Version {
		log.Printf("[server] rejecting %s: version %q, want %q",
			client.Id(), req.Version, s.cfg.Net.Version)
		s.send(client, messages.JoinRejected{Reason: "version mismatch"})
		return
	}

	s.mu.Lock()
	if _, joined := s.sessions[client]; joined {
		s.mu.Unlock()
		return
	}
	sess := &session{client: client}
	s.sessions[client] = sess
	s.mu.Unlock()

	s.enqueue(func() { s.spawnSession(sess, req) })
}

// spawnSession runs on the loop goroutine and owns every world mutation of
// a join: spawn, network sync, and the handshake reply.
func (s *Server) spawnSession(sess *session, req messages.JoinRequest) {
	s.mu.RLock()
	_, live := s.sessions[sess.client]
	s.mu.RUnlock()
	if !live {
		// Disconnected before the loop got to the join.
		return
	}

	health := newCharacterHealth()
	entry, err := s.sim.spawnCharacter(s.arena.NewBody(), s.arena.Spawn, health)
	if err != nil {
		log.Printf("[server] spawn for %s failed: %v", sess.client.Id(), err)
		s.dropSession(sess.client)
		s.send(sess.client, messages.JoinRejected{Reason: "spawn failed"})
		return
	}

	entity := entry.Entity()
	err = srvsync.NetworkSync(s.sim.ecs.World, &entity,
		srvsync.WithInterp(netcomponents.NetPosition, netcomponents.NetLocomotion),
	)
	if err != nil {
		log.Printf("[server] network sync for %s failed: %v", sess.client.Id(), err)
		s.sim.ecs.World.Remove(entity)
		s.dropSession(sess.client)
		s.send(sess.client, messages.JoinRejected{Reason: "sync failed"})
		return
	}

	sess.entity = entity
	sess.health = health
	sess.spawned = true

	var nid esync.NetworkId
	if id := esync.GetNetworkId(entry); id != nil {
		nid = *id
	}
	s.send(sess.client, messages.JoinAccepted{
		NetworkID:  nid,
		ServerName: s.cfg.Net.ServerName,
		TickRate:   s.cfg.Net.TickRate,
	})

	log.Printf("[server] %s (%q) joined as network entity %d", sess.client.Id(), req.PlayerName, nid)
}

func (s *Server) dropSession(client *router.NetworkClient) {
	s.mu.Lock()
	delete(s.sessions, client)
	s.mu.Unlock()
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("[server] client %s disconnected: %v", client.Id(), err)
	} else {
		log.Printf("[server] client %s disconnected", client.Id())
	}

	s.mu.Lock()
	sess, exists := s.sessions[client]
	if exists {
		delete(s.sessions, client)
	}
	s.mu.Unlock()
	if !exists {
		return
	}

	s.enqueue(func() {
		if sess.spawned && s.sim.ecs.World.Valid(sess.entity) {
			s.sim.ecs.World.Remove(sess.entity)
		}
	})
}

func (s *Server) onMoveIntent(client *router.NetworkClient, intent messages.MoveIntent) {
	s.mu.RLock()
	sess, exists := s.sessions[client]
	s.mu.RUnlock()
	if !exists {
		return
	}
	sess.queueIntent(intent)
}

// onLadderEvent starts a ladder traversal for the sender's character. The
// event carries trigger-volume data the server has no geometry for, so the
// anchor is taken as sent and scrubbed.
func (s *Server) onLadderEvent(client *router.NetworkClient, evt messages.LadderEvent) {
	s.mu.RLock()
	sess, exists := s.sessions[client]
	s.mu.RUnlock()
	if !exists {
		return
	}

	anchor := gamemath.Sanitize(mgl32.Vec3{evt.AnchorX, evt.AnchorY, evt.AnchorZ})
	look := gamemath.Sanitize(mgl32.Vec3{evt.LookX, evt.LookY, evt.LookZ})
	s.enqueue(func() {
		if !sess.spawned || !s.sim.ecs.World.Valid(sess.entity) {
			return
		}
		entry := s.sim.ecs.World.Entry(sess.entity)
		s.sim.ladder.Enter(entry, anchor, look, evt.Direction)
	})
}

// enqueue defers a world mutation to the next loop tick.
func (s *Server) enqueue(cmd func()) {
	s.cmdMu.Lock()
	s.commands = append(s.commands, cmd)
	s.cmdMu.Unlock()
}

// ProcessCommands runs the queued world mutations, then drains each
// session's newest intent into the simulation. Called from the game loop
// before stepping; spawns land before the intents that follow them.
func (s *Server) ProcessCommands() {
	s.cmdMu.Lock()
	cmds := s.commands
	s.commands = nil
	s.cmdMu.Unlock()
	for _, cmd := range cmds {
		cmd()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sess := range s.sessions {
		if !sess.spawned {
			continue
		}
		if intent := sess.takeIntent(); intent != nil {
			s.sim.applyIntent(sess.entity, intent)
		}
	}
}

func (s *Server) send(client *router.NetworkClient, msg any) {
	if err := client.SendMessage(msg); err != nil {
		log.Printf("[server] send to %s failed: %v", client.Id(), err)
	}
}

// World returns the ECS world, for tests.
func (s *Server) World() donburi.World {
	return s.sim.ecs.World
}

// PlayerCount returns the number of joined clients.
func (s *Server) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
