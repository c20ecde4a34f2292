// Command vantage is a headless observer: it joins a server, streams move
// intents, and logs the authoritative state it gets back. Useful for soak
// testing a server without a rendering client attached.
package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/automoto/vantage-mp/network"
	"github.com/automoto/vantage-mp/shared/netcomponents"
	"github.com/automoto/vantage-mp/shared/netconfig"
	"github.com/automoto/vantage-mp/shared/protocol"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leap-fish/necs/esync"
)

func main() {
	addr := flag.String("addr", "localhost:7373", "Server address")
	name := flag.String("name", "observer", "Player name")
	version := flag.String("version", "", "Client version sent in the join request")
	duration := flag.Duration("duration", 30*time.Second, "How long to stay connected")
	forward := flag.Float64("forward", 1, "Forward input to stream, in [-1, 1]")
	run := flag.Bool("run", false, "Hold the run action")
	flag.Parse()

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	client := network.NewClient()
	client.Connect(*addr, *version, *name)
	defer client.Disconnect()

	if err := waitForJoin(client); err != nil {
		log.Fatalf("Join failed: %v", err)
	}

	tickRate := client.TickRate()
	if tickRate <= 0 {
		tickRate = 20
	}
	log.Printf("Joined %q as entity %d, streaming input at %d/s",
		client.ServerName(), client.NetworkID(), tickRate)

	actions := map[netconfig.ActionID]bool{netconfig.ActionRun: *run}
	move := mgl32.Vec2{0, float32(*forward)}

	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()
	deadline := time.After(*duration)

	var lastLog time.Time
	for {
		select {
		case <-deadline:
			log.Println("Done")
			return
		case <-ticker.C:
			if err := client.SendIntent(move, actions, mgl32.Vec3{}); err != nil {
				log.Printf("Send intent failed: %v", err)
			}
			if snap := client.LatestSnapshot(); snap != nil && time.Since(lastLog) > time.Second {
				logOwnState(client, *snap)
				lastLog = time.Now()
			}
		}
	}
}

func waitForJoin(client *network.Client) error {
	deadline := time.After(10 * time.Second)
	for {
		switch client.State() {
		case network.StateJoinedGame:
			return nil
		case network.StateError:
			return client.LastError()
		}
		select {
		case <-deadline:
			return errors.New("timed out waiting for join")
		case <-time.After(50 * time.Millisecond):
		}
	}
}

// logOwnState finds the local entity in a snapshot and prints its replicated
// position and movement state.
func logOwnState(client *network.Client, snapshot esync.WorldSnapshot) {
	myID := client.NetworkID()
	for _, ent := range snapshot {
		if ent.Id != myID {
			continue
		}
		var pos netcomponents.NetPositionData
		var loco netcomponents.NetLocomotionData
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			switch v := instance.(type) {
			case netcomponents.NetPositionData:
				pos = v
			case netcomponents.NetLocomotionData:
				loco = v
			}
		}
		log.Printf("pos=(%.2f %.2f %.2f) posture=%s mode=%s running=%v speed=%.2f",
			pos.X, pos.Y, pos.Z, loco.Posture, loco.Mode, loco.Running, loco.Speed)
		return
	}
}
