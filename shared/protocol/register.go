package protocol

import (
	"github.com/automoto/vantage-mp/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPosition   uint = 10
	SyncIDNetLocomotion uint = 11
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPosition   uint8 = 10
	InterpIDNetLocomotion uint8 = 11
)

// RegisterComponents registers all replicated components with necs for
// serialization. Both the authority and observers must call this before any
// network operations.
func RegisterComponents() error {
	if err := esync.RegisterComponent(
		SyncIDNetPosition,
		netcomponents.NetPositionData{},
		netcomponents.NetPosition,
		esync.WithInterpFn(InterpIDNetPosition, netcomponents.LerpNetPosition),
	); err != nil {
		return err
	}

	return esync.RegisterComponent(
		SyncIDNetLocomotion,
		netcomponents.NetLocomotionData{},
		netcomponents.NetLocomotion,
		esync.WithInterpFn(InterpIDNetLocomotion, netcomponents.LerpNetLocomotion),
	)
}
