package parameter

import (
	"math"
	"time"
)

// Stage geometry in simulation space, stage radius normalized to 1.0
const (
	// StageRadius is the boundary radius beyond which a player is eliminated
	StageRadius = 1.0

	// FallMargin is the tolerance past StageRadius before a player counts as fallen
	FallMargin = 0.05

	// FallThreshold is the elimination distance from origin
	FallThreshold = StageRadius + FallMargin

	// PlayerScale is the player radius as a fraction of StageRadius
	PlayerScale = 0.044

	// PlayerStartDistance is the distance from origin of a freshly claimed player
	PlayerStartDistance = 0.8

	// SlotAngleStep separates consecutive slots on the start ring
	SlotAngleStep = math.Pi / 3
)

// Motion
const (
	// ReferenceFPS is the frame rate the per-frame speeds were tuned for
	ReferenceFPS = 60

	// BaseSpeed is the wander displacement per frame at ReferenceFPS
	BaseSpeed = 0.015

	// KnockbackSpeedMultiplier scales BaseSpeed while in knockback
	KnockbackSpeedMultiplier = 3.0

	// KnockbackSpeed is the displacement per frame while in knockback
	KnockbackSpeed = BaseSpeed * KnockbackSpeedMultiplier

	// WanderTurnSpread is the full width of the random turn around the origin heading
	WanderTurnSpread = math.Pi
)

// Behavior timers
const (
	InitialMoveMin  = 400 * time.Millisecond
	InitialMoveSpan = 600 * time.Millisecond

	WanderMoveMin  = 200 * time.Millisecond
	WanderMoveSpan = 600 * time.Millisecond

	// KnockbackDuration is the forced straight-line motion time after a hit
	KnockbackDuration = 250 * time.Millisecond

	// TimerSlack treats a behavior timer within this much of zero as expired
	TimerSlack = time.Microsecond
)

// Projectile
const (
	// ProjectileSpawnDistance is the distance from origin where projectiles enter
	ProjectileSpawnDistance = 2.0

	// ProjectileDespawnDistance removes projectiles beyond this distance from origin
	ProjectileDespawnDistance = 3.0

	// ProjectileSpeed is the projectile displacement per frame
	ProjectileSpeed = BaseSpeed * 2.0

	// ProjectileRadius is the projectile hit radius
	ProjectileRadius = 0.11
)

// Lifecycle
const (
	MaxPlayers  = 6
	MinPlayers  = 2
	PaletteSize = 6

	// FireRevealDelay arms the fire control after battle start
	FireRevealDelay = 3 * time.Second

	// FireCooldown re-arms the fire control after each trigger
	FireCooldown = 3 * time.Second

	// ResetDelay exposes the reset control after round resolution
	ResetDelay = 2 * time.Second

	// FadeDuration is the shrink/fade time of an eliminated player before it is hidden
	FadeDuration = 500 * time.Millisecond

	// MaxRoundDuration caps headless rounds that never resolve
	MaxRoundDuration = 120 * time.Second
)
