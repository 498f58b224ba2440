// Package combat resolves melee exchanges between the player and an enemy.
package combat

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/minirogue/internal/telemetry"
)

// Combatant is anything that can trade blows.
type Combatant interface {
	GetName() string
	IsAlive() bool
	GetHP() int
	GetAttack() int
	GetDefense() int

	TakeDamage(amount int) int // Returns damage applied
}

// Defender is a spawned combatant that stops acting on its own once
// attacked. Its ID tags the exchange in traces.
type Defender interface {
	Combatant
	ID() uuid.UUID
	Engage()
}

// Result is the outcome of one exchange.
type Result struct {
	AttackerDamage int // Damage dealt by the attacker
	DefenderDamage int // Damage dealt back by the defender (0 if it died first)
	DefenderKilled bool
	AttackerKilled bool
	Message        string // Human-readable summary
}

// Resolver computes melee exchanges.
type Resolver struct{}

// NewResolver creates a new resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Damage returns the damage an attack stat deals through a defense stat.
func Damage(attack, defense int) int {
	if d := attack - defense; d > 0 {
		return d
	}
	return 0
}

// Resolve runs one exchange: both damage values are computed from the stats
// before the exchange, the attacker strikes first and the defender strikes
// back only if it survived.
func (r *Resolver) Resolve(ctx context.Context, attacker Combatant, defender Defender) Result {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.exchange")
	defer span.End()

	defender.Engage()

	dealt := Damage(attacker.GetAttack(), defender.GetDefense())
	taken := Damage(defender.GetAttack(), attacker.GetDefense())

	var result Result
	result.AttackerDamage = defender.TakeDamage(dealt)
	if defender.IsAlive() {
		result.DefenderDamage = attacker.TakeDamage(taken)
	} else {
		result.DefenderKilled = true
	}
	result.AttackerKilled = !attacker.IsAlive()
	result.Message = describe(attacker, defender, result)

	span.SetAttributes(
		attribute.String("attacker", attacker.GetName()),
		attribute.String("defender", defender.GetName()),
		attribute.String("defender.id", defender.ID().String()),
		attribute.Int("damage.dealt", result.AttackerDamage),
		attribute.Int("damage.taken", result.DefenderDamage),
		attribute.Bool("defender.killed", result.DefenderKilled),
		attribute.Bool("attacker.killed", result.AttackerKilled),
	)
	return result
}

func describe(attacker, defender Combatant, r Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s hits %s for %d damage.", attacker.GetName(), defender.GetName(), r.AttackerDamage)
	if r.DefenderKilled {
		fmt.Fprintf(&b, " %s is slain!", defender.GetName())
	} else {
		fmt.Fprintf(&b, " %s hits back for %d damage.", defender.GetName(), r.DefenderDamage)
	}
	if r.AttackerKilled {
		fmt.Fprintf(&b, " %s has fallen. GAME OVER.", attacker.GetName())
	}
	return b.String()
}
