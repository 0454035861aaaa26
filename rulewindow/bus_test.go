// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rulewindow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duskwright/combatcore/rulewindow"
)

type recordingProvider struct {
	name    string
	enabled bool
	calls   *[]string
	onFire  func(ctx *rulewindow.EventContext)
}

func (p *recordingProvider) IsEnabled(*rulewindow.EventContext) bool { return p.enabled }

func (p *recordingProvider) OnWindow(ctx *rulewindow.EventContext) {
	*p.calls = append(*p.calls, p.name)
	if p.onFire != nil {
		p.onFire(ctx)
	}
}

func TestBus_DispatchOrdersByPriorityThenRegistration(t *testing.T) {
	bus := rulewindow.NewBus()
	var calls []string

	bus.Register(rulewindow.Registration{
		ID: "second-registered-higher-priority", Priority: 5,
		Windows:  []rulewindow.Window{rulewindow.BeforeAttackRoll},
		Provider: &recordingProvider{name: "b", enabled: true, calls: &calls},
	})
	bus.Register(rulewindow.Registration{
		ID: "first-registered-lower-priority", Priority: 10,
		Windows:  []rulewindow.Window{rulewindow.BeforeAttackRoll},
		Provider: &recordingProvider{name: "a", enabled: true, calls: &calls},
	})

	bus.Dispatch(rulewindow.BeforeAttackRoll, rulewindow.NewEventContext("src", "tgt", 0))
	require.Equal(t, []string{"b", "a"}, calls)
}

func TestBus_DisabledProviderSkippedSilently(t *testing.T) {
	bus := rulewindow.NewBus()
	var calls []string

	bus.Register(rulewindow.Registration{
		ID: "disabled", Windows: []rulewindow.Window{rulewindow.OnTurnStart},
		Provider: &recordingProvider{name: "disabled", enabled: false, calls: &calls},
	})

	result := bus.Dispatch(rulewindow.OnTurnStart, rulewindow.NewEventContext("", "", 0))
	require.Empty(t, calls)
	require.Empty(t, result.ProviderErrors)
}

func TestBus_CancelStopsFurtherProviders(t *testing.T) {
	bus := rulewindow.NewBus()
	var calls []string

	bus.Register(rulewindow.Registration{
		ID: "canceller", Priority: 1, Windows: []rulewindow.Window{rulewindow.BeforeDamage},
		Provider: &recordingProvider{name: "canceller", enabled: true, calls: &calls, onFire: func(ctx *rulewindow.EventContext) {
			ctx.Cancel = true
		}},
	})
	bus.Register(rulewindow.Registration{
		ID: "never-runs", Priority: 2, Windows: []rulewindow.Window{rulewindow.BeforeDamage},
		Provider: &recordingProvider{name: "never-runs", enabled: true, calls: &calls},
	})

	bus.Dispatch(rulewindow.BeforeDamage, rulewindow.NewEventContext("", "", 0))
	require.Equal(t, []string{"canceller"}, calls)
}

type panicProvider struct{}

func (panicProvider) IsEnabled(*rulewindow.EventContext) bool { return true }
func (panicProvider) OnWindow(*rulewindow.EventContext)       { panic("boom") }

func TestBus_PanickingProviderDoesNotAbortBatch(t *testing.T) {
	bus := rulewindow.NewBus()
	var calls []string

	bus.Register(rulewindow.Registration{
		ID: "panics", Priority: 1, Windows: []rulewindow.Window{rulewindow.OnTurnEnd},
		Provider: panicProvider{},
	})
	bus.Register(rulewindow.Registration{
		ID: "runs-anyway", Priority: 2, Windows: []rulewindow.Window{rulewindow.OnTurnEnd},
		Provider: &recordingProvider{name: "runs-anyway", enabled: true, calls: &calls},
	})

	result := bus.Dispatch(rulewindow.OnTurnEnd, rulewindow.NewEventContext("", "", 0))
	require.Equal(t, []string{"runs-anyway"}, calls)
	require.Len(t, result.ProviderErrors, 1)
	require.Equal(t, "panics", result.ProviderErrors[0].ProviderID)
}

func TestBus_ReRegisterSameIDReplaces(t *testing.T) {
	bus := rulewindow.NewBus()
	var calls []string

	bus.Register(rulewindow.Registration{
		ID: "x", Windows: []rulewindow.Window{rulewindow.OnMove},
		Provider: &recordingProvider{name: "first", enabled: true, calls: &calls},
	})
	bus.Register(rulewindow.Registration{
		ID: "x", Windows: []rulewindow.Window{rulewindow.OnMove},
		Provider: &recordingProvider{name: "second", enabled: true, calls: &calls},
	})

	bus.Dispatch(rulewindow.OnMove, rulewindow.NewEventContext("", "", 0))
	require.Equal(t, []string{"second"}, calls)
}

func TestBus_UnregisterOwnerRemovesAll(t *testing.T) {
	bus := rulewindow.NewBus()
	var calls []string

	bus.Register(rulewindow.Registration{
		ID: "a", OwnerID: "combatant-1", Windows: []rulewindow.Window{rulewindow.OnTurnStart},
		Provider: &recordingProvider{name: "a", enabled: true, calls: &calls},
	})
	bus.Register(rulewindow.Registration{
		ID: "b", OwnerID: "combatant-1", Windows: []rulewindow.Window{rulewindow.OnTurnEnd},
		Provider: &recordingProvider{name: "b", enabled: true, calls: &calls},
	})

	removed := bus.UnregisterOwner("combatant-1")
	require.Equal(t, 2, removed)

	bus.Dispatch(rulewindow.OnTurnStart, rulewindow.NewEventContext("", "", 0))
	bus.Dispatch(rulewindow.OnTurnEnd, rulewindow.NewEventContext("", "", 0))
	require.Empty(t, calls)
}

func TestBus_UnregisterUnknownIDIsNoop(t *testing.T) {
	bus := rulewindow.NewBus()
	require.NotPanics(t, func() { bus.Unregister("does-not-exist") })
}

func TestEventContext_DamageMutationHelpers(t *testing.T) {
	ctx := rulewindow.NewEventContext("src", "tgt", 10)
	ctx.AddDamageBonus(5)
	ctx.MultiplyDamage(2)
	require.Equal(t, 30, ctx.GetFinalDamageValue())
}

func TestEventContext_MaxSaveBonusKeepsStrongestPerBucket(t *testing.T) {
	ctx := rulewindow.NewEventContext("", "", 0)
	ctx.AddMaxSaveBonus("aura", 2)
	ctx.AddMaxSaveBonus("aura", 5)
	ctx.AddMaxSaveBonus("aura", 1)
	ctx.AddSaveBonus(1)

	require.Equal(t, 6, ctx.SaveBonusTotal())
}

func TestEventContext_AdvantageSourcesDeduped(t *testing.T) {
	ctx := rulewindow.NewEventContext("", "", 0)
	ctx.AddAdvantageSource("prone-target")
	ctx.AddAdvantageSource("prone-target")
	ctx.AddAdvantageSource("reckless")

	require.Equal(t, []string{"prone-target", "reckless"}, ctx.AdvantageSources())
}
