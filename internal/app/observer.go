package app

import (
	"math/big"

	"github.com/ZoeyR/rcrypt/numtheory"
)

// multiObserver fans notifications out to several observers in order.
type multiObserver []numtheory.Observer

func (m multiObserver) RoundCompleted(n *big.Int, round int, passed bool) {
	for _, o := range m {
		o.RoundCompleted(n, round, passed)
	}
}

func (m multiObserver) CandidateTested(n *big.Int, probablyPrime bool) {
	for _, o := range m {
		o.CandidateTested(n, probablyPrime)
	}
}
