package engine

import "github.com/rs/zerolog"

// CutStatistics collects counts for each pruning/cutoff mechanism.
type CutStatistics struct {
	TTCutoffs        uint64
	NullMoveCutoffs  uint64
	LMRResearches    uint64
	BetaCutoffs      uint64
	QStandPatCutoffs uint64
	QBetaCutoffs     uint64
}

func (c *CutStatistics) add(o CutStatistics) {
	c.TTCutoffs += o.TTCutoffs
	c.NullMoveCutoffs += o.NullMoveCutoffs
	c.LMRResearches += o.LMRResearches
	c.BetaCutoffs += o.BetaCutoffs
	c.QStandPatCutoffs += o.QStandPatCutoffs
	c.QBetaCutoffs += o.QBetaCutoffs
}

// MarshalZerologObject lets the stats be logged as one nested object.
func (c CutStatistics) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("tt", c.TTCutoffs).
		Uint64("null_move", c.NullMoveCutoffs).
		Uint64("lmr_research", c.LMRResearches).
		Uint64("beta", c.BetaCutoffs).
		Uint64("q_stand_pat", c.QStandPatCutoffs).
		Uint64("q_beta", c.QBetaCutoffs)
}
