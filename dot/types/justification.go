// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"
)

// ConsensusEngineID is a 4-character identifier of the consensus engine
// that produced a justification or digest item.
type ConsensusEngineID [4]byte

// NewConsensusEngineID casts a byte slice to ConsensusEngineID
// if the input is longer than 4 bytes, it takes the first 4 bytes
func NewConsensusEngineID(in []byte) (res ConsensusEngineID) {
	copy(res[:], in)
	return res
}

// ToBytes turns ConsensusEngineID to a byte slice
func (h ConsensusEngineID) ToBytes() []byte {
	b := [4]byte(h)
	return b[:]
}

func (h ConsensusEngineID) String() string {
	return string(h[:])
}

// BabeEngineID is the hard-coded babe ID
var BabeEngineID = ConsensusEngineID{'B', 'A', 'B', 'E'}

// GrandpaEngineID is the hard-coded grandpa ID
var GrandpaEngineID = ConsensusEngineID{'F', 'R', 'N', 'K'}

// Justification is a finality proof fragment for a block, tagged with
// the ID of the consensus engine able to decode and verify it.
// The payload is opaque to everything but that engine.
type Justification struct {
	EngineID ConsensusEngineID
	Data     []byte
}

// Justifications is the set of justifications attached to a block,
// at most one per consensus engine.
type Justifications []Justification

// IntoJustification returns the payload for the given engine ID,
// or false if none is present.
func (js Justifications) IntoJustification(engineID ConsensusEngineID) ([]byte, bool) {
	for _, j := range js {
		if j.EngineID == engineID {
			return j.Data, true
		}
	}
	return nil, false
}

func (j Justification) String() string {
	return fmt.Sprintf("engine=%s len=%d", j.EngineID, len(j.Data))
}
