// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"
)

// Extrinsic is a generic transaction whose format is verified in the runtime
type Extrinsic []byte

// Body is the extrinsics(not encoded) inside a state block
type Body []Extrinsic

// NewBody returns a Body from an Extrinsic array
func NewBody(e []Extrinsic) *Body {
	body := Body(e)
	return &body
}

func (b *Body) String() string {
	return fmt.Sprintf("extrinsics=%d", len(*b))
}
