// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dagconfig

import (
	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/utils/work"
)

// genesisCoinbaseScript is an OP-TRUE pay-to-script-hash output script,
// shared by every network's genesis coinbase (matches the teacher's
// genesisTxPayload's embedded scriptPubKey).
var genesisCoinbaseScript = []byte{
	0xa9, 0x14, 0xda, 0x17, 0x45, 0xe9, 0xb5, 0x49,
	0xbd, 0x0b, 0xfa, 0x1a, 0x56, 0x99, 0x71, 0xc7,
	0x7e, 0xba, 0x30, 0xcd, 0x5a, 0x4b, 0x87,
}

func newGenesisCoinbase() *externalapi.DomainTransaction {
	return &externalapi.DomainTransaction{
		Version: 0,
		Inputs: []*externalapi.DomainTransactionInput{
			{PreviousOutpoint: externalapi.DomainOutpoint{Index: 0xffffffff}},
		},
		Outputs: []*externalapi.DomainTransactionOutput{
			{Value: 0, ScriptPublicKey: genesisCoinbaseScript},
		},
	}
}

func newGenesisBlock(timestamp int64, bits uint32) *externalapi.DomainBlock {
	header := &externalapi.DomainBlockHeader{
		Version:        0,
		ParentsByLevel: [][]*externalapi.DomainHash{},
		Timestamp:      timestamp,
		Bits:           bits,
		DAAScore:       0,
		BlueScore:      0,
		BlueWork:       work.Zero(),
	}
	block := &externalapi.DomainBlock{
		Header:       header,
		Transactions: []*externalapi.DomainTransaction{newGenesisCoinbase()},
	}
	return block
}

// mainnetGenesis is the genesis block of the main network.
var mainnetGenesis = *newGenesisBlock(0x176a95cef33, 0x207fffff)

// testnetGenesis is the genesis block of the test network.
var testnetGenesis = *newGenesisBlock(0x176a95cf016, 0x1e7fffff)

// simnetGenesis is the genesis block of the simulation network.
var simnetGenesis = *newGenesisBlock(0x176a95cf016, 0x207fffff)

// devnetGenesis is the genesis block of the development network.
var devnetGenesis = *newGenesisBlock(0x176a95cef33, 0x1e7fffff)
