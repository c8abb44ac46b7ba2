package dinotree

import (
	"time"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
)

// Stats describes one build. It is meant for bench tooling, so it has a stable
// CBOR encoding.
type Stats struct {
	BuildID      string `cbor:"1,keyasint"`
	NumBots      uint64 `cbor:"2,keyasint"`
	Height       uint64 `cbor:"3,keyasint"`
	NumNodes     uint64 `cbor:"4,keyasint"`
	Sequential   bool   `cbor:"5,keyasint"`
	SwitchDepth  uint64 `cbor:"6,keyasint"`
	BinStrat     string `cbor:"7,keyasint"`
	BoundsMode   string `cbor:"8,keyasint"`
	PackedBytes  uint64 `cbor:"9,keyasint"`
	ElapsedNanos int64  `cbor:"10,keyasint"`

	// LevelNanos is set when the build was instrumented with a LevelTimer.
	LevelNanos []int64 `cbor:"11,keyasint,omitempty"`
}

func (s *Stats) Elapsed() time.Duration {
	return time.Duration(s.ElapsedNanos)
}

func newStatsCodec() (dtcbor.CBORCodec, error) {
	codec, err := dtcbor.NewCBORCodec(
		dtcbor.NewDeterministicEncOpts(),
		dtcbor.NewDeterministicDecOpts(),
	)
	if err != nil {
		return dtcbor.CBORCodec{}, err
	}
	return codec, nil
}

// EncodeStats returns the deterministic CBOR encoding of stats.
func EncodeStats(stats Stats) ([]byte, error) {
	codec, err := newStatsCodec()
	if err != nil {
		return nil, err
	}
	return codec.MarshalCBOR(stats)
}

func DecodeStats(data []byte) (Stats, error) {
	codec, err := newStatsCodec()
	if err != nil {
		return Stats{}, err
	}
	var stats Stats
	if err = codec.UnmarshalInto(data, &stats); err != nil {
		return Stats{}, err
	}
	return stats, nil
}
