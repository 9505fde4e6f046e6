package orm

import (
	"encoding/binary"

	"github.com/iov-one/multisig/errors"
)

// Counter is the simplest possible Model, wrapping a non-negative
// number. It is used for denormalized counts that must be persisted
// next to the data they describe.
type Counter struct {
	Count int64
}

var _ Model = (*Counter)(nil)

// Validate ensures the count did not drift below zero.
func (c *Counter) Validate() error {
	if c.Count < 0 {
		return errors.ErrInvariant.Newf("negative counter: %d", c.Count)
	}
	return nil
}

// Marshal serializes the counter as 8 big-endian bytes.
func (c *Counter) Marshal() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(c.Count))
	return bz, nil
}

// Unmarshal parses the 8 byte serialized form. Nil input resets to zero.
func (c *Counter) Unmarshal(bz []byte) error {
	if bz == nil {
		c.Count = 0
		return nil
	}
	if len(bz) != 8 {
		return errors.ErrInput.Newf("counter must be 8 bytes, got %d", len(bz))
	}
	c.Count = int64(binary.BigEndian.Uint64(bz))
	return nil
}
