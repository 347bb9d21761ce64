package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleInvalidFactor(t *testing.T) {
	seq := evenSequence(3, time.Second)
	for _, factor := range []float64{0, -1.5} {
		err := Scale(seq, factor)
		require.Error(t, err)
		var ferr *InvalidFactorError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, "scale", ferr.Op)
		assert.Equal(t, factor, ferr.Factor)
	}
}

func TestScaleIdentity(t *testing.T) {
	seq := evenSequence(5, 250*time.Millisecond)
	want := timestamps(seq)

	err := Scale(seq, 1)
	require.NoError(t, err)
	assert.Equal(t, want, timestamps(seq))
}

func TestScaleCompressAnchorsAtFirstPacket(t *testing.T) {
	seq := sequenceAt(0, time.Second, 3*time.Second)

	err := Scale(seq, 2)
	require.NoError(t, err)

	// Start time preserved, offsets halved.
	assert.Equal(t, testBase, seq.Get(0).Timestamp)
	assert.Equal(t, testBase.Add(500*time.Millisecond), seq.Get(1).Timestamp)
	assert.Equal(t, testBase.Add(1500*time.Millisecond), seq.Get(2).Timestamp)
}

func TestScaleStretch(t *testing.T) {
	seq := sequenceAt(0, time.Second, 2*time.Second)

	err := Scale(seq, 0.5)
	require.NoError(t, err)

	assert.Equal(t, testBase, seq.Get(0).Timestamp)
	assert.Equal(t, testBase.Add(2*time.Second), seq.Get(1).Timestamp)
	assert.Equal(t, testBase.Add(4*time.Second), seq.Get(2).Timestamp)
}

func TestScalePreservesOrderCountAndPayload(t *testing.T) {
	seq := evenSequence(100, 17*time.Millisecond)
	wantPayload := append([]byte(nil), seq.Get(42).Data...)

	err := Scale(seq, 3.7)
	require.NoError(t, err)

	assert.Equal(t, 100, seq.Len())
	assert.Equal(t, wantPayload, seq.Get(42).Data)
	for i := 1; i < seq.Len(); i++ {
		assert.True(t, seq.Get(i).Timestamp.After(seq.Get(i-1).Timestamp),
			"timestamps must stay strictly increasing at %d", i)
	}
}

func TestScaleEmptySequenceIsNoop(t *testing.T) {
	seq := evenSequence(0, time.Second)
	err := Scale(seq, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, seq.Len())
}
