package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPinSetPreservesOrder(t *testing.T) {
	set := NewPinSet()
	for _, pin := range []string{"C3", "A1", "B2"} {
		require.NoError(t, set.Add(PinRecord{PackagePin: pin, PinFunc: "NC"}))
	}

	var got []string
	for _, rec := range set.Records() {
		got = append(got, rec.PackagePin)
	}
	assert.Equal(t, []string{"C3", "A1", "B2"}, got)
	assert.Equal(t, 3, set.Len())
}

func TestPinSetRejectsDuplicates(t *testing.T) {
	set := NewPinSet()
	require.NoError(t, set.Add(PinRecord{PackagePin: "A1", PinFunc: "IO_L1"}))

	err := set.Add(PinRecord{PackagePin: "A1", PinFunc: "NC"})
	require.ErrorIs(t, err, ErrDuplicatePin)
	assert.Contains(t, err.Error(), "A1")

	rec, ok := set.Lookup("A1")
	require.True(t, ok)
	assert.Equal(t, "IO_L1", rec.PinFunc, "first record must win")
	assert.Equal(t, 1, set.Len())
}

func TestPinSetRecordsIsACopy(t *testing.T) {
	set := NewPinSet()
	require.NoError(t, set.Add(PinRecord{PackagePin: "A1", PinFunc: "IO_L1"}))

	records := set.Records()
	records[0].PinFunc = "changed"

	rec, _ := set.Lookup("A1")
	assert.Equal(t, "IO_L1", rec.PinFunc)
}
