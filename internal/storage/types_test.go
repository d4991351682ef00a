package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateID(t *testing.T) {
	id := CandidateID("jane@x.com", "Jane Doe")

	require.Len(t, id, 8)
	assert.Equal(t, id, CandidateID("jane@x.com", "Jane Doe"), "same inputs map to the same id")
	assert.Equal(t, id, CandidateID("JANE@X.COM", "jane doe"), "id is case insensitive")
	assert.Equal(t, id, CandidateID("jane@x.com", "JaneDoe"), "spaces are ignored")
	assert.NotEqual(t, id, CandidateID("john@x.com", "Jane Doe"))
}

func TestValidate(t *testing.T) {
	valid := &CandidateRecord{Name: "Jane Doe", Email: "jane@x.com"}
	require.NoError(t, Validate(valid))

	tests := []struct {
		name   string
		record *CandidateRecord
	}{
		{name: "nil record", record: nil},
		{name: "missing name", record: &CandidateRecord{Email: "jane@x.com"}},
		{name: "missing email", record: &CandidateRecord{Name: "Jane Doe"}},
		{name: "invalid email", record: &CandidateRecord{Name: "Jane Doe", Email: "not-an-email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, Validate(tt.record))
		})
	}
}
