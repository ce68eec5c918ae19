package id_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/id"
)

func TestTimestampKeys_Format(t *testing.T) {
	at := time.Date(2025, 11, 29, 14, 30, 52, 0, time.UTC)

	assert.Equal(t, "C251129143052", id.Customer(at))
	assert.Equal(t, "S251129143052", id.Sale(at))
	assert.Equal(t, "PN251129143052", id.Product(at))
	assert.Equal(t, "BD251129143052", id.Bill(at))
}

// Keys generated more than one second apart never collide; keys within the
// same second always collide. The window is deterministic, not random.
func TestTimestampKeys_CollisionWindowIsExactlyOneSecond(t *testing.T) {
	at := time.Date(2025, 11, 29, 14, 30, 52, 0, time.UTC)

	assert.Equal(t, id.Customer(at), id.Customer(at.Add(900*time.Millisecond)),
		"creations within the same second must produce the same key")
	assert.NotEqual(t, id.Customer(at), id.Customer(at.Add(time.Second)),
		"creations one second apart must produce distinct keys")
	assert.NotEqual(t, id.Customer(at), id.Customer(at.Add(2*time.Second)))
}

func TestTimestampKeys_PrefixesDisambiguateEntityTypes(t *testing.T) {
	at := time.Now()
	keys := []string{id.Customer(at), id.Sale(at), id.Product(at), id.Bill(at)}
	seen := map[string]bool{}
	for _, k := range keys {
		assert.False(t, seen[k], "same-instant keys of different entities must differ: %s", k)
		seen[k] = true
	}
}

func TestTeam_SequenceFromLatest(t *testing.T) {
	assert.Equal(t, "EID0001", id.Team(""))
	assert.Equal(t, "EID0002", id.Team("EID0001"))
	assert.Equal(t, "EID0012", id.Team("EID0011"))
	assert.Equal(t, "EID1000", id.Team("EID0999"))
	// Garbage restarts the sequence rather than failing the save.
	assert.Equal(t, "EID0001", id.Team("EIDxyz"))
	assert.Equal(t, "EID0001", id.Team("C251129143052"))
}

func TestInstallation_SequenceFromLatest(t *testing.T) {
	assert.Equal(t, "I001", id.Installation(""))
	assert.Equal(t, "I002", id.Installation("I001"))
	assert.Equal(t, "I100", id.Installation("I099"))
}
