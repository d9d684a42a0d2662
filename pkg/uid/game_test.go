package uid

import (
	"testing"

	"github.com/google/uuid"
)

func TestGenerateGameID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateGameID()
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("GenerateGameID() = %q is not a uuid: %v", id, err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
