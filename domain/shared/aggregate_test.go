package shared_test

import (
	"testing"

	"catalog/domain/shared"

	"github.com/stretchr/testify/assert"
)

type stubEntity struct {
	id   shared.Uuid
	name string
}

func (e *stubEntity) EntityID() shared.Uuid { return e.id }
func (e *stubEntity) ToJSON() map[string]any {
	return map[string]any{"id": e.id.String(), "name": e.name}
}

type otherStubEntity struct {
	id shared.Uuid
}

func (e *otherStubEntity) EntityID() shared.Uuid   { return e.id }
func (e *otherStubEntity) ToJSON() map[string]any { return map[string]any{"id": e.id.String()} }

func TestEntityEquals(t *testing.T) {
	id := shared.MustNewUuid("a95e0677-b8db-4870-b1be-be7e000bc581")

	tests := []struct {
		name  string
		a     shared.Entity[shared.Uuid]
		other any
		want  bool
	}{
		{"same kind same id", &stubEntity{id: id, name: "a"}, &stubEntity{id: id, name: "b"}, true},
		{"same kind different id", &stubEntity{id: id}, &stubEntity{id: shared.GenerateUuid()}, false},
		{"different kind same id", &stubEntity{id: id}, &otherStubEntity{id: id}, false},
		{"nil other", &stubEntity{id: id}, nil, false},
		{"typed nil other", &stubEntity{id: id}, (*stubEntity)(nil), false},
		{"typed nil receiver", (*stubEntity)(nil), &stubEntity{id: id}, false},
		{"not an entity", &stubEntity{id: id}, id, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.EntityEquals(tt.a, tt.other))
		})
	}
}
