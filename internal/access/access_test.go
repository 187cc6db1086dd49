package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docvault/internal/model"
)

func TestCanAccess(t *testing.T) {
	tests := []struct {
		name      string
		requester Identity
		ownerID   string
		want      bool
	}{
		{
			name:      "owner can access own resource",
			requester: Identity{ID: "u1", Role: model.RoleUser},
			ownerID:   "u1",
			want:      true,
		},
		{
			name:      "non-owner denied",
			requester: Identity{ID: "u2", Role: model.RoleUser},
			ownerID:   "u1",
			want:      false,
		},
		{
			name:      "admin can access any resource",
			requester: Identity{ID: "u2", Role: model.RoleAdmin},
			ownerID:   "u1",
			want:      true,
		},
		{
			name:      "empty owner id does not match non-admin",
			requester: Identity{ID: "u1", Role: model.RoleUser},
			ownerID:   "",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccess(tt.requester, tt.ownerID))
		})
	}
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, Identity{Role: model.RoleAdmin}.IsAdmin())
	assert.False(t, Identity{Role: model.RoleUser}.IsAdmin())
	assert.False(t, Identity{}.IsAdmin())
}
