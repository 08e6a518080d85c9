//go:build unit

package slot_test

import (
	"testing"

	"dish-studio/internal/domain/slot"
	"dish-studio/internal/domain/user"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCounterClamped(t *testing.T) {
	testCases := []struct {
		name string
		in   slot.Counter
		want slot.Counter
	}{
		{
			name: "negative usage clamps to zero",
			in:   slot.Counter{DayKey: "2026-10-17", FreeLimit: 10, AdLimit: 5, FreeUsed: -2, AdUsed: -1},
			want: slot.Counter{DayKey: "2026-10-17", FreeLimit: 10, AdLimit: 5, FreeUsed: 0, AdUsed: 0},
		},
		{
			name: "usage above limit clamps to limit",
			in:   slot.Counter{DayKey: "2026-10-17", FreeLimit: 10, AdLimit: 5, FreeUsed: 11, AdUsed: 5},
			want: slot.Counter{DayKey: "2026-10-17", FreeLimit: 10, AdLimit: 5, FreeUsed: 10, AdUsed: 5},
		},
		{
			name: "in-range usage is untouched",
			in:   slot.Counter{DayKey: "2026-10-17", FreeLimit: 10, AdLimit: 5, FreeUsed: 3, AdUsed: 2},
			want: slot.Counter{DayKey: "2026-10-17", FreeLimit: 10, AdLimit: 5, FreeUsed: 3, AdUsed: 2},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.in.Clamped()); diff != "" {
				t.Errorf("Clamped() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCounterCapacity(t *testing.T) {
	c := slot.Counter{FreeLimit: 2, AdLimit: 1, FreeUsed: 1, AdUsed: 1}

	assert.True(t, c.HasCapacity(slot.TypeFree))
	assert.False(t, c.HasCapacity(slot.TypeAd))
	assert.Equal(t, int32(2), c.Limit(slot.TypeFree))
	assert.Equal(t, int32(1), c.Used(slot.TypeAd))
}

func TestPolicyAllowance(t *testing.T) {
	p := slot.Policy{FreeDefault: 1, FreeCreator: 3, FreeStaff: 10, AdPerUser: 2}

	assert.Equal(t, 1, p.Allowance(user.RoleMember, slot.TypeFree))
	assert.Equal(t, 3, p.Allowance(user.RoleCreator, slot.TypeFree))
	assert.Equal(t, 10, p.Allowance(user.RoleStaff, slot.TypeFree))
	assert.Equal(t, 1, p.Allowance(user.Role(""), slot.TypeFree), "unknown roles get the default")
	assert.Equal(t, 2, p.Allowance(user.RoleStaff, slot.TypeAd))
}

func TestParseType(t *testing.T) {
	got, err := slot.ParseType("AD")
	assert.NoError(t, err)
	assert.Equal(t, slot.TypeAd, got)

	_, err = slot.ParseType("free")
	assert.ErrorIs(t, err, slot.ErrInvalidType)
}
