package lecturer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"Dosen", RoleDosen, false},
		{" Kajur ", RoleKajur, false},
		{"Admin", RoleAdmin, false},
		{"dosen", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrInvalidRole, tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestLecturer_Quota(t *testing.T) {
	twelve := 12
	assert.Equal(t, 0, Lecturer{}.Quota())
	assert.Equal(t, 12, Lecturer{AnnualLeaveQuota: &twelve}.Quota())
}

func TestLecturer_IsKajurOf(t *testing.T) {
	k := Lecturer{Role: RoleKajur, Department: "Teknik Elektro"}
	assert.True(t, k.IsKajurOf("Teknik Elektro"))
	assert.False(t, k.IsKajurOf("Teknik Sipil"))
	assert.False(t, Lecturer{Role: RoleDosen, Department: "Teknik Elektro"}.IsKajurOf("Teknik Elektro"))
}
