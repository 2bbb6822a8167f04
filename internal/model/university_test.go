package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUniversityByEmail(t *testing.T) {
	u, ok := UniversityByEmail("a@pucp.edu.pe")
	require.True(t, ok)
	require.Equal(t, "PUCP", u.ShortName)

	u, ok = UniversityByEmail("Someone@UNI.EDU.PE")
	require.True(t, ok)
	require.Equal(t, "UNI", u.ShortName)

	require.Len(t, Universities, 5)
	_, ok = UniversityByEmail("a@ulima.edu.pe")
	require.False(t, ok)

	_, ok = UniversityByEmail("a@gmail.com")
	require.False(t, ok)
	_, ok = UniversityByEmail("no-at-sign")
	require.False(t, ok)
	_, ok = UniversityByEmail("trailing@")
	require.False(t, ok)
}

func TestMatchPartner(t *testing.T) {
	m := Match{User1: Participant{ID: "a", Name: "A"}, User2: Participant{ID: "b", Name: "B"}}
	require.Equal(t, "B", m.Partner("a").Name)
	require.Equal(t, "A", m.Partner("b").Name)
}
