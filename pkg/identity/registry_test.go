//nolint:funlen // ok for tests
package identity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercase", in: "Ayrton Senna", want: "ayrton senna"},
		{name: "diacritics", in: "Kimi Räikkönen", want: "kimi raikkonen"},
		{name: "umlaut", in: "Häkkinen", want: "hakkinen"},
		{name: "whitespace", in: "  Senna  ", want: "senna"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.in))
		})
	}
}

func TestRegistryResolve(t *testing.T) {
	r := DefaultRegistry()
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "display name", raw: "Ayrton Senna", want: "senna"},
		{name: "initial plus family", raw: "A. Senna", want: "senna"},
		{name: "alias without diacritics", raw: "Kimi Raikkonen", want: "raikkonen"},
		{name: "diacritic spelling", raw: "Kimi Räikkönen", want: "raikkonen"},
		{name: "ambiguous family name resolved", raw: "Damon Hill", want: "hill"},
		{
			name:    "family name alone stays ambiguous",
			raw:     "Hill",
			wantErr: ErrAmbiguousIdentity,
		},
		{
			name:    "wrong given name on guarded family",
			raw:     "Graham Hill",
			wantErr: ErrAmbiguousIdentity,
		},
		{name: "unknown competitor", raw: "John Doe", wantErr: ErrUnresolvedIdentity},
		{name: "empty name", raw: "   ", wantErr: ErrUnresolvedIdentity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRegistryValidation(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr bool
	}{
		{
			name: "valid",
			entries: []Entry{
				{Key: "senna", DisplayName: "Ayrton Senna", FamilyName: "Senna"},
			},
		},
		{
			name: "duplicate key",
			entries: []Entry{
				{Key: "senna", DisplayName: "Ayrton Senna", FamilyName: "Senna"},
				{Key: "senna", DisplayName: "Bruno Senna", FamilyName: "Senna"},
			},
			wantErr: true,
		},
		{
			name: "alias claimed twice",
			entries: []Entry{
				{Key: "a", DisplayName: "Some Driver", FamilyName: "Driver"},
				{
					Key: "b", DisplayName: "Other Name", FamilyName: "Name",
					Aliases: []string{"Some Driver"},
				},
			},
			wantErr: true,
		},
		{
			name: "shared family name without guard",
			entries: []Entry{
				{
					Key: "d_hill", DisplayName: "Damon Hill",
					GivenName: "Damon", FamilyName: "Hill", RequireGivenName: true,
				},
				{
					Key: "g_hill", DisplayName: "Graham Hill",
					GivenName: "Graham", FamilyName: "Hill",
				},
			},
			wantErr: true,
		},
		{
			name:    "missing key",
			entries: []Entry{{DisplayName: "Ayrton Senna", FamilyName: "Senna"}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.entries)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewRegistry() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegistryGuardedFamilyResolvesBothWays(t *testing.T) {
	entries := []Entry{
		{
			Key: "d_hill", DisplayName: "Damon Hill",
			GivenName: "Damon", FamilyName: "Hill", RequireGivenName: true,
		},
		{
			Key: "g_hill", DisplayName: "Graham Hill",
			GivenName: "Graham", FamilyName: "Hill", RequireGivenName: true,
		},
	}
	r, err := NewRegistry(entries)
	require.NoError(t, err)

	got, err := r.Resolve("Damon Hill")
	require.NoError(t, err)
	assert.Equal(t, "d_hill", got)

	got, err = r.Resolve("Hill Graham")
	require.NoError(t, err)
	assert.Equal(t, "g_hill", got)

	_, err = r.Resolve("Hill")
	assert.True(t, errors.Is(err, ErrAmbiguousIdentity))
}

func TestCareerRange(t *testing.T) {
	r := DefaultRegistry()
	from, to, ok := r.CareerRange("senna")
	require.True(t, ok)
	assert.Equal(t, 1984, from)
	assert.Equal(t, 1994, to)

	_, _, ok = r.CareerRange("unknown")
	assert.False(t, ok)
}
