package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableStore(t *testing.T) {
	tests := []struct {
		store       TableStore
		valid       bool
		description string
	}{
		{TableStoreFile, true, "Table file (JSON, TOML or CSV)"},
		{TableStoreSQLite, true, "Imported table (SQLite)"},
		{TableStore("postgres"), false, "Unknown"},
		{TableStore(""), false, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.store.String(), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.store.IsValid())
			assert.Equal(t, tt.description, tt.store.Description())
		})
	}

	assert.Equal(t, []TableStore{TableStoreFile, TableStoreSQLite}, AllTableStores())
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, TableStoreFile, s.Cutter.Store)
	assert.False(t, s.Cutter.FoldDiacritics)
	assert.False(t, s.Rules.IsConfigured())
	assert.NoError(t, s.Validate())
}

func TestAppSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		settings AppSettings
		wantErr  bool
	}{
		{
			name:     "pack with overlay",
			settings: AppSettings{Cutter: CutterSettings{Store: TableStoreSQLite}, Rules: RulesSettings{PackPath: "p.json", OptionsPath: "o.json"}},
		},
		{
			name:     "invalid store",
			settings: AppSettings{Cutter: CutterSettings{Store: "redis"}},
			wantErr:  true,
		},
		{
			name:     "overlay without pack",
			settings: AppSettings{Cutter: CutterSettings{Store: TableStoreFile}, Rules: RulesSettings{OptionsPath: "o.json"}},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCutterSettings_Options(t *testing.T) {
	c := CutterSettings{Suffix: "1990", FoldDiacritics: true, TablePath: "t.csv"}
	assert.Equal(t, CutterOptions{Suffix: "1990", FoldDiacritics: true}, c.Options())
}

func TestNameHelpers(t *testing.T) {
	assert.True(t, IsTitleLike(TagTitle))
	assert.True(t, IsTitleLike(TagCorporateName))
	assert.True(t, IsTitleLike(TagMeetingName))
	assert.False(t, IsTitleLike(TagPersonalName))
	assert.False(t, IsTitleLike("700"))

	assert.True(t, NameParts{Firstname: "John"}.IsEmpty())
	assert.False(t, NameParts{Lastname: "Smith"}.IsEmpty())
}
