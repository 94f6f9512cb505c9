package labschema

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		marker string
		want   Category
		ok     bool
	}{
		{"OBJECT_TYPE", CategoryObjectType, true},
		{"  SAMPLE_TYPE ", CategorySampleType, true},
		{"EXPERIMENT_TYPE", CategoryExperimentType, true},
		{"VOCABULARY_TYPE", CategoryVocabularyType, true},
		{"object_type", "", false},
		{"INSTRUMENT", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.marker, func(t *testing.T) {
			got, ok := ParseCategory(tt.marker)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseCategory(%q) = (%q, %v), want (%q, %v)", tt.marker, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCategory_CanonicalAndChild(t *testing.T) {
	tests := []struct {
		c         Category
		canonical Category
		child     ChildKind
	}{
		{CategorySampleType, CategoryObjectType, ChildProperties},
		{CategoryObjectType, CategoryObjectType, ChildProperties},
		{CategoryExperimentType, CategoryCollectionType, ChildProperties},
		{CategoryCollectionType, CategoryCollectionType, ChildProperties},
		{CategoryDatasetType, CategoryDatasetType, ChildProperties},
		{CategoryVocabularyType, CategoryVocabularyType, ChildTerms},
		{CategoryPropertyType, CategoryPropertyType, ChildNone},
	}

	for _, tt := range tests {
		t.Run(string(tt.c), func(t *testing.T) {
			if got := tt.c.Canonical(); got != tt.canonical {
				t.Errorf("Canonical() = %q, want %q", got, tt.canonical)
			}
			if got := tt.c.Child(); got != tt.child {
				t.Errorf("Child() = %v, want %v", got, tt.child)
			}
		})
	}
}

func TestIsDataType(t *testing.T) {
	for _, dt := range DataTypes() {
		if !IsDataType(string(dt)) {
			t.Errorf("IsDataType(%q) = false", dt)
		}
	}
	for _, s := range []string{"varchar", "STRING", "", "UNKNOWN_TYPE"} {
		if IsDataType(s) {
			t.Errorf("IsDataType(%q) = true", s)
		}
	}
	if n := len(DataTypes()); n != 12 {
		t.Errorf("expected 12 data types, got %d", n)
	}
}
