package labschema

import "strings"

// Category is the entity-type marker written in the first cell of a block.
type Category string

const (
	CategorySampleType     Category = "SAMPLE_TYPE"
	CategoryObjectType     Category = "OBJECT_TYPE"
	CategoryExperimentType Category = "EXPERIMENT_TYPE"
	CategoryCollectionType Category = "COLLECTION_TYPE"
	CategoryDatasetType    Category = "DATASET_TYPE"
	CategoryPropertyType   Category = "PROPERTY_TYPE"
	CategoryVocabularyType Category = "VOCABULARY_TYPE"
)

// ChildKind identifies the sub-table carried by a block.
type ChildKind int

const (
	ChildNone ChildKind = iota
	ChildProperties
	ChildTerms
)

// String returns the JSON key used for the sub-table.
func (k ChildKind) String() string {
	switch k {
	case ChildProperties:
		return "properties"
	case ChildTerms:
		return "terms"
	default:
		return "none"
	}
}

var markers = []Category{
	CategorySampleType,
	CategoryObjectType,
	CategoryExperimentType,
	CategoryCollectionType,
	CategoryDatasetType,
	CategoryPropertyType,
	CategoryVocabularyType,
}

// Markers returns every literal accepted as a block marker, synonyms included.
func Markers() []Category {
	out := make([]Category, len(markers))
	copy(out, markers)
	return out
}

// CanonicalCategories returns the five distinct categories after synonym folding.
func CanonicalCategories() []Category {
	return []Category{
		CategoryObjectType,
		CategoryCollectionType,
		CategoryDatasetType,
		CategoryPropertyType,
		CategoryVocabularyType,
	}
}

// ParseCategory matches a marker cell against the known categories.
// Surrounding whitespace is ignored; the literal itself must match exactly.
func ParseCategory(marker string) (Category, bool) {
	m := Category(strings.TrimSpace(marker))
	for _, c := range markers {
		if c == m {
			return c, true
		}
	}
	return "", false
}

// Canonical folds synonyms: SAMPLE_TYPE to OBJECT_TYPE, EXPERIMENT_TYPE to COLLECTION_TYPE.
func (c Category) Canonical() Category {
	switch c {
	case CategorySampleType:
		return CategoryObjectType
	case CategoryExperimentType:
		return CategoryCollectionType
	default:
		return c
	}
}

// Child reports which sub-table follows the entity header for this category.
func (c Category) Child() ChildKind {
	switch c.Canonical() {
	case CategoryObjectType, CategoryCollectionType, CategoryDatasetType:
		return ChildProperties
	case CategoryVocabularyType:
		return ChildTerms
	default:
		return ChildNone
	}
}
