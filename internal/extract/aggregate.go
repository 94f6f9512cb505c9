package extract

import (
	"strings"
	"unicode"

	"github.com/vvka-141/labschema/pkg/labschema"
)

// SheetName normalizes a sheet name into an output key: trimmed, lower-cased,
// with every run of characters other than letters and digits replaced by "_".
// "Object Types (v2)" becomes "object_types_v2_".
func SheetName(name string) string {
	var b strings.Builder
	gap := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if gap {
				b.WriteByte('_')
				gap = false
			}
			b.WriteRune(r)
			continue
		}
		gap = true
	}
	if gap {
		b.WriteByte('_')
	}
	return b.String()
}

// add stores rec under its normalized sheet and its category. A code seen
// before is replaced in place.
func (r *run) add(sheet string, rec *labschema.EntityRecord) {
	entities, ok := r.result.Sheets.Get(sheet)
	if !ok {
		entities = labschema.NewHierarchy[*labschema.EntityRecord]()
		r.result.Sheets.Put(sheet, entities)
	}
	if entities.Put(rec.Code, rec) {
		r.x.logger.Verbose("%s: %s redefined, later block wins", sheet, rec.Code)
	}

	category := rec.Category.Canonical()
	byCategory, ok := r.result.Categories[category]
	if !ok {
		byCategory = labschema.NewHierarchy[*labschema.EntityRecord]()
		r.result.Categories[category] = byCategory
	}
	byCategory.Put(rec.Code, rec)
}
