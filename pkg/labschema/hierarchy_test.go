package labschema

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHierarchy_ParentsPrecedeChildren(t *testing.T) {
	orders := [][]string{
		{"INSTRUMENT", "INSTRUMENT.SENSOR"},
		{"INSTRUMENT.SENSOR", "INSTRUMENT"},
		{"A.B.C", "A.B", "X", "A", "X.Y"},
	}

	for _, codes := range orders {
		h := NewHierarchy[int]()
		for i, c := range codes {
			h.Put(c, i)
		}

		pos := make(map[string]int)
		for i, k := range h.Keys() {
			pos[k] = i
		}
		for _, c := range codes {
			if p := parent(c); p != "" {
				if _, ok := pos[p]; ok {
					assert.Less(t, pos[p], pos[c], "%s must precede %s in %v", p, c, h.Keys())
				}
			}
		}
	}
}

func TestHierarchy_MatchesStableSortByDepth(t *testing.T) {
	h := NewHierarchy[int]()
	for i, c := range []string{"B.X", "A", "C.Y.Z", "B", "A.Q", "D"} {
		h.Put(c, i)
	}
	assert.Equal(t, []string{"A", "B", "D", "B.X", "A.Q", "C.Y.Z"}, h.Keys())
}

func TestHierarchy_ReplaceKeepsSlot(t *testing.T) {
	h := NewHierarchy[string]()
	h.Put("A", "first")
	h.Put("B", "b")
	replaced := h.Put("A", "second")

	assert.True(t, replaced)
	assert.Equal(t, []string{"A", "B"}, h.Keys())
	v, ok := h.Get("A")
	require.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestOrdered_MarshalJSONKeepsOrder(t *testing.T) {
	o := NewOrdered[int]()
	o.Put("zeta", 1)
	o.Put("alpha", 2)
	o.Put("mid", 3)

	data, err := json.Marshal(o)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":1,"alpha":2,"mid":3}`, string(data))
}

func TestOrdered_ZeroValueAndNil(t *testing.T) {
	var o Ordered[string]
	assert.Equal(t, 0, o.Len())
	o.Put("k", "v")
	assert.Equal(t, []string{"k"}, o.Keys())

	var nilMap *Ordered[string]
	assert.Equal(t, 0, nilMap.Len())
	_, ok := nilMap.Get("k")
	assert.False(t, ok)
}

func TestDepth(t *testing.T) {
	assert.Equal(t, 0, Depth("INSTRUMENT"))
	assert.Equal(t, 2, Depth("A.B.C"))
}

// parent returns code without its last dot segment, or "" for a root code.
func parent(code string) string {
	i := strings.LastIndex(code, ".")
	if i < 0 {
		return ""
	}
	return code[:i]
}
