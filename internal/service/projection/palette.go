package projection

import (
	"hash/fnv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const fallbackColor = "#9CA3AF"

var colors = map[string]string{
	// modules
	"agro":       "#22C55E",
	"pecuario":   "#F59E0B",
	"apicultura": "#EAB308",
	"finanzas":   "#3B82F6",
	"general":    "#6B7280",

	// expense categories
	"supplies":   "#0EA5E9",
	"feed":       "#84CC16",
	"veterinary": "#EF4444",
	"machinery":  "#8B5CF6",
	"labor":      "#F97316",
	"services":   "#14B8A6",

	// species
	"bovino":   "#A16207",
	"bufalino": "#44403C",
	"porcino":  "#EC4899",
	"ovino":    "#E5E7EB",
	"caprino":  "#78716C",
	"equino":   "#7C2D12",
	"aves":     "#FACC15",
}

// rotation colors keys that have no fixed entry, such as lote codes and crop names.
var rotation = []string{
	"#10B981", "#6366F1", "#F43F5E", "#06B6D4", "#D946EF",
	"#65A30D", "#EA580C", "#0284C7", "#BE123C", "#4D7C0F",
}

// colorFor returns a stable color for a distribution key.
func colorFor(key string) string {
	k := strings.ToLower(strings.TrimSpace(key))
	if c, ok := colors[k]; ok {
		return c
	}
	if k == "" {
		return fallbackColor
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(k))
	return rotation[h.Sum32()%uint32(len(rotation))]
}

var labels = map[string]string{
	"agro":       "Agrícola",
	"pecuario":   "Pecuario",
	"apicultura": "Apicultura",
	"finanzas":   "Finanzas",
	"general":    "General",
	"supplies":   "Insumos",
	"feed":       "Alimento",
	"veterinary": "Veterinario",
	"machinery":  "Maquinaria",
	"labor":      "Mano de obra",
	"services":   "Servicios",
}

func labelFor(key string) string {
	if l, ok := labels[key]; ok {
		return l
	}
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError {
		return key
	}
	return string(unicode.ToUpper(r)) + key[size:]
}
