package inventory

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/davidrmz/chipsmanager-api/internal/domain/entity"
)

// SKUKey identifica una clase de producto fungible: misma categoría, sabor y
// tamaño. Dos lotes con el mismo SKUKey en la misma ubicación son
// intercambiables para consumo, pero siguen siendo lotes separados.
type SKUKey struct {
	Category string
	Flavor   string
	Size     string
}

// Group es la proyección de lectura de todos los lotes de almacén de un mismo
// SKU: cantidad total y lotes ordenados por antigüedad (FIFO).
type Group struct {
	Key           SKUKey
	TotalQuantity int
	Lots          []*entity.Lot
}

// GroupWarehouseLots agrupa los lotes del almacén por SKU, opcionalmente
// filtrados por un término de búsqueda sobre sabor o categoría (insensible a
// mayúsculas y acentos: "limon" encuentra "Limón").
//
// Dentro de cada grupo los lotes quedan ordenados ascendente por
// (ReceivedDate, ReceivedAt): el más viejo primero, que es el orden de consumo
// FIFO sugerido. Es una proyección pura: no muta los lotes y produce salida
// idéntica para entrada idéntica.
func GroupWarehouseLots(lots []*entity.Lot, search string) []Group {
	term := foldSearch(search)

	groups := make(map[SKUKey]*Group)
	for _, lot := range lots {
		if !lot.IsWarehouse() {
			continue
		}
		if term != "" &&
			!strings.Contains(foldSearch(lot.Flavor), term) &&
			!strings.Contains(foldSearch(lot.Category), term) {
			continue
		}
		key := SKUKey{Category: lot.Category, Flavor: lot.Flavor, Size: lot.Size}
		g, ok := groups[key]
		if !ok {
			g = &Group{Key: key}
			groups[key] = g
		}
		g.TotalQuantity += lot.Quantity
		g.Lots = append(g.Lots, lot)
	}

	result := make([]Group, 0, len(groups))
	for _, g := range groups {
		sort.SliceStable(g.Lots, func(i, j int) bool {
			a, b := g.Lots[i], g.Lots[j]
			if a.ReceivedDate != b.ReceivedDate {
				return a.ReceivedDate < b.ReceivedDate
			}
			return a.ReceivedAt.Before(b.ReceivedAt)
		})
		result = append(result, *g)
	}

	// El orden entre grupos es decisión del caller; aquí se ordena por SKU para
	// que la proyección sea determinista.
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i].Key, result[j].Key
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.Flavor != b.Flavor {
			return a.Flavor < b.Flavor
		}
		return a.Size < b.Size
	})
	return result
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldSearch normaliza un término para comparación: minúsculas y sin marcas
// diacríticas.
func foldSearch(s string) string {
	folded, _, err := transform.String(foldTransformer, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return folded
}
