package catalog

// ColorHex maps garment color keys to their swatch color.
var ColorHex = map[string]string{
	"negro":    "#000000",
	"blanco":   "#FFFFFF",
	"rosa":     "#E91E63",
	"rojo":     "#F44336",
	"azul":     "#2196F3",
	"verde":    "#4CAF50",
	"amarillo": "#FFEB3B",
	"naranja":  "#FF9800",
	"morado":   "#9C27B0",
	"gris":     "#9E9E9E",
	"beige":    "#D7CCC8",
	"marron":   "#795548",
	"bordo":    "#880E4F",
	"dorado":   "#FFD700",
	"plata":    "#C0C0C0",
}

// ColorNames maps color keys to their display names.
var ColorNames = map[string]string{
	"negro":    "Negro",
	"blanco":   "Blanco",
	"rosa":     "Rosa",
	"rojo":     "Rojo",
	"azul":     "Azul",
	"verde":    "Verde",
	"amarillo": "Amarillo",
	"naranja":  "Naranja",
	"morado":   "Morado",
	"gris":     "Gris",
	"beige":    "Beige",
	"marron":   "Marrón",
	"bordo":    "Bordó",
	"dorado":   "Dorado",
	"plata":    "Plata",
}

// ColorName returns the display name for a color key, or the key itself when
// the color is not in the catalog.
func ColorName(key string) string {
	if name, ok := ColorNames[key]; ok {
		return name
	}
	return key
}

// KnownColor reports whether a color key belongs to the catalog.
func KnownColor(key string) bool {
	_, ok := ColorNames[key]
	return ok
}
