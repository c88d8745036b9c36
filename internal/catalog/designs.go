package catalog

import "yolimar/internal/domain"

// Designs are the printable motifs offered by the designer tool.
var Designs = []domain.Design{
	{ID: 1, Name: "Dragon Rojo", Image: "/imagenes/disenos/dragonRojo.png", Material: "Algodón Brasilero 100%"},
	{ID: 2, Name: "Flor Andina", Image: "/imagenes/disenos/florAndina.png", Material: "Algodón Brasilero 100%"},
	{ID: 3, Name: "Calavera Neon", Image: "/imagenes/disenos/calaveraNeon.png", Material: "Poliéster 100%"},
	{ID: 4, Name: "Montañas", Image: "/imagenes/disenos/montanas.png", Material: "Poliéster 100%"},
	{ID: 5, Name: "Gato Pixel", Image: "/imagenes/disenos/gatoPixel.png", Material: "Algodón 100%"},
	{ID: 6, Name: "Ola Japonesa", Image: "/imagenes/disenos/olaJaponesa.png", Material: "Algodón 100%"},
}

// DesignByID returns a design by its identifier.
func DesignByID(id int) (domain.Design, bool) {
	for _, d := range Designs {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Design{}, false
}
