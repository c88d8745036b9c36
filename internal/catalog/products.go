package catalog

import "yolimar/internal/domain"

// Products is the full catalog, in display order.
var Products = []domain.Product{
	{
		ID:          1,
		Type:        "saco",
		Name:        "Saco Elegante Randa",
		Code:        "SAC-001",
		Description: "Saco elegante con detalles de randa, perfecto para ocasiones especiales",
		Material:    "Algodón Premium",
		Variants: []domain.ProductVariant{
			{Color: "rosa", Size: "S", Stock: 5, Price: 100, SKU: "SAC-001-ROS-S"},
			{Color: "rosa", Size: "M", Stock: 4, Price: 100, SKU: "SAC-001-ROS-M"},
			{Color: "rosa", Size: "L", Stock: 2, Price: 100, SKU: "SAC-001-ROS-L"},
			{Color: "rosa", Size: "XL", Stock: 1, Price: 110, SKU: "SAC-001-ROS-XL"},
			{Color: "blanco", Size: "S", Stock: 6, Price: 100, SKU: "SAC-001-BLA-S"},
			{Color: "blanco", Size: "M", Stock: 5, Price: 100, SKU: "SAC-001-BLA-M"},
			{Color: "blanco", Size: "L", Stock: 3, Price: 100, SKU: "SAC-001-BLA-L"},
			{Color: "blanco", Size: "XL", Stock: 2, Price: 110, SKU: "SAC-001-BLA-XL"},
			{Color: "negro", Size: "S", Stock: 4, Price: 100, SKU: "SAC-001-NEG-S"},
			{Color: "negro", Size: "M", Stock: 3, Price: 100, SKU: "SAC-001-NEG-M"},
			{Color: "negro", Size: "L", Stock: 2, Price: 100, SKU: "SAC-001-NEG-L"},
		},
		Image: "/placeholder.svg",
		Tag:   "TOP VENTA",
		Badge: "TOP VENTA",
	},
	{
		ID:          2,
		Type:        "polera",
		Name:        "Polera Estampada Anime",
		Code:        "POL-001",
		Description: "Polera con estampado de anime de alta calidad",
		Material:    "Poliéster 100%",
		Variants: []domain.ProductVariant{
			{Color: "blanco", Size: "S", Stock: 15, Price: 55, SKU: "POL-001-BLA-S"},
			{Color: "blanco", Size: "M", Stock: 12, Price: 55, SKU: "POL-001-BLA-M"},
			{Color: "blanco", Size: "L", Stock: 10, Price: 55, SKU: "POL-001-BLA-L"},
			{Color: "blanco", Size: "XL", Stock: 8, Price: 60, SKU: "POL-001-BLA-XL"},
			{Color: "negro", Size: "S", Stock: 12, Price: 55, SKU: "POL-001-NEG-S"},
			{Color: "negro", Size: "M", Stock: 10, Price: 55, SKU: "POL-001-NEG-M"},
			{Color: "negro", Size: "L", Stock: 8, Price: 55, SKU: "POL-001-NEG-L"},
			{Color: "negro", Size: "XL", Stock: 6, Price: 60, SKU: "POL-001-NEG-XL"},
		},
		Image: "/placeholder.svg",
		Tag:   "TOP VENTA",
		Badge: "TOP VENTA",
	},
	{
		ID:          3,
		Type:        "polera",
		Name:        "Polera Básica Algodón",
		Code:        "POL-002",
		Description: "Polera básica de algodón brasilero, suave y cómoda",
		Material:    "Algodón Brasilero 100%",
		Variants: []domain.ProductVariant{
			{Color: "blanco", Size: "S", Stock: 20, Price: 55, SKU: "POL-002-BLA-S"},
			{Color: "blanco", Size: "M", Stock: 18, Price: 55, SKU: "POL-002-BLA-M"},
			{Color: "blanco", Size: "L", Stock: 15, Price: 55, SKU: "POL-002-BLA-L"},
			{Color: "blanco", Size: "XL", Stock: 10, Price: 60, SKU: "POL-002-BLA-XL"},
			{Color: "negro", Size: "S", Stock: 18, Price: 55, SKU: "POL-002-NEG-S"},
			{Color: "negro", Size: "M", Stock: 15, Price: 55, SKU: "POL-002-NEG-M"},
			{Color: "negro", Size: "L", Stock: 12, Price: 55, SKU: "POL-002-NEG-L"},
			{Color: "negro", Size: "XL", Stock: 8, Price: 60, SKU: "POL-002-NEG-XL"},
			{Color: "azul", Size: "S", Stock: 10, Price: 55, SKU: "POL-002-AZU-S"},
			{Color: "azul", Size: "M", Stock: 8, Price: 55, SKU: "POL-002-AZU-M"},
			{Color: "azul", Size: "L", Stock: 6, Price: 55, SKU: "POL-002-AZU-L"},
			{Color: "rojo", Size: "S", Stock: 8, Price: 55, SKU: "POL-002-ROJ-S"},
			{Color: "rojo", Size: "M", Stock: 6, Price: 55, SKU: "POL-002-ROJ-M"},
			{Color: "verde", Size: "M", Stock: 5, Price: 55, SKU: "POL-002-VER-M"},
			{Color: "verde", Size: "L", Stock: 4, Price: 55, SKU: "POL-002-VER-L"},
		},
		Image: "/placeholder.svg",
		Badge: "NUEVO",
	},
	{
		ID:          4,
		Type:        "blusa",
		Name:        "Blusa Elegante Seda",
		Code:        "BLU-001",
		Description: "Blusa elegante de seda con corte moderno",
		Material:    "Seda 100%",
		Variants: []domain.ProductVariant{
			{Color: "rosa", Size: "S", Stock: 5, Price: 50, SKU: "BLU-001-ROS-S"},
			{Color: "rosa", Size: "M", Stock: 4, Price: 50, SKU: "BLU-001-ROS-M"},
			{Color: "rosa", Size: "L", Stock: 3, Price: 50, SKU: "BLU-001-ROS-L"},
			{Color: "blanco", Size: "S", Stock: 6, Price: 50, SKU: "BLU-001-BLA-S"},
			{Color: "blanco", Size: "M", Stock: 5, Price: 50, SKU: "BLU-001-BLA-M"},
			{Color: "blanco", Size: "L", Stock: 4, Price: 50, SKU: "BLU-001-BLA-L"},
			{Color: "negro", Size: "S", Stock: 4, Price: 50, SKU: "BLU-001-NEG-S"},
			{Color: "negro", Size: "M", Stock: 3, Price: 50, SKU: "BLU-001-NEG-M"},
			{Color: "negro", Size: "L", Stock: 0, Price: 50, SKU: "BLU-001-NEG-L"},
			{Color: "negro", Size: "XL", Stock: 2, Price: 55, SKU: "BLU-001-NEG-XL"},
		},
		Image: "/placeholder.svg",
	},
	{
		ID:          5,
		Type:        "solera",
		Name:        "Solera Tradicional",
		Code:        "SOL-001",
		Description: "Solera tradicional de gasa, fresca y liviana",
		Material:    "Gasa",
		Variants: []domain.ProductVariant{
			{Color: "blanco", Size: "S", Stock: 7, Price: 50, SKU: "SOL-001-BLA-S"},
			{Color: "blanco", Size: "M", Stock: 6, Price: 50, SKU: "SOL-001-BLA-M"},
			{Color: "blanco", Size: "L", Stock: 4, Price: 50, SKU: "SOL-001-BLA-L"},
			{Color: "amarillo", Size: "M", Stock: 5, Price: 50, SKU: "SOL-001-AMA-M"},
			{Color: "amarillo", Size: "L", Stock: 3, Price: 50, SKU: "SOL-001-AMA-L"},
			{Color: "amarillo", Size: "XL", Stock: 2, Price: 55, SKU: "SOL-001-AMA-XL"},
		},
		Image: "/placeholder.svg",
	},
}
